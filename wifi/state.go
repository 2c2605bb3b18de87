package wifi

import "sync"

// State describes the connection the manager currently holds.
type State struct {
	Connected bool
	Index     int
	Ssid      string
}

// State returns the current connection state. The ssid is empty when the
// connection was established outside the registry, for example when the
// radio was already associated at startup.
func (m *Manager) State() *State {
	state := &State{
		Connected: m.Connected(),
		Index:     m.connectedIndex,
	}

	if network, ok := m.ConnectedNetwork(); ok {
		if network.UseStored {
			state.Ssid = m.radio.StoredSsid()
		} else {
			state.Ssid = network.Ssid
		}
	}

	return state
}

type StateClient struct {
	Updates    chan *State
	Id         uint32
	cancelChan chan struct{}
	manager    *Manager
}

type nextStateClient struct {
	sync.Mutex
	id uint32
}

// SubscribeState delivers a state update whenever the connection changes.
// Updates are dropped instead of blocking the connection sequence when a
// client doesn't keep up.
func (m *Manager) SubscribeState() *StateClient {
	client := &StateClient{
		Updates:    make(chan *State, 1),
		cancelChan: make(chan struct{}),
		manager:    m,
	}

	m.nextStateClient.Lock()
	client.Id = m.nextStateClient.id
	m.nextStateClient.id++
	m.nextStateClient.Unlock()

	m.stateClients[client.Id] = client

	return client
}

func (c *StateClient) Cancel() {
	delete(c.manager.stateClients, c.Id)

	close(c.cancelChan)
}

func (m *Manager) notifyState() {
	state := m.State()

	for _, client := range m.stateClients {
		select {
		case client.Updates <- state:
		default:
		}
	}
}
