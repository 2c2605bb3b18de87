package wifi

import (
	"time"

	"github.com/wifiland/wifid/portal"
	"github.com/wifiland/wifid/radio"
)

const (
	// DefaultConnectTimeout bounds a single connection attempt.
	DefaultConnectTimeout = 15 * time.Second

	// defaultPollInterval paces the connect-wait status loop.
	defaultPollInterval = 100 * time.Millisecond
)

type Config struct {
	Radio  radio.Radio
	Portal portal.Portal
	// UseStored seeds the registry with the platform-stored network, when
	// the radio reports one.
	UseStored bool
	// PollInterval overrides the connect-wait poll pace. Zero means the
	// 100ms default.
	PollInterval time.Duration
	Logger       Logger
}

// Manager drives connection attempts against the known-network registry and
// falls back to the access point with its config portal when every attempt
// fails. A single owning goroutine must perform all registration and
// connection operations; Startup blocks it for up to the connect timeout
// per known network.
type Manager struct {
	radio    radio.Radio
	portal   portal.Portal
	registry *Registry
	log      Logger

	// background is accepted as configuration but has no behavioral effect
	// yet. Startup blocks the caller either way.
	background     bool
	running        bool
	apEnabled      bool
	apActive       bool
	apSsid         string
	apPsk          string
	connectTimeout time.Duration
	pollInterval   time.Duration
	connectedIndex int

	stateClients    map[uint32]*StateClient
	nextStateClient nextStateClient
}

func NewManager(config *Config) *Manager {
	m := &Manager{
		radio:          config.Radio,
		portal:         config.Portal,
		registry:       NewRegistry(),
		background:     true,
		connectTimeout: DefaultConnectTimeout,
		pollInterval:   defaultPollInterval,
		connectedIndex: IndexDisconnected,
		stateClients:   make(map[uint32]*StateClient),
	}

	if config.Logger != nil {
		m.log = config.Logger
	} else {
		m.log = noopLogger{}
	}

	if config.PollInterval > 0 {
		m.pollInterval = config.PollInterval
	}

	// A previously used network, when the platform still remembers one,
	// becomes the very first attempt.
	if config.UseStored && m.radio.StoredSsid() != "" {
		m.log.Debugf("adding stored network %v as first known network", m.radio.StoredSsid())
		m.registry.AddStored()
	}

	return m
}

// ConfigureBackground sets the background mode flag. Fails once Startup has
// been called, leaving the previous value untouched.
func (m *Manager) ConfigureBackground(background bool) bool {
	if m.running {
		m.log.Errorf("already running")
		return false
	}

	m.background = background

	return true
}

// Background returns the configured background mode flag.
func (m *Manager) Background() bool {
	return m.background
}

// ConfigureAccessPoint records the fallback access point credentials and
// enables the config portal fallback. Fails while the portal is active.
func (m *Manager) ConfigureAccessPoint(ssid string, psk string) bool {
	if m.apActive {
		m.log.Errorf("access point is active")
		return false
	}

	m.apSsid = ssid
	m.apPsk = psk
	m.apEnabled = true

	return true
}

// DisableAccessPoint disables the config portal fallback, shutting the
// portal down first when it is active.
func (m *Manager) DisableAccessPoint() bool {
	if m.apActive {
		if err := m.portal.Shutdown(); err != nil {
			m.log.Errorf("could not shut down access point: %v", err)
			return false
		}

		m.apActive = false
	}

	m.apEnabled = false

	return true
}

// SetConnectTimeout bounds the wait for a single connection attempt.
func (m *Manager) SetConnectTimeout(timeout time.Duration) bool {
	m.connectTimeout = timeout

	return true
}

// AddKnownNetwork registers a network for automatic connection attempts.
// Fails only when the registry is full.
func (m *Manager) AddKnownNetwork(ssid string, psk string) bool {
	if !m.registry.Add(ssid, psk) {
		m.log.Errorf("hit maximum of %v known networks", MaxKnownNetworks)
		return false
	}

	return true
}

// Registry exposes the known-network registry. Callers share the manager's
// single-goroutine contract.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Connected reports whether an active connection is held.
func (m *Manager) Connected() bool {
	return m.connectedIndex != IndexDisconnected
}

// ConnectedIndex returns the registry index of the active connection, or
// IndexDisconnected.
func (m *Manager) ConnectedIndex() int {
	return m.connectedIndex
}

// ConnectedNetwork returns the known network the manager is connected to.
func (m *Manager) ConnectedNetwork() (KnownNetwork, bool) {
	if m.connectedIndex == IndexDisconnected {
		return KnownNetwork{}, false
	}

	return m.registry.At(m.connectedIndex)
}

// Startup establishes a connection: first against the known networks in
// registration order, then through the config portal fallback when one is
// configured. It blocks until a connection is held or every stage failed.
// Calling it again retries the whole sequence.
func (m *Manager) Startup() bool {
	m.running = true

	if m.connectToKnown() {
		return true
	}

	if m.apEnabled {
		return m.startAccessPoint()
	}

	return false
}

// connectToKnown iterates over the known networks and connects to the first
// one possible.
func (m *Manager) connectToKnown() bool {
	if m.radio.Status() == radio.StatusConnected {
		m.log.Infof("already connected")
		m.setConnected(0)
		return true
	}

	index := 0

	// The stored-credential entry is only honored in first position.
	if network, ok := m.registry.At(0); ok && network.UseStored {
		m.log.Infof("attempting previously stored network")

		if err := m.radio.ConnectStored(); err != nil {
			m.log.Warnf("could not start stored connection attempt: %v", err)
		} else if m.connectWait() {
			m.setConnected(0)
			return true
		}

		index = 1
	}

	for ; index < m.registry.Count(); index++ {
		network, _ := m.registry.At(index)

		m.log.Infof("connecting to %v", network.Ssid)

		if err := m.radio.Connect(network.Ssid, network.Psk); err != nil {
			m.log.Warnf("could not start connection attempt: %v", err)
			continue
		}

		if m.connectWait() {
			m.setConnected(index)
			return true
		}
	}

	m.log.Infof("could not connect to any known network")
	m.setDisconnected()

	return false
}

// connectWait polls the radio until the pending attempt reaches a terminal
// outcome. A timed out attempt is cancelled with an explicit disconnect.
// Timeout and explicit failure both surface as false; callers cannot tell
// them apart, which is a known limitation of this contract.
func (m *Manager) connectWait() bool {
	deadline := time.Now().Add(m.connectTimeout)

	for {
		switch m.radio.Status() {
		case radio.StatusConnected:
			m.log.Debugf("connect succeeded")
			return true
		case radio.StatusConnectFailed:
			m.log.Debugf("connect failed")
			return false
		}

		if time.Now().After(deadline) {
			m.log.Debugf("connect timed out after %v", m.connectTimeout)

			if err := m.radio.Disconnect(); err != nil {
				m.log.Warnf("could not cancel connection attempt: %v", err)
			}

			return false
		}

		time.Sleep(m.pollInterval)
	}
}

// startAccessPoint launches the access point with its config portal and
// blocks until a user configured a connection through it, or the portal
// gave up.
func (m *Manager) startAccessPoint() bool {
	m.log.Infof("starting access point %v with config portal", m.apSsid)

	m.apActive = true
	credentials, err := m.portal.Run(m.apSsid, m.apPsk)
	m.apActive = false

	if err != nil {
		m.log.Errorf("config portal failed: %v", err)
		return false
	}

	m.log.Infof("config portal connected to %v", credentials.Ssid)

	index := m.registry.Lookup(credentials.Ssid)
	if index == IndexDisconnected {
		if m.registry.Add(credentials.Ssid, credentials.Psk) {
			index = m.registry.Count() - 1
		} else {
			// The learned network cannot be recorded anymore. Index 0 is
			// the same convention the already-connected short circuit uses.
			m.log.Warnf("could not register %v, known network list is full", credentials.Ssid)
			index = 0
		}
	}

	m.setConnected(index)

	return true
}

func (m *Manager) setConnected(index int) {
	m.connectedIndex = index
	m.notifyState()
}

func (m *Manager) setDisconnected() {
	m.connectedIndex = IndexDisconnected
	m.notifyState()
}
