package radio

import (
	"sync"

	"github.com/go-errors/errors"
)

// Outcome scripts how the mock radio treats connection attempts for one ssid.
type Outcome int

const (
	// OutcomeFail reports StatusConnectFailed once the connect delay has
	// elapsed. Attempts for ssids without a scripted outcome fail too.
	OutcomeFail Outcome = iota
	// OutcomeSucceed reports StatusConnected once the connect delay has
	// elapsed.
	OutcomeSucceed
	// OutcomeHang never leaves StatusIdle, forcing the caller to time out.
	OutcomeHang
)

// check Mock compliance to the Radio interface during compile time
var _ Radio = (*Mock)(nil)

// Mock is a scriptable in-memory radio backing tests and the daemon's
// mock mode.
type Mock struct {
	mtx sync.Mutex

	// Outcomes maps ssids to their scripted attempt result.
	Outcomes map[string]Outcome
	// ConnectDelay is the number of Status polls an attempt stays idle
	// before reaching its terminal state.
	ConnectDelay int
	// Stored simulates the network the platform has persisted. Attempts
	// started through ConnectStored are keyed into Outcomes with it.
	Stored string

	status         Status
	pending        bool
	pendingOutcome Outcome
	pollsLeft      int
	attempts       []string
	storedAttempts int
	disconnects    int
}

func NewMock() *Mock {
	return &Mock{
		Outcomes: make(map[string]Outcome),
	}
}

func (m *Mock) Status() Status {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.pending {
		if m.pendingOutcome == OutcomeHang {
			return StatusIdle
		}

		if m.pollsLeft > 0 {
			m.pollsLeft--
			return StatusIdle
		}

		m.pending = false
		if m.pendingOutcome == OutcomeSucceed {
			m.status = StatusConnected
		} else {
			m.status = StatusConnectFailed
		}
	}

	return m.status
}

// SetStatus forces the reported link state, for example to simulate a radio
// that is already connected at startup.
func (m *Mock) SetStatus(status Status) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.pending = false
	m.status = status
}

func (m *Mock) Connect(ssid string, psk string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.attempts = append(m.attempts, ssid)
	m.begin(ssid)

	return nil
}

func (m *Mock) ConnectStored() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.Stored == "" {
		return errors.New("no stored network available")
	}

	m.storedAttempts++
	m.begin(m.Stored)

	return nil
}

func (m *Mock) begin(ssid string) {
	m.pending = true
	m.pendingOutcome = m.Outcomes[ssid]
	m.pollsLeft = m.ConnectDelay
	m.status = StatusIdle
}

func (m *Mock) Disconnect() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.disconnects++
	m.pending = false
	m.status = StatusIdle

	return nil
}

func (m *Mock) StoredSsid() string {
	return m.Stored
}

// Attempts returns the ssids of all explicit connection attempts in order.
func (m *Mock) Attempts() []string {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	attempts := make([]string, len(m.attempts))
	copy(attempts, m.attempts)

	return attempts
}

// StoredAttempts returns how often a stored-credential attempt was started.
func (m *Mock) StoredAttempts() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.storedAttempts
}

// Disconnects returns how often Disconnect was called.
func (m *Mock) Disconnects() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.disconnects
}
