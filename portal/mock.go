package portal

import (
	"github.com/go-errors/errors"
)

// check Mock compliance to the Portal interface during compile time
var _ Portal = (*Mock)(nil)

// Mock is a scriptable portal backing tests and the daemon's mock mode.
type Mock struct {
	// Credentials are handed out by Run when set; without them Run fails.
	Credentials *Credentials
	// Err forces Run to fail with this error.
	Err error
	// ShutdownErr forces Shutdown to fail with this error.
	ShutdownErr error
	// OnRun, when set, is called while the portal counts as active.
	OnRun func()

	runs      int
	shutdowns int
	apSsid    string
	apPsk     string
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Run(apSsid string, apPsk string) (*Credentials, error) {
	m.runs++
	m.apSsid = apSsid
	m.apPsk = apPsk

	if m.OnRun != nil {
		m.OnRun()
	}

	if m.Err != nil {
		return nil, m.Err
	}

	if m.Credentials == nil {
		return nil, errors.New("no credentials were provisioned")
	}

	return m.Credentials, nil
}

func (m *Mock) Shutdown() error {
	m.shutdowns++

	return m.ShutdownErr
}

// Runs returns how often the portal was started.
func (m *Mock) Runs() int {
	return m.runs
}

// Shutdowns returns how often the portal was shut down.
func (m *Mock) Shutdowns() int {
	return m.shutdowns
}

// ApSsid returns the access point ssid of the last portal run.
func (m *Mock) ApSsid() string {
	return m.apSsid
}
