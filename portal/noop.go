package portal

import "github.com/go-errors/errors"

// Compile time check for protocol compatibility
var _ Portal = (*NoopPortal)(nil)

// NoopPortal stands in on platforms that cannot serve a config portal.
type NoopPortal struct {
}

func NewNoopPortal() *NoopPortal {
	return &NoopPortal{}
}

func (n *NoopPortal) Run(apSsid string, apPsk string) (*Credentials, error) {
	return nil, errors.New("no config portal available")
}

func (n *NoopPortal) Shutdown() error {
	return errors.New("no config portal available")
}
