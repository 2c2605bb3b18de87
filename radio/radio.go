package radio

// Status is the link state a radio driver reports.
type Status int

const (
	// StatusIdle covers every transitional or unknown link state.
	StatusIdle Status = iota
	// StatusConnected means the link is up.
	StatusConnected
	// StatusConnectFailed means the driver explicitly rejected the last
	// connection attempt, for example on a bad passphrase.
	StatusConnectFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusConnected:
		return "CONNECTED"
	case StatusConnectFailed:
		return "CONNECT_FAILED"
	default:
		return "INVALID STATUS"
	}
}

// Radio is the link-layer driver the connection manager drives. The radio
// is a single shared resource; implementations don't need to support
// concurrent callers.
type Radio interface {
	// Status reports the current link state. Connection attempts started
	// through Connect or ConnectStored surface their outcome here.
	Status() Status
	// Connect starts an association with explicit credentials.
	Connect(ssid string, psk string) error
	// ConnectStored starts an association using credentials the platform
	// has already persisted.
	ConnectStored() error
	// Disconnect tears the link down or cancels an attempt in flight.
	Disconnect() error
	// StoredSsid returns the ssid of the platform-stored network, or an
	// empty string when none is available.
	StoredSsid() string
}
