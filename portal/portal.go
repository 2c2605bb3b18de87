package portal

// Credentials are the ssid and passphrase a user provisioned through the
// config portal.
type Credentials struct {
	Ssid string
	Psk  string
}

// Portal serves the fallback access point together with its captive
// configuration interface.
type Portal interface {
	// Run advertises an access point with the given credentials and blocks
	// until a user has provisioned a network and the device successfully
	// associated with it, or until the portal fails or gives up.
	Run(apSsid string, apPsk string) (*Credentials, error)
	// Shutdown stops an active portal.
	Shutdown() error
}
