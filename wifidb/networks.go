package wifidb

// KnownNetwork is the persisted form of a registered network.
type KnownNetwork struct {
	Ssid string `json:"ssid"`
	Psk  string `json:"psk"`
}

// SetKnownNetworks replaces the persisted known networks, keeping their
// registration order.
func (db *DB) SetKnownNetworks(networks []*KnownNetwork) error {
	return db.setJSON(settingsBucket, knownNetworksKey, networks)
}

// GetKnownNetworks returns the persisted known networks in registration
// order, or nil when none were saved yet.
func (db *DB) GetKnownNetworks() ([]*KnownNetwork, error) {
	var networks []*KnownNetwork

	if _, err := db.getJSON(settingsBucket, knownNetworksKey, &networks); err != nil {
		return nil, err
	}

	return networks, nil
}
