package wifidb

// AccessPointConfig holds the credentials of the fallback access point.
type AccessPointConfig struct {
	Ssid string `json:"ssid"`
	Psk  string `json:"psk"`
}

func (db *DB) SetAccessPointConfig(config *AccessPointConfig) error {
	return db.setJSON(settingsBucket, accessPointKey, config)
}

func (db *DB) GetAccessPointConfig() (*AccessPointConfig, error) {
	var config AccessPointConfig

	found, err := db.getJSON(settingsBucket, accessPointKey, &config)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &config, nil
}

func (db *DB) SetName(name string) error {
	return db.setJSON(settingsBucket, nameKey, name)
}

func (db *DB) GetName() (string, error) {
	var name string

	if _, err := db.getJSON(settingsBucket, nameKey, &name); err != nil {
		return "", err
	}

	return name, nil
}
