package wifidb

import (
	"os"
	"path"

	"github.com/go-errors/errors"
	"go.etcd.io/bbolt"
)

var (
	settingsBucket   = []byte("settings")
	knownNetworksKey = []byte("knownNetworks")
	accessPointKey   = []byte("accessPoint")
	nameKey          = []byte("name")
)

// DB is the bolt database that persistently stores the daemon's settings
// and learned networks.
type DB struct {
	*bbolt.DB
}

// Open opens or creates wifid.db inside the given data directory.
func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, errors.Errorf("could not create data dir: %v", err)
	}

	db, err := bbolt.Open(path.Join(dataDir, "wifid.db"), 0600, nil)
	if err != nil {
		return nil, errors.Errorf("could not open database: %v", err)
	}

	return &DB{DB: db}, nil
}
