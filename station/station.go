package station

import (
	"sync"

	"github.com/go-errors/errors"
	"github.com/wifiland/wifid/wifi"
	"github.com/wifiland/wifid/wifidb"
)

// Station is the central controller of the daemon. It ties the connection
// manager to the persisted settings and serializes all entry points behind
// one mutex, since the manager itself must only ever be driven by a single
// goroutine.
type Station struct {
	mtx sync.Mutex

	manager *wifi.Manager
	db      *wifidb.DB
	log     Logger
	done    chan struct{}
}

type Config struct {
	Manager *wifi.Manager
	DB      *wifidb.DB
	Logger  Logger
}

func New(config *Config) *Station {
	station := &Station{
		manager: config.Manager,
		db:      config.DB,
		done:    make(chan struct{}),
	}

	if config.Logger != nil {
		station.log = config.Logger
	} else {
		station.log = noopLogger{}
	}

	return station
}

// Run seeds the registry from the persisted settings, performs the startup
// connection sequence and blocks until Shutdown is called.
func (s *Station) Run() error {
	s.mtx.Lock()

	networks, err := s.db.GetKnownNetworks()
	if err != nil {
		s.log.Warnf("could not read known networks: %v", err)
	}

	for _, network := range networks {
		if !s.manager.AddKnownNetwork(network.Ssid, network.Psk) {
			s.log.Warnf("could not register persisted network %v", network.Ssid)
		}
	}

	// A persisted access point configuration takes precedence over
	// whatever the daemon was started with.
	accessPoint, err := s.db.GetAccessPointConfig()
	if err != nil {
		s.log.Warnf("could not read access point config: %v", err)
	} else if accessPoint != nil {
		if !s.manager.ConfigureAccessPoint(accessPoint.Ssid, accessPoint.Psk) {
			s.log.Warnf("could not configure access point %v", accessPoint.Ssid)
		}
	}

	if s.manager.Startup() {
		s.log.Infof("connected to %v", s.manager.State().Ssid)
	} else {
		s.log.Warnf("could not establish a connection")
	}

	// keep networks learned through the config portal
	s.persistNetworks()

	s.mtx.Unlock()

	<-s.done

	return nil
}

// Shutdown unblocks Run.
func (s *Station) Shutdown() {
	close(s.done)
}

// AddNetwork registers a network and persists the updated list.
func (s *Station) AddNetwork(ssid string, psk string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if ssid == "" {
		return errors.New("ssid must not be empty")
	}

	if !s.manager.AddKnownNetwork(ssid, psk) {
		return errors.Errorf("could not register %v, known network list is full", ssid)
	}

	s.persistNetworks()

	return nil
}

// Networks returns the known networks in attempt order.
func (s *Station) Networks() []wifi.KnownNetwork {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.manager.Registry().Networks()
}

// State returns the current connection state.
func (s *Station) State() *wifi.State {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.manager.State()
}

// Reconnect retries the whole connection sequence.
func (s *Station) Reconnect() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !s.manager.Startup() {
		return errors.New("could not establish a connection")
	}

	s.persistNetworks()

	return nil
}

// Name returns the persisted device name.
func (s *Station) Name() (string, error) {
	name, err := s.db.GetName()
	if err != nil {
		return "", errors.Errorf("could not get name: %v", err)
	}

	return name, nil
}

// SetName persists the device name.
func (s *Station) SetName(name string) error {
	if err := s.db.SetName(name); err != nil {
		return errors.Errorf("could not set name: %v", err)
	}

	return nil
}

// persistNetworks writes the explicit registry entries back to the
// database. The stored-credential entry stays with the platform and is
// not persisted. Callers must hold the mutex.
func (s *Station) persistNetworks() {
	var networks []*wifidb.KnownNetwork

	for _, network := range s.manager.Registry().Networks() {
		if network.UseStored {
			continue
		}

		networks = append(networks, &wifidb.KnownNetwork{
			Ssid: network.Ssid,
			Psk:  network.Psk,
		})
	}

	if err := s.db.SetKnownNetworks(networks); err != nil {
		s.log.Errorf("could not persist known networks: %v", err)
	}
}
