package main

import (
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wifiland/wifid/api"
	"github.com/wifiland/wifid/portal"
	"github.com/wifiland/wifid/radio"
	"github.com/wifiland/wifid/station"
	"github.com/wifiland/wifid/taillog"
	"github.com/wifiland/wifid/wifi"
	"github.com/wifiland/wifid/wifidb"

	// Blank import to set up profiling HTTP handlers.
	_ "net/http/pprof"
)

var (
	// Commit stores the current commit hash of this build. This should be set using -ldflags during compilation.
	Commit string
	// Version stores the version string of this build. This should be set using -ldflags during compilation.
	Version string
	// Date stores the date of this build. This should be set using -ldflags during compilation.
	Date string
)

// wifidMain is the true entry point for wifid. This is required since defers
// created in the top-level scope of a main method aren't executed if os.Exit() is called.
func wifidMain() error {
	tail := taillog.New()

	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
	log.AddHook(tail)

	// Load CLI configuration and defaults
	cfg, err := loadConfig()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		return nil
	} else if err != nil {
		return errors.Errorf("Failed parsing arguments: %v", err)
	}

	// Set logger into debug mode if called with --debug
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
		log.Info("Setting debug mode.")
	}

	// Print version of the daemon
	log.Infof("Version %s (commit %s)", Version, Commit)
	log.Infof("Built on %s", Date)

	// Stop here if only version was requested
	if cfg.ShowVersion {
		return nil
	}

	if cfg.Profiling != nil && cfg.Profiling.Listen != "" {
		go func() {
			log.Infof("Starting profiling server on %v", cfg.Profiling.Listen)
			// Redirect the root path
			http.Handle("/", http.RedirectHandler("/debug/pprof", http.StatusSeeOther))
			// All other handlers are registered on DefaultServeMux through the import of pprof
			err := http.ListenAndServe(cfg.Profiling.Listen, nil)
			if err != nil {
				log.Errorf("Could not run profiler: %v", err)
			}
		}()
	}

	// wifid.db persistently stores all settings and learned networks
	db, err := wifidb.Open(cfg.DataDir)
	if err != nil {
		return errors.Errorf("Could not open wifid.db: %v", err)
	}

	log.Infof("Opened wifid.db")

	defer func() {
		err := db.Close()
		if err != nil {
			log.Errorf("Could not close wifid.db: %v", err)
		} else {
			log.Info("Closed wifid.db.")
		}
	}()

	// The radio driver, the single shared link-layer resource every
	// connection attempt goes through
	var r radio.Radio

	switch cfg.Radio {
	case "wpa":
		wpaRadio, err := radio.NewWpaRadio(&radio.WpaRadioConfig{
			Interface: cfg.Wpa.Interface,
		})
		if err != nil {
			return errors.Errorf("Could not create wpa radio: %v", err)
		}

		defer func() {
			if err := wpaRadio.Close(); err != nil {
				log.Errorf("Could not properly close wpa radio: %v", err)
			}
		}()

		r = wpaRadio

		log.Infof("Created wpa radio on %v.", cfg.Wpa.Interface)
	case "mock":
		r = radio.NewMock()

		log.Info("Created a mock radio.")
	default:
		return errors.Errorf("Unknown radio type %v", cfg.Radio)
	}

	// The access point with its config portal, used when no known
	// network is reachable
	var p portal.Portal

	switch cfg.Portal {
	case "mock":
		p = portal.NewMock()

		log.Info("Created a mock config portal.")
	case "none":
		p = portal.NewNoopPortal()

		log.Info("Created no config portal.")
	default:
		return errors.Errorf("Unknown portal type %v", cfg.Portal)
	}

	// The connection manager driving attempts against the known networks
	manager := wifi.NewManager(&wifi.Config{
		Radio:     r,
		Portal:    p,
		UseStored: cfg.UseStored,
		Logger:    log.New().WithField("system", "wifi"),
	})

	manager.SetConnectTimeout(cfg.Timeout)

	if cfg.Ap != nil && cfg.Ap.Ssid != "" {
		if !manager.ConfigureAccessPoint(cfg.Ap.Ssid, cfg.Ap.Psk) {
			return errors.New("Could not configure fallback access point")
		}

		log.Infof("Configured fallback access point %v.", cfg.Ap.Ssid)
	}

	log.Infof("Created connection manager.")

	// central controller for everything the station does
	s := station.New(&station.Config{
		Manager: manager,
		DB:      db,
		Logger:  log.New().WithField("system", "station"),
	})

	log.Infof("Created station.")

	// the subsystem responsible for the HTTP API
	a := api.New(&api.Config{
		Station: s,
		Tail:    tail,
		Log:     log.New().WithField("system", "api"),
	})

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return errors.Errorf("API server unable to listen on %v", cfg.Listen)
	}

	defer func() {
		if err := lis.Close(); err != nil {
			log.Errorf("Could not close listener: %v", err)
		}
	}()

	go func() {
		log.Infof("Serving API on %v", cfg.Listen)

		err := a.Serve(lis)
		if err != nil {
			log.Errorf("Could not serve api: %v", err)
		}
	}()

	// Handle interrupt signals correctly
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		sig := <-signals
		log.Info(sig)
		log.Info("Received an interrupt, stopping station...")
		s.Shutdown()
	}()

	// blocks until the station is shut down
	err = s.Run()
	if err != nil {
		return errors.Errorf("Failed running station: %v", err)
	}

	// finish with no error
	return nil
}

func main() {
	// Call the "real" main in a nested manner so the defers will properly
	// be executed in the case of a graceful shutdown.
	if err := wifidMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		} else {
			log.WithError(err).Println("Failed running wifid.")
		}
		os.Exit(1)
	}
}
