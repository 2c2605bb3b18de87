package main

import (
	"time"

	flags "github.com/jessevdk/go-flags"
)

type profilingConfig struct {
	Listen string `long:"listen" description:"Add an ip:port to listen for profiling connections"`
}

type wpaConfig struct {
	Interface string `long:"interface" description:"Wireless interface to manage" default:"wlan0"`
}

type apConfig struct {
	Ssid string `long:"ssid" description:"Ssid of the fallback access point"`
	Psk  string `long:"psk" description:"Passphrase of the fallback access point"`
}

type config struct {
	ShowVersion bool          `short:"v" long:"version" description:"Display version information and exit"`
	Debug       bool          `short:"d" long:"debug" description:"Start in debug mode"`
	DataDir     string        `long:"datadir" description:"The directory to store wifid's data within" default:"./data"`
	Listen      string        `long:"listen" description:"Add an ip:port to listen for API connections" default:":9000"`
	Radio       string        `long:"radio" description:"The radio driver to use" choice:"wpa" choice:"mock" default:"wpa"`
	Portal      string        `long:"portal" description:"The config portal to use" choice:"mock" choice:"none" default:"none"`
	UseStored   bool          `long:"usestored" description:"Attempt the platform-stored network before any registered one"`
	Timeout     time.Duration `long:"timeout" description:"Bound on a single connection attempt" default:"15s"`

	Wpa       *wpaConfig       `group:"wpa" namespace:"wpa"`
	Ap        *apConfig        `group:"ap" namespace:"ap"`
	Profiling *profilingConfig `group:"profiling" namespace:"profiling"`
}

// loadConfig parses command line options and merges them with the defaults.
func loadConfig() (*config, error) {
	cfg := &config{}

	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}

	return cfg, nil
}
