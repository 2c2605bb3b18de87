package radio

import (
	"github.com/go-errors/errors"
	"github.com/wifiland/wifid/radio/wpa"
)

// check WpaRadio compliance to the Radio interface during compile time
var _ Radio = (*WpaRadio)(nil)

type WpaRadioConfig struct {
	Interface string
}

// WpaRadio drives a wireless interface through wpa_supplicant's D-Bus API.
type WpaRadio struct {
	wpa    *wpa.Wpa
	iface  *wpa.Interface
	ifname string
}

func NewWpaRadio(config *WpaRadioConfig) (*WpaRadio, error) {
	w := wpa.New()

	if err := w.Start(); err != nil {
		return nil, errors.Errorf("could not start wpa: %v", err)
	}

	iface, err := w.GetInterface(config.Interface)
	if err != nil {
		_ = w.Stop()
		return nil, errors.Errorf("could not find interface %v: %v", config.Interface, err)
	}

	return &WpaRadio{
		wpa:    w,
		iface:  iface,
		ifname: config.Interface,
	}, nil
}

func (r *WpaRadio) Status() Status {
	state, err := r.iface.State()
	if err != nil {
		return StatusIdle
	}

	// wpa_supplicant exposes no hard failure state through the state
	// property alone; a rejected attempt settles on "disconnected" and is
	// caught by the connect-wait timeout.
	if state == "completed" {
		return StatusConnected
	}

	return StatusIdle
}

func (r *WpaRadio) Connect(ssid string, psk string) error {
	if err := r.iface.RemoveAllNetworks(); err != nil {
		return errors.Errorf("could not remove networks: %v", err)
	}

	net, err := r.iface.AddNetwork(ssid, psk)
	if err != nil {
		return errors.Errorf("could not add network: %v", err)
	}

	if err := r.iface.SelectNetwork(net); err != nil {
		return errors.Errorf("could not select network: %v", err)
	}

	return nil
}

func (r *WpaRadio) ConnectStored() error {
	if err := r.iface.Reconnect(); err != nil {
		return errors.Errorf("could not reconnect: %v", err)
	}

	return nil
}

func (r *WpaRadio) Disconnect() error {
	if err := r.iface.Disconnect(); err != nil {
		return errors.Errorf("could not disconnect: %v", err)
	}

	return nil
}

func (r *WpaRadio) StoredSsid() string {
	networks, err := r.iface.Networks()
	if err != nil || len(networks) == 0 {
		return ""
	}

	ssid, err := networks[0].Ssid()
	if err != nil {
		return ""
	}

	return ssid
}

// Close releases the bus connection.
func (r *WpaRadio) Close() error {
	return r.wpa.Stop()
}
