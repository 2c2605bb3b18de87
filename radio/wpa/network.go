package wpa

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
)

type Network struct {
	wpa *Wpa
	obj dbus.BusObject
}

func (n *Network) String() string {
	return string(n.obj.Path())
}

// Ssid returns the configured ssid of this network.
func (n *Network) Ssid() (string, error) {
	v, err := n.obj.GetProperty(service + ".Network.Properties")
	if err != nil {
		return "", errors.Errorf("could not get properties: %v", err)
	}

	props, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return "", errors.Errorf("could not convert properties: %v", v)
	}

	val, ok := props["ssid"]
	if !ok {
		return "", errors.Errorf("mandatory property ssid was missing")
	}

	ssid, ok := val.Value().(string)
	if !ok {
		return "", errors.Errorf("could not convert ssid to string: %v", val)
	}

	// wpa_supplicant reports the ssid in its quoted config format
	return strings.Trim(ssid, "\""), nil
}
