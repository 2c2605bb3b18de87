package wpa

import (
	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
)

type Interface struct {
	wpa *Wpa
	obj dbus.BusObject
}

// State returns wpa_supplicant's interface state string, for example
// "completed", "scanning" or "disconnected".
func (i *Interface) State() (string, error) {
	v, err := i.obj.GetProperty(service + ".Interface.State")
	if err != nil {
		return "", errors.Errorf("could not get state: %v", err)
	}

	state, ok := v.Value().(string)
	if !ok {
		return "", errors.Errorf("could not convert state: %v", v)
	}

	return state, nil
}

func (i *Interface) AddNetwork(ssid string, psk string) (*Network, error) {
	args := map[string]interface{}{}

	if psk != "" {
		args["ssid"] = ssid
		args["psk"] = psk
	} else {
		args["ssid"] = ssid
		args["key_mgmt"] = "NONE"
	}

	call := i.obj.Call(service+".Interface.AddNetwork", 0, args)
	if call.Err != nil {
		return nil, errors.Errorf("could not add network: %v", call.Err)
	}

	var objPath dbus.ObjectPath
	if err := call.Store(&objPath); err != nil {
		return nil, errors.Errorf("could not store value: %v", err)
	}

	return &Network{
		wpa: i.wpa,
		obj: i.wpa.conn.Object(service, objPath),
	}, nil
}

// SelectNetwork makes the given network the only enabled one and starts
// associating with it.
func (i *Interface) SelectNetwork(net *Network) error {
	call := i.obj.Call(service+".Interface.SelectNetwork", 0, net.obj.Path())
	if call.Err != nil {
		return errors.Errorf("could not select network: %v", call.Err)
	}

	return nil
}

// Reconnect re-associates using whatever networks wpa_supplicant already
// has configured.
func (i *Interface) Reconnect() error {
	call := i.obj.Call(service+".Interface.Reconnect", 0)
	if call.Err != nil {
		return errors.Errorf("could not reconnect: %v", call.Err)
	}

	return nil
}

func (i *Interface) Disconnect() error {
	call := i.obj.Call(service+".Interface.Disconnect", 0)
	if call.Err != nil {
		return errors.Errorf("could not disconnect: %v", call.Err)
	}

	return nil
}

func (i *Interface) RemoveAllNetworks() error {
	call := i.obj.Call(service+".Interface.RemoveAllNetworks", 0)
	if call.Err != nil {
		return errors.Errorf("could not remove all networks: %v", call.Err)
	}

	return nil
}

// Networks returns the networks wpa_supplicant has configured for this
// interface.
func (i *Interface) Networks() ([]*Network, error) {
	v, err := i.obj.GetProperty(service + ".Interface.Networks")
	if err != nil {
		return nil, errors.Errorf("could not get networks: %v", err)
	}

	objectPaths, ok := v.Value().([]dbus.ObjectPath)
	if !ok {
		return nil, errors.Errorf("could not convert result: %v", v)
	}

	var networks []*Network

	for _, objectPath := range objectPaths {
		networks = append(networks, &Network{
			wpa: i.wpa,
			obj: i.wpa.conn.Object(service, objectPath),
		})
	}

	return networks, nil
}
