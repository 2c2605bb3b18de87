package wpa

import (
	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
)

const service = "fi.w1.wpa_supplicant1"

// Wpa is a client to the wpa_supplicant D-Bus API.
type Wpa struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

func New() *Wpa {
	return &Wpa{}
}

func (w *Wpa) Start() error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return errors.Errorf("could not connect to system bus: %v", err)
	}

	w.conn = conn
	w.obj = conn.Object(service, "/fi/w1/wpa_supplicant1")

	return nil
}

func (w *Wpa) Stop() error {
	if w.conn == nil {
		return nil
	}

	if err := w.conn.Close(); err != nil {
		return errors.Errorf("could not close bus connection: %v", err)
	}

	w.conn = nil

	return nil
}

func (w *Wpa) GetInterface(ifname string) (*Interface, error) {
	call := w.obj.Call(service+".GetInterface", 0, ifname)
	if call.Err != nil {
		return nil, errors.Errorf("could not get interface %v: %v", ifname, call.Err)
	}

	var objPath dbus.ObjectPath
	if err := call.Store(&objPath); err != nil {
		return nil, errors.Errorf("could not store value: %v", err)
	}

	return &Interface{
		wpa: w,
		obj: w.conn.Object(service, objPath),
	}, nil
}
