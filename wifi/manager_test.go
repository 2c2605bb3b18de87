package wifi

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/wifiland/wifid/portal"
	"github.com/wifiland/wifid/radio"
)

func newTestManager(r radio.Radio, p portal.Portal) *Manager {
	m := NewManager(&Config{
		Radio:        r,
		Portal:       p,
		PollInterval: time.Millisecond,
	})
	m.SetConnectTimeout(20 * time.Millisecond)

	return m
}

func TestStartupTriesNetworksInOrder(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	r.Outcomes["alpha"] = radio.OutcomeFail
	r.Outcomes["beta"] = radio.OutcomeSucceed

	m := newTestManager(r, portal.NewMock())
	c.Assert(m.AddKnownNetwork("alpha", "one"), qt.IsTrue)
	c.Assert(m.AddKnownNetwork("beta", "two"), qt.IsTrue)

	c.Assert(m.Startup(), qt.IsTrue)
	c.Assert(m.Connected(), qt.IsTrue)
	c.Assert(m.ConnectedIndex(), qt.Equals, 1)
	c.Assert(r.Attempts(), qt.DeepEquals, []string{"alpha", "beta"})

	state := m.State()
	c.Assert(state.Connected, qt.IsTrue)
	c.Assert(state.Ssid, qt.Equals, "beta")
}

func TestStartupWithoutNetworksOrFallback(t *testing.T) {
	c := qt.New(t)

	p := portal.NewMock()
	m := newTestManager(radio.NewMock(), p)

	c.Assert(m.Startup(), qt.IsFalse)
	c.Assert(m.Connected(), qt.IsFalse)
	c.Assert(p.Runs(), qt.Equals, 0)
}

func TestStartupPortalFallback(t *testing.T) {
	c := qt.New(t)

	p := portal.NewMock()
	p.Credentials = &portal.Credentials{Ssid: "X", Psk: "Y"}

	m := newTestManager(radio.NewMock(), p)
	c.Assert(m.ConfigureAccessPoint("wifid-setup", "letmein"), qt.IsTrue)

	c.Assert(m.Startup(), qt.IsTrue)
	c.Assert(m.Connected(), qt.IsTrue)
	c.Assert(p.ApSsid(), qt.Equals, "wifid-setup")

	// the provisioned network was learned
	c.Assert(m.Registry().Has("X"), qt.IsTrue)
	network, ok := m.ConnectedNetwork()
	c.Assert(ok, qt.IsTrue)
	c.Assert(network.Ssid, qt.Equals, "X")
	c.Assert(network.Psk, qt.Equals, "Y")
}

func TestStartupPortalFailure(t *testing.T) {
	c := qt.New(t)

	p := portal.NewMock()

	m := newTestManager(radio.NewMock(), p)
	c.Assert(m.ConfigureAccessPoint("wifid-setup", ""), qt.IsTrue)

	c.Assert(m.Startup(), qt.IsFalse)
	c.Assert(m.Connected(), qt.IsFalse)
	c.Assert(p.Runs(), qt.Equals, 1)
}

func TestStartupPortalLearnsNoDuplicate(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	p := portal.NewMock()
	p.Credentials = &portal.Credentials{Ssid: "X", Psk: "Y"}

	m := newTestManager(r, p)
	c.Assert(m.AddKnownNetwork("X", "Y"), qt.IsTrue)
	c.Assert(m.ConfigureAccessPoint("wifid-setup", ""), qt.IsTrue)

	// the direct attempt fails, the portal then connects to the same ssid
	c.Assert(m.Startup(), qt.IsTrue)
	c.Assert(m.Registry().Count(), qt.Equals, 1)
	c.Assert(m.ConnectedIndex(), qt.Equals, 0)
}

func TestConnectTimeoutDisconnectsOnce(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	r.Outcomes["alpha"] = radio.OutcomeHang

	m := newTestManager(r, portal.NewMock())
	c.Assert(m.AddKnownNetwork("alpha", "one"), qt.IsTrue)

	c.Assert(m.Startup(), qt.IsFalse)
	c.Assert(m.Connected(), qt.IsFalse)
	c.Assert(r.Disconnects(), qt.Equals, 1)
}

func TestConnectFailedSkipsDisconnect(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	r.Outcomes["alpha"] = radio.OutcomeFail

	m := newTestManager(r, portal.NewMock())
	c.Assert(m.AddKnownNetwork("alpha", "one"), qt.IsTrue)

	c.Assert(m.Startup(), qt.IsFalse)
	c.Assert(r.Disconnects(), qt.Equals, 0)
}

func TestStartupAlreadyConnected(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	r.SetStatus(radio.StatusConnected)

	m := newTestManager(r, portal.NewMock())

	c.Assert(m.Startup(), qt.IsTrue)
	c.Assert(m.Connected(), qt.IsTrue)
	c.Assert(m.ConnectedIndex(), qt.Equals, 0)
	c.Assert(r.Attempts(), qt.HasLen, 0)
}

func TestStartupStoredNetworkFirst(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	r.Stored = "home"
	r.Outcomes["home"] = radio.OutcomeSucceed

	m := NewManager(&Config{
		Radio:        r,
		Portal:       portal.NewMock(),
		UseStored:    true,
		PollInterval: time.Millisecond,
	})
	m.SetConnectTimeout(20 * time.Millisecond)

	c.Assert(m.Registry().Count(), qt.Equals, 1)

	c.Assert(m.Startup(), qt.IsTrue)
	c.Assert(m.ConnectedIndex(), qt.Equals, 0)
	c.Assert(r.StoredAttempts(), qt.Equals, 1)
	c.Assert(r.Attempts(), qt.HasLen, 0)
	c.Assert(m.State().Ssid, qt.Equals, "home")
}

func TestStartupStoredNetworkFallsThrough(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	r.Stored = "home"
	r.Outcomes["home"] = radio.OutcomeFail
	r.Outcomes["office"] = radio.OutcomeSucceed

	m := NewManager(&Config{
		Radio:        r,
		Portal:       portal.NewMock(),
		UseStored:    true,
		PollInterval: time.Millisecond,
	})
	m.SetConnectTimeout(20 * time.Millisecond)
	c.Assert(m.AddKnownNetwork("office", "secret"), qt.IsTrue)

	c.Assert(m.Startup(), qt.IsTrue)
	c.Assert(m.ConnectedIndex(), qt.Equals, 1)
	c.Assert(r.StoredAttempts(), qt.Equals, 1)
	c.Assert(r.Attempts(), qt.DeepEquals, []string{"office"})
}

func TestConfigureBackgroundWhileRunning(t *testing.T) {
	c := qt.New(t)

	m := newTestManager(radio.NewMock(), portal.NewMock())
	c.Assert(m.ConfigureBackground(false), qt.IsTrue)
	c.Assert(m.Background(), qt.IsFalse)

	m.Startup()

	c.Assert(m.ConfigureBackground(true), qt.IsFalse)
	c.Assert(m.Background(), qt.IsFalse)
}

func TestConfigureAccessPointWhilePortalActive(t *testing.T) {
	c := qt.New(t)

	p := portal.NewMock()
	p.Credentials = &portal.Credentials{Ssid: "X", Psk: "Y"}

	m := newTestManager(radio.NewMock(), p)
	c.Assert(m.ConfigureAccessPoint("wifid-setup", ""), qt.IsTrue)

	var reconfigured bool
	p.OnRun = func() {
		reconfigured = m.ConfigureAccessPoint("other", "")
	}

	c.Assert(m.Startup(), qt.IsTrue)
	c.Assert(reconfigured, qt.IsFalse)
}

func TestDisableAccessPoint(t *testing.T) {
	c := qt.New(t)

	p := portal.NewMock()
	m := newTestManager(radio.NewMock(), p)

	c.Assert(m.ConfigureAccessPoint("wifid-setup", ""), qt.IsTrue)
	c.Assert(m.DisableAccessPoint(), qt.IsTrue)

	// with the fallback disabled again, startup fails without running
	// the portal
	c.Assert(m.Startup(), qt.IsFalse)
	c.Assert(p.Runs(), qt.Equals, 0)
}

func TestSetConnectTimeout(t *testing.T) {
	c := qt.New(t)

	m := newTestManager(radio.NewMock(), portal.NewMock())
	c.Assert(m.SetConnectTimeout(time.Second), qt.IsTrue)
}

func TestAddKnownNetworkFull(t *testing.T) {
	c := qt.New(t)

	m := newTestManager(radio.NewMock(), portal.NewMock())

	for i := 0; i < MaxKnownNetworks; i++ {
		c.Assert(m.AddKnownNetwork(string(rune('a'+i)), "secret"), qt.IsTrue)
	}

	c.Assert(m.AddKnownNetwork("overflow", "secret"), qt.IsFalse)
	c.Assert(m.Registry().Count(), qt.Equals, MaxKnownNetworks)
}

func TestSubscribeState(t *testing.T) {
	c := qt.New(t)

	r := radio.NewMock()
	r.Outcomes["alpha"] = radio.OutcomeSucceed

	m := newTestManager(r, portal.NewMock())
	c.Assert(m.AddKnownNetwork("alpha", "one"), qt.IsTrue)

	client := m.SubscribeState()
	defer client.Cancel()

	c.Assert(m.Startup(), qt.IsTrue)

	select {
	case state := <-client.Updates:
		c.Assert(state.Connected, qt.IsTrue)
		c.Assert(state.Ssid, qt.Equals, "alpha")
	default:
		c.Fatal("expected a state update")
	}
}
