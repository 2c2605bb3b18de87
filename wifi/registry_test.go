package wifi

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRegistryAddAndLookup(t *testing.T) {
	c := qt.New(t)

	r := NewRegistry()
	ssids := []string{"alpha", "beta", "gamma"}

	for _, ssid := range ssids {
		c.Assert(r.Add(ssid, "secret"), qt.IsTrue)
	}

	c.Assert(r.Count(), qt.Equals, len(ssids))

	for i, ssid := range ssids {
		c.Assert(r.Lookup(ssid), qt.Equals, i)
	}

	c.Assert(r.Lookup("delta"), qt.Equals, IndexDisconnected)
	c.Assert(r.Has("beta"), qt.IsTrue)
	c.Assert(r.Has("delta"), qt.IsFalse)
}

func TestRegistryReAdd(t *testing.T) {
	c := qt.New(t)

	r := NewRegistry()
	c.Assert(r.Add("alpha", "secret"), qt.IsTrue)
	c.Assert(r.Add("beta", "hunter2"), qt.IsTrue)

	// re-adding never fails and never grows the registry
	c.Assert(r.Add("alpha", "changed"), qt.IsTrue)
	c.Assert(r.Count(), qt.Equals, 2)

	network, ok := r.At(0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(network.Ssid, qt.Equals, "alpha")
	c.Assert(network.Psk, qt.Equals, "secret")
}

func TestRegistryCapacity(t *testing.T) {
	c := qt.New(t)

	r := NewRegistry()

	for i := 0; i < MaxKnownNetworks; i++ {
		c.Assert(r.Add(fmt.Sprintf("net-%d", i), "secret"), qt.IsTrue)
	}

	c.Assert(r.Add("overflow", "secret"), qt.IsFalse)
	c.Assert(r.Count(), qt.Equals, MaxKnownNetworks)
	c.Assert(r.Has("overflow"), qt.IsFalse)

	// re-adding a known network still succeeds when full
	c.Assert(r.Add("net-0", "secret"), qt.IsTrue)
	c.Assert(r.Count(), qt.Equals, MaxKnownNetworks)
}

func TestRegistryStoredEntry(t *testing.T) {
	c := qt.New(t)

	r := NewRegistry()
	c.Assert(r.AddStored(), qt.IsTrue)
	c.Assert(r.AddStored(), qt.IsTrue)
	c.Assert(r.Count(), qt.Equals, 1)

	network, ok := r.At(0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(network.UseStored, qt.IsTrue)

	// the stored entry never matches a lookup, not even for an empty ssid
	c.Assert(r.Lookup(""), qt.Equals, IndexDisconnected)

	c.Assert(r.Add("", "open"), qt.IsTrue)
	c.Assert(r.Count(), qt.Equals, 2)
	c.Assert(r.Lookup(""), qt.Equals, 1)
}

func TestRegistryAt(t *testing.T) {
	c := qt.New(t)

	r := NewRegistry()
	r.Add("alpha", "secret")

	_, ok := r.At(-1)
	c.Assert(ok, qt.IsFalse)

	_, ok = r.At(1)
	c.Assert(ok, qt.IsFalse)

	network, ok := r.At(0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(network.Ssid, qt.Equals, "alpha")
}
