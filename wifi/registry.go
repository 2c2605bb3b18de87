package wifi

const (
	// MaxKnownNetworks is the hard bound on the registry size.
	MaxKnownNetworks = 16

	// IndexDisconnected marks the absence of an active connection.
	IndexDisconnected = -1

	initialRegistryCapacity = 2
)

// KnownNetwork is a registered network eligible for automatic connection
// attempts. An entry with UseStored set carries no credentials of its own
// and instructs the connection attempt to reuse whatever the platform has
// already persisted.
type KnownNetwork struct {
	Ssid      string
	Psk       string
	UseStored bool
}

// Registry holds the ordered list of known networks. Insertion order is the
// connection attempt order. A single owning goroutine must perform all
// registry operations.
type Registry struct {
	networks []KnownNetwork
}

func NewRegistry() *Registry {
	return &Registry{
		networks: make([]KnownNetwork, 0, initialRegistryCapacity),
	}
}

// Add appends a network with explicit credentials. Re-adding a known ssid
// reports success without mutating the registry. Returns false, without
// mutating, once MaxKnownNetworks is reached.
func (r *Registry) Add(ssid string, psk string) bool {
	if r.Has(ssid) {
		return true
	}

	return r.append(KnownNetwork{Ssid: ssid, Psk: psk})
}

// AddStored appends the entry that reuses platform-stored credentials. The
// entry is only meaningful in first position; the manager seeds it at
// construction before anything else is registered.
func (r *Registry) AddStored() bool {
	for _, network := range r.networks {
		if network.UseStored {
			return true
		}
	}

	return r.append(KnownNetwork{UseStored: true})
}

func (r *Registry) append(network KnownNetwork) bool {
	if len(r.networks) >= MaxKnownNetworks {
		return false
	}

	r.networks = append(r.networks, network)

	return true
}

// Count returns the number of known networks.
func (r *Registry) Count() int {
	return len(r.networks)
}

// Lookup returns the index of the first entry with the given ssid, or
// IndexDisconnected. Entries tagged UseStored never match, so a network
// with a legitimately empty ssid cannot collide with the stored entry.
func (r *Registry) Lookup(ssid string) int {
	for i, network := range r.networks {
		if !network.UseStored && network.Ssid == ssid {
			return i
		}
	}

	return IndexDisconnected
}

// Has reports whether the given ssid is registered.
func (r *Registry) Has(ssid string) bool {
	return r.Lookup(ssid) != IndexDisconnected
}

// At returns the entry at index i.
func (r *Registry) At(i int) (KnownNetwork, bool) {
	if i < 0 || i >= len(r.networks) {
		return KnownNetwork{}, false
	}

	return r.networks[i], true
}

// Networks returns a copy of all entries in attempt order.
func (r *Registry) Networks() []KnownNetwork {
	networks := make([]KnownNetwork, len(r.networks))
	copy(networks, r.networks)

	return networks
}
