package coin

import (
	"bytes"
	"fmt"
	"strings"
)

type profileKey struct {
	name    string
	network string
}

// Registry resolves coin profiles by identity or by extended-key
// version bytes. It is built once at process start from an explicit,
// ordered profile list and is read-only afterwards, so lookups from
// concurrent workers need no synchronization.
type Registry struct {
	ordered []*Profile
	byKey   map[profileKey]*Profile
}

// NewRegistry builds a registry from profiles in the given order.
// Order matters: extended-key version byte lookups resolve to the
// earliest registered match, which lets specific chains take
// precedence over variants with colliding bytes.
func NewRegistry(profiles ...*Profile) (*Registry, error) {
	r := &Registry{byKey: make(map[profileKey]*Profile, len(profiles))}
	for _, p := range profiles {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		key := profileKey{name: strings.ToLower(p.Name), network: strings.ToLower(p.Network)}
		if _, ok := r.byKey[key]; ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateProfile, p.Name, p.Network)
		}
		r.byKey[key] = p
		r.ordered = append(r.ordered, p)
	}
	return r, nil
}

func validateProfile(p *Profile) error {
	if p.Name == "" || p.Network == "" {
		return fmt.Errorf("profile %q/%q: name and network are required", p.Name, p.Network)
	}
	if p.BasicHeaderSize <= 0 {
		return fmt.Errorf("coin %s/%s: basic header size must be positive", p.Name, p.Network)
	}
	if _, ok := headerSlicers[p.HeaderPolicy]; !ok {
		return fmt.Errorf("coin %s/%s: unknown header policy %d", p.Name, p.Network, p.HeaderPolicy)
	}
	if _, ok := hashXNormalizers[p.HashXPolicy]; !ok {
		return fmt.Errorf("coin %s/%s: unknown hashX policy %d", p.Name, p.Network, p.HashXPolicy)
	}
	return nil
}

// Lookup returns the profile for a coin name and network, matching
// both case-insensitively. Profiles missing any of the mandatory
// sync-estimation attributes fail with IncompleteProfileError.
func (r *Registry) Lookup(name, network string) (*Profile, error) {
	p, ok := r.byKey[profileKey{name: strings.ToLower(name), network: strings.ToLower(network)}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownCoin, name, network)
	}
	if missing := p.missingSyncHints(); len(missing) > 0 {
		return nil, &IncompleteProfileError{Name: p.Name, Network: p.Network, Missing: missing}
	}
	return p, nil
}

// LookupXVersion returns the first registered profile whose extended
// public or private key version bytes match, along with whether the
// match was the public variant. Registration order is the precedence
// rule for chains that share version bytes.
func (r *Registry) LookupXVersion(verBytes []byte) (bool, *Profile, error) {
	for _, p := range r.ordered {
		if bytes.Equal(verBytes, p.XPubVersion[:]) {
			return true, p, nil
		}
		if bytes.Equal(verBytes, p.XPrvVersion[:]) {
			return false, p, nil
		}
	}
	return false, nil, ErrUnrecognizedVersionBytes
}

// Profiles returns the registered profiles in registration order.
func (r *Registry) Profiles() []*Profile {
	out := make([]*Profile, len(r.ordered))
	copy(out, r.ordered)
	return out
}
