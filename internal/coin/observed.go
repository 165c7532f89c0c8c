package coin

import (
	"time"
)

// CodecMetrics records codec operation outcomes.
type CodecMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// Observed wraps a Profile so every codec operation is measured.
type Observed struct {
	profile *Profile
	metrics CodecMetrics
}

// NewObserved constructs an instrumented codec for a profile.
func NewObserved(profile *Profile, metrics CodecMetrics) *Observed {
	return &Observed{
		profile: profile,
		metrics: metrics,
	}
}

// Profile returns the wrapped profile.
func (o *Observed) Profile() *Profile {
	return o.profile
}

// Block splits a raw block into header and transactions.
func (o *Observed) Block(raw []byte, height uint64) (b *Block, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("block", err, started)
	}()
	return o.profile.Block(raw, height)
}

// BlockHeader slices the header out of a raw block.
func (o *Observed) BlockHeader(raw []byte, height uint64) (header []byte, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("block_header", err, started)
	}()
	return o.profile.BlockHeader(raw, height)
}

// GenesisBlock validates the height-0 block against the profile.
func (o *Observed) GenesisBlock(raw []byte) (header []byte, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("genesis_block", err, started)
	}()
	return o.profile.GenesisBlock(raw)
}

// AddressToHashX derives the index key for a base58 address.
func (o *Observed) AddressToHashX(address string) (hashX []byte, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("address_to_hashx", err, started)
	}()
	return o.profile.AddressToHashX(address)
}

// HashXFromScript derives the index key for an output script.
func (o *Observed) HashXFromScript(script []byte) []byte {
	started := time.Now()
	defer func() {
		o.metrics.Observe("hashx_from_script", nil, started)
	}()
	return o.profile.HashXFromScript(script)
}

// SanitizeRPCURL normalizes a daemon URL.
func (o *Observed) SanitizeRPCURL(rawURL string) (u string, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("sanitize_rpc_url", err, started)
	}()
	return o.profile.SanitizeRPCURL(rawURL)
}
