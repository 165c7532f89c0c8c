package coin

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// GenesisBlock verifies that the height-0 block belongs to this chain.
// On success it returns the header with a zero transaction count
// appended: the genesis coinbase output is unspendable, so callers
// must never index it. A mismatch means the wrong profile was selected
// for the connected daemon and the process must not proceed.
func (p *Profile) GenesisBlock(raw []byte) ([]byte, error) {
	header, err := p.BlockHeader(raw, 0)
	if err != nil {
		return nil, err
	}
	var h chainhash.Hash
	copy(h[:], p.HeaderHash(header))
	if found := h.String(); found != p.GenesisHash {
		return nil, &GenesisMismatchError{Found: found, Expected: p.GenesisHash}
	}

	out := make([]byte, len(header)+1)
	copy(out, header)
	return out, nil
}
