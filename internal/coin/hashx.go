package coin

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/chainprofile7000/pkg/workerpool"
)

// HashXLen is the truncated digest length used as the index key for
// address and history lookups.
const HashXLen = 11

// HashYLen is the truncated digest length used as the index key for
// contract event log lookups.
const HashYLen = 11

// hashXNormalizers dispatches script normalization per chain policy. A
// nil entry means the script is hashed as is.
var hashXNormalizers = map[HashXPolicy]func(script []byte) []byte{
	HashXDefault:      nil,
	HashXCollapseP2PK: collapseP2PK,
}

// HashXFromScript derives the index key for an output script. A nil
// return means the output is provably unspendable and must not be
// indexed; it is distinct from any valid key, including the zero key.
func (p *Profile) HashXFromScript(script []byte) []byte {
	if len(script) > 0 && script[0] == txscript.OP_RETURN {
		return nil
	}
	if normalize := hashXNormalizers[p.HashXPolicy]; normalize != nil {
		script = normalize(script)
	}
	return chainhash.HashB(script)[:HashXLen]
}

// AddressToHashX derives the index key for a base58 address.
func (p *Profile) AddressToHashX(address string) ([]byte, error) {
	script, err := p.PayToAddressScript(address)
	if err != nil {
		return nil, err
	}
	return p.HashXFromScript(script), nil
}

// Hash160ToP2PKHHashX derives the index key for the pay-to-pubkey-hash
// script of a 20-byte key hash.
func (p *Profile) Hash160ToP2PKHHashX(hash160 []byte) ([]byte, error) {
	script, err := Hash160ToP2PKHScript(hash160)
	if err != nil {
		return nil, err
	}
	return p.HashXFromScript(script), nil
}

// Hash160ContractToHashY derives the event log index key for an
// address hash and contract address pair. Both arrive as hex strings
// from clients and are hashed in that text form.
func (p *Profile) Hash160ContractToHashY(hash160, contractAddr string) []byte {
	return chainhash.HashB([]byte(hash160 + contractAddr))[:HashYLen]
}

// HashXBatch derives index keys for many scripts concurrently,
// preserving input order. Unindexable scripts produce nil entries.
func (p *Profile) HashXBatch(ctx context.Context, scripts [][]byte, workers int) ([][]byte, error) {
	return workerpool.Map(ctx, workers, scripts, func(_ context.Context, script []byte) ([]byte, error) {
		return p.HashXFromScript(script), nil
	})
}

// collapseP2PK rewrites a standard pay-to-pubkey script, compressed or
// uncompressed, to the pay-to-pubkey-hash script of the same key. Both
// output forms then index under one key, which downstream balance and
// history queries rely on.
func collapseP2PK(script []byte) []byte {
	if !isP2PK(script) {
		return script
	}
	pubKey := script[1 : len(script)-1]
	rewritten, err := Hash160ToP2PKHScript(btcutil.Hash160(pubKey))
	if err != nil {
		return script
	}
	return rewritten
}

func isP2PK(script []byte) bool {
	n := len(script)
	if n == 0 || script[n-1] != txscript.OP_CHECKSIG {
		return false
	}
	switch {
	case n == 35 && script[0] == txscript.OP_DATA_33:
		return script[1] == 0x02 || script[1] == 0x03
	case n == 67 && script[0] == txscript.OP_DATA_65:
		return script[1] == 0x04 || script[1] == 0x06 || script[1] == 0x07
	}
	return false
}
