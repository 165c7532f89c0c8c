package coin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/txscript"
)

const hash160Size = 20

// Hash160ToP2PKHScript builds the standard pay-to-pubkey-hash output
// script for a 20-byte key hash.
func Hash160ToP2PKHScript(hash160 []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(hash160).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// Hash160ToP2SHScript builds the standard pay-to-script-hash output
// script for a 20-byte script hash.
func Hash160ToP2SHScript(hash160 []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(hash160).
		AddOp(txscript.OP_EQUAL).
		Script()
}

// PayToAddressScript returns the output script paying to a base58
// P2PKH or P2SH address of this chain.
func (p *Profile) PayToAddressScript(address string) ([]byte, error) {
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, address, err)
	}
	if len(payload) != hash160Size {
		return nil, fmt.Errorf("%w: %q: payload is %d bytes, want %d",
			ErrInvalidAddress, address, len(payload), hash160Size)
	}
	if version == p.P2PKHVersion {
		return Hash160ToP2PKHScript(payload)
	}
	for _, v := range p.P2SHVersions {
		if version == v {
			return Hash160ToP2SHScript(payload)
		}
	}
	return nil, fmt.Errorf("%w: %q: version byte %#02x", ErrInvalidAddress, address, version)
}

// PrivKeyWIF encodes a private key in wallet import format.
func (p *Profile) PrivKeyWIF(privKey []byte, compressed bool) string {
	payload := make([]byte, 0, len(privKey)+1)
	payload = append(payload, privKey...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58.CheckEncode(payload, p.WIFVersion)
}
