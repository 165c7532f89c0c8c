package coin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/chainprofile7000/pkg/cursor"
	"github.com/goodnatureofminers/chainprofile7000/pkg/safe"
)

// basicPrefixSize is the size of the header prefix shared by every
// supported chain: version, prev hash, merkle root, timestamp, bits
// and nonce.
const basicPrefixSize = 80

// ElectrumHeader is the structured view of a block header served to
// electrum clients. Suffix fields are only populated for chains whose
// headers carry them.
type ElectrumHeader struct {
	BlockHeight   uint64 `json:"block_height"`
	Version       uint32 `json:"version"`
	PrevBlockHash string `json:"prev_block_hash"`
	MerkleRoot    string `json:"merkle_root"`
	Timestamp     uint32 `json:"timestamp"`
	Bits          uint32 `json:"bits"`
	Nonce         uint32 `json:"nonce"`

	HashStateRoot    string `json:"hash_state_root,omitempty"`
	HashUTXORoot     string `json:"hash_utxo_root,omitempty"`
	HashPrevoutStake string `json:"hash_prevout_stake,omitempty"`
	HashPrevoutN     uint32 `json:"hash_prevout_n,omitempty"`
	Signature        string `json:"sig,omitempty"`
}

// headerDecoders dispatches field extraction per chain policy. Offsets
// beyond the shared prefix are chain specific.
var headerDecoders = map[HeaderPolicy]func(header []byte, height uint64) (*ElectrumHeader, error){
	HeaderStatic:          decodeBasicHeader,
	HeaderSignatureSuffix: decodeSignatureSuffixHeader,
}

// ElectrumHeader decodes a header previously sliced by BlockHeader
// into its structured fields.
func (p *Profile) ElectrumHeader(header []byte, height uint64) (*ElectrumHeader, error) {
	decoder, ok := headerDecoders[p.HeaderPolicy]
	if !ok {
		return nil, fmt.Errorf("coin %s/%s: unknown header policy %d", p.Name, p.Network, p.HeaderPolicy)
	}
	return decoder(header, height)
}

func decodeBasicHeader(header []byte, height uint64) (*ElectrumHeader, error) {
	c := cursor.New(header, 0)
	h := &ElectrumHeader{BlockHeight: height}

	var err error
	if h.Version, err = c.Uint32(); err != nil {
		return nil, fmt.Errorf("%w: version: %v", ErrTruncatedHeader, err)
	}
	prev, err := c.Bytes(chainhash.HashSize)
	if err != nil {
		return nil, fmt.Errorf("%w: prev block hash: %v", ErrTruncatedHeader, err)
	}
	h.PrevBlockHash = hashToHex(prev)
	merkle, err := c.Bytes(chainhash.HashSize)
	if err != nil {
		return nil, fmt.Errorf("%w: merkle root: %v", ErrTruncatedHeader, err)
	}
	h.MerkleRoot = hashToHex(merkle)
	if h.Timestamp, err = c.Uint32(); err != nil {
		return nil, fmt.Errorf("%w: timestamp: %v", ErrTruncatedHeader, err)
	}
	if h.Bits, err = c.Uint32(); err != nil {
		return nil, fmt.Errorf("%w: bits: %v", ErrTruncatedHeader, err)
	}
	if h.Nonce, err = c.Uint32(); err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", ErrTruncatedHeader, err)
	}
	return h, nil
}

func decodeSignatureSuffixHeader(header []byte, height uint64) (*ElectrumHeader, error) {
	h, err := decodeBasicHeader(header, height)
	if err != nil {
		return nil, err
	}

	c := cursor.New(header, basicPrefixSize)
	stateRoot, err := c.Bytes(chainhash.HashSize)
	if err != nil {
		return nil, fmt.Errorf("%w: state root: %v", ErrTruncatedHeader, err)
	}
	h.HashStateRoot = hashToHex(stateRoot)
	utxoRoot, err := c.Bytes(chainhash.HashSize)
	if err != nil {
		return nil, fmt.Errorf("%w: utxo root: %v", ErrTruncatedHeader, err)
	}
	h.HashUTXORoot = hashToHex(utxoRoot)
	prevoutStake, err := c.Bytes(chainhash.HashSize)
	if err != nil {
		return nil, fmt.Errorf("%w: prevout stake: %v", ErrTruncatedHeader, err)
	}
	h.HashPrevoutStake = hashToHex(prevoutStake)
	if h.HashPrevoutN, err = c.Uint32(); err != nil {
		return nil, fmt.Errorf("%w: prevout index: %v", ErrTruncatedHeader, err)
	}

	sigLen, err := c.VarInt()
	if err != nil {
		return nil, fmt.Errorf("%w: signature length: %v", ErrTruncatedHeader, err)
	}
	n, err := safe.Int(sigLen)
	if err != nil {
		return nil, fmt.Errorf("%w: signature length %d", ErrTruncatedHeader, sigLen)
	}
	sig, err := c.Bytes(n)
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %v", ErrTruncatedHeader, err)
	}
	h.Signature = hashToHex(sig)
	return h, nil
}

// hashToHex renders chain bytes in display order, which is the reverse
// of the serialized order.
func hashToHex(b []byte) string {
	reversed := make([]byte, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}
	return hex.EncodeToString(reversed)
}
