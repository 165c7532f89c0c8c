package coin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// Block is a raw block with its header sliced out and its transaction
// section deserialized. The raw bytes are borrowed from the caller.
type Block struct {
	Raw          []byte
	Header       []byte
	Transactions []IndexedTx
}

// IndexedTx pairs a deserialized transaction with the exact raw bytes
// it was read from.
type IndexedTx struct {
	Tx  *wire.MsgTx
	Raw []byte
}

// Deserializer reads the transaction section of a raw block, starting
// immediately after the header. Implementations for chains with
// non-standard transaction formats live outside this package.
type Deserializer interface {
	ReadTxBlock(raw []byte, start int) ([]IndexedTx, error)
}

// WireDeserializer decodes the standard Bitcoin wire transaction
// format shared by every built-in chain.
type WireDeserializer struct{}

// ReadTxBlock implements Deserializer.
func (WireDeserializer) ReadTxBlock(raw []byte, start int) ([]IndexedTx, error) {
	if start > len(raw) {
		return nil, fmt.Errorf("tx section starts at %d, block is %d bytes", start, len(raw))
	}
	section := raw[start:]
	r := bytes.NewReader(section)
	count, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("tx count: %w", err)
	}

	txs := make([]IndexedTx, 0, count)
	for i := uint64(0); i < count; i++ {
		begin := len(section) - r.Len()
		tx := &wire.MsgTx{}
		if err := tx.Deserialize(r); err != nil {
			return nil, fmt.Errorf("tx %d: %w", i, err)
		}
		end := len(section) - r.Len()
		txs = append(txs, IndexedTx{Tx: tx, Raw: section[begin:end]})
	}
	return txs, nil
}

// Block splits a raw block into its header and transactions using the
// profile's header policy and deserializer.
func (p *Profile) Block(raw []byte, height uint64) (*Block, error) {
	header, err := p.BlockHeader(raw, height)
	if err != nil {
		return nil, err
	}
	deserializer := p.Deserializer
	if deserializer == nil {
		deserializer = WireDeserializer{}
	}
	txs, err := deserializer.ReadTxBlock(raw, len(header))
	if err != nil {
		return nil, fmt.Errorf("block at height %d: %w", height, err)
	}
	return &Block{Raw: raw, Header: header, Transactions: txs}, nil
}
