package coin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/chainprofile7000/pkg/cursor"
	"github.com/goodnatureofminers/chainprofile7000/pkg/safe"
)

// prevHashOffset is where the previous-block hash starts; the prefix
// layout is shared by every supported header variant.
const prevHashOffset = 4

// headerSlicers dispatches header extraction per chain policy.
var headerSlicers = map[HeaderPolicy]func(p *Profile, block []byte, height uint64) ([]byte, error){
	HeaderStatic:          sliceStaticHeader,
	HeaderSignatureSuffix: sliceSignatureSuffixHeader,
}

// HeaderHash returns the hash of a serialized header: double SHA-256
// over the full header bytes for both fixed and variable variants.
func (p *Profile) HeaderHash(header []byte) []byte {
	return chainhash.DoubleHashB(header)
}

// HeaderPrevHash returns the previous-block hash stored in a header.
func (p *Profile) HeaderPrevHash(header []byte) ([]byte, error) {
	if len(header) < prevHashOffset+chainhash.HashSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(header))
	}
	return header[prevHashOffset : prevHashOffset+chainhash.HashSize], nil
}

// StaticHeaderOffset returns the offset of the header at the given
// height within a flat headers file. Only meaningful for chains with
// static headers.
func (p *Profile) StaticHeaderOffset(height uint64) uint64 {
	return height * uint64(p.BasicHeaderSize)
}

// StaticHeaderLen returns the stored length of the header at the given
// height for chains with static headers.
func (p *Profile) StaticHeaderLen(uint64) int {
	return p.BasicHeaderSize
}

// BlockHeader slices the header out of a raw block.
func (p *Profile) BlockHeader(block []byte, height uint64) ([]byte, error) {
	slicer, ok := headerSlicers[p.HeaderPolicy]
	if !ok {
		return nil, fmt.Errorf("coin %s/%s: unknown header policy %d", p.Name, p.Network, p.HeaderPolicy)
	}
	return slicer(p, block, height)
}

func sliceStaticHeader(p *Profile, block []byte, _ uint64) ([]byte, error) {
	if len(block) < p.BasicHeaderSize {
		return nil, fmt.Errorf("%w: block is %d bytes, header needs %d",
			ErrTruncatedHeader, len(block), p.BasicHeaderSize)
	}
	return block[:p.BasicHeaderSize], nil
}

// sliceSignatureSuffixHeader handles chains whose header is a fixed
// prefix followed by a varint length and a block signature. Header
// length is data dependent here, so callers that store headers must
// record per-header lengths instead of assuming uniform spacing.
func sliceSignatureSuffixHeader(p *Profile, block []byte, _ uint64) ([]byte, error) {
	if len(block) < p.BasicHeaderSize {
		return nil, fmt.Errorf("%w: block is %d bytes, header prefix needs %d",
			ErrTruncatedHeader, len(block), p.BasicHeaderSize)
	}
	c := cursor.New(block, p.BasicHeaderSize)
	sigLen, err := c.VarInt()
	if err != nil {
		return nil, fmt.Errorf("%w: signature length: %v", ErrTruncatedHeader, err)
	}
	n, err := safe.Int(sigLen)
	if err != nil {
		return nil, fmt.Errorf("%w: signature length %d", ErrTruncatedHeader, sigLen)
	}
	if n > c.Remaining() {
		return nil, fmt.Errorf("%w: signature declares %d bytes, %d available",
			ErrTruncatedHeader, n, c.Remaining())
	}
	return block[:c.Pos()+n], nil
}
