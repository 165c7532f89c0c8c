package coin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func buildBasicHeader(version, timestamp, bits, nonce uint32, prevByte, merkleByte byte) []byte {
	buf := make([]byte, 0, 80)
	buf = binary.LittleEndian.AppendUint32(buf, version)
	buf = append(buf, bytes.Repeat([]byte{prevByte}, 32)...)
	buf = append(buf, bytes.Repeat([]byte{merkleByte}, 32)...)
	buf = binary.LittleEndian.AppendUint32(buf, timestamp)
	buf = binary.LittleEndian.AppendUint32(buf, bits)
	buf = binary.LittleEndian.AppendUint32(buf, nonce)
	return buf
}

func buildSuffixHeader(sig []byte) []byte {
	buf := buildBasicHeader(3, 1506213600, 486604799, 8026361, 0xaa, 0xbb)
	buf = append(buf, bytes.Repeat([]byte{0xcc}, 32)...)
	buf = append(buf, bytes.Repeat([]byte{0xdd}, 32)...)
	buf = append(buf, bytes.Repeat([]byte{0xee}, 32)...)
	buf = binary.LittleEndian.AppendUint32(buf, 5)
	buf = append(buf, byte(len(sig)))
	return append(buf, sig...)
}

func TestProfile_ElectrumHeader_Static(t *testing.T) {
	header := buildBasicHeader(1, 1231006505, 0x1d00ffff, 2083236893, 0x00, 0x3b)

	got, err := BitcoinMainnet.ElectrumHeader(header, 0)
	if err != nil {
		t.Fatalf("ElectrumHeader() error = %v", err)
	}
	if got.BlockHeight != 0 {
		t.Fatalf("BlockHeight = %d, want 0", got.BlockHeight)
	}
	if got.Version != 1 {
		t.Fatalf("Version = %d, want 1", got.Version)
	}
	if got.PrevBlockHash != strings.Repeat("00", 32) {
		t.Fatalf("PrevBlockHash = %s", got.PrevBlockHash)
	}
	if got.MerkleRoot != strings.Repeat("3b", 32) {
		t.Fatalf("MerkleRoot = %s", got.MerkleRoot)
	}
	if got.Timestamp != 1231006505 {
		t.Fatalf("Timestamp = %d, want 1231006505", got.Timestamp)
	}
	if got.Bits != 0x1d00ffff {
		t.Fatalf("Bits = %#x, want 0x1d00ffff", got.Bits)
	}
	if got.Nonce != 2083236893 {
		t.Fatalf("Nonce = %d, want 2083236893", got.Nonce)
	}
	if got.Signature != "" || got.HashStateRoot != "" {
		t.Fatal("static header must not carry suffix fields")
	}

	if _, err := BitcoinMainnet.ElectrumHeader(header[:40], 0); !errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("ElectrumHeader() on short header error = %v, want ErrTruncatedHeader", err)
	}
}

func TestProfile_ElectrumHeader_SignatureSuffix(t *testing.T) {
	header := buildSuffixHeader([]byte{0xde, 0xad, 0xbe, 0xef})

	got, err := QtumMainnet.ElectrumHeader(header, 4000)
	if err != nil {
		t.Fatalf("ElectrumHeader() error = %v", err)
	}
	if got.BlockHeight != 4000 {
		t.Fatalf("BlockHeight = %d, want 4000", got.BlockHeight)
	}
	if got.Version != 3 {
		t.Fatalf("Version = %d, want 3", got.Version)
	}
	if got.PrevBlockHash != strings.Repeat("aa", 32) {
		t.Fatalf("PrevBlockHash = %s", got.PrevBlockHash)
	}
	if got.MerkleRoot != strings.Repeat("bb", 32) {
		t.Fatalf("MerkleRoot = %s", got.MerkleRoot)
	}
	if got.HashStateRoot != strings.Repeat("cc", 32) {
		t.Fatalf("HashStateRoot = %s", got.HashStateRoot)
	}
	if got.HashUTXORoot != strings.Repeat("dd", 32) {
		t.Fatalf("HashUTXORoot = %s", got.HashUTXORoot)
	}
	if got.HashPrevoutStake != strings.Repeat("ee", 32) {
		t.Fatalf("HashPrevoutStake = %s", got.HashPrevoutStake)
	}
	if got.HashPrevoutN != 5 {
		t.Fatalf("HashPrevoutN = %d, want 5", got.HashPrevoutN)
	}
	if got.Signature != "efbeadde" {
		t.Fatalf("Signature = %s, want efbeadde", got.Signature)
	}

	tests := []struct {
		name   string
		header []byte
	}{
		{name: "cut inside roots", header: header[:120]},
		{name: "missing prevout index", header: header[:176]},
		{name: "missing signature length", header: header[:180]},
		{name: "signature shorter than declared", header: header[:len(header)-2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := QtumMainnet.ElectrumHeader(tt.header, 4000); !errors.Is(err, ErrTruncatedHeader) {
				t.Fatalf("ElectrumHeader() error = %v, want ErrTruncatedHeader", err)
			}
		})
	}
}
