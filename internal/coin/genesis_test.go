package coin

import (
	"bytes"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

func serializeBlock(t *testing.T, block *wire.MsgBlock) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProfile_GenesisBlock(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		block   *wire.MsgBlock
	}{
		{name: "bitcoin mainnet", profile: BitcoinMainnet, block: chaincfg.MainNetParams.GenesisBlock},
		{name: "bitcoin testnet", profile: BitcoinTestnet, block: chaincfg.TestNet3Params.GenesisBlock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := serializeBlock(t, tt.block)

			header, err := tt.profile.GenesisBlock(raw)
			if err != nil {
				t.Fatalf("GenesisBlock() error = %v", err)
			}
			if len(header) != tt.profile.BasicHeaderSize+1 {
				t.Fatalf("GenesisBlock() returned %d bytes, want %d", len(header), tt.profile.BasicHeaderSize+1)
			}
			if header[len(header)-1] != 0 {
				t.Fatal("GenesisBlock() must append a zero transaction count")
			}
			if !bytes.Equal(header[:len(header)-1], raw[:tt.profile.BasicHeaderSize]) {
				t.Fatal("GenesisBlock() header does not match the block prefix")
			}

			again, err := tt.profile.GenesisBlock(raw)
			if err != nil {
				t.Fatalf("GenesisBlock() second call error = %v", err)
			}
			if !bytes.Equal(header, again) {
				t.Fatal("GenesisBlock() is not deterministic")
			}
		})
	}
}

func TestProfile_GenesisBlock_Mismatch(t *testing.T) {
	raw := serializeBlock(t, chaincfg.TestNet3Params.GenesisBlock)

	_, err := BitcoinMainnet.GenesisBlock(raw)
	var mismatch *GenesisMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("GenesisBlock() error = %v, want GenesisMismatchError", err)
	}
	if mismatch.Expected != BitcoinMainnet.GenesisHash {
		t.Fatalf("Expected = %s, want %s", mismatch.Expected, BitcoinMainnet.GenesisHash)
	}
	if mismatch.Found != chaincfg.TestNet3Params.GenesisHash.String() {
		t.Fatalf("Found = %s, want %s", mismatch.Found, chaincfg.TestNet3Params.GenesisHash.String())
	}
}

func TestProfile_GenesisBlock_Truncated(t *testing.T) {
	raw := serializeBlock(t, chaincfg.MainNetParams.GenesisBlock)

	if _, err := BitcoinMainnet.GenesisBlock(raw[:50]); !errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("GenesisBlock() error = %v, want ErrTruncatedHeader", err)
	}
}
