// Package coin models the per-chain constants and policy hooks that
// let a single indexing engine operate over structurally different
// blockchain variants. Profiles are built once at process start and
// are read-only afterwards, so everything here is safe for concurrent
// use without locking.
package coin

// HeaderPolicy selects how a chain's block header is sliced out of a
// raw block.
type HeaderPolicy int

const (
	// HeaderStatic marks chains whose headers all occupy
	// BasicHeaderSize bytes, enabling O(1) offset arithmetic into a
	// flat headers file.
	HeaderStatic HeaderPolicy = iota

	// HeaderSignatureSuffix marks chains whose header is a fixed
	// prefix followed by a varint-prefixed block signature, so header
	// length is data dependent.
	HeaderSignatureSuffix
)

// HashXPolicy selects the chain's script normalization applied before
// deriving an index key.
type HashXPolicy int

const (
	// HashXDefault hashes the script as is.
	HashXDefault HashXPolicy = iota

	// HashXCollapseP2PK rewrites standard pay-to-pubkey scripts to the
	// equivalent pay-to-pubkey-hash script first, so both forms of an
	// output collapse to one index key.
	HashXCollapseP2PK
)

// Daemon and session kinds associate a profile with the transport and
// protocol implementations that live outside this package.
const (
	DaemonCore = "core"
	DaemonQtum = "qtum"

	SessionElectrumX = "electrumx"
)

// Profile bundles the constants and policies of one supported chain
// variant. Values are registered once and must not be mutated.
type Profile struct {
	Name    string
	Network string

	// GenesisHash is the display-order hex hash of block 0.
	GenesisHash string
	// ReorgLimit is the maximum reorganization depth the surrounding
	// engine must tolerate on this chain.
	ReorgLimit int

	P2PKHVersion byte
	P2SHVersions []byte
	WIFVersion   byte
	XPubVersion  [4]byte
	XPrvVersion  [4]byte

	// BasicHeaderSize is the full header size for static chains and
	// the fixed prefix size for signature-suffixed chains.
	BasicHeaderSize int
	HeaderPolicy    HeaderPolicy
	HashXPolicy     HashXPolicy

	ChunkSize      int
	ValuePerCoin   int64
	DefaultMaxSend int
	RPCPort        int

	// Sync-estimation hints, only used for initial sync ETAs: at
	// TxCountHeight the chain had seen TxCount transactions, and from
	// there on we guess TxPerBlock per block. All three are mandatory.
	TxCount       uint64
	TxCountHeight uint64
	TxPerBlock    int

	DaemonKind  string
	SessionKind string

	// Deserializer reads the transaction section of raw blocks. Nil
	// selects the standard wire format.
	Deserializer Deserializer
}

// StaticHeaders reports whether all headers on this chain have the
// same size.
func (p *Profile) StaticHeaders() bool {
	return p.HeaderPolicy == HeaderStatic
}

// MaxFetchBlocks returns how many blocks the sync engine should
// request at once around the given height.
func (p *Profile) MaxFetchBlocks(height uint64) int {
	if height < 130000 {
		return 1000
	}
	return 100
}

// CoinValue returns the number of whole coins for a quantity of the
// chain's smallest units.
func (p *Profile) CoinValue(units int64) float64 {
	return float64(units) / float64(p.ValuePerCoin)
}

func (p *Profile) missingSyncHints() []string {
	var missing []string
	if p.TxCount == 0 {
		missing = append(missing, "TxCount")
	}
	if p.TxCountHeight == 0 {
		missing = append(missing, "TxCountHeight")
	}
	if p.TxPerBlock == 0 {
		missing = append(missing, "TxPerBlock")
	}
	return missing
}
