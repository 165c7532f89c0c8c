package coin

// Built-in chain profiles. Bitcoin shares its BIP32 version bytes with
// Qtum on both networks; Bitcoin is registered first so it wins
// extended-key lookups.
var (
	BitcoinMainnet = &Profile{
		Name:            "Bitcoin",
		Network:         "mainnet",
		GenesisHash:     "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
		ReorgLimit:      200,
		P2PKHVersion:    0x00,
		P2SHVersions:    []byte{0x05},
		WIFVersion:      0x80,
		XPubVersion:     [4]byte{0x04, 0x88, 0xb2, 0x1e},
		XPrvVersion:     [4]byte{0x04, 0x88, 0xad, 0xe4},
		BasicHeaderSize: 80,
		HeaderPolicy:    HeaderStatic,
		HashXPolicy:     HashXDefault,
		ChunkSize:       2016,
		ValuePerCoin:    100000000,
		DefaultMaxSend:  1000000,
		RPCPort:         8332,
		TxCount:         217380620,
		TxCountHeight:   464000,
		TxPerBlock:      1800,
		DaemonKind:      DaemonCore,
		SessionKind:     SessionElectrumX,
	}

	BitcoinTestnet = &Profile{
		Name:            "Bitcoin",
		Network:         "testnet",
		GenesisHash:     "000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943",
		ReorgLimit:      8000,
		P2PKHVersion:    0x6f,
		P2SHVersions:    []byte{0xc4},
		WIFVersion:      0xef,
		XPubVersion:     [4]byte{0x04, 0x35, 0x87, 0xcf},
		XPrvVersion:     [4]byte{0x04, 0x35, 0x83, 0x94},
		BasicHeaderSize: 80,
		HeaderPolicy:    HeaderStatic,
		HashXPolicy:     HashXDefault,
		ChunkSize:       2016,
		ValuePerCoin:    100000000,
		DefaultMaxSend:  1000000,
		RPCPort:         18332,
		TxCount:         12242438,
		TxCountHeight:   1035428,
		TxPerBlock:      21,
		DaemonKind:      DaemonCore,
		SessionKind:     SessionElectrumX,
	}

	QtumMainnet = &Profile{
		Name:            "Qtum",
		Network:         "mainnet",
		GenesisHash:     "000075aef83cf2853580f8ae8ce6f8c3096cfa21d98334d6e3f95e5582ed986c",
		ReorgLimit:      200,
		P2PKHVersion:    0x3a,
		P2SHVersions:    []byte{0x32},
		WIFVersion:      0x80,
		XPubVersion:     [4]byte{0x04, 0x88, 0xb2, 0x1e},
		XPrvVersion:     [4]byte{0x04, 0x88, 0xad, 0xe4},
		BasicHeaderSize: 180,
		HeaderPolicy:    HeaderSignatureSuffix,
		HashXPolicy:     HashXCollapseP2PK,
		ChunkSize:       1024,
		ValuePerCoin:    100000000,
		DefaultMaxSend:  9000000,
		RPCPort:         3889,
		TxCount:         217380620,
		TxCountHeight:   464000,
		TxPerBlock:      1800,
		DaemonKind:      DaemonQtum,
		SessionKind:     SessionElectrumX,
	}

	QtumTestnet = &Profile{
		Name:            "Qtum",
		Network:         "testnet",
		GenesisHash:     "0000e803ee215c0684ca0d2f9220594d3f828617972aad66feb2ba51f5e14222",
		ReorgLimit:      8000,
		P2PKHVersion:    0x3a,
		P2SHVersions:    []byte{0x32},
		WIFVersion:      0x80,
		XPubVersion:     [4]byte{0x04, 0x35, 0x87, 0xcf},
		XPrvVersion:     [4]byte{0x04, 0x35, 0x83, 0x94},
		BasicHeaderSize: 180,
		HeaderPolicy:    HeaderSignatureSuffix,
		HashXPolicy:     HashXCollapseP2PK,
		ChunkSize:       1024,
		ValuePerCoin:    100000000,
		DefaultMaxSend:  9000000,
		RPCPort:         13889,
		TxCount:         12242438,
		TxCountHeight:   1035428,
		TxPerBlock:      21,
		DaemonKind:      DaemonQtum,
		SessionKind:     SessionElectrumX,
	}
)

var defaultRegistry = func() *Registry {
	r, err := NewRegistry(
		BitcoinMainnet,
		BitcoinTestnet,
		QtumMainnet,
		QtumTestnet,
	)
	if err != nil {
		panic("coin: building default registry: " + err.Error())
	}
	return r
}()

// DefaultRegistry returns the registry of built-in coin profiles.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
