// Package main implements an operational tool that resolves a coin
// profile and reports its constants, optionally validating a raw
// genesis block against it.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainprofile7000/internal/coin"
	"github.com/goodnatureofminers/chainprofile7000/internal/config"
	"github.com/goodnatureofminers/chainprofile7000/internal/metrics"
)

type inspectorConfig struct {
	config.Config
	GenesisHex string `long:"genesis-hex" env:"CHAINPROFILE_GENESIS_HEX" description:"hex-encoded raw genesis block to validate"`
}

func main() {
	cfg := inspectorConfig{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("profile inspector failed", zap.Error(err))
	}
}

func run(cfg inspectorConfig, logger *zap.Logger) error {
	profile, daemonURL, err := cfg.Resolve(coin.DefaultRegistry())
	if err != nil {
		return err
	}
	codec := coin.NewObserved(profile, metrics.NewCodec(profile.Name, profile.Network))

	logger.Info("resolved coin profile",
		zap.String("coin", profile.Name),
		zap.String("network", profile.Network),
		zap.String("genesis_hash", profile.GenesisHash),
		zap.Int("reorg_limit", profile.ReorgLimit),
		zap.Int("basic_header_size", profile.BasicHeaderSize),
		zap.Bool("static_headers", profile.StaticHeaders()),
		zap.Int("chunk_size", profile.ChunkSize),
		zap.Int("rpc_port", profile.RPCPort),
		zap.String("daemon_kind", profile.DaemonKind),
		zap.Uint64("tx_count", profile.TxCount),
		zap.Uint64("tx_count_height", profile.TxCountHeight),
		zap.Int("tx_per_block", profile.TxPerBlock),
	)
	if daemonURL != "" {
		logger.Info("daemon URL sanitized", zap.String("url", daemonURL))
	}

	if cfg.GenesisHex != "" {
		raw, err := hex.DecodeString(cfg.GenesisHex)
		if err != nil {
			return fmt.Errorf("decode genesis hex: %w", err)
		}
		header, err := codec.GenesisBlock(raw)
		if err != nil {
			return err
		}
		logger.Info("genesis block verified", zap.Int("header_bytes", len(header)-1))
	}
	return nil
}
