// Package config loads indexer configuration from flags and the
// environment and maps it onto a registered coin profile.
package config

import (
	"fmt"

	"github.com/goodnatureofminers/chainprofile7000/internal/coin"
)

// Config selects the chain the process operates on.
type Config struct {
	Coin      string `long:"coin" env:"CHAINPROFILE_COIN" description:"coin name" default:"Bitcoin"`
	Network   string `long:"network" env:"CHAINPROFILE_NETWORK" description:"network name" default:"mainnet"`
	DaemonURL string `long:"daemon-url" env:"CHAINPROFILE_DAEMON_URL" description:"daemon RPC URL as user:pass@host[:port]"`
}

// Resolve maps the configuration onto a registered coin profile and,
// when a daemon URL is set, its sanitized form. Failures here are
// fatal to process start.
func (c Config) Resolve(registry *coin.Registry) (*coin.Profile, string, error) {
	profile, err := registry.Lookup(c.Coin, c.Network)
	if err != nil {
		return nil, "", fmt.Errorf("resolve coin profile: %w", err)
	}
	if c.DaemonURL == "" {
		return profile, "", nil
	}
	daemonURL, err := profile.SanitizeRPCURL(c.DaemonURL)
	if err != nil {
		return nil, "", err
	}
	return profile, daemonURL, nil
}
