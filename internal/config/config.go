// Package config loads and validates the quest CLI configuration from a
// TOML file with flag overlays.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
)

// DefaultFileName is the config file name inside the home directory.
const DefaultFileName = "config.toml"

// ContractsConfig holds the deployed contract addresses.
type ContractsConfig struct {
	Storage    *string `toml:"storage"`
	Skills     *string `toml:"skills"`
	Governance *string `toml:"governance"`
	NFT        *string `toml:"nft"`
}

// FileConfig represents the raw config.toml file contents.
// All fields are pointers to distinguish "not set" from "set to zero/false".
type FileConfig struct {
	RPCURL       *string `toml:"rpc_url"`
	ChainID      *uint64 `toml:"chain_id"`
	ExplorerURL  *string `toml:"explorer_url"`
	KeyFile      *string `toml:"key_file"`
	NoColor      *bool   `toml:"no_color"`
	Verbose      *bool   `toml:"verbose"`
	PollInterval *string `toml:"poll_interval"`

	Contracts ContractsConfig `toml:"contracts"`
}

// Config is the effective, validated configuration.
type Config struct {
	Chain        chain.Params
	KeyFile      string
	NoColor      bool
	Verbose      bool
	PollInterval time.Duration

	StorageAddress    chain.Address
	SkillsAddress     chain.Address
	GovernanceAddress chain.Address
	NFTAddress        chain.Address
}

// DefaultHome returns the default home directory for config files.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".onchain-quest"
	}
	return filepath.Join(home, ".onchain-quest")
}

// Load reads a FileConfig from path. A missing file yields an empty config,
// not an error.
func Load(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := toml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &fc, nil
}

// Effective resolves the file config against defaults. Flag overlays are
// applied by the CLI after this step.
func Effective(fc *FileConfig) (*Config, error) {
	cfg := &Config{
		Chain:        chain.ShardeumMezame,
		PollInterval: 5 * time.Second,
	}

	if fc.RPCURL != nil {
		cfg.Chain.RPCURL = *fc.RPCURL
	}
	if fc.ChainID != nil {
		cfg.Chain.ChainID = *fc.ChainID
	}
	if fc.ExplorerURL != nil {
		cfg.Chain.ExplorerBase = *fc.ExplorerURL
	}
	if fc.KeyFile != nil {
		cfg.KeyFile = *fc.KeyFile
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.PollInterval != nil {
		d, err := time.ParseDuration(*fc.PollInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid poll_interval: %w", err)
		}
		cfg.PollInterval = d
	}

	var err error
	if cfg.StorageAddress, err = parseAddr(fc.Contracts.Storage, "contracts.storage"); err != nil {
		return nil, err
	}
	if cfg.SkillsAddress, err = parseAddr(fc.Contracts.Skills, "contracts.skills"); err != nil {
		return nil, err
	}
	if cfg.GovernanceAddress, err = parseAddr(fc.Contracts.Governance, "contracts.governance"); err != nil {
		return nil, err
	}
	if cfg.NFTAddress, err = parseAddr(fc.Contracts.NFT, "contracts.nft"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseAddr(s *string, field string) (chain.Address, error) {
	if s == nil || *s == "" {
		return "", nil
	}
	addr, err := chain.ParseAddress(*s)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", field, err)
	}
	return addr, nil
}

// Validate checks that the effective config can drive the application.
func (c *Config) Validate() error {
	if c.Chain.RPCURL == "" {
		return fmt.Errorf("rpc_url is required")
	}
	if c.Chain.ChainID == 0 {
		return fmt.Errorf("chain_id is required")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	return nil
}
