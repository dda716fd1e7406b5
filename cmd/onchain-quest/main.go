// Command onchain-quest is a gamified walkthrough of smart contract
// interactions on the Shardeum Mezame testnet. Every confirmed on-chain
// action awards experience, achievements, and inventory items.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/config"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/output"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/version"
)

const appName = "onchain-quest"

var (
	flagHome    string
	flagConfig  string
	flagRPCURL  string
	flagKeyFile string
	flagVerbose bool
	flagNoColor bool

	cfg *config.Config
	out = output.DefaultLogger
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		out.Error("%s", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Learn Web3 by doing — an on-chain quest game",
		Long: `Onchain Quest walks you through deploying-adjacent smart contract
interactions on a test network: storing data, earning skills, voting in a
DAO, and minting an NFT hero. Each confirmed transaction awards XP,
achievements, and inventory items.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&flagHome, "home", config.DefaultHome(), "Home directory for config files")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: <home>/config.toml)")
	root.PersistentFlags().StringVar(&flagRPCURL, "rpc-url", "", "Override the RPC endpoint")
	root.PersistentFlags().StringVar(&flagKeyFile, "key-file", "", "Path to a hex private key file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newStatusCommand(),
		newWalletCommand(),
		newQuestsCommand(),
		newLeaderboardCommand(),
		newAchievementsCommand(),
		newInventoryCommand(),
		newSkillsCommand(),
		newStorageCommand(),
		newGovernanceCommand(),
		newNFTCommand(),
		newPlayCommand(),
		version.NewCommand(appName),
	)
	return root
}

func loadConfig() error {
	path := flagConfig
	if path == "" {
		path = filepath.Join(flagHome, config.DefaultFileName)
	}

	fc, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg, err = config.Effective(fc)
	if err != nil {
		return err
	}

	// Flag overlays win over the file.
	if flagRPCURL != "" {
		cfg.Chain.RPCURL = flagRPCURL
	}
	if flagKeyFile != "" {
		cfg.KeyFile = flagKeyFile
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if flagNoColor {
		cfg.NoColor = true
	}

	out.SetVerbose(cfg.Verbose)
	out.SetNoColor(cfg.NoColor)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
