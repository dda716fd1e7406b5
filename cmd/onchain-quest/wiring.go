package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cosmossdk.io/log"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/infrastructure/evm"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/txqueue"
)

// App bundles the wired application for the CLI commands. The transaction
// queue and game store are process-wide singletons shared by every service.
type App struct {
	Logger  log.Logger
	Game    *game.Store
	Queue   *txqueue.Queue
	Node    *evm.Client
	Wallet  *evm.Wallet
	Watcher *evm.Watcher

	WalletSvc  *application.WalletService
	Storage    *application.StorageService
	Skills     *application.SkillsService
	Governance *application.GovernanceService
	NFT        *application.NFTService

	cancel context.CancelFunc
}

// buildApp connects to the node, loads the wallet key, and wires the
// services. Background loops (event watcher, playtime ticker) run until
// Close is called.
func buildApp(ctx context.Context) (*App, error) {
	var logWriter io.Writer = os.Stderr
	if !cfg.Verbose {
		logWriter = io.Discard
	}
	logger := log.NewLogger(logWriter)

	node := evm.NewClient(cfg.Chain.RPCURL)
	if err := node.Connect(ctx); err != nil {
		return nil, err
	}

	var wallet *evm.Wallet
	if cfg.KeyFile != "" {
		var err error
		wallet, err = evm.NewWalletFromFile(cfg.KeyFile, cfg.Chain.ChainID, node.EthClient(), logger)
		if err != nil {
			node.Close()
			return nil, fmt.Errorf("failed to load wallet: %w", err)
		}
	}

	watcher := evm.NewWatcher(node.EthClient(), cfg.PollInterval, logger)
	store := game.NewStore(logger)
	queue := txqueue.New(logger)

	deps := application.Deps{
		Wallet:  wallet,
		Node:    node,
		Watcher: watcher,
		Queue:   queue,
		Game:    store,
		Chain:   cfg.Chain,
		Logger:  logger,
	}

	bgCtx, cancel := context.WithCancel(ctx)
	go watcher.Run(bgCtx)
	go store.RunPlaytimeTicker(bgCtx)

	return &App{
		Logger:     logger,
		Game:       store,
		Queue:      queue,
		Node:       node,
		Wallet:     wallet,
		Watcher:    watcher,
		WalletSvc:  application.NewWalletService(deps),
		Storage:    application.NewStorageService(deps, cfg.StorageAddress),
		Skills:     application.NewSkillsService(deps, cfg.SkillsAddress),
		Governance: application.NewGovernanceService(deps, cfg.GovernanceAddress),
		NFT:        application.NewNFTService(deps, cfg.NFTAddress),
		cancel:     cancel,
	}, nil
}

// Close stops background loops and releases the node connection.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.Node != nil {
		a.Node.Close()
	}
}
