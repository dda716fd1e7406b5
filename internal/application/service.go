// Package application contains the per-contract interaction services. Each
// service composes validation, the serialized transaction queue,
// confirmation polling, read refresh, and game-state side effects into a
// single write pipeline.
package application

import (
	"context"
	"sync"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application/ports"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/contracterr"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/quest"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/txqueue"
)

// ReceiptTimeout is how long a write waits for its confirmation receipt.
const ReceiptTimeout = 60 * time.Second

// Deps is the shared dependency set injected into every service.
type Deps struct {
	Wallet  ports.WalletClient
	Node    ports.NodeClient
	Watcher ports.EventWatcher
	Queue   *txqueue.Queue
	Game    *game.Store
	Chain   chain.Params
	Logger  log.Logger
}

// CallState is the ephemeral per-service call state. It is reset at the
// start of every new write.
type CallState struct {
	Loading    bool
	Success    bool
	Error      *contracterr.ContractError
	TxHash     string
	TxURL      string
	IsRetrying bool
}

// base carries the pipeline shared by all contract services.
type base struct {
	deps    Deps
	address chain.Address
	logger  log.Logger

	mu    sync.Mutex
	state CallState
}

func newBase(deps Deps, address chain.Address, surface string) base {
	return base{
		deps:    deps,
		address: address,
		logger:  deps.Logger.With("service", surface),
	}
}

// State returns a copy of the current call state.
func (b *base) State() CallState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// resetState clears the ephemeral state and marks the call loading. This
// happens synchronously before the first suspension point of a write.
func (b *base) resetState() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = CallState{Loading: true}
}

func (b *base) setError(err *contracterr.ContractError) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Loading = false
	b.state.Success = false
	b.state.IsRetrying = false
	b.state.Error = err
}

// setReadError records a read failure without disturbing the write state.
func (b *base) setReadError(err *contracterr.ContractError) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Error = err
}

func (b *base) setHash(hash string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.TxHash = hash
	b.state.TxURL = b.deps.Chain.TxURL(hash)
}

func (b *base) setSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Loading = false
	b.state.Success = true
	b.state.Error = nil
	b.state.IsRetrying = false
}

// validateSetup checks every write precondition eagerly and in a fixed
// order, so the first failing condition determines the reported error:
// wallet connected, account present, node present, chain id, contract
// address.
func (b *base) validateSetup(ctx context.Context) error {
	if b.deps.Wallet == nil || !b.deps.Wallet.Connected() {
		return contracterr.New(contracterr.KindWalletNotConnected,
			"Wallet not connected. Please configure your wallet first.")
	}
	if _, err := b.deps.Wallet.Account(); err != nil {
		return contracterr.New(contracterr.KindWalletNotConnected,
			"Wallet account not available.")
	}
	if b.deps.Node == nil {
		return contracterr.New(contracterr.KindWalletNotConnected,
			"Node client not initialized.")
	}
	chainID, err := b.deps.Wallet.ChainID(ctx)
	if err != nil {
		return contracterr.Classify(err)
	}
	if err := b.deps.Chain.ValidateNetwork(chainID); err != nil {
		return contracterr.New(contracterr.KindWrongNetwork,
			"Wrong network. Please switch to %s (Chain ID: %d). Currently on chain %d.",
			b.deps.Chain.Name, b.deps.Chain.ChainID, chainID)
	}
	if !chain.IsValidAddress(b.address.String()) {
		return contracterr.New(contracterr.KindInvalidInput, "Invalid contract address.")
	}
	return nil
}

// performWrite runs the full serialized write pipeline: enqueue the wallet
// write, record hash and explorer URL, wait for the receipt, and on success
// run the read refresh and game side effects exactly once. Validation is the
// caller's responsibility and must happen before the first suspension point.
func (b *base) performWrite(ctx context.Context, call ports.ContractCall,
	refresh func(context.Context), onSuccess func(*ports.Receipt)) error {

	hash, err := b.deps.Queue.Submit(ctx, func(ctx context.Context) (string, error) {
		b.mu.Lock()
		b.state.IsRetrying = false
		b.mu.Unlock()
		return b.deps.Wallet.WriteContract(ctx, call)
	})
	if err != nil {
		ce := contracterr.Classify(err)
		b.setError(ce)
		return ce
	}
	b.setHash(hash)

	receipt, err := b.deps.Node.WaitForReceipt(ctx, hash, ReceiptTimeout)
	if err != nil {
		ce := contracterr.Classify(err)
		b.setError(ce)
		return ce
	}
	if !receipt.Success {
		ce := contracterr.New(contracterr.KindTransactionReverted,
			"Transaction failed. Contract execution was reverted.")
		b.setError(ce)
		return ce
	}

	b.setSuccess()
	b.logger.Info("write confirmed", "hash", hash, "gas_used", receipt.GasUsed)

	if refresh != nil {
		refresh(ctx)
	}
	if onSuccess != nil {
		onSuccess(receipt)
	}
	return nil
}

// recordGas accumulates gas spent from the receipt and, when the actual
// usage came in under the surface's conservative ceiling, records the
// difference as gas saved.
func (b *base) recordGas(receipt *ports.Receipt, ceiling uint64) {
	b.deps.Game.AddGasSpent(sdkmath.NewIntFromUint64(receipt.GasUsed))
	if ceiling > receipt.GasUsed {
		b.deps.Game.AddGasSaved(sdkmath.NewIntFromUint64(ceiling - receipt.GasUsed))
	}
}

// GrantQuest marks a quest complete and grants its reward XP exactly once.
// Unknown ids and already-completed quests are no-ops. Unlocks the final
// achievement when the whole catalog is done.
func GrantQuest(store *game.Store, id string) {
	q, ok := quest.ByID(id)
	if !ok {
		return
	}
	if !store.CompleteQuest(id) {
		return
	}
	store.AddExperience(q.Reward.XP)

	snap := store.Snapshot()
	if len(snap.QuestsCompleted) == len(quest.Catalog()) {
		store.UnlockAchievement("all_quests")
	}
}

func (b *base) completeQuest(id string) {
	GrantQuest(b.deps.Game, id)
}

// firstWriteEffects unlocks the first-transaction milestones. Runs after
// every successful write; store-side idempotence makes repeats no-ops.
func (b *base) firstWriteEffects() {
	b.deps.Game.UnlockAchievement("send_tx")
	b.completeQuest("quest_transaction_basics")
}

// account returns the wallet account, empty when unavailable.
func (b *base) account() chain.Address {
	if b.deps.Wallet == nil {
		return ""
	}
	addr, err := b.deps.Wallet.Account()
	if err != nil {
		return ""
	}
	return addr
}

// watch subscribes a read-refresh to a contract event, filtered to logs
// whose actor is the current user. Returns a no-op unsubscribe when no
// watcher is configured.
func (b *base) watch(contract, event string, refresh func(context.Context)) (func(), error) {
	if b.deps.Watcher == nil {
		return func() {}, nil
	}
	me := b.account()
	return b.deps.Watcher.Subscribe(b.address, contract, event, func(lg ports.Log) {
		if me != "" && lg.Actor != "" && !lg.Actor.EqualFold(me) {
			return
		}
		refresh(context.Background())
	})
}
