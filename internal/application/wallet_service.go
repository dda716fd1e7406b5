package application

import (
	"context"
	"math/big"

	"cosmossdk.io/log"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/contracterr"
)

// WalletService covers the wallet-level quest actions that do not target a
// specific contract: verifying the connection, signing a message, and
// checking the native balance.
type WalletService struct {
	deps   Deps
	logger log.Logger
}

// NewWalletService creates the wallet service.
func NewWalletService(deps Deps) *WalletService {
	return &WalletService{
		deps:   deps,
		logger: deps.Logger.With("service", "wallet"),
	}
}

// VerifyConnection checks that a signing account is available on the right
// network. On the first success it unlocks the connection achievement and
// completes the wallet basics quest.
func (w *WalletService) VerifyConnection(ctx context.Context) (chain.Address, error) {
	if w.deps.Wallet == nil || !w.deps.Wallet.Connected() {
		return "", contracterr.New(contracterr.KindWalletNotConnected,
			"Wallet not connected. Please configure your wallet first.")
	}
	addr, err := w.deps.Wallet.Account()
	if err != nil {
		return "", contracterr.Classify(err)
	}
	chainID, err := w.deps.Wallet.ChainID(ctx)
	if err != nil {
		return "", contracterr.Classify(err)
	}
	if err := w.deps.Chain.ValidateNetwork(chainID); err != nil {
		return "", contracterr.New(contracterr.KindWrongNetwork,
			"Wrong network. Please switch to %s (Chain ID: %d). Currently on chain %d.",
			w.deps.Chain.Name, w.deps.Chain.ChainID, chainID)
	}

	w.deps.Game.UnlockAchievement("wallet_connect")
	GrantQuest(w.deps.Game, "quest_wallet_basics")
	w.logger.Info("wallet verified", "address", addr.Short(), "chain_id", chainID)
	return addr, nil
}

// SignMessage signs an arbitrary message and unlocks the signing
// achievement on success.
func (w *WalletService) SignMessage(ctx context.Context, message string) ([]byte, error) {
	if w.deps.Wallet == nil || !w.deps.Wallet.Connected() {
		return nil, contracterr.New(contracterr.KindWalletNotConnected,
			"Wallet not connected. Please configure your wallet first.")
	}
	sig, err := w.deps.Wallet.SignMessage(ctx, []byte(message))
	if err != nil {
		return nil, contracterr.Classify(err)
	}
	w.deps.Game.UnlockAchievement("sign_message")
	return sig, nil
}

// Balance reads the native-token balance of the wallet account.
func (w *WalletService) Balance(ctx context.Context) (*big.Int, error) {
	if w.deps.Wallet == nil || !w.deps.Wallet.Connected() {
		return nil, contracterr.New(contracterr.KindWalletNotConnected,
			"Wallet not connected. Please configure your wallet first.")
	}
	addr, err := w.deps.Wallet.Account()
	if err != nil {
		return nil, contracterr.Classify(err)
	}
	balance, err := w.deps.Node.BalanceAt(ctx, addr)
	if err != nil {
		return nil, contracterr.Classify(err)
	}
	return balance, nil
}
