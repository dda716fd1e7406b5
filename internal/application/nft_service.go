package application

import (
	"context"
	"math/big"
	"strings"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application/ports"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/contracterr"
)

const (
	// nftFallbackGas is the conservative gas ceiling for a hero mint.
	nftFallbackGas = 300_000

	// MaxMetadataURILen bounds NFT metadata URIs.
	MaxMetadataURILen = 2000
)

// NFTService drives the hero NFT contract: mint a hero and read balances.
type NFTService struct {
	base

	balance *big.Int
}

// NewNFTService creates the NFT contract service.
func NewNFTService(deps Deps, address chain.Address) *NFTService {
	return &NFTService{base: newBase(deps, address, "nft")}
}

// validateMintInputs fails fast with InvalidInput before any gas estimation
// or network call occurs.
func validateMintInputs(to, metadataURI string) error {
	if !chain.IsValidAddress(to) {
		return contracterr.New(contracterr.KindInvalidInput, "Invalid recipient address.")
	}
	if strings.TrimSpace(metadataURI) == "" {
		return contracterr.New(contracterr.KindInvalidInput, "Metadata URI cannot be empty.")
	}
	if len(metadataURI) > MaxMetadataURILen {
		return contracterr.New(contracterr.KindInvalidInput,
			"Metadata URI is too long (max %d characters).", MaxMetadataURILen)
	}
	if !strings.HasPrefix(metadataURI, "ipfs://") &&
		!strings.HasPrefix(metadataURI, "http://") &&
		!strings.HasPrefix(metadataURI, "https://") {
		return contracterr.New(contracterr.KindInvalidInput,
			"Metadata URI must start with ipfs://, http://, or https://.")
	}
	return nil
}

// MintHero submits a mintHero write for the recipient and metadata URI.
func (n *NFTService) MintHero(ctx context.Context, to, metadataURI string) error {
	n.resetState()

	if err := n.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		n.setError(ce)
		return ce
	}

	if err := validateMintInputs(to, metadataURI); err != nil {
		ce := contracterr.Classify(err)
		n.setError(ce)
		return ce
	}

	call := ports.ContractCall{
		Address:     n.address,
		Contract:    "nft",
		Function:    "mintHero",
		Args:        []interface{}{to, metadataURI},
		FallbackGas: nftFallbackGas,
	}

	return n.performWrite(ctx, call, n.refresh, func(receipt *ports.Receipt) {
		n.recordGas(receipt, nftFallbackGas)
		n.firstWriteEffects()
		n.deps.Game.UnlockAchievement("mint_nft")
		n.deps.Game.AddToInventory("hero_badge", "Hero Badge", "⚔️", 1)
		n.completeQuest("quest_nft_explorer")
	})
}

// GetBalance reads the caller's NFT balance.
func (n *NFTService) GetBalance(ctx context.Context) (*big.Int, error) {
	if err := n.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		n.setReadError(ce)
		return nil, ce
	}
	if err := n.refreshErr(ctx); err != nil {
		ce := contracterr.Classify(err)
		n.setReadError(ce)
		return nil, ce
	}
	return n.Balance(), nil
}

// Balance returns the last read balance, nil before any successful read.
func (n *NFTService) Balance() *big.Int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.balance == nil {
		return nil
	}
	return new(big.Int).Set(n.balance)
}

func (n *NFTService) refresh(ctx context.Context) {
	if err := n.refreshErr(ctx); err != nil {
		n.logger.Debug("read refresh failed", "err", err)
	}
}

func (n *NFTService) refreshErr(ctx context.Context) error {
	me := n.account()
	if me == "" {
		return contracterr.New(contracterr.KindWalletNotConnected, "Wallet account not available.")
	}

	var balance *big.Int
	if err := n.deps.Node.ReadContract(ctx, ports.ContractCall{
		Address:  n.address,
		Contract: "nft",
		Function: "balanceOf",
		Args:     []interface{}{me.String()},
	}, &balance); err != nil {
		return err
	}

	n.mu.Lock()
	n.balance = balance
	n.mu.Unlock()
	return nil
}
