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
	// governanceFallbackGas is the conservative gas ceiling for governance
	// writes.
	governanceFallbackGas = 200_000

	// MaxProposalTitleLen bounds proposal titles.
	MaxProposalTitleLen = 500
)

// Proposal is a governance proposal with its vote tally.
type Proposal struct {
	Title string
	Votes *big.Int
}

// GovernanceService drives the on-chain governance contract: create
// proposals, vote, and read tallies and reputation.
type GovernanceService struct {
	base

	proposals  []Proposal
	reputation *big.Int
	hasVoted   bool
}

// NewGovernanceService creates the governance contract service.
func NewGovernanceService(deps Deps, address chain.Address) *GovernanceService {
	return &GovernanceService{base: newBase(deps, address, "governance")}
}

// CreateProposal submits a createProposal write. Titles must be non-empty
// and at most MaxProposalTitleLen characters; the check fails fast before
// any network call.
func (g *GovernanceService) CreateProposal(ctx context.Context, title string) error {
	g.resetState()

	if err := g.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		g.setError(ce)
		return ce
	}

	if strings.TrimSpace(title) == "" {
		ce := contracterr.New(contracterr.KindInvalidInput, "Proposal title cannot be empty.")
		g.setError(ce)
		return ce
	}
	if len(title) > MaxProposalTitleLen {
		ce := contracterr.New(contracterr.KindInvalidInput,
			"Proposal title too long (max %d characters).", MaxProposalTitleLen)
		g.setError(ce)
		return ce
	}

	call := ports.ContractCall{
		Address:     g.address,
		Contract:    "governance",
		Function:    "createProposal",
		Args:        []interface{}{title},
		FallbackGas: governanceFallbackGas,
	}

	return g.performWrite(ctx, call, g.refresh, func(receipt *ports.Receipt) {
		g.recordGas(receipt, governanceFallbackGas)
		g.firstWriteEffects()
		g.deps.Game.UnlockAchievement("create_proposal")
		g.deps.Game.AddToInventory("proposal_seal", "Proposal Seal", "🏛️", 1)
	})
}

// Vote submits a vote write for the given proposal index.
func (g *GovernanceService) Vote(ctx context.Context, proposalID uint64) error {
	g.resetState()

	if err := g.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		g.setError(ce)
		return ce
	}

	call := ports.ContractCall{
		Address:     g.address,
		Contract:    "governance",
		Function:    "vote",
		Args:        []interface{}{new(big.Int).SetUint64(proposalID)},
		FallbackGas: governanceFallbackGas,
	}

	return g.performWrite(ctx, call, g.refresh, func(receipt *ports.Receipt) {
		g.recordGas(receipt, governanceFallbackGas)
		g.firstWriteEffects()
		g.deps.Game.UnlockAchievement("cast_vote")
	})
}

// GetProposals reads the proposal list with vote tallies.
func (g *GovernanceService) GetProposals(ctx context.Context) ([]Proposal, error) {
	if err := g.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		g.setReadError(ce)
		return nil, ce
	}

	var proposals []Proposal
	if err := g.deps.Node.ReadContract(ctx, ports.ContractCall{
		Address:  g.address,
		Contract: "governance",
		Function: "getProposals",
	}, &proposals); err != nil {
		ce := contracterr.Classify(err)
		g.setReadError(ce)
		return nil, ce
	}

	g.mu.Lock()
	g.proposals = proposals
	g.mu.Unlock()
	return proposals, nil
}

// GetReputation reads the caller's reputation score.
func (g *GovernanceService) GetReputation(ctx context.Context) (*big.Int, error) {
	if err := g.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		g.setReadError(ce)
		return nil, ce
	}

	me := g.account()
	var rep *big.Int
	if err := g.deps.Node.ReadContract(ctx, ports.ContractCall{
		Address:  g.address,
		Contract: "governance",
		Function: "reputation",
		Args:     []interface{}{me.String()},
	}, &rep); err != nil {
		ce := contracterr.Classify(err)
		g.setReadError(ce)
		return nil, ce
	}

	g.mu.Lock()
	g.reputation = rep
	g.mu.Unlock()
	return rep, nil
}

// HasVoted reads whether the caller has already voted.
func (g *GovernanceService) HasVoted(ctx context.Context) (bool, error) {
	if err := g.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		g.setReadError(ce)
		return false, ce
	}

	me := g.account()
	var voted bool
	if err := g.deps.Node.ReadContract(ctx, ports.ContractCall{
		Address:  g.address,
		Contract: "governance",
		Function: "voted",
		Args:     []interface{}{me.String()},
	}, &voted); err != nil {
		ce := contracterr.Classify(err)
		g.setReadError(ce)
		return false, ce
	}

	g.mu.Lock()
	g.hasVoted = voted
	g.mu.Unlock()
	return voted, nil
}

// Proposals returns the last read proposal list.
func (g *GovernanceService) Proposals() []Proposal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Proposal(nil), g.proposals...)
}

// refresh re-reads proposals, reputation, and the voted flag, logging
// instead of propagating errors.
func (g *GovernanceService) refresh(ctx context.Context) {
	if _, err := g.GetProposals(ctx); err != nil {
		g.logger.Debug("proposal refresh failed", "err", err)
	}
	if _, err := g.GetReputation(ctx); err != nil {
		g.logger.Debug("reputation refresh failed", "err", err)
	}
	if _, err := g.HasVoted(ctx); err != nil {
		g.logger.Debug("voted refresh failed", "err", err)
	}
}

// WatchEvents subscribes the read refresh to Voted logs emitted by the
// current user and to all ProposalCreated logs (which carry no actor).
func (g *GovernanceService) WatchEvents() (func(), error) {
	unsubVoted, err := g.watch("governance", "Voted", g.refresh)
	if err != nil {
		return nil, err
	}
	unsubCreated, err := g.watch("governance", "ProposalCreated", g.refresh)
	if err != nil {
		unsubVoted()
		return nil, err
	}
	return func() {
		unsubVoted()
		unsubCreated()
	}, nil
}
