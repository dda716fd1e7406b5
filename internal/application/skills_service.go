package application

import (
	"context"
	"math/big"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application/ports"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/contracterr"
)

const (
	// skillsFallbackGas is the conservative gas ceiling for skills writes.
	skillsFallbackGas = 100_000

	// Skill points per earnSkill call must fall in [1, MaxSkillPoints].
	MaxSkillPoints = 1000
)

// SkillsService drives the on-chain skills contract: earn skill points and
// read the accumulated total.
type SkillsService struct {
	base

	mySkills *big.Int
}

// NewSkillsService creates the skills contract service.
func NewSkillsService(deps Deps, address chain.Address) *SkillsService {
	return &SkillsService{base: newBase(deps, address, "skills")}
}

// EarnSkill submits an earnSkill write for the given number of points.
func (s *SkillsService) EarnSkill(ctx context.Context, points string) error {
	s.resetState()

	if err := s.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		s.setError(ce)
		return ce
	}

	pts, ok := new(big.Int).SetString(points, 10)
	if !ok || pts.Sign() < 1 || pts.Cmp(big.NewInt(MaxSkillPoints)) > 0 {
		ce := contracterr.New(contracterr.KindInvalidInput,
			"Skill points must be between 1 and %d.", MaxSkillPoints)
		s.setError(ce)
		return ce
	}

	call := ports.ContractCall{
		Address:     s.address,
		Contract:    "skills",
		Function:    "earnSkill",
		Args:        []interface{}{pts},
		FallbackGas: skillsFallbackGas,
	}

	return s.performWrite(ctx, call, s.refresh, func(receipt *ports.Receipt) {
		s.recordGas(receipt, skillsFallbackGas)
		s.firstWriteEffects()
		s.deps.Game.UnlockAchievement("earn_skill")
		s.deps.Game.AddToInventory("skill_scroll", "Skill Scroll", "📜", 1)
	})
}

// ResetSkills submits an owner-only resetSkills write for a player address.
func (s *SkillsService) ResetSkills(ctx context.Context, player string) error {
	s.resetState()

	if err := s.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		s.setError(ce)
		return ce
	}

	addr, err := chain.ParseAddress(player)
	if err != nil {
		ce := contracterr.New(contracterr.KindInvalidInput, "Invalid player address.")
		s.setError(ce)
		return ce
	}

	call := ports.ContractCall{
		Address:     s.address,
		Contract:    "skills",
		Function:    "resetSkills",
		Args:        []interface{}{addr.String()},
		FallbackGas: skillsFallbackGas,
	}

	return s.performWrite(ctx, call, s.refresh, func(receipt *ports.Receipt) {
		s.recordGas(receipt, skillsFallbackGas)
	})
}

// GetMySkills reads the caller's accumulated skill points.
func (s *SkillsService) GetMySkills(ctx context.Context) (*big.Int, error) {
	if err := s.validateSetup(ctx); err != nil {
		ce := contracterr.Classify(err)
		s.setReadError(ce)
		return nil, ce
	}
	if err := s.refreshErr(ctx); err != nil {
		ce := contracterr.Classify(err)
		s.setReadError(ce)
		return nil, ce
	}
	return s.MySkills(), nil
}

// MySkills returns the last read total, nil before any successful read.
func (s *SkillsService) MySkills() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mySkills == nil {
		return nil
	}
	return new(big.Int).Set(s.mySkills)
}

func (s *SkillsService) refresh(ctx context.Context) {
	if err := s.refreshErr(ctx); err != nil {
		s.logger.Debug("read refresh failed", "err", err)
	}
}

func (s *SkillsService) refreshErr(ctx context.Context) error {
	me := s.account()
	if me == "" {
		return contracterr.New(contracterr.KindWalletNotConnected, "Wallet account not available.")
	}

	var total *big.Int
	if err := s.deps.Node.ReadContract(ctx, ports.ContractCall{
		Address:  s.address,
		Contract: "skills",
		Function: "skillPoints",
		Args:     []interface{}{me.String()},
	}, &total); err != nil {
		return err
	}

	s.mu.Lock()
	s.mySkills = total
	s.mu.Unlock()
	return nil
}

// WatchEvents subscribes the read refresh to SkillEarned logs emitted by
// the current user.
func (s *SkillsService) WatchEvents() (func(), error) {
	return s.watch("skills", "SkillEarned", s.refresh)
}
