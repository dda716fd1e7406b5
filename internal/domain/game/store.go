package game

import (
	"context"
	"sync"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
)

// Store owns the game state. All mutation goes through its methods; readers
// get snapshot copies, so a partially applied mutation is never observable.
type Store struct {
	mu     sync.Mutex
	state  *State
	logger log.Logger
	now    func() time.Time
}

// NewStore creates a store with fresh initial state.
func NewStore(logger log.Logger) *Store {
	return &Store{
		state:  NewState(),
		logger: logger.With("component", "game"),
		now:    time.Now,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() State {
	cp := *s.state
	cp.QuestsCompleted = append([]string(nil), s.state.QuestsCompleted...)
	cp.Achievements = append([]Achievement(nil), s.state.Achievements...)
	cp.SkillTree = append([]SkillNode(nil), s.state.SkillTree...)
	cp.Leaderboard = append([]LeaderboardEntry(nil), s.state.Leaderboard...)
	cp.Inventory = make(map[string]InventoryItem, len(s.state.Inventory))
	for k, v := range s.state.Inventory {
		cp.Inventory[k] = v
	}
	return cp
}

// AddExperience adds experience and recomputes the level in the same
// operation. Negative amounts are ignored.
func (s *Store) AddExperience(amount int) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addExperienceLocked(amount)
}

func (s *Store) addExperienceLocked(amount int) {
	s.state.XP += amount
	s.state.Level = LevelForXP(s.state.XP)
	s.unlockEligibleSkillsLocked()
	s.logger.Debug("experience added", "amount", amount, "xp", s.state.XP, "level", s.state.Level)
}

// unlockEligibleSkillsLocked flips skill nodes whose XP threshold has been
// reached. Unlocks are monotonic; a node never re-locks.
func (s *Store) unlockEligibleSkillsLocked() {
	for i := range s.state.SkillTree {
		node := &s.state.SkillTree[i]
		if !node.Unlocked && s.state.XP >= node.XPRequired {
			node.Unlocked = true
			s.logger.Info("skill unlocked", "skill", node.ID)
		}
	}
}

// CompleteQuest appends the quest id to the completed set and reports
// whether the quest was newly completed. Idempotent: a second call with the
// same id is a no-op returning false. Clears the current quest if it
// matched.
func (s *Store) CompleteQuest(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.QuestCompleted(id) {
		return false
	}
	s.state.QuestsCompleted = append(s.state.QuestsCompleted, id)
	if s.state.CurrentQuest == id {
		s.state.CurrentQuest = ""
	}
	s.logger.Info("quest completed", "quest", id)
	return true
}

// SetCurrentQuest marks the active quest. At most one quest is active.
func (s *Store) SetCurrentQuest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentQuest = id
}

// UnlockAchievement flips the achievement's flag, stamps the unlock time,
// and grants its XP reward atomically. Granting happens at most once: a
// second call for an already-unlocked id is a no-op.
func (s *Store) UnlockAchievement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Achievements {
		a := &s.state.Achievements[i]
		if a.ID != id {
			continue
		}
		if a.Unlocked {
			return false
		}
		a.Unlocked = true
		a.UnlockedAt = s.now().Unix()
		s.addExperienceLocked(a.XPReward)
		s.logger.Info("achievement unlocked", "achievement", id, "xp_reward", a.XPReward)
		return true
	}
	return false
}

// AddToInventory inserts an item or increments the count of an existing one.
func (s *Store) AddToInventory(id, name, icon string, count int) {
	if count <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.state.Inventory[id]
	if ok {
		item.Count += count
	} else {
		item = InventoryItem{ID: id, Name: name, Icon: icon, Count: count}
	}
	s.state.Inventory[id] = item
}

// RemoveFromInventory decrements an item's count, deleting the entry when
// the count reaches zero. Counts never go negative.
func (s *Store) RemoveFromInventory(id string, count int) {
	if count <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.state.Inventory[id]
	if !ok {
		return
	}
	item.Count -= count
	if item.Count <= 0 {
		delete(s.state.Inventory, id)
		return
	}
	s.state.Inventory[id] = item
}

// UnlockSkill flips a skill's unlocked flag by id. Does not grant experience.
func (s *Store) UnlockSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.SkillTree {
		if s.state.SkillTree[i].ID == id {
			s.state.SkillTree[i].Unlocked = true
			return
		}
	}
}

// AddGasSpent accumulates gas used by confirmed transactions. The
// accumulator never decreases.
func (s *Store) AddGasSpent(amount sdkmath.Int) {
	if amount.IsNil() || !amount.IsPositive() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TotalGasSpent = s.state.TotalGasSpent.Add(amount)
}

// AddGasSaved accumulates gas saved against the estimate (e.g. when the
// actual usage came in below the estimated ceiling).
func (s *Store) AddGasSaved(amount sdkmath.Int) {
	if amount.IsNil() || !amount.IsPositive() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TotalGasSaved = s.state.TotalGasSaved.Add(amount)
}

// TickPlaytime adds one second of playtime.
func (s *Store) TickPlaytime() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Playtime++
}

// RunPlaytimeTicker increments playtime once per second until the context
// is cancelled.
func (s *Store) RunPlaytimeTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.TickPlaytime()
		}
	}
}
