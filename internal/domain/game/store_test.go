package game

import (
	"sync"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(log.NewNopLogger())
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{149, 1},
		{150, 2},
		{299, 2},
		{300, 3},
		{1500, 11},
		{-10, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestStore_AddExperience(t *testing.T) {
	s := newTestStore()

	s.AddExperience(100)
	snap := s.Snapshot()
	assert.Equal(t, 100, snap.XP)
	assert.Equal(t, 1, snap.Level)

	s.AddExperience(60)
	snap = s.Snapshot()
	assert.Equal(t, 160, snap.XP)
	assert.Equal(t, 2, snap.Level)

	// Negative and zero amounts are ignored.
	s.AddExperience(-50)
	s.AddExperience(0)
	assert.Equal(t, 160, s.Snapshot().XP)
}

func TestStore_AddExperienceUnlocksSkills(t *testing.T) {
	s := newTestStore()

	snap := s.Snapshot()
	require.NotEmpty(t, snap.SkillTree)

	s.AddExperience(100)
	snap = s.Snapshot()
	for _, node := range snap.SkillTree {
		if node.XPRequired <= 100 {
			assert.True(t, node.Unlocked, "node %s", node.ID)
		}
	}

	// Nodes above the threshold stay locked.
	for _, node := range snap.SkillTree {
		if node.XPRequired > snap.XP {
			assert.False(t, node.Unlocked, "node %s", node.ID)
		}
	}
}

func TestStore_CompleteQuestIdempotent(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.CompleteQuest("quest_wallet_basics"))
	assert.False(t, s.CompleteQuest("quest_wallet_basics"))

	snap := s.Snapshot()
	assert.Equal(t, []string{"quest_wallet_basics"}, snap.QuestsCompleted)
}

func TestStore_CompleteQuestClearsCurrent(t *testing.T) {
	s := newTestStore()

	s.SetCurrentQuest("quest_wallet_basics")
	s.CompleteQuest("quest_wallet_basics")
	assert.Empty(t, s.Snapshot().CurrentQuest)

	s.SetCurrentQuest("quest_nft_explorer")
	s.CompleteQuest("quest_transaction_basics")
	assert.Equal(t, "quest_nft_explorer", s.Snapshot().CurrentQuest)
}

func TestStore_UnlockAchievementGrantsXPOnce(t *testing.T) {
	s := newTestStore()

	require.True(t, s.UnlockAchievement("wallet_connect"))
	snap := s.Snapshot()
	xpAfterFirst := snap.XP
	assert.Positive(t, xpAfterFirst)

	var unlocked Achievement
	for _, a := range snap.Achievements {
		if a.ID == "wallet_connect" {
			unlocked = a
		}
	}
	assert.True(t, unlocked.Unlocked)
	assert.NotZero(t, unlocked.UnlockedAt)
	assert.Equal(t, unlocked.XPReward, xpAfterFirst)

	// Second unlock is a no-op: no double XP.
	assert.False(t, s.UnlockAchievement("wallet_connect"))
	assert.Equal(t, xpAfterFirst, s.Snapshot().XP)
}

func TestStore_UnlockAchievementUnknownID(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.UnlockAchievement("no_such_achievement"))
	assert.Zero(t, s.Snapshot().XP)
}

func TestStore_Inventory(t *testing.T) {
	s := newTestStore()

	s.AddToInventory("number_crystal", "Number Crystal", "🔮", 1)
	s.AddToInventory("number_crystal", "Number Crystal", "🔮", 2)
	snap := s.Snapshot()
	require.Contains(t, snap.Inventory, "number_crystal")
	assert.Equal(t, 3, snap.Inventory["number_crystal"].Count)

	s.RemoveFromInventory("number_crystal", 2)
	assert.Equal(t, 1, s.Snapshot().Inventory["number_crystal"].Count)

	// Removing down to zero deletes the entry.
	s.RemoveFromInventory("number_crystal", 5)
	assert.NotContains(t, s.Snapshot().Inventory, "number_crystal")

	// Removing a missing item is a no-op.
	s.RemoveFromInventory("ghost_item", 1)

	// Non-positive counts are ignored.
	s.AddToInventory("skill_scroll", "Skill Scroll", "📜", 0)
	assert.NotContains(t, s.Snapshot().Inventory, "skill_scroll")
}

func TestStore_GasAccumulators(t *testing.T) {
	s := newTestStore()

	s.AddGasSpent(sdkmath.NewInt(21_000))
	s.AddGasSpent(sdkmath.NewInt(64_000))
	s.AddGasSaved(sdkmath.NewInt(15_000))

	snap := s.Snapshot()
	assert.Equal(t, sdkmath.NewInt(85_000), snap.TotalGasSpent)
	assert.Equal(t, sdkmath.NewInt(15_000), snap.TotalGasSaved)

	// Accumulators never decrease.
	s.AddGasSpent(sdkmath.NewInt(-100))
	s.AddGasSpent(sdkmath.ZeroInt())
	assert.Equal(t, sdkmath.NewInt(85_000), s.Snapshot().TotalGasSpent)
}

func TestStore_SnapshotIsDeepCopy(t *testing.T) {
	s := newTestStore()
	s.AddToInventory("number_crystal", "Number Crystal", "🔮", 1)
	s.CompleteQuest("quest_wallet_basics")

	snap := s.Snapshot()
	snap.QuestsCompleted[0] = "mutated"
	snap.Achievements[0].Unlocked = true
	delete(snap.Inventory, "number_crystal")

	fresh := s.Snapshot()
	assert.Equal(t, "quest_wallet_basics", fresh.QuestsCompleted[0])
	assert.False(t, fresh.Achievements[0].Unlocked)
	assert.Contains(t, fresh.Inventory, "number_crystal")
}

func TestStore_ConcurrentMutation(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddExperience(10)
			s.AddGasSpent(sdkmath.NewInt(100))
			s.TickPlaytime()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, 500, snap.XP)
	assert.Equal(t, sdkmath.NewInt(5_000), snap.TotalGasSpent)
	assert.Equal(t, int64(50), snap.Playtime)
}
