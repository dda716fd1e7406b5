// Package game holds the in-memory game state aggregate and the store that
// owns all mutations of it.
package game

import (
	sdkmath "cosmossdk.io/math"
)

// XPPerLevel is the experience span of a single level.
// Level is derived as floor(xp / XPPerLevel) + 1.
const XPPerLevel = 150

// Achievement is a one-time unlockable milestone granting a fixed XP bonus.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	XPReward    int
	Unlocked    bool
	UnlockedAt  int64 // unix seconds, zero until unlocked
}

// InventoryItem is an owned item with a stack count.
type InventoryItem struct {
	ID          string
	Name        string
	Icon        string
	Count       int
	Description string
}

// SkillCategory groups skill tree nodes.
type SkillCategory string

const (
	SkillCategoryWallet   SkillCategory = "wallet"
	SkillCategoryContract SkillCategory = "contract"
	SkillCategoryDeFi     SkillCategory = "defi"
	SkillCategorySecurity SkillCategory = "security"
)

// SkillNode is a node in the skill tree, unlocked by accumulated experience.
type SkillNode struct {
	ID         string
	Name       string
	Icon       string
	XPRequired int
	Unlocked   bool
	Category   SkillCategory
}

// LeaderboardEntry is a read-only sample row. Demo data, not authoritative.
type LeaderboardEntry struct {
	Address      string
	XP           int
	Level        int
	Achievements int
}

// State is the process-wide game aggregate. It is owned by the Store and
// must only be mutated through the Store's operations.
type State struct {
	XP              int
	Level           int
	CurrentQuest    string
	QuestsCompleted []string
	Achievements    []Achievement
	Inventory       map[string]InventoryItem
	SkillTree       []SkillNode
	Leaderboard     []LeaderboardEntry
	TotalGasSpent   sdkmath.Int
	TotalGasSaved   sdkmath.Int
	Playtime        int64 // seconds
}

// LevelForXP derives the level from a total experience value.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// QuestCompleted reports whether the quest id is in the completed set.
func (s *State) QuestCompleted(id string) bool {
	for _, q := range s.QuestsCompleted {
		if q == id {
			return true
		}
	}
	return false
}

// UnlockedAchievements counts unlocked achievements.
func (s *State) UnlockedAchievements() int {
	n := 0
	for _, a := range s.Achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// UnlockedSkills counts unlocked skill nodes.
func (s *State) UnlockedSkills() int {
	n := 0
	for _, sk := range s.SkillTree {
		if sk.Unlocked {
			n++
		}
	}
	return n
}
