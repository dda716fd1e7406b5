package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/quest"
)

// xpBarWidth is the character width of the rendered XP progress bar.
const xpBarWidth = 30

// XPBar renders a progress bar showing experience within the current level.
func XPBar(xp, level int) string {
	base := (level - 1) * game.XPPerLevel
	into := xp - base
	if into < 0 {
		into = 0
	}
	filled := into * xpBarWidth / game.XPPerLevel
	if filled > xpBarWidth {
		filled = xpBarWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", xpBarWidth-filled)
	return fmt.Sprintf("Lv.%d [%s] %d/%d XP", level, bar, into, game.XPPerLevel)
}

// PrintStatus prints the player's overall progress.
func (l *Logger) PrintStatus(state game.State) {
	l.Bold("Onchain Quest — Player Status")
	l.Println("")
	l.Cyan("%s", XPBar(state.XP, state.Level))
	l.Println("Total XP:       %d", state.XP)
	l.Println("Quests done:    %d/%d", len(state.QuestsCompleted), len(quest.Catalog()))
	l.Println("Achievements:   %d/%d", state.UnlockedAchievements(), len(state.Achievements))
	l.Println("Skills:         %d/%d", state.UnlockedSkills(), len(state.SkillTree))
	l.Println("Gas spent:      %s", state.TotalGasSpent.String())
	l.Println("Gas saved:      %s", state.TotalGasSaved.String())
	l.Println("Playtime:       %ds", state.Playtime)
}

// PrintQuestBoard prints the quest catalog with lock/completion markers.
func (l *Logger) PrintQuestBoard(p quest.Progress) {
	l.Bold("Quest Board")
	for _, lvl := range []quest.Level{quest.Level1, quest.Level2, quest.Level3} {
		quests := quest.QuestsByLevel(lvl)
		if len(quests) == 0 {
			continue
		}
		l.Println("")
		l.Cyan("— %s —", strings.ToUpper(string(lvl)))
		for _, q := range quests {
			marker := "🔒"
			if p.Completed(q.ID) {
				marker = "✅"
			} else if q.Unlocked(p) {
				marker = "▶️"
			}
			l.Println("%s %s (%s, %d XP)", marker, q.Title, q.Difficulty, q.Reward.XP)
			if !q.Unlocked(p) && len(q.Prerequisites) > 0 {
				l.Println("   requires: %s", strings.Join(q.Prerequisites, ", "))
			}
		}
	}
}

// PrintAchievements prints the achievement catalog with unlock state.
func (l *Logger) PrintAchievements(achievements []game.Achievement) {
	l.Bold("Achievements")
	for _, a := range achievements {
		if a.Unlocked {
			green := color.New(color.FgGreen)
			green.Fprintf(l.out, "%s %s — %s (+%d XP)\n", a.Icon, a.Title, a.Description, a.XPReward)
		} else {
			gray := color.New(color.FgHiBlack)
			gray.Fprintf(l.out, "🔒 %s — %s (+%d XP)\n", a.Title, a.Description, a.XPReward)
		}
	}
}

// PrintInventory prints the owned items with their stack counts.
func (l *Logger) PrintInventory(items map[string]game.InventoryItem) {
	l.Bold("Inventory")
	if len(items) == 0 {
		l.Println("(empty — complete quests to collect items)")
		return
	}
	for _, item := range items {
		l.Println("%s %s ×%d", item.Icon, item.Name, item.Count)
	}
}

// PrintSkillTree prints the skill tree grouped by category.
func (l *Logger) PrintSkillTree(state game.State) {
	l.Bold("Skill Tree")
	categories := []game.SkillCategory{
		game.SkillCategoryWallet,
		game.SkillCategoryContract,
		game.SkillCategoryDeFi,
		game.SkillCategorySecurity,
	}
	for _, cat := range categories {
		l.Cyan("— %s —", cat)
		for _, node := range state.SkillTree {
			if node.Category != cat {
				continue
			}
			if node.Unlocked {
				l.Println("%s %s ✓", node.Icon, node.Name)
			} else {
				l.Println("🔒 %s (requires %d XP, have %d)", node.Name, node.XPRequired, state.XP)
			}
		}
	}
}

// PrintLeaderboard prints the player alongside the static sample entries.
func (l *Logger) PrintLeaderboard(state game.State, playerAddress string) {
	l.Bold("Leaderboard")
	l.Println("%-16s %6s %6s %6s", "PLAYER", "XP", "LEVEL", "BADGES")
	l.Cyan("%-16s %6d %6d %6d  (you)", playerAddress, state.XP, state.Level, state.UnlockedAchievements())
	for _, e := range state.Leaderboard {
		l.Println("%-16s %6d %6d %6d", e.Address, e.XP, e.Level, e.Achievements)
	}
}
