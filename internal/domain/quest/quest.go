// Package quest defines the static quest catalog and the progression rules
// deriving unlocked quests and completion percentages from game progress.
package quest

// Difficulty grades a quest.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Type categorizes the Web3 concept a quest teaches.
type Type string

const (
	TypeWalletSetup     Type = "wallet_setup"
	TypeTransaction     Type = "transaction"
	TypeSmartContract   Type = "smart_contract"
	TypeNFTMinting      Type = "nft_minting"
	TypeGasOptimization Type = "gas_optimization"
	TypeDeFiSimulation  Type = "defi_simulation"
	TypeSecurity        Type = "security"
)

// StepAction is what the player must do to advance a step.
type StepAction string

const (
	ActionRead        StepAction = "read"
	ActionSign        StepAction = "sign"
	ActionTransaction StepAction = "transaction"
	ActionQuiz        StepAction = "quiz"
)

// Level groups quests into the three stages of the journey.
type Level string

const (
	Level1 Level = "level1"
	Level2 Level = "level2"
	Level3 Level = "level3"
)

// Reward is what completing a quest grants.
type Reward struct {
	XP     int
	Tokens float64
	Badges []string
	NFT    string
}

// Step is a single instruction inside a quest.
type Step struct {
	ID          string
	Title       string
	Instruction string
	Action      StepAction
	Hint        string
	Explanation string
}

// Quest is a unit of guided learning content. Catalog entries are immutable
// at runtime; completion state lives in the game store, not here.
type Quest struct {
	ID            string
	Title         string
	Description   string
	Story         string
	Difficulty    Difficulty
	Type          Type
	Icon          string
	Reward        Reward
	Objective     string
	Steps         []Step
	Prerequisites []string
	EstimatedGas  string
	Level         Level
}

// Progress is the subset of game state the progression rules consume.
type Progress struct {
	CompletedQuests []string
	XP              int
	Level           int
}

// Completed reports whether the quest id is in the completed set.
func (p Progress) Completed(id string) bool {
	for _, q := range p.CompletedQuests {
		if q == id {
			return true
		}
	}
	return false
}

// Unlocked reports whether a quest is available: it has no prerequisites, or
// every prerequisite is completed.
func (q Quest) Unlocked(p Progress) bool {
	for _, pre := range q.Prerequisites {
		if !p.Completed(pre) {
			return false
		}
	}
	return true
}

// UnlockedQuests filters the catalog down to quests whose prerequisites are
// all satisfied. Pure and deterministic; recomputed on every call.
func UnlockedQuests(p Progress) []Quest {
	var out []Quest
	for _, q := range Catalog() {
		if q.Unlocked(p) {
			out = append(out, q)
		}
	}
	return out
}

// QuestsByLevel returns the catalog entries belonging to a level.
func QuestsByLevel(level Level) []Quest {
	var out []Quest
	for _, q := range Catalog() {
		if q.Level == level {
			out = append(out, q)
		}
	}
	return out
}

// ByID looks up a catalog entry.
func ByID(id string) (Quest, bool) {
	for _, q := range Catalog() {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

// ProgressPercent returns 100 * completed / total over the whole catalog.
func ProgressPercent(p Progress) float64 {
	total := len(Catalog())
	if total == 0 {
		return 0
	}
	done := 0
	for _, q := range Catalog() {
		if p.Completed(q.ID) {
			done++
		}
	}
	return 100 * float64(done) / float64(total)
}
