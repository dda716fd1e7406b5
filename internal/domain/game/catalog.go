package game

import sdkmath "cosmossdk.io/math"

// DefaultAchievements is the fixed achievement catalog. The slice order is
// the display order; the unlocked flag is the only field that changes at
// runtime.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "wallet_connect", Title: "First Steps", Description: "Connected your wallet to Onchain Quest", Icon: "🏠", XPReward: 50},
		{ID: "sign_message", Title: "Royal Decree", Description: "Signed your first message", Icon: "📜", XPReward: 75},
		{ID: "send_tx", Title: "Gold Sender", Description: "Sent your first transaction", Icon: "💰", XPReward: 100},
		{ID: "store_number", Title: "Enchanter", Description: "Stored a number in the blockchain", Icon: "🔮", XPReward: 125},
		{ID: "retrieve_number", Title: "Oracle", Description: "Retrieved data from the blockchain", Icon: "👁️", XPReward: 100},
		{ID: "earn_skill", Title: "Apprentice", Description: "Earned your first on-chain skill points", Icon: "⚡", XPReward: 100},
		{ID: "create_proposal", Title: "Lawmaker", Description: "Created a governance proposal", Icon: "🏛️", XPReward: 150},
		{ID: "cast_vote", Title: "Citizen", Description: "Voted on a governance proposal", Icon: "🗳️", XPReward: 100},
		{ID: "mint_nft", Title: "Legendary Crafter", Description: "Minted your achievement NFT", Icon: "⚔️", XPReward: 200},
		{ID: "all_quests", Title: "Kingdom Champion", Description: "Completed all quests", Icon: "👑", XPReward: 500},
	}
}

// DefaultSkillTree is the fixed skill tree. Nodes unlock automatically when
// accumulated experience reaches their threshold.
func DefaultSkillTree() []SkillNode {
	return []SkillNode{
		{ID: "skill_wallet_basics", Name: "Wallet Basics", Icon: "🔑", XPRequired: 0, Category: SkillCategoryWallet},
		{ID: "skill_first_tx", Name: "Transaction Sender", Icon: "⛓️", XPRequired: 100, Category: SkillCategoryWallet},
		{ID: "skill_gas_reader", Name: "Gas Reader", Icon: "⛽", XPRequired: 250, Category: SkillCategoryWallet},
		{ID: "skill_contract_caller", Name: "Contract Caller", Icon: "📝", XPRequired: 300, Category: SkillCategoryContract},
		{ID: "skill_event_listener", Name: "Event Listener", Icon: "📡", XPRequired: 450, Category: SkillCategoryContract},
		{ID: "skill_nft_minter", Name: "NFT Minter", Icon: "✨", XPRequired: 600, Category: SkillCategoryContract},
		{ID: "skill_dao_voter", Name: "DAO Voter", Icon: "🗳️", XPRequired: 500, Category: SkillCategoryDeFi},
		{ID: "skill_gas_optimizer", Name: "Gas Optimizer", Icon: "⚙️", XPRequired: 750, Category: SkillCategoryDeFi},
		{ID: "skill_key_guardian", Name: "Key Guardian", Icon: "🛡️", XPRequired: 200, Category: SkillCategorySecurity},
		{ID: "skill_phish_spotter", Name: "Phish Spotter", Icon: "🎣", XPRequired: 400, Category: SkillCategorySecurity},
	}
}

// DefaultLeaderboard is static sample data shown alongside the player.
func DefaultLeaderboard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Address: "0x1234...abcd", XP: 1200, Level: 8, Achievements: 7},
		{Address: "0x5678...efgh", XP: 950, Level: 6, Achievements: 5},
		{Address: "0x9abc...ijkl", XP: 700, Level: 5, Achievements: 4},
		{Address: "0xdef0...mnop", XP: 400, Level: 3, Achievements: 3},
		{Address: "0x1111...qrst", XP: 200, Level: 2, Achievements: 2},
	}
}

// NewState creates the initial game state.
func NewState() *State {
	return &State{
		XP:              0,
		Level:           1,
		QuestsCompleted: []string{},
		Achievements:    DefaultAchievements(),
		Inventory:       map[string]InventoryItem{},
		SkillTree:       DefaultSkillTree(),
		Leaderboard:     DefaultLeaderboard(),
		TotalGasSpent:   sdkmath.ZeroInt(),
		TotalGasSaved:   sdkmath.ZeroInt(),
	}
}
