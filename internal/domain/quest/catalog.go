package quest

// catalog is the fixed set of learning quests, in display order.
var catalog = []Quest{
	{
		ID:          "quest_wallet_basics",
		Title:       "🔑 Wallet Wizard",
		Description: "Learn the basics of blockchain wallets",
		Story:       "Welcome to Onchain Quest! Your journey begins by understanding your digital vault - your wallet. Only you hold the key.",
		Difficulty:  DifficultyBeginner,
		Type:        TypeWalletSetup,
		Icon:        "🔑",
		Reward:      Reward{XP: 100, Tokens: 0.1},
		Objective:   "Connect your wallet and understand private keys",
		Level:       Level1,
		Steps: []Step{
			{
				ID:          "step_1",
				Title:       "Connect Your Wallet",
				Instruction: "Configure your key file and check your account address",
				Action:      ActionRead,
				Hint:        "Your digital identity starts with a wallet",
				Explanation: "A wallet is your identity on the blockchain. It contains your private key (secret) and public key (address). Never share your private key!",
			},
			{
				ID:          "step_2",
				Title:       "Understand Your Address",
				Instruction: "View and copy your wallet address",
				Action:      ActionRead,
				Hint:        "Your address is like your email for blockchain",
				Explanation: "Your public address (starting with 0x) is what you share with others to receive funds. It's safe to share!",
			},
			{
				ID:          "step_3",
				Title:       "Quiz: Wallet Security",
				Instruction: "Answer: Should you ever share your private key?",
				Action:      ActionQuiz,
				Hint:        "Think about the difference between public and private",
				Explanation: "Never share your private key! It's like sharing your password to your bank account.",
			},
		},
	},
	{
		ID:            "quest_transaction_basics",
		Title:         "⛓️ Transaction Tracker",
		Description:   "Execute your first blockchain transaction",
		Story:         "Now that you have a wallet, it's time to send your first transaction. Watch it get recorded forever on the blockchain!",
		Difficulty:    DifficultyBeginner,
		Type:          TypeTransaction,
		Icon:          "⛓️",
		Reward:        Reward{XP: 150, Tokens: 0.05},
		Objective:     "Send a test transaction on Shardeum testnet",
		Level:         Level1,
		Prerequisites: []string{"quest_wallet_basics"},
		EstimatedGas:  "0.000021",
		Steps: []Step{
			{
				ID:          "step_1",
				Title:       "Get Testnet SHM",
				Instruction: "Visit the Shardeum faucet and claim test tokens",
				Action:      ActionRead,
				Hint:        "Testnet tokens are FREE and only for learning",
				Explanation: "Testnet tokens are play money. They have no real value but let you practice blockchain development safely.",
			},
			{
				ID:          "step_2",
				Title:       "Send Transaction",
				Instruction: "Send 0.001 SHM to the contract treasury",
				Action:      ActionTransaction,
				Hint:        "After 20 seconds, your transaction will be confirmed",
				Explanation: "Transactions are the way to change blockchain state. Each transaction has a hash (ID) you can look up forever.",
			},
			{
				ID:          "step_3",
				Title:       "Find Your TX Hash",
				Instruction: "Copy your transaction hash and view it on the explorer",
				Action:      ActionRead,
				Hint:        "The hash is your proof that the transaction happened",
				Explanation: "Block explorers are public records of all blockchain activity. Your transaction is there forever!",
			},
		},
	},
	{
		ID:            "quest_smart_contract_intro",
		Title:         "📝 Smart Contract Sage",
		Description:   "Interact with your first smart contract",
		Story:         "Contracts are programs that live on the blockchain. They run exactly as written, no matter what!",
		Difficulty:    DifficultyBeginner,
		Type:          TypeSmartContract,
		Icon:          "📝",
		Reward:        Reward{XP: 200, Tokens: 0.1},
		Objective:     "Store a number in a smart contract",
		Level:         Level1,
		Prerequisites: []string{"quest_transaction_basics"},
		EstimatedGas:  "0.000156",
		Steps: []Step{
			{
				ID:          "step_1",
				Title:       "Learn Contract Basics",
				Instruction: "Read about smart contracts and immutability",
				Action:      ActionRead,
				Hint:        "Contracts are trustless - no middleman needed",
				Explanation: "Smart contracts are code that runs on the blockchain. Once deployed, they can't be changed. This creates trust!",
			},
			{
				ID:          "step_2",
				Title:       "Store Your Number",
				Instruction: "Call storeNumber(42) on the contract",
				Action:      ActionTransaction,
				Hint:        "Pick a lucky number between 0-1000",
				Explanation: "When you call a function that changes state, it costs gas. This payment prevents spam on the network.",
			},
			{
				ID:          "step_3",
				Title:       "Retrieve Your Number",
				Instruction: "Call getNumber() and see your data",
				Action:      ActionRead,
				Hint:        "Reading data is free! Only writes cost gas.",
				Explanation: "Blockchain is transparent. Anyone can read public data, but only you can write as the transaction sender.",
			},
		},
	},
	{
		ID:            "quest_nft_explorer",
		Title:         "✨ NFT Navigator",
		Description:   "Mint your first NFT and learn about ownership",
		Story:         "NFTs are digital items that prove ownership. Mint your first hero and collect achievements!",
		Difficulty:    DifficultyIntermediate,
		Type:          TypeNFTMinting,
		Icon:          "✨",
		Reward:        Reward{XP: 250, Badges: []string{"nft_pioneer"}, NFT: "hero_v1"},
		Objective:     "Mint an NFT representing your learning hero",
		Level:         Level2,
		Prerequisites: []string{"quest_smart_contract_intro"},
		EstimatedGas:  "0.000432",
		Steps: []Step{
			{
				ID:          "step_1",
				Title:       "Understand NFTs",
				Instruction: "Learn why NFTs matter beyond images",
				Action:      ActionRead,
				Hint:        "NFTs are just URLs stored on the blockchain!",
				Explanation: "NFTs are non-fungible tokens - each one is unique. The metadata is stored off-chain (like IPFS), the proof is on-chain.",
			},
			{
				ID:          "step_2",
				Title:       "Mint Your Hero",
				Instruction: "Call mintHero() to create your learning companion",
				Action:      ActionTransaction,
				Hint:        "Your hero will get stronger as you complete quests",
				Explanation: "Minting creates a new token with a unique ID. You now own this on the blockchain forever!",
			},
			{
				ID:          "step_3",
				Title:       "Track Your Hero",
				Instruction: "Check your NFT balance on the contract",
				Action:      ActionRead,
				Hint:        "Your hero's metadata updates with each quest",
				Explanation: "Dynamic NFTs change their metadata as you progress. This proves your learning journey on-chain!",
			},
		},
	},
	{
		ID:            "quest_gas_strategies",
		Title:         "⚙️ Gas Guru Challenge",
		Description:   "Optimize your blockchain spending",
		Story:         "Gas is the cost of blockchain operations. Smart builders optimize costs. You have 0.01 SHM. Can you complete all 5 missions?",
		Difficulty:    DifficultyIntermediate,
		Type:          TypeGasOptimization,
		Icon:          "⚙️",
		Reward:        Reward{XP: 300, Badges: []string{"gas_optimizer"}, Tokens: 0.005},
		Objective:     "Complete 5 missions while minimizing gas spent",
		Level:         Level3,
		Prerequisites: []string{"quest_smart_contract_intro"},
		EstimatedGas:  "0.0015",
		Steps: []Step{
			{
				ID:          "step_1",
				Title:       "Mission: Store Data",
				Instruction: "Store a number and watch the gas it costs",
				Action:      ActionTransaction,
				Hint:        "Writing to storage always costs gas",
				Explanation: "Storing data permanently is expensive because validators must maintain it forever. Writing costs ~20k gas.",
			},
			{
				ID:          "step_2",
				Title:       "Mission: Read Data (FREE!)",
				Instruction: "Call getNumber() and save gas",
				Action:      ActionRead,
				Hint:        "Reading is always free",
				Explanation: "Calling view/read functions costs 0 gas because they don't change state.",
			},
			{
				ID:          "step_3",
				Title:       "Mission: Batch Operations",
				Instruction: "Bundle multiple writes efficiently",
				Action:      ActionTransaction,
				Hint:        "Batching reduces overhead",
				Explanation: "Sending operations together is cheaper than individual transactions. This is why rollups work!",
			},
		},
	},
}

// Catalog returns the quest catalog. The returned slice must be treated as
// read-only.
func Catalog() []Quest {
	return catalog
}
