package application

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application/ports"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/contracterr"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/quest"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/txqueue"
)

const (
	testAccount  = "0xABCDEF0123456789abcdef0123456789ABCDEF01"
	testContract = "0x1111111111111111111111111111111111111111"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeWallet struct {
	connected  bool
	account    chain.Address
	chainID    uint64
	chainIDErr error

	writeHash   string
	writeErr    error
	writeErrSeq []error
	writeCalls  int

	signature []byte
	signErr   error
}

func (w *fakeWallet) Connected() bool { return w.connected }

func (w *fakeWallet) Account() (chain.Address, error) {
	if w.account == "" {
		return "", errors.New("no account")
	}
	return w.account, nil
}

func (w *fakeWallet) ChainID(ctx context.Context) (uint64, error) {
	return w.chainID, w.chainIDErr
}

func (w *fakeWallet) WriteContract(ctx context.Context, call ports.ContractCall) (string, error) {
	w.writeCalls++
	if len(w.writeErrSeq) > 0 {
		err := w.writeErrSeq[0]
		w.writeErrSeq = w.writeErrSeq[1:]
		if err != nil {
			return "", err
		}
	}
	if w.writeErr != nil {
		return "", w.writeErr
	}
	return w.writeHash, nil
}

func (w *fakeWallet) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	return w.signature, w.signErr
}

type fakeNode struct {
	chainID uint64

	// reads maps function name to the value assigned to the first out target.
	reads    map[string]interface{}
	readErr  error
	receipt  *ports.Receipt
	waitErr  error
	balance  *big.Int
	gasLimit uint64
}

func (n *fakeNode) ChainID(ctx context.Context) (uint64, error) { return n.chainID, nil }

func (n *fakeNode) ReadContract(ctx context.Context, call ports.ContractCall, out ...interface{}) error {
	if n.readErr != nil {
		return n.readErr
	}
	val, ok := n.reads[call.Function]
	if !ok {
		return errors.New("unexpected read: " + call.Function)
	}
	if len(out) == 0 {
		return nil
	}
	switch target := out[0].(type) {
	case **big.Int:
		*target = val.(*big.Int)
	case *chain.Address:
		*target = val.(chain.Address)
	case *bool:
		*target = val.(bool)
	case *[]Proposal:
		*target = val.([]Proposal)
	default:
		return errors.New("unsupported out target")
	}
	return nil
}

func (n *fakeNode) WaitForReceipt(ctx context.Context, txHash string, timeout time.Duration) (*ports.Receipt, error) {
	if n.waitErr != nil {
		return nil, n.waitErr
	}
	return n.receipt, nil
}

func (n *fakeNode) EstimateGas(ctx context.Context, call ports.ContractCall) (uint64, error) {
	return n.gasLimit, nil
}

func (n *fakeNode) BalanceAt(ctx context.Context, addr chain.Address) (*big.Int, error) {
	return n.balance, nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type fixture struct {
	wallet *fakeWallet
	node   *fakeNode
	game   *game.Store
	deps   Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := log.NewNopLogger()
	wallet := &fakeWallet{
		connected: true,
		account:   chain.Address(testAccount),
		chainID:   chain.ShardeumMezame.ChainID,
		writeHash: "0xdeadbeef",
		signature: []byte{1, 2, 3},
	}
	node := &fakeNode{
		chainID: chain.ShardeumMezame.ChainID,
		reads: map[string]interface{}{
			"getNumber":   big.NewInt(42),
			"lastPlayer":  chain.Address(testAccount),
			"skillPoints": big.NewInt(500),
			"balanceOf":   big.NewInt(1),
			"reputation":  big.NewInt(10),
			"voted":       false,
			"getProposals": []Proposal{
				{Title: "Fund the quest guild", Votes: big.NewInt(3)},
			},
		},
		receipt: &ports.Receipt{TxHash: "0xdeadbeef", Success: true, GasUsed: 40_000},
		balance: big.NewInt(1e18),
	}
	store := game.NewStore(logger)
	return &fixture{
		wallet: wallet,
		node:   node,
		game:   store,
		deps: Deps{
			Wallet: wallet,
			Node:   node,
			Queue:  txqueue.New(logger, txqueue.WithBackoff(time.Millisecond)),
			Game:   store,
			Chain:  chain.ShardeumMezame,
			Logger: logger,
		},
	}
}

func (f *fixture) achievementUnlocked(t *testing.T, id string) bool {
	t.Helper()
	for _, a := range f.game.Snapshot().Achievements {
		if a.ID == id {
			return a.Unlocked
		}
	}
	t.Fatalf("unknown achievement %s", id)
	return false
}

// ---------------------------------------------------------------------------
// Storage
// ---------------------------------------------------------------------------

func TestStorageService_StoreNumber(t *testing.T) {
	f := newFixture(t)
	svc := NewStorageService(f.deps, testContract)

	err := svc.StoreNumber(context.Background(), "42")
	require.NoError(t, err)

	st := svc.State()
	assert.True(t, st.Success)
	assert.False(t, st.Loading)
	assert.Equal(t, "0xdeadbeef", st.TxHash)
	assert.Contains(t, st.TxURL, "/tx/0xdeadbeef")

	// Read refresh ran after confirmation.
	assert.Equal(t, big.NewInt(42), svc.StoredNumber())
	assert.Equal(t, chain.Address(testAccount), svc.LastPlayer())

	// Game side effects of a confirmed storage write.
	assert.True(t, f.achievementUnlocked(t, "send_tx"))
	assert.True(t, f.achievementUnlocked(t, "store_number"))
	snap := f.game.Snapshot()
	assert.Contains(t, snap.Inventory, "number_crystal")
	assert.True(t, snap.QuestCompleted("quest_transaction_basics"))
	assert.True(t, snap.QuestCompleted("quest_smart_contract_intro"))

	// Gas bookkeeping: used 40k against a 100k ceiling.
	assert.Equal(t, sdkmath.NewInt(40_000), snap.TotalGasSpent)
	assert.Equal(t, sdkmath.NewInt(60_000), snap.TotalGasSaved)
}

func TestStorageService_StoreNumberValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a number", "forty-two"},
		{"negative", "-5"},
		{"empty", ""},
		{"decimal", "4.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := NewStorageService(f.deps, testContract)

			err := svc.StoreNumber(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, contracterr.IsKind(err, contracterr.KindInvalidInput))
			assert.Zero(t, f.wallet.writeCalls, "invalid input must fail before submission")
		})
	}
}

func TestStorageService_ValidationOrder(t *testing.T) {
	t.Run("wallet disconnected reported before wrong network", func(t *testing.T) {
		f := newFixture(t)
		f.wallet.connected = false
		f.wallet.chainID = 1
		svc := NewStorageService(f.deps, testContract)

		err := svc.StoreNumber(context.Background(), "1")
		assert.True(t, contracterr.IsKind(err, contracterr.KindWalletNotConnected))
	})

	t.Run("wrong network reported before invalid input", func(t *testing.T) {
		f := newFixture(t)
		f.wallet.chainID = 1
		svc := NewStorageService(f.deps, testContract)

		err := svc.StoreNumber(context.Background(), "not-a-number")
		require.Error(t, err)
		assert.True(t, contracterr.IsKind(err, contracterr.KindWrongNetwork))
		assert.Contains(t, err.(*contracterr.ContractError).UserMessage(), "8119")
		assert.Zero(t, f.wallet.writeCalls)
	})

	t.Run("invalid contract address", func(t *testing.T) {
		f := newFixture(t)
		svc := NewStorageService(f.deps, "not-an-address")

		err := svc.StoreNumber(context.Background(), "1")
		assert.True(t, contracterr.IsKind(err, contracterr.KindInvalidInput))
		assert.Zero(t, f.wallet.writeCalls)
	})
}

func TestStorageService_RevertedReceipt(t *testing.T) {
	f := newFixture(t)
	f.node.receipt = &ports.Receipt{TxHash: "0xdeadbeef", Success: false, GasUsed: 40_000}
	svc := NewStorageService(f.deps, testContract)

	err := svc.StoreNumber(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, contracterr.IsKind(err, contracterr.KindTransactionReverted))

	st := svc.State()
	assert.False(t, st.Success)
	assert.Equal(t, "0xdeadbeef", st.TxHash, "hash recorded before the receipt failed")

	// No rewards on a reverted transaction.
	assert.False(t, f.achievementUnlocked(t, "store_number"))
	assert.True(t, f.game.Snapshot().TotalGasSpent.IsZero())
}

func TestStorageService_ReceiptTimeout(t *testing.T) {
	f := newFixture(t)
	f.node.waitErr = errors.New("timeout waiting for receipt of 0xdeadbeef")
	svc := NewStorageService(f.deps, testContract)

	err := svc.StoreNumber(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, contracterr.IsKind(err, contracterr.KindTimeout))
}

func TestStorageService_TransientSubmitRetries(t *testing.T) {
	f := newFixture(t)
	// Two transient failures, then success; the queue retries internally.
	f.wallet.writeErrSeq = []error{
		errors.New("failed to fetch"),
		errors.New("network congested"),
	}
	svc := NewStorageService(f.deps, testContract)

	err := svc.StoreNumber(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 3, f.wallet.writeCalls)
	assert.True(t, svc.State().Success)
}

func TestStorageService_NonTransientSubmitFailsImmediately(t *testing.T) {
	f := newFixture(t)
	f.wallet.writeErr = errors.New("execution reverted: bad input")
	svc := NewStorageService(f.deps, testContract)

	err := svc.StoreNumber(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, contracterr.IsKind(err, contracterr.KindTransactionReverted))
	assert.Equal(t, 1, f.wallet.writeCalls, "non-transient failures are not retried")
}

func TestStorageService_GetNumber(t *testing.T) {
	f := newFixture(t)
	svc := NewStorageService(f.deps, testContract)

	value, err := svc.GetNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), value)
	assert.True(t, f.achievementUnlocked(t, "retrieve_number"))

	// Repeat reads converge on the same value and stay side-effect free
	// beyond the one-time achievement.
	before := f.game.Snapshot().XP
	value, err = svc.GetNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), value)
	assert.Equal(t, before, f.game.Snapshot().XP)
}

// ---------------------------------------------------------------------------
// Skills
// ---------------------------------------------------------------------------

func TestSkillsService_EarnSkill(t *testing.T) {
	f := newFixture(t)
	svc := NewSkillsService(f.deps, testContract)

	require.NoError(t, svc.EarnSkill(context.Background(), "500"))
	assert.True(t, f.achievementUnlocked(t, "earn_skill"))
	assert.Contains(t, f.game.Snapshot().Inventory, "skill_scroll")
	assert.Equal(t, big.NewInt(500), svc.MySkills())
}

func TestSkillsService_EarnSkillBounds(t *testing.T) {
	tests := []struct {
		name   string
		points string
		valid  bool
	}{
		{"lower bound", "1", true},
		{"upper bound", "1000", true},
		{"zero", "0", false},
		{"above max", "1001", false},
		{"negative", "-10", false},
		{"garbage", "lots", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := NewSkillsService(f.deps, testContract)

			err := svc.EarnSkill(context.Background(), tt.points)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, contracterr.IsKind(err, contracterr.KindInvalidInput))
				assert.Zero(t, f.wallet.writeCalls)
			}
		})
	}
}

func TestSkillsService_ResetSkillsValidatesAddress(t *testing.T) {
	f := newFixture(t)
	svc := NewSkillsService(f.deps, testContract)

	err := svc.ResetSkills(context.Background(), "0xnotanaddress")
	assert.True(t, contracterr.IsKind(err, contracterr.KindInvalidInput))

	require.NoError(t, svc.ResetSkills(context.Background(), testAccount))
}

// ---------------------------------------------------------------------------
// Governance
// ---------------------------------------------------------------------------

func TestGovernanceService_CreateProposal(t *testing.T) {
	f := newFixture(t)
	svc := NewGovernanceService(f.deps, testContract)

	require.NoError(t, svc.CreateProposal(context.Background(), "Fund the quest guild"))
	assert.True(t, f.achievementUnlocked(t, "create_proposal"))
	assert.Contains(t, f.game.Snapshot().Inventory, "proposal_seal")

	proposals := svc.Proposals()
	require.Len(t, proposals, 1)
	assert.Equal(t, "Fund the quest guild", proposals[0].Title)
}

func TestGovernanceService_CreateProposalValidation(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("x", MaxProposalTitleLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := NewGovernanceService(f.deps, testContract)

			err := svc.CreateProposal(context.Background(), tt.title)
			assert.True(t, contracterr.IsKind(err, contracterr.KindInvalidInput))
			assert.Zero(t, f.wallet.writeCalls)
		})
	}
}

func TestGovernanceService_Vote(t *testing.T) {
	f := newFixture(t)
	svc := NewGovernanceService(f.deps, testContract)

	require.NoError(t, svc.Vote(context.Background(), 0))
	assert.True(t, f.achievementUnlocked(t, "cast_vote"))
}

func TestGovernanceService_Reads(t *testing.T) {
	f := newFixture(t)
	svc := NewGovernanceService(f.deps, testContract)
	ctx := context.Background()

	rep, err := svc.GetReputation(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10), rep)

	voted, err := svc.HasVoted(ctx)
	require.NoError(t, err)
	assert.False(t, voted)

	proposals, err := svc.GetProposals(ctx)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, big.NewInt(3), proposals[0].Votes)
}

// ---------------------------------------------------------------------------
// NFT
// ---------------------------------------------------------------------------

func TestNFTService_MintHero(t *testing.T) {
	f := newFixture(t)
	svc := NewNFTService(f.deps, testContract)

	err := svc.MintHero(context.Background(), testAccount, "ipfs://QmHero/metadata.json")
	require.NoError(t, err)

	assert.True(t, f.achievementUnlocked(t, "mint_nft"))
	snap := f.game.Snapshot()
	assert.Contains(t, snap.Inventory, "hero_badge")
	assert.True(t, snap.QuestCompleted("quest_nft_explorer"))
	assert.Equal(t, big.NewInt(1), svc.Balance())
}

func TestNFTService_MintValidation(t *testing.T) {
	tests := []struct {
		name string
		to   string
		uri  string
	}{
		{"bad recipient", "0xshort", "ipfs://QmHero"},
		{"empty uri", testAccount, ""},
		{"whitespace uri", testAccount, "   "},
		{"bad scheme", testAccount, "ftp://metadata.json"},
		{"no scheme", testAccount, "QmHero/metadata.json"},
		{"uri too long", testAccount, "ipfs://" + strings.Repeat("a", MaxMetadataURILen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := NewNFTService(f.deps, testContract)

			err := svc.MintHero(context.Background(), tt.to, tt.uri)
			require.Error(t, err)
			assert.True(t, contracterr.IsKind(err, contracterr.KindInvalidInput))
			assert.Zero(t, f.wallet.writeCalls, "invalid input must fail before gas estimation")
		})
	}
}

// ---------------------------------------------------------------------------
// Wallet
// ---------------------------------------------------------------------------

func TestWalletService_VerifyConnection(t *testing.T) {
	f := newFixture(t)
	svc := NewWalletService(f.deps)

	addr, err := svc.VerifyConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, chain.Address(testAccount), addr)
	assert.True(t, f.achievementUnlocked(t, "wallet_connect"))
	snap := f.game.Snapshot()
	assert.True(t, snap.QuestCompleted("quest_wallet_basics"))

	// Repeat verification grants nothing further.
	xp := f.game.Snapshot().XP
	_, err = svc.VerifyConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, xp, f.game.Snapshot().XP)
}

func TestWalletService_VerifyConnectionWrongNetwork(t *testing.T) {
	f := newFixture(t)
	f.wallet.chainID = 1337
	svc := NewWalletService(f.deps)

	_, err := svc.VerifyConnection(context.Background())
	require.Error(t, err)
	assert.True(t, contracterr.IsKind(err, contracterr.KindWrongNetwork))
	assert.False(t, f.achievementUnlocked(t, "wallet_connect"))
}

func TestWalletService_SignMessage(t *testing.T) {
	f := newFixture(t)
	svc := NewWalletService(f.deps)

	sig, err := svc.SignMessage(context.Background(), "attack at dawn")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, sig)
	assert.True(t, f.achievementUnlocked(t, "sign_message"))
}

func TestWalletService_Balance(t *testing.T) {
	f := newFixture(t)
	svc := NewWalletService(f.deps)

	balance, err := svc.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1e18), balance)
}

// ---------------------------------------------------------------------------
// Quest completion
// ---------------------------------------------------------------------------

func TestGrantQuest_ExactlyOnce(t *testing.T) {
	f := newFixture(t)

	q, ok := quest.ByID("quest_wallet_basics")
	require.True(t, ok)

	GrantQuest(f.game, q.ID)
	assert.Equal(t, q.Reward.XP, f.game.Snapshot().XP)

	GrantQuest(f.game, q.ID)
	assert.Equal(t, q.Reward.XP, f.game.Snapshot().XP, "reward granted at most once")

	// Unknown ids are ignored.
	GrantQuest(f.game, "quest_unknown")
	assert.Equal(t, q.Reward.XP, f.game.Snapshot().XP)
}

func TestGrantQuest_AllQuestsAchievement(t *testing.T) {
	f := newFixture(t)

	for _, q := range quest.Catalog() {
		GrantQuest(f.game, q.ID)
	}

	assert.True(t, f.achievementUnlocked(t, "all_quests"))
}
