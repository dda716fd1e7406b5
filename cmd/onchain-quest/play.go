package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/contracterr"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/quest"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive quest session",
		Long: `Play starts a long-lived session against the configured network. Progress
(XP, achievements, inventory) accumulates for the lifetime of the session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("play requires an interactive terminal")
			}
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return runSession(ctx, app)
			})
		},
	}
}

const (
	menuStatus       = "📊 Player status"
	menuQuestBoard   = "🗺️  Quest board"
	menuQuestDetails = "📖 Quest details"
	menuGasLesson    = "⛽ Gas strategies lesson"
	menuVerify       = "🔗 Verify wallet connection"
	menuSign         = "✍️  Sign a message"
	menuStore        = "🔢 Store a number"
	menuReadNumber   = "🔍 Read stored number"
	menuEarnSkill    = "📜 Earn skill points"
	menuPropose      = "🏛️  Create a proposal"
	menuVote         = "🗳️  Vote on a proposal"
	menuProposals    = "📋 List proposals"
	menuMint         = "⚔️  Mint a hero NFT"
	menuAchievements = "🏆 Achievements"
	menuInventory    = "🎒 Inventory"
	menuSkillTree    = "🌳 Skill tree"
	menuLeaderboard  = "🥇 Leaderboard"
	menuQuit         = "🚪 Quit"
)

func runSession(ctx context.Context, app *App) error {
	out.Bold("Welcome to Onchain Quest!")
	out.Println("Network: %s (chain %d)", cfg.Chain.Name, cfg.Chain.ChainID)

	// Keep reads fresh while the session is open.
	for _, sub := range []func() (func(), error){
		app.Storage.WatchEvents,
		app.Skills.WatchEvents,
		app.Governance.WatchEvents,
	} {
		unsub, err := sub()
		if err != nil {
			out.Warn("event watch unavailable: %s", err)
			continue
		}
		defer unsub()
	}

	for {
		prompt := promptui.Select{
			Label: "What next",
			Size:  12,
			Items: []string{
				menuStatus, menuQuestBoard, menuQuestDetails, menuGasLesson,
				menuVerify, menuSign,
				menuStore, menuReadNumber, menuEarnSkill,
				menuPropose, menuVote, menuProposals, menuMint,
				menuAchievements, menuInventory, menuSkillTree, menuLeaderboard,
				menuQuit,
			},
		}
		_, choice, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if choice == menuQuit {
			out.Println("Thanks for playing. Progress resets next session.")
			return nil
		}
		if err := runAction(ctx, app, choice); err != nil {
			var uf contracterr.UserFacing
			if errors.As(err, &uf) {
				out.Error("%s", uf.UserMessage())
			} else {
				out.Error("%s", err)
			}
			var rec contracterr.Recoverable
			if errors.As(err, &rec) && rec.RecoveryHint() != "" {
				out.Cyan("Hint: %s", rec.RecoveryHint())
			}
		}
	}
}

func runAction(ctx context.Context, app *App, choice string) error {
	switch choice {
	case menuStatus:
		out.PrintStatus(app.Game.Snapshot())

	case menuQuestBoard:
		out.PrintQuestBoard(questProgress(app.Game.Snapshot()))

	case menuQuestDetails:
		return showQuestDetails(app)

	case menuGasLesson:
		return runGasLesson(app)

	case menuVerify:
		addr, err := app.WalletSvc.VerifyConnection(ctx)
		if err != nil {
			return err
		}
		out.Success("Wallet connected: %s", addr)

	case menuSign:
		msg, err := promptLine("Message to sign", notEmpty)
		if err != nil {
			return err
		}
		sig, err := app.WalletSvc.SignMessage(ctx, msg)
		if err != nil {
			return err
		}
		out.Success("Signed: 0x%s…", hex.EncodeToString(sig[:8]))

	case menuStore:
		num, err := promptLine("Number to store", notEmpty)
		if err != nil {
			return err
		}
		if err := app.Storage.StoreNumber(ctx, num); err != nil {
			return err
		}
		out.Success("Number stored")
		printTxResult(app.Storage.State())

	case menuReadNumber:
		value, err := app.Storage.GetNumber(ctx)
		if err != nil {
			return err
		}
		out.Println("Stored number: %s", value)
		if player := app.Storage.LastPlayer(); player != "" {
			out.Println("Last player:   %s", player)
		}

	case menuEarnSkill:
		points, err := promptLine(
			fmt.Sprintf("Skill points (1-%d)", application.MaxSkillPoints), notEmpty)
		if err != nil {
			return err
		}
		if err := app.Skills.EarnSkill(ctx, points); err != nil {
			return err
		}
		out.Success("Skill points earned")
		printTxResult(app.Skills.State())

	case menuPropose:
		title, err := promptLine("Proposal title", notEmpty)
		if err != nil {
			return err
		}
		if err := app.Governance.CreateProposal(ctx, title); err != nil {
			return err
		}
		out.Success("Proposal created")
		printTxResult(app.Governance.State())

	case menuVote:
		raw, err := promptLine("Proposal id", func(s string) error {
			_, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
			return err
		})
		if err != nil {
			return err
		}
		id, _ := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err := app.Governance.Vote(ctx, id); err != nil {
			return err
		}
		out.Success("Vote cast")
		printTxResult(app.Governance.State())

	case menuProposals:
		proposals, err := app.Governance.GetProposals(ctx)
		if err != nil {
			return err
		}
		if len(proposals) == 0 {
			out.Println("No proposals yet.")
			return nil
		}
		for i, p := range proposals {
			out.Println("%d. %s — %s votes", i, p.Title, p.Votes)
		}

	case menuMint:
		uri, err := promptLine("Metadata URI (ipfs:// or https://)", notEmpty)
		if err != nil {
			return err
		}
		addr, err := app.Wallet.Account()
		if err != nil {
			return err
		}
		if err := app.NFT.MintHero(ctx, addr.String(), uri); err != nil {
			return err
		}
		out.Success("Hero minted")
		printTxResult(app.NFT.State())

	case menuAchievements:
		out.PrintAchievements(app.Game.Snapshot().Achievements)

	case menuInventory:
		out.PrintInventory(app.Game.Snapshot().Inventory)

	case menuSkillTree:
		out.PrintSkillTree(app.Game.Snapshot())

	case menuLeaderboard:
		addr := "you"
		if a, err := app.Wallet.Account(); err == nil {
			addr = a.Short()
		}
		out.PrintLeaderboard(app.Game.Snapshot(), addr)
	}
	return nil
}

func showQuestDetails(app *App) error {
	catalog := quest.Catalog()
	titles := make([]string, len(catalog))
	for i, q := range catalog {
		titles[i] = fmt.Sprintf("%s %s", q.Icon, q.Title)
	}
	idx, _, err := (&promptui.Select{Label: "Quest", Items: titles}).Run()
	if err != nil {
		return err
	}
	printQuest(out, catalog[idx])
	return nil
}

// runGasLesson walks the gas optimization quest as a short quiz. A correct
// answer completes the quest and grants its XP.
func runGasLesson(app *App) error {
	q, ok := quest.ByID("quest_gas_strategies")
	if !ok {
		return fmt.Errorf("gas strategies quest not found")
	}
	printQuest(out, q)

	snap := app.Game.Snapshot()
	if snap.QuestCompleted(q.ID) {
		out.Cyan("Already completed.")
		return nil
	}

	_, answer, err := (&promptui.Select{
		Label: "When is the cheapest time to transact on a busy network",
		Items: []string{
			"When the mempool is congested",
			"During off-peak hours with low base fee",
			"Always at a fixed gas price",
		},
	}).Run()
	if err != nil {
		return err
	}
	if !strings.Contains(answer, "off-peak") {
		out.Warn("Not quite — watch the base fee and try again.")
		return nil
	}

	application.GrantQuest(app.Game, q.ID)
	out.Success("Quest complete: %s (+%d XP)", q.Title, q.Reward.XP)
	return nil
}

func promptLine(label string, validate func(string) error) (string, error) {
	p := promptui.Prompt{Label: label, Validate: validate}
	return p.Run()
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value required")
	}
	return nil
}
