package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
)

func newSkillsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Skill tree and the on-chain skills contract",
	}
	cmd.AddCommand(
		newSkillsTreeCommand(),
		newSkillsEarnCommand(),
		newSkillsMineCommand(),
		newSkillsResetCommand(),
	)
	return cmd
}

func newSkillsTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the skill tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			out.PrintSkillTree(*game.NewState())
			return nil
		},
	}
}

func newSkillsEarnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "earn <points>",
		Short: "Earn skill points on-chain (1-1000)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Skills.EarnSkill(ctx, args[0]); err != nil {
					return err
				}
				out.Success("Skill points earned")
				printTxResult(app.Skills.State())
				return nil
			})
		},
	}
}

func newSkillsMineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show your accumulated on-chain skill points",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				total, err := app.Skills.GetMySkills(ctx)
				if err != nil {
					return err
				}
				out.Println("Skill points: %s", total)
				return nil
			})
		},
	}
}

func newSkillsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <player-address>",
		Short: "Reset a player's skill points (contract owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Skills.ResetSkills(ctx, args[0]); err != nil {
					return err
				}
				out.Success("Skills reset for %s", args[0])
				printTxResult(app.Skills.State())
				return nil
			})
		},
	}
}
