package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func newGovernanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "governance",
		Aliases: []string{"gov"},
		Short:   "Interact with the DAO governance contract",
	}
	cmd.AddCommand(
		newGovProposeCommand(),
		newGovVoteCommand(),
		newGovListCommand(),
		newGovReputationCommand(),
	)
	return cmd
}

func newGovProposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "propose <title>",
		Short: "Create a governance proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Governance.CreateProposal(ctx, args[0]); err != nil {
					return err
				}
				out.Success("Proposal created")
				printTxResult(app.Governance.State())
				return nil
			})
		},
	}
}

func newGovVoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <proposal-id>",
		Short: "Vote for a proposal by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Governance.Vote(ctx, id); err != nil {
					return err
				}
				out.Success("Vote cast")
				printTxResult(app.Governance.State())
				return nil
			})
		},
	}
}

func newGovListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List proposals with vote tallies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				proposals, err := app.Governance.GetProposals(ctx)
				if err != nil {
					return err
				}
				if len(proposals) == 0 {
					out.Println("No proposals yet.")
					return nil
				}
				out.Bold("Proposals")
				for i, p := range proposals {
					out.Println("%d. %s — %s votes", i, p.Title, p.Votes)
				}
				voted, err := app.Governance.HasVoted(ctx)
				if err == nil && voted {
					out.Cyan("You have already voted.")
				}
				return nil
			})
		},
	}
}

func newGovReputationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reputation",
		Short: "Show your DAO reputation score",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				rep, err := app.Governance.GetReputation(ctx)
				if err != nil {
					return err
				}
				out.Println("Reputation: %s", rep)
				return nil
			})
		},
	}
}
