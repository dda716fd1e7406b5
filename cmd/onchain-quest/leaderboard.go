package main

import (
	"github.com/spf13/cobra"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
)

func newLeaderboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the sample leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			out.PrintLeaderboard(*game.NewState(), "you")
			return nil
		},
	}
}
