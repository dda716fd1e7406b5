package main

import (
	"github.com/spf13/cobra"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
)

func newAchievementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show the achievement catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out.PrintAchievements(game.DefaultAchievements())
			return nil
		},
	}
}
