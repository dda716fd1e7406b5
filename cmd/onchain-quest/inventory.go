package main

import (
	"github.com/spf13/cobra"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
)

func newInventoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Show owned items",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Inventory is per-session; outside a play session it starts empty.
			out.PrintInventory(game.NewState().Inventory)
			return nil
		},
	}
}
