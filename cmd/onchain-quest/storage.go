package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newStorageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Interact with the number storage contract",
	}
	cmd.AddCommand(
		newStorageStoreCommand(),
		newStorageGetCommand(),
	)
	return cmd
}

func newStorageStoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "store <number>",
		Short: "Store a non-negative integer on-chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Storage.StoreNumber(ctx, args[0]); err != nil {
					return err
				}
				out.Success("Number stored")
				printTxResult(app.Storage.State())
				return nil
			})
		},
	}
}

func newStorageGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Read the stored number and last player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				num, err := app.Storage.GetNumber(ctx)
				if err != nil {
					return err
				}
				out.Println("Stored number: %s", num)
				if player := app.Storage.LastPlayer(); player != "" {
					out.Println("Last player:   %s", player)
				}
				return nil
			})
		},
	}
}
