package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newNFTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nft",
		Short: "Interact with the hero NFT contract",
	}
	cmd.AddCommand(
		newNFTMintCommand(),
		newNFTBalanceCommand(),
	)
	return cmd
}

func newNFTMintCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "mint <metadata-uri>",
		Short: "Mint a hero NFT with a metadata URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				recipient := to
				if recipient == "" {
					if app.Wallet == nil {
						return fmt.Errorf("no wallet configured; pass --to or set key_file")
					}
					addr, err := app.Wallet.Account()
					if err != nil {
						return err
					}
					recipient = addr.String()
				}
				if err := app.NFT.MintHero(ctx, recipient, args[0]); err != nil {
					return err
				}
				out.Success("Hero minted to %s", recipient)
				printTxResult(app.NFT.State())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient address (default: your wallet)")
	return cmd
}

func newNFTBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show your hero NFT balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				balance, err := app.NFT.GetBalance(ctx)
				if err != nil {
					return err
				}
				out.Println("Heroes owned: %s", balance)
				return nil
			})
		},
	}
}
