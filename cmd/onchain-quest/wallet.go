package main

import (
	"context"
	"encoding/hex"

	"github.com/spf13/cobra"
)

func newWalletCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet-level actions: verify, sign, balance",
	}
	cmd.AddCommand(
		newWalletVerifyCommand(),
		newWalletSignCommand(),
		newWalletBalanceCommand(),
	)
	return cmd
}

func newWalletVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the wallet connection and network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				addr, err := app.WalletSvc.VerifyConnection(ctx)
				if err != nil {
					return err
				}
				out.Success("Wallet connected: %s", addr)
				out.Println("Network: %s (chain %d)", cfg.Chain.Name, cfg.Chain.ChainID)
				return nil
			})
		},
	}
}

func newWalletSignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with the wallet key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				sig, err := app.WalletSvc.SignMessage(ctx, args[0])
				if err != nil {
					return err
				}
				out.Success("Message signed")
				out.Println("Signature: 0x%s", hex.EncodeToString(sig))
				return nil
			})
		},
	}
}

func newWalletBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the wallet's native token balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				balance, err := app.WalletSvc.Balance(ctx)
				if err != nil {
					return err
				}
				out.Println("%s %s", formatEther(balance), cfg.Chain.Currency)
				return nil
			})
		},
	}
}
