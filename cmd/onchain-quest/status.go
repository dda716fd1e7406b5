package main

import (
	"context"
	"math/big"

	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show wallet connection, balance, and player progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				addr, err := app.WalletSvc.VerifyConnection(ctx)
				if err != nil {
					return err
				}
				out.Success("Wallet connected: %s", addr)
				out.Println("Network:    %s (chain %d)", cfg.Chain.Name, cfg.Chain.ChainID)
				out.Println("Explorer:   %s", cfg.Chain.AddressURL(addr))

				if balance, err := app.WalletSvc.Balance(ctx); err == nil {
					out.Println("Balance:    %s %s", formatEther(balance), cfg.Chain.Currency)
				} else {
					out.Warn("balance unavailable: %s", err)
				}

				out.Println("")
				out.PrintStatus(app.Game.Snapshot())
				return nil
			})
		},
	}
}

// formatEther renders a wei amount as a decimal ether string with four
// fractional digits.
func formatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, big.NewFloat(1e18))
	return f.Text('f', 4)
}
