package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/game"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/quest"
)

// withApp wires the application for a single command invocation and tears it
// down afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	app, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(cmd.Context(), app)
}

// questProgress projects the game state onto the quest progression rules.
func questProgress(state game.State) quest.Progress {
	return quest.Progress{
		CompletedQuests: state.QuestsCompleted,
		XP:              state.XP,
		Level:           state.Level,
	}
}

// printTxResult prints the transaction hash and explorer link of a confirmed
// write.
func printTxResult(st application.CallState) {
	if st.TxHash == "" {
		return
	}
	out.Println("Transaction: %s", st.TxHash)
	out.Println("Explorer:    %s", st.TxURL)
}
