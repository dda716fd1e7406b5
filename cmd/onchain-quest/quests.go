package main

import (
	"github.com/spf13/cobra"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/quest"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/output"
)

func newQuestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show the quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Progress is per-session; outside a play session the board shows
			// the catalog from a fresh start.
			out.PrintQuestBoard(quest.Progress{})
			return nil
		},
	}
	cmd.AddCommand(newQuestShowCommand())
	return cmd
}

func newQuestShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <quest-id>",
		Short: "Show a quest's story and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, ok := quest.ByID(args[0])
			if !ok {
				out.Error("unknown quest: %s", args[0])
				ids := make([]string, 0, len(quest.Catalog()))
				for _, c := range quest.Catalog() {
					ids = append(ids, c.ID)
				}
				out.Println("available: %v", ids)
				return nil
			}
			printQuest(out, q)
			return nil
		},
	}
}

func printQuest(l *output.Logger, q quest.Quest) {
	l.Bold("%s %s (%s, %d XP)", q.Icon, q.Title, q.Difficulty, q.Reward.XP)
	l.Println("")
	l.Println("%s", q.Story)
	l.Println("")
	l.Cyan("Objective: %s", q.Objective)
	for i, step := range q.Steps {
		l.Println("%d. %s — %s", i+1, step.Title, step.Instruction)
		if step.Hint != "" {
			l.Println("   hint: %s", step.Hint)
		}
	}
	if q.EstimatedGas != "" {
		l.Println("Estimated gas: %s", q.EstimatedGas)
	}
}
