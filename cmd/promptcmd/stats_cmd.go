package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptcmd/promptcmd/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Print usage summary rows for a group, or for a provider if no group matches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := newStatsStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		name := args[0]
		filter := stats.Filter{Group: &name}
		summaries, err := store.Summary(ctx, filter)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			filter = stats.Filter{Provider: &name}
			summaries, err = store.Summary(ctx, filter)
			if err != nil {
				return err
			}
		}

		for _, s := range summaries {
			fmt.Printf("%s/%s\tcount=%d\tprompt_tokens=%d\tcompletion_tokens=%d\ttps=%d\n",
				s.Provider, s.Model, s.Count, s.PromptTokens, s.CompletionTokens, s.TPS)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
