package cli

import (
	"github.com/spf13/cobra"
)

func newScoreboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scoreboard",
		Short: "Show the kill/death scoreboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Scoreboard

			if err := client.Get("/api/v1/scoreboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
