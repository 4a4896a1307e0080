package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot/internal/models"
	"github.com/wastenot/wastenot/internal/tui"
)

// NewLeaderboardCmd creates the leaderboard command
func NewLeaderboardCmd(deps *Dependencies) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top donors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := models.DefaultLeaderboard()
			out := cmd.OutOrStdout()

			if plain || !isStdoutTTY() {
				for _, row := range tui.LeaderboardRows(entries) {
					fmt.Fprintln(out, row)
				}
				return nil
			}
			if deps.TUI == nil {
				fmt.Fprintln(out, tui.RenderLeaderboard(entries))
				return nil
			}
			return deps.TUI.RunLeaderboard(entries)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain text instead of opening the screen")
	return cmd
}
