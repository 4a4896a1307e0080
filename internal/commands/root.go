// Package commands provides CLI commands for wastenot.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// NewRootCmd builds the command tree over deps
func NewRootCmd(deps *Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:   "wastenot",
		Short: "Terminal client for the Waste Not food donation service",
		Long: `wastenot talks to a Waste Not server to donate surplus food through a
chat assistant, book a driver pickup for a food bank, and show the donor
leaderboard.

Examples:
  wastenot                                   Open the home menu
  wastenot donate                            Chat about a donation
  wastenot ask "I have 5 lbs of rice"        Send a single message
  wastenot deliver                           Book a pickup interactively
  wastenot book --destination fb1 --time 30 --phone 555-0100
  wastenot foodbanks                         List food banks
  wastenot --base-url http://10.0.0.5:8123   Use another server`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "wastenot %s (built %s)\n", Version, BuildTime)
				return nil
			}

			if err := initDeps(cmd, deps); err != nil {
				return err
			}
			return deps.TUI.RunApp(
				deps.ChatService(),
				deps.BookingService(),
				deps.RenderOptions(getTerminalWidth()),
			)
		},
	}

	root.PersistentFlags().String("base-url", "", "Waste Not server address (overrides config and WASTENOT_BASE_URL)")
	root.Flags().BoolP("version", "v", false, "Show version and exit")

	root.AddCommand(NewDonateCmd(deps))
	root.AddCommand(NewAskCmd(deps))
	root.AddCommand(NewDeliverCmd(deps))
	root.AddCommand(NewBookCmd(deps))
	root.AddCommand(NewFoodBanksCmd(deps))
	root.AddCommand(NewLeaderboardCmd(deps))
	root.AddCommand(NewConfigCmd(deps))

	return root
}

var (
	rootDeps = NewDependencies()
	// rootCmd represents the base command
	rootCmd = NewRootCmd(rootDeps)
)

// Execute runs the root command
func Execute() {
	if err := run(rootCmd, rootDeps); err != nil {
		os.Exit(1)
	}
}

// run executes root and releases deps, also when the command fails
func run(root *cobra.Command, deps *Dependencies) error {
	defer deps.Close()
	return root.Execute()
}

// initDeps initializes deps with the --base-url flag value
func initDeps(cmd *cobra.Command, deps *Dependencies) error {
	baseURL, _ := cmd.Flags().GetString("base-url")
	return deps.Init(cmd.Context(), baseURL)
}
