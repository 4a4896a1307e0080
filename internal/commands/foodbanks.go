package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot/internal/tui"
)

// NewFoodBanksCmd creates the command that lists booking destinations
func NewFoodBanksCmd(deps *Dependencies) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "foodbanks",
		Aliases: []string{"destinations"},
		Short:   "List the food banks a pickup can be booked to",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDeps(cmd, deps); err != nil {
				return err
			}

			catalog, err := deps.BookingService().Fetch(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), tui.FormatErrorContext("Failed to load food banks", err))
				return fmt.Errorf("failed to load food banks: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}

			if len(catalog) == 0 {
				fmt.Fprintln(out, "No food banks available")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFOOD BANK")
			for _, d := range catalog {
				fmt.Fprintf(w, "%s\t%s\n", d.ID, d.DisplayLabel())
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}
