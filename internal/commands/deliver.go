package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot/internal/booking"
	"github.com/wastenot/wastenot/internal/render"
)

// NewDeliverCmd creates the interactive booking command
func NewDeliverCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "deliver",
		Short: "Book a driver pickup to a food bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDeps(cmd, deps); err != nil {
				return err
			}
			return deps.TUI.RunBooking(deps.BookingService())
		},
	}
}

// NewBookCmd creates the non-interactive booking command
func NewBookCmd(deps *Dependencies) *cobra.Command {
	var destination, duration, phone string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a driver pickup without the interactive form",
		Long: `Book a driver pickup. --time is the number of minutes you are available
and --phone is a contact number; both are required. --destination is the
food bank name as listed by 'wastenot foodbanks'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDeps(cmd, deps); err != nil {
				return err
			}

			state := booking.New()
			state = booking.Select(state, destination)
			state = booking.SetDuration(state, duration)
			state = booking.SetPhone(state, phone)

			return runBook(cmd, deps, state)
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Food bank to deliver to")
	cmd.Flags().StringVarP(&duration, "time", "t", "", "Minutes you are available")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "Contact phone number")
	return cmd
}

func runBook(cmd *cobra.Command, deps *Dependencies, state booking.State) error {
	stderr := cmd.ErrOrStderr()
	theme := render.GetTUITheme()

	// validate first so a bad form never shows a spinner
	if checked, req := booking.Submit(state); req == nil {
		fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+checked.ErrorMsg))
		return errors.New(checked.ErrorMsg)
	}

	spin := newSpinner(stderr, "Booking pickup")
	spin.start()

	result := deps.BookingService().Submit(cmd.Context(), state)
	alert := result.Alert
	if alert == nil || alert.Title != booking.TitleSuccess {
		spin.stopWithError()
		msg := booking.MsgSomethingWent
		if alert != nil {
			msg = alert.Message
		}
		fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+msg))
		return errors.New(msg)
	}

	spin.stopWithSuccess(alert.Message)
	return nil
}
