package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot/internal/render"
	"github.com/wastenot/wastenot/internal/tui"
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// askOptions holds the flags of the ask command
type askOptions struct {
	sessionID int
	output    string
	raw       bool
}

// NewAskCmd creates the one-shot chat command
func NewAskCmd(deps *Dependencies) *cobra.Command {
	var opts askOptions

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Send a single message to the donation assistant",
		Long: `Send one message and print the assistant's reply.

Output is plain text when stdout is not a terminal, so the reply can be piped.
Pass --session-id to continue the same conversation across calls.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDeps(cmd, deps); err != nil {
				return err
			}
			rawOutput := opts.raw || !isStdoutTTY()
			return runAsk(cmd, deps, strings.Join(args, " "), opts, rawOutput)
		},
	}

	cmd.Flags().IntVar(&opts.sessionID, "session-id", 0, "Session id to send with the message (default random)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Save the reply to a file")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print only the reply text")
	return cmd
}

// runAsk sends message and writes the reply. When rawOutput is set only the
// reply text is printed, without decoration.
func runAsk(cmd *cobra.Command, deps *Dependencies, message string, opts askOptions, rawOutput bool) error {
	state := newChatState(opts.sessionID)
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	var spin *spinner
	if !rawOutput {
		spin = newSpinner(stderr, "Waiting for Waste Not")
		spin.start()
	}

	state, err := deps.ChatService().Send(cmd.Context(), state, message)
	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(stderr, tui.FormatErrorContext("Chat failed", err))
		}
		return fmt.Errorf("chat failed: %w", err)
	}
	if !rawOutput {
		spin.stopWithSuccess(fmt.Sprintf("Reply received (session %d)", state.SessionID))
	}

	reply := state.Last().Text

	if rawOutput {
		if opts.output != "" {
			if err := os.WriteFile(opts.output, []byte(reply), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Fprint(stdout, reply)
		return nil
	}

	theme := render.GetTUITheme()
	successStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

	if deps.Config.CopyToClipboard {
		if err := copyToClipboard(reply); err != nil {
			fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(theme.Error).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(stderr, successStyle.Render("✓ Copied to clipboard"))
		}
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(reply), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintln(stderr, successStyle.Render(fmt.Sprintf("✓ Reply saved to %s", opts.output)))
		return nil
	}

	bubbleWidth := getTerminalWidth() - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}

	label := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("🌱 Waste Not")
	bubble := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Text).
		Padding(0, 1).
		Width(bubbleWidth).
		Render(render.Reply(reply, deps.RenderOptions(bubbleWidth-4)))

	fmt.Fprintln(stdout, label)
	fmt.Fprintln(stdout, bubble)
	return nil
}
