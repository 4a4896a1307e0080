package commands

import (
	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot/internal/chat"
	"github.com/wastenot/wastenot/internal/models"
)

// NewDonateCmd creates the interactive donation chat command
func NewDonateCmd(deps *Dependencies) *cobra.Command {
	var sessionID int

	cmd := &cobra.Command{
		Use:     "donate",
		Aliases: []string{"chat"},
		Short:   "Chat with the assistant about food you'd like to donate",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDeps(cmd, deps); err != nil {
				return err
			}
			return deps.TUI.RunChat(
				deps.ChatService(),
				newChatState(sessionID),
				deps.RenderOptions(getTerminalWidth()),
			)
		},
	}

	cmd.Flags().IntVar(&sessionID, "session-id", 0,
		"Continue an existing conversation (1-10000, default random)")
	return cmd
}

// newChatState starts a chat with id, or a random id when id is out of range
func newChatState(id int) chat.State {
	if id >= models.MinSessionID && id <= models.MaxSessionID {
		return chat.WithSessionID(id)
	}
	return chat.Initialize(nil)
}
