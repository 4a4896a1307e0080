package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wastenot/wastenot/internal/models"
)

// FormatWeight renders a weight the way the leaderboard shows it
func FormatWeight(lbs float64) string {
	return fmt.Sprintf("%g lbs", lbs)
}

// LeaderboardRows returns one plain line per entry: rank, medal, name, weight
func LeaderboardRows(entries []models.LeaderboardEntry) []string {
	rows := make([]string, len(entries))
	for i, e := range entries {
		medal := models.Medal(i + 1)
		if medal == "" {
			medal = "  "
		}
		rows[i] = fmt.Sprintf("%d. %s %-8s %s", i+1, medal, e.Name, FormatWeight(e.WeightLbs))
	}
	return rows
}

// RenderLeaderboard renders entries as a styled panel in the given order
func RenderLeaderboard(entries []models.LeaderboardEntry) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Leaderboard"))
	sb.WriteString("\n\n")

	for i, e := range entries {
		medal := models.Medal(i + 1)
		if medal == "" {
			medal = "  "
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			rankStyle.Render(fmt.Sprintf("%d.", i+1)),
			medal+" ",
			nameStyle.Render(e.Name),
			weightStyle.Render(FormatWeight(e.WeightLbs)),
		))
		sb.WriteString("\n")
	}

	return formPanelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// LeaderboardModel is the static leaderboard screen
type LeaderboardModel struct {
	entries  []models.LeaderboardEntry
	embedded bool
	width    int
	height   int
}

// NewLeaderboardModel creates the leaderboard screen
func NewLeaderboardModel(entries []models.LeaderboardEntry) LeaderboardModel {
	return LeaderboardModel{entries: entries}
}

func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "enter":
			if m.embedded {
				return m, func() tea.Msg { return backMsg{} }
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LeaderboardModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		RenderLeaderboard(m.entries),
		hintStyle.Render("Esc: back"),
	)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
