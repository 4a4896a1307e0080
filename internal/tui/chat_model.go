package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wastenot/wastenot/internal/chat"
	"github.com/wastenot/wastenot/internal/models"
	"github.com/wastenot/wastenot/internal/render"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the chat screen
type (
	chatResultMsg struct {
		mount  uint64
		result chat.Result
	}
	clearNoticeMsg struct{}
	// backMsg asks the parent app to return to the home menu
	backMsg struct{}
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// Gradient colors for the loading animation
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#8fc46a"),
	lipgloss.Color("#a7d37e"),
	lipgloss.Color("#c9e4a6"),
	lipgloss.Color("#e9c46a"),
	lipgloss.Color("#f0a04b"),
	lipgloss.Color("#e76f51"),
}

// ChatModel is the donation chat screen
type ChatModel struct {
	service    *chat.Service
	state      chat.State
	renderOpts render.Options

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	ready          bool
	notice         string
	animationFrame int
	// embedded models return to the home menu on esc instead of quitting
	embedded bool
	// mount identifies this screen instance; results tagged with another
	// mount belong to a screen that was closed and are dropped
	mount uint64

	width  int
	height int
}

// NewChatModel creates a chat screen for a fresh session
func NewChatModel(service *chat.Service, state chat.State, renderOpts render.Options) ChatModel {
	ta := textarea.New()
	ta.Placeholder = "Tell us about the food you'd like to donate..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return ChatModel{
		service:    service,
		state:      state,
		renderOpts: renderOpts,
		textarea:   ta,
		spinner:    s,
	}
}

// State returns the current chat snapshot
func (m ChatModel) State() chat.State {
	return m.state
}

// Init initializes the model
func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

func clearNotice(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// Update handles messages and updates the model
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state.Err() != nil {
				m.state = chat.DismissError(m.state)
				return m, nil
			}
			if m.embedded {
				return m, func() tea.Msg { return backMsg{} }
			}
			return m, tea.Quit

		case "ctrl+y":
			return m, m.copyLastReply()

		case "enter":
			if m.state.Pending() {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			next, req, err := chat.Submit(m.state, input)
			if err != nil {
				return m, nil
			}
			m.state = next
			m.textarea.Reset()
			m.animationFrame = 0
			m.updateViewport()
			m.viewport.GotoBottom()

			return m, tea.Batch(
				m.send(req),
				m.spinner.Tick,
				animationTick(),
			)
		}

	case chatResultMsg:
		if msg.mount != m.mount {
			return m, nil
		}
		m.state = chat.Apply(m.state, msg.result)
		m.updateViewport()
		m.viewport.GotoBottom()

	case clearNoticeMsg:
		m.notice = ""

	case spinner.TickMsg:
		if m.state.Pending() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.state.Pending() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Input is disabled while a reply is pending. Only key messages reach
	// the textarea so terminal escape sequences don't leak into it.
	if !m.state.Pending() {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// send creates a command that performs the remote half of a turn
func (m ChatModel) send(req chat.Request) tea.Cmd {
	service := m.service
	mount := m.mount
	return func() tea.Msg {
		return chatResultMsg{mount: mount, result: service.Call(context.Background(), req)}
	}
}

func (m *ChatModel) copyLastReply() tea.Cmd {
	transcript := m.state.Transcript()
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role != models.RoleAssistant {
			continue
		}
		if err := copyToClipboard(transcript[i].Text); err != nil {
			m.notice = "Copy failed: " + err.Error()
		} else {
			m.notice = "Copied last reply to clipboard"
		}
		return clearNotice(2 * time.Second)
	}
	return nil
}

// View renders the chat screen
func (m ChatModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	headerContent := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("🥕 Donate Food"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(fmt.Sprintf("session %d", m.state.SessionID)),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	sections = append(sections, messagesPanel)

	var inputContent string
	if m.state.Pending() {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if err := m.state.Err(); err != nil {
		sections = append(sections, FormatError(err))
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ChatModel) renderLoadingAnimation() string {
	frame := m.animationFrame

	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < 3; i++ {
		if i < numDots {
			dots += lipgloss.NewStyle().Foreground(gradientColors[(frame+i)%len(gradientColors)]).Render("●")
		} else {
			dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
		}
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Waste Not is replying ")
	return fmt.Sprintf("%s %s %s", m.spinner.View(), text, dots)
}

func (m ChatModel) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+Y", "Copy reply"},
		{"↑↓", "Scroll"},
		{"Esc", "Back"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content from the transcript
func (m *ChatModel) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	for i, msg := range m.state.Transcript() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("● You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("🌱 Waste Not")
			rendered := render.Reply(msg.Text, m.renderOpts.WithWidth(bubbleWidth-4))
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI on its own
func RunChat(service *chat.Service, state chat.State, renderOpts render.Options) error {
	p := tea.NewProgram(
		NewChatModel(service, state, renderOpts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
