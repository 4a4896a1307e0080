package tui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wastenot/wastenot/internal/booking"
	"github.com/wastenot/wastenot/internal/chat"
	"github.com/wastenot/wastenot/internal/models"
	"github.com/wastenot/wastenot/internal/render"
)

type screen int

const (
	screenHome screen = iota
	screenChat
	screenBooking
	screenLeaderboard
)

// menuItems are the entries of the home menu, in display order
var menuItems = []struct {
	label  string
	target screen
}{
	{"Donate Food", screenChat},
	{"Deliver Food", screenBooking},
	{"Leaderboard", screenLeaderboard},
}

// AppModel is the home menu and the screen it currently shows
type AppModel struct {
	chatService    *chat.Service
	bookingService *booking.Service
	renderOpts     render.Options
	rng            *rand.Rand

	screen screen
	cursor int
	child  tea.Model
	// mounts counts opened screens; each child is tagged with its count
	mounts uint64

	width  int
	height int
}

// NewAppModel creates the home menu. A nil rng uses the global source for
// chat session ids.
func NewAppModel(chatService *chat.Service, bookingService *booking.Service, renderOpts render.Options, rng *rand.Rand) AppModel {
	return AppModel{
		chatService:    chatService,
		bookingService: bookingService,
		renderOpts:     renderOpts,
		rng:            rng,
		screen:         screenHome,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

// open mounts a fresh screen. Each mount is a new component lifetime: a new
// chat session id, a fresh catalog fetch.
func (m AppModel) open(target screen) (AppModel, tea.Cmd) {
	mount := m.mounts + 1
	var child tea.Model
	switch target {
	case screenChat:
		cm := NewChatModel(m.chatService, chat.Initialize(m.rng), m.renderOpts)
		cm.embedded = true
		cm.mount = mount
		child = cm
	case screenBooking:
		bm := NewBookingModel(m.bookingService)
		bm.embedded = true
		bm.mount = mount
		child = bm
	case screenLeaderboard:
		lm := NewLeaderboardModel(models.DefaultLeaderboard())
		lm.embedded = true
		child = lm
	default:
		return m, nil
	}

	cmds := []tea.Cmd{child.Init()}
	if m.width > 0 {
		var cmd tea.Cmd
		child, cmd = child.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		cmds = append(cmds, cmd)
	}
	m.mounts = mount
	m.child = child
	m.screen = target
	return m, tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	if _, ok := msg.(backMsg); ok {
		m.child = nil
		m.screen = screenHome
		return m, nil
	}

	if m.screen != screenHome && m.child != nil {
		var cmd tea.Cmd
		m.child, cmd = m.child.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(menuItems)) % len(menuItems)
		case "down", "j", "tab":
			m.cursor = (m.cursor + 1) % len(menuItems)
		case "1", "2", "3":
			m.cursor = int(key.String()[0] - '1')
			return m.open(menuItems[m.cursor].target)
		case "enter":
			return m.open(menuItems[m.cursor].target)
		}
	}
	return m, nil
}

func (m AppModel) View() string {
	if m.screen != screenHome && m.child != nil {
		return m.child.View()
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Welcome to Waste Not!"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("Save the planet bite-by-bite"))
	sb.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.cursor {
			sb.WriteString(menuCursorStyle.Render("▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%d. %s", i+1, item.label)))
		} else {
			sb.WriteString(menuItemStyle.Render(fmt.Sprintf("%d. %s", i+1, item.label)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("↑↓: choose  Enter: open  q: quit"))

	panel := menuPanelStyle.Render(sb.String())
	if m.width == 0 || m.height == 0 {
		return panel
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// RunApp starts the home menu TUI
func RunApp(chatService *chat.Service, bookingService *booking.Service, renderOpts render.Options) error {
	p := tea.NewProgram(
		NewAppModel(chatService, bookingService, renderOpts, nil),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RunLeaderboard starts the leaderboard screen on its own
func RunLeaderboard(entries []models.LeaderboardEntry) error {
	p := tea.NewProgram(NewLeaderboardModel(entries), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
