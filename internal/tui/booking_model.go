package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wastenot/wastenot/internal/booking"
	"github.com/wastenot/wastenot/internal/models"
)

// booking form field indices
const (
	fieldDestination = iota
	fieldDuration
	fieldPhone
	fieldSubmit
	fieldCount
)

type (
	catalogLoadedMsg struct {
		mount   uint64
		catalog []models.Destination
		err     error
	}
	bookingDoneMsg struct {
		mount uint64
		err   error
	}
)

// BookingModel is the delivery booking screen
type BookingModel struct {
	service *booking.Service
	state   booking.State

	durationInput textinput.Model
	phoneInput    textinput.Model
	spinner       spinner.Model

	focus          int
	catalogLoading bool
	embedded       bool
	// mount identifies this screen instance, see ChatModel.mount
	mount uint64

	width  int
	height int
}

// NewBookingModel creates the booking screen. The catalog is fetched by Init.
func NewBookingModel(service *booking.Service) BookingModel {
	di := textinput.New()
	di.Placeholder = "Select how many minutes you'd like to spend"
	di.CharLimit = 10
	di.Width = 44

	pi := textinput.New()
	pi.Placeholder = "Enter your phone number"
	pi.CharLimit = 32
	pi.Width = 44

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle

	return BookingModel{
		service:        service,
		state:          booking.New(),
		durationInput:  di,
		phoneInput:     pi,
		spinner:        s,
		focus:          fieldDestination,
		catalogLoading: true,
	}
}

// State returns the current form snapshot
func (m BookingModel) State() booking.State {
	return m.state
}

// Init fetches the destination catalog
func (m BookingModel) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), m.spinner.Tick, textinput.Blink)
}

func (m BookingModel) loadCatalog() tea.Cmd {
	service, mount := m.service, m.mount
	return func() tea.Msg {
		catalog, err := service.Fetch(context.Background())
		return catalogLoadedMsg{mount: mount, catalog: catalog, err: err}
	}
}

func (m BookingModel) book(req models.BookingRequest) tea.Cmd {
	service, mount := m.service, m.mount
	return func() tea.Msg {
		return bookingDoneMsg{mount: mount, err: service.Post(context.Background(), req)}
	}
}

// Update handles messages and updates the model
func (m BookingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		if msg.mount != m.mount {
			return m, nil
		}
		m.catalogLoading = false
		if msg.err != nil {
			m.state = booking.LoadFailed(m.state, msg.err)
		} else {
			m.state = booking.Loaded(m.state, msg.catalog)
		}
		return m, nil

	case bookingDoneMsg:
		if msg.mount != m.mount || !m.state.Loading {
			return m, nil
		}
		if msg.err != nil {
			m.state = booking.Failed(m.state, msg.err)
		} else {
			m.state = booking.Succeeded(m.state)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Loading || m.catalogLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m BookingModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// An open alert swallows input until dismissed
	if m.state.Alert != nil {
		switch key {
		case "enter", "esc", " ":
			m.state = booking.DismissAlert(m.state)
		}
		return m, nil
	}

	switch key {
	case "esc":
		if m.embedded {
			return m, func() tea.Msg { return backMsg{} }
		}
		return m, tea.Quit

	case "tab", "down":
		m.blurCurrent()
		m.focus = (m.focus + 1) % fieldCount
		return m, m.focusCurrent()

	case "shift+tab", "up":
		m.blurCurrent()
		m.focus = (m.focus - 1 + fieldCount) % fieldCount
		return m, m.focusCurrent()

	case "enter":
		return m.submit()
	}

	switch m.focus {
	case fieldDestination:
		switch key {
		case "left", "h":
			m.cycleDestination(-1)
		case "right", "l":
			m.cycleDestination(1)
		}
	case fieldDuration:
		var cmd tea.Cmd
		m.durationInput, cmd = m.durationInput.Update(msg)
		m.state = booking.SetDuration(m.state, m.durationInput.Value())
		return m, cmd
	case fieldPhone:
		var cmd tea.Cmd
		m.phoneInput, cmd = m.phoneInput.Update(msg)
		m.state = booking.SetPhone(m.state, m.phoneInput.Value())
		return m, cmd
	}

	return m, nil
}

func (m BookingModel) submit() (tea.Model, tea.Cmd) {
	next, req := booking.Submit(m.state)
	m.state = next
	if req == nil {
		return m, nil
	}
	return m, tea.Batch(m.book(*req), m.spinner.Tick)
}

func (m *BookingModel) cycleDestination(delta int) {
	n := len(m.state.Destinations)
	if n == 0 {
		return
	}
	idx := 0
	for i, d := range m.state.Destinations {
		if d.ID == m.state.Selected {
			idx = i
			break
		}
	}
	idx = (idx + delta + n) % n
	m.state = booking.Select(m.state, m.state.Destinations[idx].ID)
}

func (m *BookingModel) blurCurrent() {
	switch m.focus {
	case fieldDuration:
		m.durationInput.Blur()
	case fieldPhone:
		m.phoneInput.Blur()
	}
}

func (m *BookingModel) focusCurrent() tea.Cmd {
	switch m.focus {
	case fieldDuration:
		return m.durationInput.Focus()
	case fieldPhone:
		return m.phoneInput.Focus()
	}
	return nil
}

// View renders the booking screen
func (m BookingModel) View() string {
	title := titleStyle.Render("Help get food to food banks!")

	rows := []string{
		title,
		"",
		m.fieldLabel("Destination:", fieldDestination) + m.renderDestination(),
		"",
		m.fieldLabel("Time:", fieldDuration) + m.durationInput.View(),
		"",
		m.fieldLabel("Phone Number:", fieldPhone) + m.phoneInput.View(),
		"",
	}

	if m.state.ErrorMsg != "" {
		rows = append(rows, errorStyle.Render(m.state.ErrorMsg), "")
	}

	rows = append(rows, m.renderButton(), "",
		hintStyle.Render("Tab: next  ←→: destination  Enter: book  Esc: back"))

	form := formPanelStyle.Render(strings.Join(rows, "\n"))
	if m.state.Alert != nil {
		form = lipgloss.JoinVertical(lipgloss.Center, form, m.renderAlert())
	}

	if m.width == 0 || m.height == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

func (m BookingModel) fieldLabel(label string, field int) string {
	if m.focus == field {
		return fieldLabelFocused.Render(label)
	}
	return fieldLabelStyle.Render(label)
}

func (m BookingModel) renderDestination() string {
	if m.catalogLoading {
		return m.spinner.View() + hintStyle.Render(" loading food banks...")
	}
	d, ok := m.state.SelectedDestination()
	if !ok {
		return hintStyle.Render("no destinations available")
	}

	idx := 0
	for i, entry := range m.state.Destinations {
		if entry.ID == d.ID {
			idx = i
			break
		}
	}
	label := d.DisplayLabel()
	if m.focus == fieldDestination {
		label = menuSelectedStyle.Render("‹ " + label + " ›")
	}
	return fmt.Sprintf("%s %s", label, hintStyle.Render(fmt.Sprintf("(%d/%d)", idx+1, len(m.state.Destinations))))
}

func (m BookingModel) renderButton() string {
	style := buttonStyle
	if m.focus == fieldSubmit {
		style = buttonFocusedStyle
	}
	if m.state.Loading {
		return style.Render(m.spinner.View() + " Booking...")
	}
	return style.Render("Book now")
}

func (m BookingModel) renderAlert() string {
	a := m.state.Alert
	heading := alertTitleStyle
	if a.Title == booking.TitleError {
		heading = alertErrorTitleStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		heading.Render(a.Title),
		"",
		a.Message,
		"",
		hintStyle.Render("Enter: OK"),
	)
	return alertStyle.Render(body)
}

// RunBooking starts the booking TUI on its own
func RunBooking(service *booking.Service) error {
	p := tea.NewProgram(NewBookingModel(service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
