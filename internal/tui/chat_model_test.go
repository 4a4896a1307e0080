package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/wastenot/wastenot/internal/api"
	"github.com/wastenot/wastenot/internal/chat"
	"github.com/wastenot/wastenot/internal/models"
	"github.com/wastenot/wastenot/internal/render"
)

func newTestChatModel(t *testing.T, mock *api.MockClient) ChatModel {
	t.Helper()
	svc := chat.NewService(mock, zap.NewNop())
	opts := render.DefaultOptions().WithStyle(render.StyleNoTTY)
	m := NewChatModel(svc, chat.WithSessionID(42), opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(ChatModel)
}

func pressEnter(m ChatModel) (ChatModel, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(ChatModel), cmd
}

func TestChatModel_InitialView(t *testing.T) {
	m := newTestChatModel(t, &api.MockClient{})

	if !m.ready {
		t.Fatal("model should be ready after a WindowSizeMsg")
	}
	if m.State().Len() != 1 {
		t.Errorf("transcript length = %d, want 1", m.State().Len())
	}
	view := m.View()
	if !strings.Contains(view, "session 42") {
		t.Error("header should show the session id")
	}
	if !strings.Contains(view, "save the planet") {
		t.Error("greeting should be visible")
	}
}

func TestChatModel_NotReadyView(t *testing.T) {
	m := NewChatModel(nil, chat.WithSessionID(1), render.DefaultOptions())
	if !strings.Contains(m.View(), "Initializing") {
		t.Errorf("View() before sizing = %q", m.View())
	}
}

func TestChatModel_SendAndReceive(t *testing.T) {
	mock := &api.MockClient{ChatReply: "Great, where are you located?"}
	m := newTestChatModel(t, mock)

	m.textarea.SetValue("I have 5 lbs of rice")
	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("enter should return a command")
	}

	if !m.State().Pending() {
		t.Error("state should be pending after submit")
	}
	if m.State().Len() != 2 || m.State().Last() != models.UserMessage("I have 5 lbs of rice") {
		t.Errorf("user message not appended: %+v", m.State().Transcript())
	}
	if m.textarea.Value() != "" {
		t.Error("textarea should be cleared")
	}

	// input is disabled while pending
	m.textarea.SetValue("second")
	again, cmd := pressEnter(m)
	if cmd != nil || again.State().Len() != 2 {
		t.Error("enter while pending should do nothing")
	}

	req := chat.Request{Seq: m.State().Seq(), Payload: models.ChatRequest{Query: "I have 5 lbs of rice", SessionID: 42}}
	msg := m.send(req)()
	result, ok := msg.(chatResultMsg)
	if !ok {
		t.Fatalf("send() returned %T", msg)
	}

	updated, _ := m.Update(result)
	m = updated.(ChatModel)

	if m.State().Pending() {
		t.Error("pending should clear after the reply")
	}
	if m.State().Len() != 3 || m.State().Last().Text != "Great, where are you located?" {
		t.Errorf("transcript = %+v", m.State().Transcript())
	}
	if mock.ChatRequests[0].SessionID != 42 {
		t.Errorf("request = %+v", mock.ChatRequests[0])
	}
	if !m.viewport.AtBottom() {
		t.Error("viewport should scroll to the newest message")
	}
}

func TestChatModel_FailureShownInline(t *testing.T) {
	mock := &api.MockClient{ChatErr: errors.New("connection refused")}
	m := newTestChatModel(t, mock)

	m.textarea.SetValue("hello")
	m, _ = pressEnter(m)
	req := chat.Request{Seq: m.State().Seq(), Payload: models.ChatRequest{Query: "hello", SessionID: 42}}
	updated, _ := m.Update(m.send(req)())
	m = updated.(ChatModel)

	if m.State().Err() == nil {
		t.Fatal("error should be recorded")
	}
	if !strings.Contains(m.View(), "connection refused") {
		t.Error("error should be visible in the view")
	}

	// esc dismisses the error first
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ChatModel)
	if m.State().Err() != nil || cmd != nil {
		t.Error("esc should dismiss the error without quitting")
	}
}

func TestChatModel_IgnoresBlankInput(t *testing.T) {
	m := newTestChatModel(t, &api.MockClient{})
	m.textarea.SetValue("   ")
	m, _ = pressEnter(m)
	if m.State().Pending() || m.State().Len() != 1 {
		t.Error("blank input should not be submitted")
	}
}

func TestChatModel_EscWhenEmbedded(t *testing.T) {
	m := newTestChatModel(t, &api.MockClient{})
	m.embedded = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(backMsg); !ok {
		t.Error("embedded esc should go back to the menu")
	}
}

func TestChatModel_CopyLastReply(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { copyToClipboard = orig }()

	m := newTestChatModel(t, &api.MockClient{})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = updated.(ChatModel)

	if copied != models.Greeting {
		t.Errorf("copied %q, want greeting", copied)
	}
	if cmd == nil || !strings.Contains(m.notice, "Copied") {
		t.Errorf("notice = %q", m.notice)
	}

	updated, _ = m.Update(clearNoticeMsg{})
	if updated.(ChatModel).notice != "" {
		t.Error("notice should clear")
	}
}
