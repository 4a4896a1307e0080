// Package chat holds the donation chat transcript as an immutable snapshot
// and the pure transitions that move it.
package chat

import (
	"math/rand"

	apierrors "github.com/wastenot/wastenot/internal/errors"
	"github.com/wastenot/wastenot/internal/models"
)

// State is one snapshot of a chat session. Transitions never mutate a
// State; they return a new one whose transcript shares no backing array
// with the old one.
type State struct {
	SessionID  int
	transcript []models.ChatMessage
	// seq is the sequence number of the most recently issued request
	seq     uint64
	pending bool
	err     error
}

// Request is an outbound chat turn tagged with the sequence it belongs to
type Request struct {
	Seq     uint64
	Payload models.ChatRequest
}

// Initialize returns the starting state: the greeting and a session id
// drawn from [MinSessionID, MaxSessionID].
func Initialize(rng *rand.Rand) State {
	span := models.MaxSessionID - models.MinSessionID + 1
	var id int
	if rng != nil {
		id = rng.Intn(span) + models.MinSessionID
	} else {
		id = rand.Intn(span) + models.MinSessionID
	}
	return WithSessionID(id)
}

// WithSessionID returns the starting state for a known session id
func WithSessionID(id int) State {
	return State{
		SessionID:  id,
		transcript: []models.ChatMessage{models.AssistantMessage(models.Greeting)},
	}
}

// Transcript returns a copy of the messages in display order
func (s State) Transcript() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len returns the number of messages in the transcript
func (s State) Len() int {
	return len(s.transcript)
}

// Last returns the newest message
func (s State) Last() models.ChatMessage {
	return s.transcript[len(s.transcript)-1]
}

// Pending reports whether a reply is outstanding
func (s State) Pending() bool {
	return s.pending
}

// Err returns the failure of the last request, if any
func (s State) Err() error {
	return s.err
}

// Seq returns the sequence number of the latest issued request
func (s State) Seq() uint64 {
	return s.seq
}

func (s State) appended(msg models.ChatMessage) State {
	next := s
	next.transcript = make([]models.ChatMessage, len(s.transcript), len(s.transcript)+1)
	copy(next.transcript, s.transcript)
	next.transcript = append(next.transcript, msg)
	return next
}

// Submit appends the user message right away and returns the request to
// send. Empty text is allowed. Only one request may be outstanding: while a
// reply is pending Submit returns ErrRequestInFlight and the state unchanged.
func Submit(s State, text string) (State, Request, error) {
	if s.pending {
		return s, Request{}, apierrors.ErrRequestInFlight
	}

	next := s.appended(models.UserMessage(text))
	next.seq = s.seq + 1
	next.pending = true
	next.err = nil

	req := Request{
		Seq:     next.seq,
		Payload: models.ChatRequest{Query: text, SessionID: s.SessionID},
	}
	return next, req, nil
}

// Receive appends the assistant reply for request seq. Replies for anything
// but the latest request are dropped.
func Receive(s State, seq uint64, reply string) State {
	if !s.pending || seq != s.seq {
		return s
	}
	next := s.appended(models.AssistantMessage(reply))
	next.pending = false
	next.err = nil
	return next
}

// Fail records the failure of request seq so the view can show it. No
// assistant message is appended.
func Fail(s State, seq uint64, err error) State {
	if !s.pending || seq != s.seq {
		return s
	}
	next := s
	next.pending = false
	next.err = err
	return next
}

// DismissError clears a surfaced failure
func DismissError(s State) State {
	next := s
	next.err = nil
	return next
}
