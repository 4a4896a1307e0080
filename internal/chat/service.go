package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/wastenot/wastenot/internal/models"
)

// ChatClient is the part of the service client a chat needs
type ChatClient interface {
	SendChat(ctx context.Context, req models.ChatRequest) (string, error)
}

// Service runs a full chat turn against a client
type Service struct {
	client ChatClient
	logger *zap.Logger
}

// NewService creates a Service. A nil logger uses the global zap logger.
func NewService(client ChatClient, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{client: client, logger: logger}
}

// Result is the outcome of one remote chat call
type Result struct {
	Seq   uint64
	Reply string
	Err   error
}

// Call performs the network half of a turn. Failures are logged.
func (s *Service) Call(ctx context.Context, req Request) Result {
	reply, err := s.client.SendChat(ctx, req.Payload)
	if err != nil {
		s.logger.Error("chat request failed",
			zap.Int("session_id", req.Payload.SessionID),
			zap.Uint64("seq", req.Seq),
			zap.Error(err),
		)
		return Result{Seq: req.Seq, Err: err}
	}
	return Result{Seq: req.Seq, Reply: reply}
}

// Apply folds a call result into state
func Apply(state State, r Result) State {
	if r.Err != nil {
		return Fail(state, r.Seq, r.Err)
	}
	return Receive(state, r.Seq, r.Reply)
}

// Exchange runs Call and applies its result
func (s *Service) Exchange(ctx context.Context, state State, req Request) State {
	return Apply(state, s.Call(ctx, req))
}

// Send submits text, waits for the reply and returns the new state. The
// returned error is the submit error or the request failure; the state
// carries the failure as well.
func (s *Service) Send(ctx context.Context, state State, text string) (State, error) {
	next, req, err := Submit(state, text)
	if err != nil {
		return state, err
	}
	next = s.Exchange(ctx, next, req)
	return next, next.Err()
}
