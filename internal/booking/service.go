package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/wastenot/wastenot/internal/models"
)

// BookingClient is the part of the service client the booking form needs
type BookingClient interface {
	FetchDestinations(ctx context.Context) ([]models.Destination, error)
	BookPickup(ctx context.Context, req models.BookingRequest) error
}

// Service runs the booking form's network operations
type Service struct {
	client BookingClient
	logger *zap.Logger
}

// NewService creates a Service. A nil logger uses the global zap logger.
func NewService(client BookingClient, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{client: client, logger: logger}
}

// LoadDestinations fetches the catalog and folds the result into state
func (s *Service) LoadDestinations(ctx context.Context, state State) State {
	catalog, err := s.Fetch(ctx)
	if err != nil {
		return LoadFailed(state, err)
	}
	return Loaded(state, catalog)
}

// Fetch loads the catalog, logging the outcome
func (s *Service) Fetch(ctx context.Context) ([]models.Destination, error) {
	catalog, err := s.client.FetchDestinations(ctx)
	if err != nil {
		s.logger.Warn("failed to load destinations", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("destinations loaded", zap.Int("count", len(catalog)))
	return catalog, nil
}

// Submit validates the form and, when valid, posts exactly one booking.
// Loading is always cleared in the returned state.
func (s *Service) Submit(ctx context.Context, state State) State {
	next, req := Submit(state)
	if req == nil {
		return next
	}
	return s.Book(ctx, next, *req)
}

// Book performs the network half of a submit started with Submit
func (s *Service) Book(ctx context.Context, state State, req models.BookingRequest) State {
	if err := s.Post(ctx, req); err != nil {
		return Failed(state, err)
	}
	return Succeeded(state)
}

// Post sends one booking, logging the outcome
func (s *Service) Post(ctx context.Context, req models.BookingRequest) error {
	if err := s.client.BookPickup(ctx, req); err != nil {
		s.logger.Error("booking failed",
			zap.String("destination", req.DestinationID),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("booking confirmed", zap.String("destination", req.DestinationID))
	return nil
}
