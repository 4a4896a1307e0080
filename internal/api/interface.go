package api

import (
	"context"

	"github.com/wastenot/wastenot/internal/models"
)

// ClientInterface is what the rest of the application needs from the service client
type ClientInterface interface {
	// SendChat posts one user turn and returns the assistant reply
	SendChat(ctx context.Context, req models.ChatRequest) (string, error)
	// FetchDestinations loads the food bank catalog
	FetchDestinations(ctx context.Context) ([]models.Destination, error)
	// BookPickup submits a driver pickup booking
	BookPickup(ctx context.Context, req models.BookingRequest) error
	BaseURL() string
	Close()
}

var _ ClientInterface = (*Client)(nil)
