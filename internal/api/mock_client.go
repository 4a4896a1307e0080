package api

import (
	"context"
	"sync"

	"github.com/wastenot/wastenot/internal/models"
)

// MockClient is a mock implementation of ClientInterface for testing
type MockClient struct {
	mu sync.Mutex

	// Mock return values
	ChatReply       string
	ChatErr         error
	ChatFunc        func(req models.ChatRequest) (string, error)
	Destinations    []models.Destination
	DestinationsErr error
	BookErr         error
	BaseURLVal      string

	// Call counters/recorders
	ChatRequests    []models.ChatRequest
	FetchCalls      int
	BookingRequests []models.BookingRequest
	CloseCalled     bool
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) SendChat(ctx context.Context, req models.ChatRequest) (string, error) {
	m.mu.Lock()
	m.ChatRequests = append(m.ChatRequests, req)
	fn := m.ChatFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(req)
	}
	return m.ChatReply, m.ChatErr
}

func (m *MockClient) FetchDestinations(ctx context.Context) ([]models.Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	return m.Destinations, m.DestinationsErr
}

func (m *MockClient) BookPickup(ctx context.Context, req models.BookingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BookingRequests = append(m.BookingRequests, req)
	return m.BookErr
}

func (m *MockClient) BaseURL() string {
	if m.BaseURLVal == "" {
		return models.DefaultBaseURL
	}
	return m.BaseURLVal
}

func (m *MockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
}

// ChatCallCount returns how many chat requests were recorded
func (m *MockClient) ChatCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ChatRequests)
}

// BookCallCount returns how many booking requests were recorded
func (m *MockClient) BookCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.BookingRequests)
}
