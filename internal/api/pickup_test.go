package api

import (
	"context"
	"encoding/json"
	"testing"

	apierrors "github.com/wastenot/wastenot/internal/errors"
	"github.com/wastenot/wastenot/internal/models"
)

func TestBookPickup(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"ok", 200, `{"status":"booked"}`, false},
		{"created with empty body", 201, ``, false},
		{"no content", 204, ``, false},
		{"bad request", 400, `{"error":"bad phone"}`, true},
		{"not found", 404, ``, true},
		{"server error", 503, `down`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockHttpClient([]byte(tt.body), tt.status)
			client := newTestClient(t, mock)

			req := models.BookingRequest{DestinationID: "cityharvest", DurationMinutes: "45", Phone: "555-0100"}
			err := client.BookPickup(context.Background(), req)
			if tt.wantErr {
				if apierrors.GetHTTPStatus(err) != tt.status {
					t.Errorf("GetHTTPStatus() = %d, want %d", apierrors.GetHTTPStatus(err), tt.status)
				}
			} else if err != nil {
				t.Fatalf("BookPickup() error = %v", err)
			}

			if mock.requestCount() != 1 {
				t.Fatalf("requests = %d, want exactly 1", mock.requestCount())
			}
			sent := mock.Requests[0]
			if sent.Method != "POST" || sent.URL != "http://wastenot.test:8123/driver-pickup" {
				t.Errorf("request = %s %s", sent.Method, sent.URL)
			}

			var body map[string]string
			if err := json.Unmarshal([]byte(sent.Body), &body); err != nil {
				t.Fatalf("body not JSON: %v", err)
			}
			want := map[string]string{"destination": "cityharvest", "time": "45", "phone": "555-0100"}
			if len(body) != len(want) {
				t.Errorf("body has %d fields, want %d: %v", len(body), len(want), body)
			}
			for k, v := range want {
				if body[k] != v {
					t.Errorf("body[%s] = %q, want %q", k, body[k], v)
				}
			}
		})
	}
}
