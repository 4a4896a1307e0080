package booking

import (
	"errors"
	"testing"

	apierrors "github.com/wastenot/wastenot/internal/errors"
	"github.com/wastenot/wastenot/internal/models"
)

var catalog = []models.Destination{
	{ID: "fb1", Label: "Downtown Food Bank"},
	{ID: "fb2", Label: "Eastside Pantry"},
	{ID: "fb3", Label: "Harbor Kitchen"},
}

func TestLoaded(t *testing.T) {
	s := Loaded(New(), catalog)
	if len(s.Destinations) != 3 {
		t.Fatalf("len(Destinations) = %d", len(s.Destinations))
	}
	if s.Selected != "fb1" {
		t.Errorf("Selected = %q, want first entry", s.Selected)
	}

	// existing selection is kept
	kept := Loaded(Select(New(), "fb2"), catalog)
	if kept.Selected != "fb2" {
		t.Errorf("Selected = %q, want fb2", kept.Selected)
	}

	empty := Loaded(New(), nil)
	if empty.Selected != "" || len(empty.Destinations) != 0 {
		t.Errorf("empty catalog state = %+v", empty)
	}

	// catalog is copied
	src := append([]models.Destination(nil), catalog...)
	s = Loaded(New(), src)
	src[0].Label = "changed"
	if s.Destinations[0].Label != "Downtown Food Bank" {
		t.Error("Loaded should copy the catalog")
	}
}

func TestLoadFailed(t *testing.T) {
	s := LoadFailed(New(), errors.New("Network Error"))
	if s.Alert == nil || s.Alert.Title != TitleError || s.Alert.Message != "Network Error" {
		t.Errorf("Alert = %+v", s.Alert)
	}
	if len(s.Destinations) != 0 {
		t.Error("catalog should stay empty")
	}
	if DismissAlert(s).Alert != nil {
		t.Error("DismissAlert should clear the alert")
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		phone    string
		wantMsg  string
	}{
		{"both missing reports phone", "", "", models.MsgMissingPhone},
		{"phone missing", "30", "", models.MsgMissingPhone},
		{"duration missing", "", "555-0100", models.MsgMissingDuration},
		{"whitespace counts as present", " ", " ", ""},
		{"valid", "30", "555-0100", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SetPhone(SetDuration(Loaded(New(), catalog), tt.duration), tt.phone)
			next, req := Submit(s)

			if next.ErrorMsg != tt.wantMsg {
				t.Errorf("ErrorMsg = %q, want %q", next.ErrorMsg, tt.wantMsg)
			}
			if tt.wantMsg != "" {
				if req != nil {
					t.Error("invalid form should not produce a request")
				}
				if next.Loading {
					t.Error("invalid form should not set Loading")
				}
				return
			}
			if req == nil {
				t.Fatal("valid form should produce a request")
			}
			if !next.Loading {
				t.Error("Loading should be set")
			}
			want := models.BookingRequest{DestinationID: "fb1", DurationMinutes: tt.duration, Phone: tt.phone}
			if *req != want {
				t.Errorf("request = %+v, want %+v", *req, want)
			}
		})
	}
}

func TestSubmit_ClearsPreviousError(t *testing.T) {
	s, _ := Submit(New())
	if s.ErrorMsg == "" {
		t.Fatal("expected validation error")
	}
	s = SetPhone(SetDuration(s, "15"), "555")
	s, req := Submit(s)
	if req == nil || s.ErrorMsg != "" {
		t.Errorf("ErrorMsg = %q, req = %v", s.ErrorMsg, req)
	}
}

func TestSubmit_NoopWhileLoading(t *testing.T) {
	s := SetPhone(SetDuration(New(), "15"), "555")
	s, first := Submit(s)
	if first == nil {
		t.Fatal("first submit should produce a request")
	}
	again, second := Submit(s)
	if second != nil {
		t.Error("second submit while loading should be a no-op")
	}
	if !again.Loading {
		t.Error("Loading should still be set")
	}
}

func TestSucceededAndFailed(t *testing.T) {
	loading := State{Loading: true}

	ok := Succeeded(loading)
	if ok.Loading {
		t.Error("Succeeded should clear Loading")
	}
	if ok.Alert == nil || ok.Alert.Title != TitleSuccess || ok.Alert.Message != MsgConfirmed {
		t.Errorf("Alert = %+v", ok.Alert)
	}

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"status", apierrors.NewAPIError(500, models.EndpointDriverPickup, "status 500"), MsgSomethingWent},
		{"not found", apierrors.NewAPIError(404, models.EndpointDriverPickup, "status 404"), MsgSomethingWent},
		{"transport", apierrors.NewNetworkError("book pickup", models.EndpointDriverPickup, errors.New("refused")),
			"network error during book pickup at /driver-pickup: refused"},
		{"nil", nil, MsgSomethingWent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Failed(loading, tt.err)
			if s.Loading {
				t.Error("Failed should clear Loading")
			}
			if s.Alert == nil || s.Alert.Title != TitleError || s.Alert.Message != tt.wantMsg {
				t.Errorf("Alert = %+v, want message %q", s.Alert, tt.wantMsg)
			}
		})
	}
}

func TestSelectedDestination(t *testing.T) {
	s := Loaded(New(), catalog)
	d, ok := s.SelectedDestination()
	if !ok || d.Label != "Downtown Food Bank" {
		t.Errorf("SelectedDestination() = %+v, %v", d, ok)
	}
	if _, ok := Select(s, "nope").SelectedDestination(); ok {
		t.Error("unknown id should not resolve")
	}
}
