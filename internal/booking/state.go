// Package booking holds the delivery booking form as an immutable snapshot
// and the transitions that move it.
package booking

import (
	apierrors "github.com/wastenot/wastenot/internal/errors"
	"github.com/wastenot/wastenot/internal/models"
)

// Alert titles and messages
const (
	TitleError   = "Error"
	TitleSuccess = "Success"

	MsgConfirmed     = "Your booking has been confirmed"
	MsgSomethingWent = "Something went wrong"
)

// Alert is a modal notice shown once and then dismissed
type Alert struct {
	Title   string
	Message string
}

// State is one snapshot of the booking form
type State struct {
	Destinations []models.Destination
	// Selected is the ID of the chosen destination
	Selected string
	Duration string
	Phone    string
	Loading  bool
	// ErrorMsg is the inline validation message, empty when none
	ErrorMsg string
	Alert    *Alert
}

// New returns an empty form
func New() State {
	return State{}
}

// Request returns the booking request the current fields describe
func (s State) Request() models.BookingRequest {
	return models.BookingRequest{
		DestinationID:   s.Selected,
		DurationMinutes: s.Duration,
		Phone:           s.Phone,
	}
}

// SelectedDestination returns the catalog entry for Selected
func (s State) SelectedDestination() (models.Destination, bool) {
	return models.FindDestination(s.Destinations, s.Selected)
}

// Loaded replaces the catalog. When nothing is selected yet the first entry
// becomes the selection.
func Loaded(s State, catalog []models.Destination) State {
	s.Destinations = append([]models.Destination(nil), catalog...)
	if s.Selected == "" && len(s.Destinations) > 0 {
		s.Selected = s.Destinations[0].ID
	}
	return s
}

// LoadFailed surfaces a catalog load failure. The catalog stays empty.
func LoadFailed(s State, err error) State {
	s.Destinations = nil
	s.Alert = &Alert{Title: TitleError, Message: err.Error()}
	return s
}

// Select sets the chosen destination
func Select(s State, id string) State {
	s.Selected = id
	return s
}

// SetDuration sets the duration field
func SetDuration(s State, v string) State {
	s.Duration = v
	return s
}

// SetPhone sets the phone field
func SetPhone(s State, v string) State {
	s.Phone = v
	return s
}

// Submit validates the form. On failure it sets ErrorMsg and returns no
// request. On success it clears ErrorMsg, sets Loading and returns the
// request to send. Submitting while Loading is a no-op.
func Submit(s State) (State, *models.BookingRequest) {
	if s.Loading {
		return s, nil
	}
	s.ErrorMsg = ""

	req := s.Request()
	if err := req.Validate(); err != nil {
		s.ErrorMsg = err.Error()
		return s, nil
	}

	s.Loading = true
	return s, &req
}

// Succeeded records a confirmed booking
func Succeeded(s State) State {
	s.Loading = false
	s.ErrorMsg = ""
	s.Alert = &Alert{Title: TitleSuccess, Message: MsgConfirmed}
	return s
}

// Failed records a failed booking. A rejected request reads "Something went
// wrong"; a transport failure shows its own message.
func Failed(s State, err error) State {
	s.Loading = false
	msg := MsgSomethingWent
	if err != nil && !apierrors.IsAPIError(err) {
		msg = err.Error()
	}
	s.Alert = &Alert{Title: TitleError, Message: msg}
	return s
}

// DismissAlert clears the current alert
func DismissAlert(s State) State {
	s.Alert = nil
	return s
}
