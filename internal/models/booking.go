package models

import apierrors "github.com/wastenot/wastenot/internal/errors"

// Validation messages shown inline on the booking form
const (
	MsgMissingPhone    = "Please select a valid phone number"
	MsgMissingDuration = "Please select the time you would be available for!"
)

// BookingRequest is the body posted to the driver pickup endpoint.
// DurationMinutes and Phone are free text; only emptiness is checked.
type BookingRequest struct {
	DestinationID   string `json:"destination"`
	DurationMinutes string `json:"time"`
	Phone           string `json:"phone"`
}

// Validate checks the required fields. Phone is checked before duration, so
// when both are missing the phone message is the one reported.
func (r BookingRequest) Validate() error {
	if r.Phone == "" {
		return apierrors.NewValidationError("phone", MsgMissingPhone)
	}
	if r.DurationMinutes == "" {
		return apierrors.NewValidationError("time", MsgMissingDuration)
	}
	return nil
}
