package api

import (
	"context"

	"github.com/wastenot/wastenot/internal/models"
)

// BookPickup posts a booking to /driver-pickup. Any 2xx answer is success
// and the body is ignored.
func (c *Client) BookPickup(ctx context.Context, req models.BookingRequest) error {
	_, err := c.doJSON(ctx, "POST", models.EndpointDriverPickup, "book pickup", req)
	return err
}
