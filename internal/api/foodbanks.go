package api

import (
	"context"

	"github.com/tidwall/gjson"

	apierrors "github.com/wastenot/wastenot/internal/errors"
	"github.com/wastenot/wastenot/internal/models"
)

// FetchDestinations loads the food bank catalog from /foodbanks
func (c *Client) FetchDestinations(ctx context.Context) ([]models.Destination, error) {
	body, err := c.doJSON(ctx, "GET", models.EndpointFoodBanks, "load food banks", nil)
	if err != nil {
		return nil, err
	}
	return parseDestinations(body)
}

// parseDestinations decodes [{"name": ..., "text": ...}, ...]. Every array
// element becomes one destination, in server order.
func parseDestinations(body []byte) ([]models.Destination, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("food bank response is not valid JSON", "")
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, apierrors.NewParseError("food bank response is not a list", "@this")
	}

	entries := root.Array()
	destinations := make([]models.Destination, 0, len(entries))
	for _, entry := range entries {
		destinations = append(destinations, models.Destination{
			ID:    entry.Get(PathDestinationID).String(),
			Label: entry.Get(PathDestinationLabel).String(),
		})
	}

	return destinations, nil
}
