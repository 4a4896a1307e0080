package api

import (
	"context"

	"github.com/tidwall/gjson"

	apierrors "github.com/wastenot/wastenot/internal/errors"
	"github.com/wastenot/wastenot/internal/models"
)

// SendChat posts a user turn to /chat and returns the reply text
func (c *Client) SendChat(ctx context.Context, req models.ChatRequest) (string, error) {
	body, err := c.doJSON(ctx, "POST", models.EndpointChat, "send chat message", req)
	if err != nil {
		return "", err
	}
	return parseChatResponse(body)
}

// parseChatResponse extracts the reply from {"prompt": "..."}
func parseChatResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("chat response is not valid JSON", "")
	}

	prompt := gjson.GetBytes(body, PathPrompt)
	if !prompt.Exists() {
		return "", apierrors.NewParseError("chat response has no reply", PathPrompt)
	}

	return prompt.String(), nil
}
