package api

// GJSON paths for extracting values from service responses
const (
	// Chat reply: {"prompt": "..."}
	PathPrompt = "prompt"

	// Catalog entry fields: [{"name": "...", "text": "..."}]
	PathDestinationID    = "name"
	PathDestinationLabel = "text"
)
