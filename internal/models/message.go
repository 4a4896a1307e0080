package models

// Role identifies who authored a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting is the fixed assistant message every donation chat starts with
const Greeting = "Hi, if you'd like to save the planet bite-by-bite, please let me know details about the food you'd like to donate!"

// ChatMessage is one entry of a chat transcript
type ChatMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// UserMessage builds a message authored by the user
func UserMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleUser, Text: text}
}

// AssistantMessage builds a message authored by the remote assistant
func AssistantMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Text: text}
}

// ChatRequest is the body posted to the chat endpoint
type ChatRequest struct {
	Query     string `json:"query"`
	SessionID int    `json:"id"`
}
