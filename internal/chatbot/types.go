package chatbot

import "time"

// ChatRequest is the payload for sending a message to the backend.
type ChatRequest struct {
	ConversationID *int64 `json:"conversation_id"` // nil starts a new conversation
	Message        string `json:"message"`
}

// ToolCall describes a single tool invocation the agent performed
// while producing a response.
type ToolCall struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Result    map[string]any `json:"result"`
}

// ChatResponse is the backend's reply to a sent message.
type ChatResponse struct {
	ConversationID int64      `json:"conversation_id"`
	Response       string     `json:"response"`
	ToolCalls      []ToolCall `json:"tool_calls"`
	ResponseTime   float64    `json:"response_time"` // seconds
}

// Conversation is one conversation record as returned by the backend.
type Conversation struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

// Message is one message belonging to a conversation.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Role           string    `json:"role"` // "user" or "assistant"
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
