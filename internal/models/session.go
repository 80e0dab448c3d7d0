package models

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one entry of a session transcript. Timestamps are epoch
// milliseconds, matching the editor's wire format.
type ChatMessage struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// ChatSession groups a conversation with the landing page it produced.
// LPConfig is nil until the first successful generation and is replaced
// wholesale on every subsequent one.
type ChatSession struct {
	ID        string        `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	LPConfig  *LandingPage  `json:"lpConfig"`
	CreatedAt int64         `json:"createdAt"`
	UpdatedAt int64         `json:"updatedAt"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required,no_html"`
	SessionID string `json:"sessionId"`
	UserKey   string `json:"userKey"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Session *ChatSession `json:"session"`
	Config  *LandingPage `json:"config"`
}
