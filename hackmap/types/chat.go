// hackmap/types/chat.go
package types

// ChatMessage is one turn in a conversation, in the wire format the
// chat-completion API expects.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

type RecommendRequest struct {
	UserInput   string        `json:"userInput"`
	NearbyHacks string        `json:"nearbyHacks"`
	ChatHistory []ChatMessage `json:"chatHistory,omitempty"`
}

type ProjectChatRequest struct {
	UserInput   string        `json:"userInput"`
	RepoURL     string        `json:"repoUrl"`
	ChatHistory []ChatMessage `json:"chatHistory,omitempty"`
}
