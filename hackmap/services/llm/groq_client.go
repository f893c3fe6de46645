package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"hackmap/hackmap/config"
	"hackmap/hackmap/types"
	"hackmap/hackmap/utils/logging"

	"go.uber.org/zap"
)

// Model is pinned; there is no per-request tuning.
const Model = "llama-3.3-70b-versatile"

// ErrGenerationFailed covers every upstream failure mode: transport errors,
// auth/quota rejections, and undecodable responses all collapse into it.
var ErrGenerationFailed = errors.New("failed to generate AI response")

type GroqClient struct {
	apiKey  string
	baseURL string
}

// NewGroqClient builds the chat-completion client. A missing API key is not
// fatal here; the provider rejects the call instead.
func NewGroqClient(cfg config.Config) *GroqClient {
	if cfg.GroqAPIKey == "" {
		logging.AppLogger.Warn("GROQ_API_KEY is not set, generation calls will fail")
	}
	return &GroqClient{
		apiKey:  cfg.GroqAPIKey,
		baseURL: cfg.GroqBaseURL,
	}
}

type chatCompletionRequest struct {
	Model    string              `json:"model"`
	Messages []types.ChatMessage `json:"messages"`
}

// ChatCompletion is the provider response, forwarded to callers verbatim.
type ChatCompletion struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int               `json:"index"`
	Message      types.ChatMessage `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// buildMessages appends the system prompt and the new user turn after the
// supplied history. The system prompt is never placed first.
func buildMessages(userInput string, chatHistory []types.ChatMessage, systemPrompt string) []types.ChatMessage {
	messages := make([]types.ChatMessage, 0, len(chatHistory)+2)
	messages = append(messages, chatHistory...)
	messages = append(messages,
		types.ChatMessage{Role: "system", Content: systemPrompt},
		types.ChatMessage{Role: "user", Content: userInput},
	)
	return messages
}

// Generate runs a single non-streaming completion and returns the full
// provider response without trimming it to the answer text.
func (c *GroqClient) Generate(ctx context.Context, userInput string, chatHistory []types.ChatMessage, systemPrompt string) (*ChatCompletion, error) {
	defer logging.LogDuration(ctx, "groq_generate")()

	body, err := json.Marshal(chatCompletionRequest{
		Model:    Model,
		Messages: buildMessages(userInput, chatHistory, systemPrompt),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		logging.ErrorLogger.Error("groq request error", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		logging.ErrorLogger.Error("groq request failed",
			zap.String("status", resp.Status), zap.ByteString("body", b))
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, resp.Status)
	}

	var parsed ChatCompletion
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrGenerationFailed, err)
	}
	return &parsed, nil
}
