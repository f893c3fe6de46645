// hackmap/controllers/hackathons.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hackmap/hackmap/prompts"
	"hackmap/hackmap/services/llm"
	"hackmap/hackmap/types"
	"hackmap/hackmap/utils/jsonutils"
	"hackmap/hackmap/utils/logging"

	"go.uber.org/zap"
)

// Generator produces a chat completion from the user's input, the prior
// conversation and a persona system prompt.
type Generator interface {
	Generate(ctx context.Context, userInput string, chatHistory []types.ChatMessage, systemPrompt string) (*llm.ChatCompletion, error)
}

type HackathonController struct {
	generator Generator
}

func NewHackathonController(generator Generator) *HackathonController {
	return &HackathonController{generator: generator}
}

// Recommend handles POST /hackthons/recommend.
func (c *HackathonController) Recommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutils.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	logging.AppLogger.Info("received recommend request",
		zap.Int("history_len", len(req.ChatHistory)))

	missing := map[string]string{}
	if req.UserInput == "" {
		missing["userInput"] = "userInput is required"
	}
	if req.NearbyHacks == "" {
		missing["nearbyHacks"] = "nearbyHacks is required"
	}
	if len(missing) > 0 {
		logging.AppLogger.Warn("recommend request missing fields",
			zap.Any("missing", missing))
		jsonutils.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         "Missing required fields",
			"missingFields": missing,
		})
		return
	}

	systemPrompt, _ := prompts.Get(prompts.GuidanceAgent)
	userInput := fmt.Sprintf("%s\nUser Query: %s", req.NearbyHacks, req.UserInput)

	completion, err := c.generator.Generate(r.Context(), userInput, req.ChatHistory, systemPrompt)
	if err != nil {
		logging.ErrorLogger.Error("recommend generation error", zap.Error(err))
		jsonutils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	jsonutils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"recommendation": completion,
	})
}
