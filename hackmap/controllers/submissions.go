// hackmap/controllers/submissions.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hackmap/hackmap/prompts"
	"hackmap/hackmap/types"
	"hackmap/hackmap/utils/jsonutils"
	"hackmap/hackmap/utils/logging"

	"go.uber.org/zap"
)

// ReadmeFetcher resolves a repository URL to its README text.
type ReadmeFetcher interface {
	FetchReadme(ctx context.Context, repoURL string) (string, error)
}

type SubmissionController struct {
	generator Generator
	fetcher   ReadmeFetcher
}

func NewSubmissionController(generator Generator, fetcher ReadmeFetcher) *SubmissionController {
	return &SubmissionController{generator: generator, fetcher: fetcher}
}

// ProjectChat handles POST /submissions/project-chat.
func (c *SubmissionController) ProjectChat(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutils.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	logging.AppLogger.Info("received project chat request",
		zap.String("repo_url", req.RepoURL),
		zap.Int("history_len", len(req.ChatHistory)))

	if req.UserInput == "" || req.RepoURL == "" {
		logging.AppLogger.Warn("project chat request missing fields")
		jsonutils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	readme, err := c.fetcher.FetchReadme(r.Context(), req.RepoURL)
	if err != nil {
		logging.ErrorLogger.Error("project chat readme error", zap.Error(err))
		jsonutils.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if readme == "" {
		logging.AppLogger.Warn("README not found", zap.String("repo_url", req.RepoURL))
		jsonutils.WriteError(w, http.StatusNotFound, "README not found")
		return
	}

	systemPrompt, _ := prompts.Get(prompts.SubmissionAgent)
	userInput := fmt.Sprintf("%s\nUser Query: %s", readme, req.UserInput)

	completion, err := c.generator.Generate(r.Context(), userInput, req.ChatHistory, systemPrompt)
	if err != nil {
		logging.ErrorLogger.Error("project chat generation error", zap.Error(err))
		jsonutils.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	jsonutils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"response": completion,
	})
}
