package github

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"hackmap/hackmap/config"
	"hackmap/hackmap/utils/httputils"
	"hackmap/hackmap/utils/logging"

	"go.uber.org/zap"
)

var (
	ErrInvalidRepoURL = errors.New("invalid GitHub repository URL")
	ErrFetchFailed    = errors.New("failed to fetch project content")
)

// Path segments past owner/repo are ignored, so links into a tree or blob
// still resolve to the repository.
var repoURLPattern = regexp.MustCompile(`https://github\.com/([^/]+)/([^/]+)`)

type Fetcher struct {
	apiBaseURL string
}

func NewFetcher(cfg config.Config) *Fetcher {
	return &Fetcher{apiBaseURL: cfg.GitHubAPIURL}
}

// FetchReadme resolves a repository URL to its README text via the GitHub
// REST API. The body is returned verbatim; every remote failure collapses
// into ErrFetchFailed.
func (f *Fetcher) FetchReadme(ctx context.Context, repoURL string) (string, error) {
	defer logging.LogDuration(ctx, "github_fetch_readme")()

	match := repoURLPattern.FindStringSubmatch(repoURL)
	if match == nil {
		return "", ErrInvalidRepoURL
	}
	owner, repo := match[1], match[2]

	apiURL := fmt.Sprintf("%s/repos/%s/%s/readme", f.apiBaseURL, owner, repo)
	readme, err := httputils.GetRaw(ctx, apiURL, map[string]string{
		"Accept": "application/vnd.github.v3.raw",
	})
	if err != nil {
		logging.ErrorLogger.Error("readme fetch error",
			zap.String("owner", owner), zap.String("repo", repo), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return readme, nil
}
