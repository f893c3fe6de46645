package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"hackmap/hackmap/utils/logging"
)

func TestMain(m *testing.M) {
	logging.InitLogger()
	os.Exit(m.Run())
}

func newTestFetcher(apiURL string) *Fetcher {
	return &Fetcher{apiBaseURL: apiURL}
}

func TestFetchReadmeInvalidURL(t *testing.T) {
	f := newTestFetcher("http://unused")
	for _, url := range []string{
		"",
		"octocat/Hello-World",
		"https://gitlab.com/octocat/Hello-World",
		"http://github.com/octocat/Hello-World", // https only
	} {
		_, err := f.FetchReadme(context.Background(), url)
		if !errors.Is(err, ErrInvalidRepoURL) {
			t.Errorf("url %q: expected ErrInvalidRepoURL, got %v", url, err)
		}
	}
}

func TestFetchReadme(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("# Hello"))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	readme, err := f.FetchReadme(context.Background(), "https://github.com/octocat/Hello-World")
	if err != nil {
		t.Fatalf("FetchReadme failed: %v", err)
	}
	if readme != "# Hello" {
		t.Errorf("README not returned verbatim: %q", readme)
	}
	if gotPath != "/repos/octocat/Hello-World/readme" {
		t.Errorf("unexpected API path %q", gotPath)
	}
	if gotAccept != "application/vnd.github.v3.raw" {
		t.Errorf("unexpected Accept header %q", gotAccept)
	}
}

func TestFetchReadmeIgnoresTrailingSegments(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("readme"))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	_, err := f.FetchReadme(context.Background(), "https://github.com/octocat/Hello-World/tree/main/docs")
	if err != nil {
		t.Fatalf("FetchReadme failed: %v", err)
	}
	if gotPath != "/repos/octocat/Hello-World/readme" {
		t.Errorf("trailing segments should be ignored, got path %q", gotPath)
	}
}

func TestFetchReadmeRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	_, err := f.FetchReadme(context.Background(), "https://github.com/octocat/no-such-repo")
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("expected ErrFetchFailed, got %v", err)
	}
}
