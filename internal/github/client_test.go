package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient(context.Background(), "test-token")

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.client == nil {
		t.Error("NewClient() client field is nil")
	}
}

// newTestClient points a Client at an httptest server serving mux
func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(context.Background(), "test-token")
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.client.BaseURL = baseURL
	return client
}

func TestSplitRepository(t *testing.T) {
	tests := []struct {
		repo      string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{repo: "acme/server", wantOwner: "acme", wantName: "server"},
		{repo: "acme", wantErr: true},
		{repo: "/server", wantErr: true},
		{repo: "acme/", wantErr: true},
		{repo: "acme/server/extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			owner, name, err := SplitRepository(tt.repo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestBuildSearchQuery(t *testing.T) {
	assert.Equal(t, "repo:acme/server is:pr is:open author:alice", buildSearchQuery("acme/server", "alice"))
}

func TestClient_GetAuthenticatedUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"login":"alice"}`)
	})

	login, err := newTestClient(t, mux).GetAuthenticatedUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", login)
}

func TestClient_SearchOpenPRs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "repo:acme/server is:pr is:open author:alice", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `{"total_count":3,"items":[
			{"number":42,"title":"Fix race condition","updated_at":"2026-10-13T09:30:00Z","pull_request":{"url":"https://api.github.com/repos/acme/server/pulls/42"}},
			{"number":43,"title":"An issue","updated_at":"2026-10-13T09:30:00Z"},
			{"number":44,"title":"Add retries","updated_at":"2026-10-10T00:00:00Z","pull_request":{"url":"https://api.github.com/repos/acme/server/pulls/44"}}
		]}`)
	})

	results, err := newTestClient(t, mux).SearchOpenPRs(context.Background(), "acme/server", "alice", SearchLimit)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 42, results[0].Number)
	assert.Equal(t, "Fix race condition", results[0].Title)
	assert.True(t, results[0].UpdatedAt.Equal(time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, 44, results[1].Number)
}

func TestClient_SearchOpenPRs_Error(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Validation Failed"}`, http.StatusUnprocessableEntity)
	})

	_, err := newTestClient(t, mux).SearchOpenPRs(context.Background(), "acme/missing", "alice", SearchLimit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search PRs in acme/missing")

	_, err = newTestClient(t, http.NewServeMux()).SearchOpenPRs(context.Background(), "not-a-repo", "alice", SearchLimit)
	assert.Error(t, err)
}

func TestClient_GetPRDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/server/pulls/42", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"number":42,"title":"Fix race condition","updated_at":"2026-10-13T09:30:00Z",
			"labels":[{"name":"Self Reviewed"},{"name":"bug"}],"head":{"sha":"abc123"}}`)
	})

	detail, err := newTestClient(t, mux).GetPRDetail(context.Background(), "acme/server", 42)
	require.NoError(t, err)
	assert.Equal(t, "Fix race condition", detail.Title)
	assert.Equal(t, []string{"Self Reviewed", "bug"}, detail.Labels)
	assert.Equal(t, "abc123", detail.HeadSHA)
	assert.True(t, detail.UpdatedAt.Equal(time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC)))
}

func TestClient_GetPRDetail_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/server/pulls/99", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	_, err := newTestClient(t, mux).GetPRDetail(context.Background(), "acme/server", 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch PR #99 in acme/server")
}

func TestClient_GetCheckRuns(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/server/commits/abc123/check-runs", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"total_count":2,"check_runs":[
			{"name":"build","status":"completed","conclusion":"success"},
			{"name":"e2e","status":"queued","conclusion":null}
		]}`)
	})

	runs, err := newTestClient(t, mux).GetCheckRuns(context.Background(), "acme/server", "abc123")
	require.NoError(t, err)
	assert.Equal(t, []CheckRun{
		{Name: "build", Status: "completed", Conclusion: "success"},
		{Name: "e2e", Status: "queued", Conclusion: ""},
	}, runs)
}
