package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client implements PlatformClient against the GitHub REST API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub client with token authentication
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// SplitRepository splits "owner/name" into its parts
func SplitRepository(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/name", repo)
	}
	return owner, name, nil
}

// GetAuthenticatedUser returns the login of the token owner
func (c *Client) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to detect GitHub user: %w", err)
	}
	if user.GetLogin() == "" {
		return "", fmt.Errorf("failed to detect GitHub user: empty login")
	}
	return user.GetLogin(), nil
}

// buildSearchQuery constructs a GitHub search query for open PRs by author
func buildSearchQuery(repo, author string) string {
	parts := []string{
		fmt.Sprintf("repo:%s", repo),
		"is:pr",
		"is:open",
		fmt.Sprintf("author:%s", author),
	}
	return strings.Join(parts, " ")
}

// SearchOpenPRs returns up to limit open PRs authored by author in repo
func (c *Client) SearchOpenPRs(ctx context.Context, repo, author string, limit int) ([]SearchResult, error) {
	if _, _, err := SplitRepository(repo); err != nil {
		return nil, err
	}

	query := buildSearchQuery(repo, author)
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{
			PerPage: limit,
		},
	}

	slog.Debug("GitHub API: Searching issues/PRs", "query", query)
	result, _, err := c.client.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search PRs in %s: %w", repo, err)
	}

	var results []SearchResult
	for _, issue := range result.Issues {
		if !issue.IsPullRequest() {
			slog.Debug("Skipping non-PR issue", "number", issue.GetNumber())
			continue
		}
		results = append(results, SearchResult{
			Number:    issue.GetNumber(),
			Title:     issue.GetTitle(),
			UpdatedAt: issue.GetUpdatedAt().Time,
		})
		if len(results) == limit {
			break
		}
	}

	return results, nil
}

// GetPRDetail fetches title, update time, labels and head SHA for a PR
func (c *Client) GetPRDetail(ctx context.Context, repo string, number int) (*PRDetail, error) {
	owner, name, err := SplitRepository(repo)
	if err != nil {
		return nil, err
	}

	slog.Debug("GitHub API: Getting PR details", "repo", repo, "pr", number)
	pr, _, err := c.client.PullRequests.Get(ctx, owner, name, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PR #%d in %s: %w", number, repo, err)
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	return &PRDetail{
		Title:     pr.GetTitle(),
		UpdatedAt: pr.GetUpdatedAt().Time,
		Labels:    labels,
		HeadSHA:   pr.GetHead().GetSHA(),
	}, nil
}

// GetCheckRuns lists check-runs for a commit
func (c *Client) GetCheckRuns(ctx context.Context, repo, sha string) ([]CheckRun, error) {
	owner, name, err := SplitRepository(repo)
	if err != nil {
		return nil, err
	}

	opts := &github.ListCheckRunsOptions{
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	slog.Debug("GitHub API: Listing check-runs", "repo", repo, "sha", sha)
	checkRuns, _, err := c.client.Checks.ListCheckRunsForRef(ctx, owner, name, sha, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-runs for %s@%s: %w", repo, sha, err)
	}

	runs := make([]CheckRun, 0, len(checkRuns.CheckRuns))
	for _, run := range checkRuns.CheckRuns {
		runs = append(runs, CheckRun{
			Name:       run.GetName(),
			Status:     run.GetStatus(),
			Conclusion: run.GetConclusion(),
		})
	}

	return runs, nil
}
