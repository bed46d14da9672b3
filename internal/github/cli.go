package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Runner executes an external command and returns its stdout
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec, folding stderr into the error
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output() //nolint:gosec // Arguments are built from CLI flags
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s %s: %s", name, strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return out, nil
}

// CLIClient implements PlatformClient by shelling out to the GitHub CLI
type CLIClient struct {
	binary string
	run    Runner
}

// NewCLIClient creates a gh-backed client. A nil runner uses ExecRunner.
func NewCLIClient(run Runner) *CLIClient {
	if run == nil {
		run = ExecRunner
	}
	return &CLIClient{binary: "gh", run: run}
}

func (c *CLIClient) gh(ctx context.Context, args ...string) ([]byte, error) {
	slog.Debug("Running gh", "args", args)
	return c.run(ctx, c.binary, args...)
}

// CheckInstalled verifies the gh binary can be run
func (c *CLIClient) CheckInstalled(ctx context.Context) error {
	if _, err := c.gh(ctx, "--version"); err != nil {
		return fmt.Errorf("GitHub CLI (gh) is not installed: %w", err)
	}
	return nil
}

// GetAuthenticatedUser returns the login of the gh session user
func (c *CLIClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	out, err := c.gh(ctx, "api", "user", "--jq", ".login")
	if err != nil {
		return "", fmt.Errorf("failed to detect GitHub user: %w", err)
	}

	login := strings.TrimSpace(string(out))
	if login == "" {
		return "", fmt.Errorf("failed to detect GitHub user: empty login")
	}
	return login, nil
}

// SearchOpenPRs searches for open PRs authored by author in repo
func (c *CLIClient) SearchOpenPRs(ctx context.Context, repo, author string, limit int) ([]SearchResult, error) {
	out, err := c.gh(ctx, "search", "prs",
		"--repo", repo,
		"--author", author,
		"--state", "open",
		"--json", "number,title,updatedAt",
		"--limit", strconv.Itoa(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search PRs in %s: %w", repo, err)
	}

	var results []SearchResult
	if err := json.Unmarshal(out, &results); err != nil {
		return nil, fmt.Errorf("failed to parse search results for %s: %w", repo, err)
	}
	return results, nil
}

// GetPRDetail fetches title, update time, labels and head SHA for a PR
func (c *CLIClient) GetPRDetail(ctx context.Context, repo string, number int) (*PRDetail, error) {
	out, err := c.gh(ctx, "api", fmt.Sprintf("/repos/%s/pulls/%d", repo, number),
		"--jq", "{title: .title, updated_at: .updated_at, labels: [.labels[].name], head_sha: .head.sha}",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PR #%d in %s: %w", number, repo, err)
	}

	var detail PRDetail
	if err := json.Unmarshal(out, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse PR #%d in %s: %w", number, repo, err)
	}
	return &detail, nil
}

// GetCheckRuns lists check-runs for a commit
func (c *CLIClient) GetCheckRuns(ctx context.Context, repo, sha string) ([]CheckRun, error) {
	out, err := c.gh(ctx, "api", fmt.Sprintf("/repos/%s/commits/%s/check-runs", repo, sha),
		"--jq", "[.check_runs[] | {name: .name, status: .status, conclusion: .conclusion}]",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-runs for %s@%s: %w", repo, sha, err)
	}

	var runs []CheckRun
	if err := json.Unmarshal(out, &runs); err != nil {
		return nil, fmt.Errorf("failed to parse check-runs for %s@%s: %w", repo, sha, err)
	}
	return runs, nil
}
