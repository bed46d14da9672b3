// Package collect discovers a user's open PRs and enriches them with detail and CI status.
package collect

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/alan/pr-status/cmd"
	"github.com/alan/pr-status/internal/github"
)

// LocalTimeLayout renders update times as month/day and 24-hour time
const LocalTimeLayout = "01/02, 15:04"

const secondsPerDay = 86400

// DaysAgo returns whole days elapsed between t and now, rounded down
func DaysAgo(now, t time.Time) int {
	return int(math.Floor(float64(now.Unix()-t.Unix()) / secondsPerDay))
}

// Discover searches each repository for open PRs by author updated within lookbackDays.
// Repositories whose search fails are skipped.
func Discover(ctx context.Context, client github.PlatformClient, repos []string, author string, lookbackDays int, now time.Time) []cmd.PullRequestRef {
	var refs []cmd.PullRequestRef

	for _, repo := range repos {
		results, err := client.SearchOpenPRs(ctx, repo, author, github.SearchLimit)
		if err != nil {
			slog.Debug("Skipping repository, search failed", "repo", repo, "error", err)
			continue
		}

		for _, pr := range results {
			daysAgo := DaysAgo(now, pr.UpdatedAt)
			if daysAgo > lookbackDays {
				slog.Debug("Skipping PR outside lookback window", "repo", repo, "pr", pr.Number, "days_ago", daysAgo)
				continue
			}
			refs = append(refs, cmd.PullRequestRef{Repository: repo, Number: pr.Number})
		}
	}

	return refs
}

// Enrich fetches detail and CI status for a discovered PR.
// An error means the PR should be dropped from the report.
func Enrich(ctx context.Context, client github.PlatformClient, ref cmd.PullRequestRef, now time.Time) (*cmd.PullRequestRecord, error) {
	detail, err := client.GetPRDetail(ctx, ref.Repository, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich PR #%d in %s: %w", ref.Number, ref.Repository, err)
	}

	status, details := github.GetCIStatus(ctx, client, ref.Repository, detail.HeadSHA)

	labels := detail.Labels
	if labels == nil {
		labels = []string{}
	}

	return &cmd.PullRequestRecord{
		Repository: ref.Repository,
		Number:     ref.Number,
		Title:      detail.Title,
		UpdatedAt:  detail.UpdatedAt,
		LocalTime:  detail.UpdatedAt.In(now.Location()).Format(LocalTimeLayout),
		Labels:     labels,
		HeadCommit: detail.HeadSHA,
		DaysAgo:    DaysAgo(now, detail.UpdatedAt),
		CIStatus:   status,
		CIDetails:  details,
	}, nil
}
