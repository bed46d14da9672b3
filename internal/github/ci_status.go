package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alan/pr-status/cmd"
)

// NoChecksDetails is reported when a commit has no usable check-runs
const NoChecksDetails = "No checks configured"

// CheckRunCounts partitions check-runs by outcome
type CheckRunCounts struct {
	Failed    int
	Succeeded int
	Pending   int
	Total     int
}

// CountCheckRuns tallies failed, succeeded and pending check-runs
func CountCheckRuns(runs []CheckRun) CheckRunCounts {
	counts := CheckRunCounts{Total: len(runs)}
	for _, run := range runs {
		switch run.Conclusion {
		case "failure":
			counts.Failed++
		case "success":
			counts.Succeeded++
		}

		switch run.Status {
		case "in_progress", "queued":
			counts.Pending++
		}
	}
	return counts
}

// EvaluateCheckRuns classifies check-runs into an aggregate status and a details line.
// Priority: failed > running > passed; no runs means no CI.
func EvaluateCheckRuns(runs []CheckRun) (cmd.CIStatus, string) {
	counts := CountCheckRuns(runs)

	switch {
	case counts.Total == 0:
		return cmd.CIStatusNoCI, NoChecksDetails
	case counts.Failed > 0:
		return cmd.CIStatusFailed, fmt.Sprintf("%d failed, %d passed", counts.Failed, counts.Succeeded)
	case counts.Pending > 0:
		return cmd.CIStatusRunning, fmt.Sprintf("%d running, %d passed", counts.Pending, counts.Succeeded)
	default:
		return cmd.CIStatusPassed, fmt.Sprintf("All %d checks passed", counts.Succeeded)
	}
}

// GetCIStatus fetches check-runs for a commit and classifies them.
// A failed fetch degrades to no CI rather than returning an error.
func GetCIStatus(ctx context.Context, client PlatformClient, repo, sha string) (cmd.CIStatus, string) {
	runs, err := client.GetCheckRuns(ctx, repo, sha)
	if err != nil {
		slog.Debug("Failed to fetch check-runs, reporting no CI", "repo", repo, "sha", sha, "error", err)
		return cmd.CIStatusNoCI, NoChecksDetails
	}
	return EvaluateCheckRuns(runs)
}
