package collect

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alan/pr-status/cmd"
	"github.com/alan/pr-status/internal/github"
	"github.com/alan/pr-status/internal/render"
)

// ProgressFunc is called before each PR is enriched
type ProgressFunc func(index, total int, ref cmd.PullRequestRef)

// Result summarizes a rendering pass
type Result struct {
	Discovered int
	Rendered   int
	Skipped    int
}

// Render enriches refs in order and streams each record into sink between its
// header and footer. PRs whose detail fetch fails are skipped.
func Render(ctx context.Context, client github.PlatformClient, refs []cmd.PullRequestRef, now time.Time, header render.Header, sink render.ReportSink, progress ProgressFunc) (Result, error) {
	result := Result{Discovered: len(refs)}

	if err := sink.WriteHeader(header); err != nil {
		return result, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, ref := range refs {
		if progress != nil {
			progress(i, len(refs), ref)
		}

		record, err := Enrich(ctx, client, ref, now)
		if err != nil {
			slog.Warn("Skipping PR", "repo", ref.Repository, "pr", ref.Number, "error", err)
			result.Skipped++
			continue
		}

		if err := sink.AppendRecord(*record); err != nil {
			return result, fmt.Errorf("failed to write PR #%d: %w", ref.Number, err)
		}
		result.Rendered++
	}

	if err := sink.WriteFooter(); err != nil {
		return result, fmt.Errorf("failed to write report footer: %w", err)
	}

	return result, nil
}
