package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alan/pr-status/cmd"
)

// MaxTitleLength is the rune count after which markdown titles are truncated
const MaxTitleLength = 60

// MarkdownSink prints a pipe table followed by a run summary
type MarkdownSink struct {
	w      io.Writer
	header Header
}

// NewMarkdownSink renders into w
func NewMarkdownSink(w io.Writer) *MarkdownSink {
	return &MarkdownSink{w: w}
}

// WriteHeader prints the table header rows
func (s *MarkdownSink) WriteHeader(h Header) error {
	s.header = h
	_, err := fmt.Fprint(s.w, "\n| PR | Repository | Title | Days Ago | Labels | CI Status | Details |\n|---|---|---|---|---|---|---|\n")
	return err
}

// AppendRecord prints one table row
func (s *MarkdownSink) AppendRecord(r cmd.PullRequestRecord) error {
	badge := BadgeFor(r.CIStatus)
	_, err := fmt.Fprintf(s.w, "| [#%d](%s) | %s | %s | %d | %s | [%s %s](%s) | %s |\n",
		r.Number, r.URL(),
		r.Repository,
		TruncateTitle(r.Title),
		r.DaysAgo,
		markdownLabels(r),
		badge.Icon, r.CIStatus, r.ChecksURL(),
		r.CIDetails,
	)
	return err
}

// WriteFooter prints the run summary
func (s *MarkdownSink) WriteFooter() error {
	var b strings.Builder
	b.WriteString("\n📊 Summary:\n")
	fmt.Fprintf(&b, "  - Author: %s\n", s.header.Author)
	fmt.Fprintf(&b, "  - Time range: Last %d days\n", s.header.LookbackDays)
	fmt.Fprintf(&b, "  - Repositories: %s\n", strings.Join(s.header.Repositories, ", "))
	fmt.Fprintf(&b, "  - Generated: %s\n", s.header.GeneratedAt.Format(GeneratedLayout))

	_, err := io.WriteString(s.w, b.String())
	return err
}

// TruncateTitle shortens titles longer than MaxTitleLength runes
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTitleLength {
		return title
	}
	return string(runes[:MaxTitleLength]) + "..."
}

func markdownLabels(r cmd.PullRequestRecord) string {
	if len(r.Labels) == 0 {
		return "No labels"
	}
	text := strings.Join(r.Labels, ", ")
	if r.HasLabel(SelfReviewedLabel) {
		text += " ✅"
	}
	return text
}
