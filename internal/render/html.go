package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alan/pr-status/cmd"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>PR Status Dashboard</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap');
        body { font-family: 'Inter', sans-serif; }
        .animate-pulse-slow { animation: pulse 2s infinite; }
        .status-badge { @apply inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium; }
        .repo-badge { @apply inline-flex items-center px-3 py-1 rounded-full text-sm font-medium; }
    </style>
</head>
<body class="bg-gray-50 min-h-screen">
    <div class="container mx-auto px-4 py-8">
        <div class="mb-8">
            <h1 class="text-3xl font-bold text-gray-900 mb-2">🚀 PR Status Dashboard</h1>
            <div class="flex flex-wrap gap-4 text-sm text-gray-600">
                <span class="flex items-center"><span class="w-2 h-2 bg-blue-500 rounded-full mr-2"></span>Author: %s</span>
                <span class="flex items-center"><span class="w-2 h-2 bg-green-500 rounded-full mr-2"></span>Last %d days</span>
                <span class="flex items-center"><span class="w-2 h-2 bg-purple-500 rounded-full mr-2"></span>Generated: %s</span>
            </div>
        </div>

        <div class="bg-white rounded-lg shadow-lg overflow-hidden">
            <div class="overflow-x-auto">
                <table class="min-w-full divide-y divide-gray-200">
                    <thead class="bg-gray-50">
                        <tr>
                            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">PR</th>
                            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Repository</th>
                            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Title</th>
                            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Updated</th>
                            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Labels</th>
                            <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">CI Status</th>
                        </tr>
                    </thead>
                    <tbody class="bg-white divide-y divide-gray-200">`

const htmlRow = `
                        <tr class="hover:bg-gray-50 transition-colors">
                            <td class="px-6 py-4 whitespace-nowrap">
                                <a href="%[1]s" target="_blank"
                                   class="text-blue-600 hover:text-blue-900 font-medium">#%[2]d</a>
                            </td>
                            <td class="px-6 py-4 whitespace-nowrap">
                                <span class="repo-badge %[3]s">%[4]s</span>
                            </td>
                            <td class="px-6 py-4">
                                <div class="text-sm text-gray-900 font-medium">%[5]s</div>
                            </td>
                            <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">
                                <div>%[6]s</div>
                                <div class="text-xs text-gray-400">%[7]s</div>
                            </td>
                            <td class="px-6 py-4 whitespace-nowrap">
`

const htmlRowEnd = `                            </td>
                            <td class="px-6 py-4 whitespace-nowrap">
                                <div class="flex items-center">
                                    <a href="%[1]s" target="_blank"
                                       class="status-badge %[2]s mr-2 hover:opacity-80 transition-opacity">%[3]s %[4]s</a>
                                </div>
                                <div class="text-xs text-gray-500 mt-1">%[5]s</div>
                            </td>
                        </tr>`

const htmlFoot = `
                    </tbody>
                </table>
            </div>
        </div>

        <div class="mt-8 text-center">
            <div class="inline-flex items-center space-x-4 text-sm text-gray-500">
                <span class="flex items-center"><span class="w-3 h-3 bg-green-100 border border-green-300 rounded mr-2"></span>✅ Passed</span>
                <span class="flex items-center"><span class="w-3 h-3 bg-red-100 border border-red-300 rounded mr-2"></span>❌ Failed</span>
                <span class="flex items-center"><span class="w-3 h-3 bg-yellow-100 border border-yellow-300 rounded mr-2"></span>⏳ Running</span>
                <span class="flex items-center"><span class="w-3 h-3 bg-gray-100 border border-gray-300 rounded mr-2"></span>⚪ No CI</span>
            </div>
        </div>
    </div>
</body>
</html>
`

const (
	selfReviewedPill = `                                <span class="status-badge bg-green-100 text-green-800 mr-1 mb-1">✅ %s</span>` + "\n"
	labelPill        = `                                <span class="status-badge bg-gray-100 text-gray-800 mr-1 mb-1">%s</span>` + "\n"
	noLabels         = `                                <span class="text-gray-400 text-sm">No labels</span>` + "\n"
)

// HTMLSink writes the dashboard to w as records arrive
type HTMLSink struct {
	w      io.Writer
	closer io.Closer
}

// NewHTMLSink renders into w
func NewHTMLSink(w io.Writer) *HTMLSink {
	return &HTMLSink{w: w}
}

// CreateHTMLFile creates or truncates path and renders into it.
// The caller must Close the sink.
func CreateHTMLFile(path string) (*HTMLSink, error) {
	f, err := os.Create(path) //nolint:gosec // Path is derived from ReportPath
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return &HTMLSink{w: f, closer: f}, nil
}

// WriteHeader writes the document skeleton up to the table body
func (s *HTMLSink) WriteHeader(h Header) error {
	_, err := fmt.Fprintf(s.w, htmlHead, h.Author, h.LookbackDays, h.GeneratedAt.Format(GeneratedLayout))
	return err
}

// AppendRecord writes one table row
func (s *HTMLSink) AppendRecord(r cmd.PullRequestRecord) error {
	var b strings.Builder

	fmt.Fprintf(&b, htmlRow,
		r.URL(),
		r.Number,
		RepoClass(r.Repository),
		RepoDisplayName(r.Repository),
		EscapeTitle(r.Title),
		RelativeDays(r.DaysAgo),
		r.LocalTime,
	)

	if len(r.Labels) == 0 {
		b.WriteString(noLabels)
	}
	for _, label := range r.Labels {
		if label == SelfReviewedLabel {
			fmt.Fprintf(&b, selfReviewedPill, label)
		} else {
			fmt.Fprintf(&b, labelPill, label)
		}
	}

	badge := BadgeFor(r.CIStatus)
	fmt.Fprintf(&b, htmlRowEnd, r.ChecksURL(), badge.Class, badge.Icon, r.CIStatus, r.CIDetails)

	_, err := io.WriteString(s.w, b.String())
	return err
}

// WriteFooter closes the table and appends the CI legend
func (s *HTMLSink) WriteFooter() error {
	_, err := io.WriteString(s.w, htmlFoot)
	return err
}

// Close releases the underlying file, if any
func (s *HTMLSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// EscapeTitle escapes double quotes in a PR title
func EscapeTitle(title string) string {
	return strings.ReplaceAll(title, `"`, "&quot;")
}

// RelativeDays renders a day count as "N day(s) ago"
func RelativeDays(days int) string {
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
