// Package cmd defines core data structures for pr-status configuration and PR records.
package cmd

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// CIStatus represents the aggregate status of CI check-runs for a PR head commit
type CIStatus string

const (
	// CIStatusFailed indicates at least one check-run concluded with failure
	CIStatusFailed CIStatus = "Failed"
	// CIStatusRunning indicates checks are queued or in progress and none failed
	CIStatusRunning CIStatus = "Running"
	// CIStatusPassed indicates all check-runs completed without failure
	CIStatusPassed CIStatus = "Passed"
	// CIStatusNoCI indicates there are no check-runs or they could not be fetched
	CIStatusNoCI CIStatus = "No CI"
)

// OutputFormat selects the report renderer
type OutputFormat string

const (
	// FormatHTML renders an HTML dashboard file
	FormatHTML OutputFormat = "html"
	// FormatMarkdown prints a markdown table to stdout
	FormatMarkdown OutputFormat = "markdown"
)

// ParseOutputFormat converts a string to OutputFormat, reporting whether it is known
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "html":
		return FormatHTML, true
	case "markdown", "md":
		return FormatMarkdown, true
	default:
		return "", false
	}
}

// Backend names the PlatformClient implementation
const (
	BackendGH  = "gh"
	BackendAPI = "api"
)

// Config represents the structure of the pr-status defaults file
type Config struct {
	Repositories []string `yaml:"repositories,omitempty" mapstructure:"repositories"`
	LookbackDays int      `yaml:"lookback_days" mapstructure:"lookback_days"`
	Author       string   `yaml:"author,omitempty" mapstructure:"author"`
	Format       string   `yaml:"format" mapstructure:"format"`
	Backend      string   `yaml:"backend" mapstructure:"backend"`
	Open         bool     `yaml:"open" mapstructure:"open"`
	OutputDir    string   `yaml:"output_dir,omitempty" mapstructure:"output_dir"`
}

// NormalizeRepositories trims each entry and drops blanks.
// Order and duplicates are preserved.
func NormalizeRepositories(repos []string) []string {
	var normalized []string
	for _, repo := range repos {
		repo = strings.TrimSpace(repo)
		if repo == "" {
			continue
		}
		normalized = append(normalized, repo)
	}
	return normalized
}

// PullRequestRef identifies a discovered PR within a run
type PullRequestRef struct {
	Repository string
	Number     int
}

// PullRequestRecord is an enriched PR ready for rendering
type PullRequestRecord struct {
	Repository string
	Number     int
	Title      string
	UpdatedAt  time.Time
	LocalTime  string // MM/DD, HH:MM in the run's location
	Labels     []string
	HeadCommit string
	DaysAgo    int
	CIStatus   CIStatus
	CIDetails  string
}

// URL returns the PR page on GitHub
func (r PullRequestRecord) URL() string {
	return fmt.Sprintf("https://github.com/%s/pull/%d", r.Repository, r.Number)
}

// ChecksURL returns the PR checks page on GitHub
func (r PullRequestRecord) ChecksURL() string {
	return r.URL() + "/checks"
}

// HasLabel reports whether the record carries the exact label name
func (r PullRequestRecord) HasLabel(name string) bool {
	return slices.Contains(r.Labels, name)
}
