// Package report implements the root pr-status command that builds the PR dashboard.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alan/pr-status/cmd"
	"github.com/alan/pr-status/internal/collect"
	"github.com/alan/pr-status/internal/commands"
	"github.com/alan/pr-status/internal/render"
	"github.com/spf13/cobra"
)

// command encapsulates the report command with common functionality
type command struct {
	commands.BaseCommand
	Repositories []string
	Author       string
	Format       cmd.OutputFormat

	ui         *commands.UI
	out        io.Writer
	now        func() time.Time
	openViewer func(path string) error
}

// NewReportCmd creates the root report command
func NewReportCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	return newReportCmd(globalConfigFile, loadConfig, commands.NewPlatformClient, commands.OpenInViewer, time.Now)
}

func newReportCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), newClient commands.ClientFactory, openViewer func(string) error, now func() time.Time) *cobra.Command {
	reportCmd := &command{now: now, openViewer: openViewer}

	var (
		days      int
		author    string
		format    string
		noOpen    bool
		backend   string
		outputDir string
	)

	cobraCmd := &cobra.Command{
		Use:   "pr-status <repos>",
		Short: "Check open PR status across multiple GitHub repositories",
		Long: `pr-status lists your open pull requests across a set of repositories,
together with their labels and CI check results, and renders them as an HTML
dashboard or a markdown table.

Repositories are given as a comma-separated list of owner/name pairs. When the
argument is omitted the repositories from the config file are used.

Examples:
  pr-status "acme/server,acme/web-client"
  pr-status acme/server --days 3 --format markdown
  pr-status acme/server --author alice --no-open`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			reportCmd.ConfigFile = globalConfigFile
			reportCmd.LoadConfig = loadConfig
			reportCmd.NewClient = newClient
			if err := reportCmd.Init(); err != nil {
				return err
			}

			flags := cobraCmd.Flags()
			if flags.Changed("days") {
				reportCmd.Config.LookbackDays = days
			}
			if flags.Changed("author") {
				reportCmd.Config.Author = author
			}
			if flags.Changed("format") {
				reportCmd.Config.Format = format
			}
			if flags.Changed("no-open") {
				reportCmd.Config.Open = !noOpen
			}
			if flags.Changed("backend") {
				reportCmd.Config.Backend = backend
			}
			if flags.Changed("output-dir") {
				reportCmd.Config.OutputDir = outputDir
			}

			if err := reportCmd.validate(args); err != nil {
				return err
			}

			reportCmd.out = cobraCmd.OutOrStdout()
			if reportCmd.Format == cmd.FormatMarkdown {
				reportCmd.ui = commands.NewUI(cobraCmd.ErrOrStderr(), cobraCmd.ErrOrStderr())
			} else {
				reportCmd.ui = commands.NewUI(cobraCmd.OutOrStdout(), cobraCmd.ErrOrStderr())
			}

			return reportCmd.Run(cobraCmd.Context())
		},
	}

	cobraCmd.Flags().IntVarP(&days, "days", "d", 10, "Number of days to look back")
	cobraCmd.Flags().StringVarP(&author, "author", "a", "", "GitHub username to filter PRs (default: auto-detect)")
	cobraCmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html or markdown")
	cobraCmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the HTML report in a browser")
	cobraCmd.Flags().StringVar(&backend, "backend", "gh", "GitHub access: gh (GitHub CLI) or api (GITHUB_TOKEN)")
	cobraCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the HTML report (default: system temp dir)")

	return cobraCmd
}

// validate resolves repositories and checks option values before any network activity
func (rc *command) validate(args []string) error {
	rc.Repositories = commands.RepositoriesFromArgs(args, rc.Config.Repositories)
	if err := commands.ValidateRepositories(rc.Repositories); err != nil {
		return err
	}
	if err := commands.ValidateLookbackDays(rc.Config.LookbackDays); err != nil {
		return err
	}
	format, err := commands.ValidateFormat(rc.Config.Format)
	if err != nil {
		return err
	}
	rc.Format = format
	return commands.ValidateBackend(rc.Config.Backend)
}

// Run executes the report command
func (rc *command) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := rc.InitClient(ctx); err != nil {
		return err
	}

	author, detected, err := commands.ResolveAuthor(ctx, rc.Client, rc.Config.Author)
	if err != nil {
		return err
	}
	if detected {
		rc.ui.Success("✅ Detected GitHub user: %s", author)
	}
	rc.Author = author

	days := rc.Config.LookbackDays
	now := rc.now()

	rc.ui.Info("🔍 Checking open PRs by %s (within %d days)...", author, days)
	rc.ui.Detail("📂 Repositories: %s", strings.Join(rc.Repositories, ", "))
	rc.ui.Blank()

	slog.Info("Searching for PRs", "author", author, "repos", len(rc.Repositories), "days", days)
	refs := collect.Discover(ctx, rc.Client, rc.Repositories, author, days, now)
	rc.ui.Success("Found %d recent PRs", len(refs))

	if len(refs) == 0 {
		rc.ui.Warning("No recent PRs found within %d days.", days)
		return nil
	}

	header := render.Header{
		Author:       author,
		LookbackDays: days,
		Repositories: rc.Repositories,
		GeneratedAt:  now,
	}

	if rc.Format == cmd.FormatMarkdown {
		_, err := rc.render(ctx, refs, now, header, render.NewMarkdownSink(rc.out))
		return err
	}

	return rc.renderHTML(ctx, refs, now, header)
}

func (rc *command) renderHTML(ctx context.Context, refs []cmd.PullRequestRef, now time.Time, header render.Header) error {
	path := render.ReportPath(rc.Config.OutputDir, rc.Author, rc.Repositories)
	rc.ui.Detail("📄 HTML file: %s", path)

	sink, err := render.CreateHTMLFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			slog.Warn("Failed to close report file", "path", path, "error", cerr)
		}
	}()

	if _, err := rc.render(ctx, refs, now, header, sink); err != nil {
		return err
	}

	rc.ui.Blank()
	rc.ui.Success("📊 HTML report generated: %s", path)

	if rc.Config.Open {
		rc.ui.Info("🌐 Opening in browser...")
		if err := rc.openViewer(path); err != nil {
			slog.Warn("Could not open report", "path", path, "error", err)
		}
	}

	return nil
}

func (rc *command) render(ctx context.Context, refs []cmd.PullRequestRef, now time.Time, header render.Header, sink render.ReportSink) (collect.Result, error) {
	result, err := collect.Render(ctx, rc.Client, refs, now, header, sink, func(index, total int, ref cmd.PullRequestRef) {
		rc.ui.Progress(index, total, ref.Number, ref.Repository)
	})
	if err != nil {
		return result, fmt.Errorf("failed to render report: %w", err)
	}

	rc.ui.Success("Processing complete (%d rendered, %d skipped)", result.Rendered, result.Skipped)
	return result, nil
}
