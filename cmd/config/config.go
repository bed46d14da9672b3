// Package config implements the config command for saving pr-status defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/alan/pr-status/cmd"
	"github.com/alan/pr-status/internal/commands"
	"github.com/spf13/cobra"
)

// configUpdate holds the values given on the command line; nil fields were not set
type configUpdate struct {
	Repositories []string
	LookbackDays *int
	Author       *string
	Format       *string
	Backend      *string
	Open         *bool
	OutputDir    *string
}

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	var (
		repos     string
		days      int
		author    string
		format    string
		backend   string
		open      bool
		outputDir string
	)

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Save default options for pr-status",
		Long: `Config writes default options to the pr-status configuration file.
Only the flags you pass are changed; everything else keeps its current value.

When no repositories are configured and none are given, the repository of the
current git checkout is detected from the origin remote.

Examples:
  pr-status config --repos "acme/server,acme/web-client" --days 7
  pr-status config --format markdown --backend api`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			flags := cobraCmd.Flags()
			var update configUpdate
			if flags.Changed("repos") {
				update.Repositories = commands.ParseRepositories(repos)
			}
			if flags.Changed("days") {
				update.LookbackDays = &days
			}
			if flags.Changed("author") {
				update.Author = &author
			}
			if flags.Changed("format") {
				update.Format = &format
			}
			if flags.Changed("backend") {
				update.Backend = &backend
			}
			if flags.Changed("open") {
				update.Open = &open
			}
			if flags.Changed("output-dir") {
				update.OutputDir = &outputDir
			}

			return runConfig(*globalConfigFile, update, loadConfig, saveConfig, detectGitRepository, commands.NewUI(cobraCmd.OutOrStdout(), cobraCmd.ErrOrStderr()))
		},
	}

	cobraCmd.Flags().StringVarP(&repos, "repos", "r", "", "Comma-separated default repositories (owner/name)")
	cobraCmd.Flags().IntVarP(&days, "days", "d", 10, "Default lookback window in days")
	cobraCmd.Flags().StringVarP(&author, "author", "a", "", "Default PR author (empty means auto-detect)")
	cobraCmd.Flags().StringVarP(&format, "format", "f", "html", "Default output format: html or markdown")
	cobraCmd.Flags().StringVar(&backend, "backend", "gh", "Default GitHub access: gh or api")
	cobraCmd.Flags().BoolVar(&open, "open", true, "Open HTML reports in a browser by default")
	cobraCmd.Flags().StringVar(&outputDir, "output-dir", "", "Default directory for HTML reports")

	return cobraCmd
}

func runConfig(configFile string, update configUpdate, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error, detectRepo func() (string, error), ui *commands.UI) error {
	config, isUpdate, err := loadOrCreateConfig(configFile, loadConfig)
	if err != nil {
		return err
	}

	updateConfigWithProvidedValues(config, update)

	if len(config.Repositories) == 0 && detectRepo != nil {
		if repo, err := detectRepo(); err == nil {
			config.Repositories = []string{repo}
			slog.Info("Auto-detected repository", "repo", repo)
		} else {
			slog.Debug("No repository detected from git", "error", err)
		}
	}

	if err := validateConfig(config); err != nil {
		return err
	}

	if err := saveConfig(configFile, config); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return displayConfigSuccess(ui, configFile, config, isUpdate)
}

func validateConfig(config *cmd.Config) error {
	if err := commands.ValidateLookbackDays(config.LookbackDays); err != nil {
		return err
	}
	if _, err := commands.ValidateFormat(config.Format); err != nil {
		return err
	}
	return commands.ValidateBackend(config.Backend)
}

// displayConfigSuccess shows the saved settings
func displayConfigSuccess(ui *commands.UI, configFile string, config *cmd.Config, isUpdate bool) error {
	action := "initialized"
	if isUpdate {
		action = "updated"
	}

	author := config.Author
	if author == "" {
		author = "(auto-detect)"
	}
	repos := strings.Join(config.Repositories, ", ")
	if repos == "" {
		repos = "(none)"
	}
	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = "(system temp dir)"
	}

	ui.Success("Successfully %s %s", action, configFile)

	table := ui.Table([]string{"Setting", "Value"})
	rows := [][]string{
		{"Repositories", repos},
		{"Lookback Days", strconv.Itoa(config.LookbackDays)},
		{"Author", author},
		{"Format", config.Format},
		{"Backend", config.Backend},
		{"Open Report", strconv.FormatBool(config.Open)},
		{"Output Dir", outputDir},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// loadOrCreateConfig loads the existing config; a missing file yields the defaults
func loadOrCreateConfig(configFile string, loadConfig func(string) (*cmd.Config, error)) (*cmd.Config, bool, error) {
	_, statErr := os.Stat(configFile)

	config, err := loadConfig(configFile)
	if err != nil {
		return nil, false, err
	}
	return config, statErr == nil, nil
}

// updateConfigWithProvidedValues updates config with the values set on the command line
func updateConfigWithProvidedValues(config *cmd.Config, update configUpdate) {
	if update.Repositories != nil {
		config.Repositories = update.Repositories
	}
	if update.LookbackDays != nil {
		config.LookbackDays = *update.LookbackDays
	}
	if update.Author != nil {
		config.Author = *update.Author
	}
	if update.Format != nil {
		config.Format = *update.Format
	}
	if update.Backend != nil {
		config.Backend = *update.Backend
	}
	if update.Open != nil {
		config.Open = *update.Open
	}
	if update.OutputDir != nil {
		config.OutputDir = *update.OutputDir
	}
}

// detectGitRepository returns owner/name of the current checkout's origin remote
func detectGitRepository() (string, error) {
	gitCmd := exec.Command("git", "remote", "get-url", "origin")
	output, err := gitCmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository with an origin remote: %w", err)
	}

	org, repo, err := parseRemoteURL(strings.TrimSpace(string(output)))
	if err != nil {
		return "", err
	}
	return org + "/" + repo, nil
}

var (
	sshRemote   = regexp.MustCompile(`git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	httpsRemote = regexp.MustCompile(`https://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// parseRemoteURL extracts org and repo from SSH and HTTPS GitHub remote URLs
func parseRemoteURL(remoteURL string) (string, string, error) {
	if matches := sshRemote.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	if matches := httpsRemote.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	return "", "", fmt.Errorf("unable to parse GitHub remote URL: %s", remoteURL)
}
