package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alan/pr-status/cmd"
	"github.com/alan/pr-status/internal/github"
)

// ClientFactory builds the PlatformClient for a backend name
type ClientFactory func(ctx context.Context, backend string) (github.PlatformClient, error)

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigFile *string
	LoadConfig func(string) (*cmd.Config, error)
	NewClient  ClientFactory
	Client     github.PlatformClient
	Config     *cmd.Config
}

// Init loads the configuration
func (bc *BaseCommand) Init() error {
	configFile := ""
	if bc.ConfigFile != nil {
		configFile = *bc.ConfigFile
	}

	config, err := bc.LoadConfig(configFile)
	if err != nil {
		return err
	}
	bc.Config = config
	return nil
}

// InitClient creates the platform client for the configured backend
func (bc *BaseCommand) InitClient(ctx context.Context) error {
	factory := bc.NewClient
	if factory == nil {
		factory = NewPlatformClient
	}

	client, err := factory(ctx, bc.Config.Backend)
	if err != nil {
		return err
	}
	bc.Client = client
	return nil
}

// NewPlatformClient returns a gh-backed or API-backed client.
// The gh backend fails when the GitHub CLI is not installed; the api backend needs GITHUB_TOKEN.
func NewPlatformClient(ctx context.Context, backend string) (github.PlatformClient, error) {
	switch backend {
	case cmd.BackendGH, "":
		client := github.NewCLIClient(nil)
		if err := client.CheckInstalled(ctx); err != nil {
			return nil, fmt.Errorf("%w (visit https://cli.github.com/)", err)
		}
		return client, nil
	case cmd.BackendAPI:
		token, err := getGitHubToken()
		if err != nil {
			return nil, err
		}
		return github.NewClient(ctx, token), nil
	default:
		return nil, ValidateBackend(backend)
	}
}

// getGitHubToken retrieves and validates the GitHub token
func getGitHubToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", fmt.Errorf("GITHUB_TOKEN environment variable is required for the api backend")
	}
	return token, nil
}

// ResolveAuthor returns author, or the authenticated user when author is empty
func ResolveAuthor(ctx context.Context, client github.PlatformClient, author string) (string, bool, error) {
	if author != "" {
		return author, false, nil
	}

	login, err := client.GetAuthenticatedUser(ctx)
	if err != nil {
		return "", false, fmt.Errorf("could not detect GitHub username, authenticate with 'gh auth login' or pass --author: %w", err)
	}
	slog.Debug("Auto-detected GitHub user", "login", login)
	return login, true, nil
}
