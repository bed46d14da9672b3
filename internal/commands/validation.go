package commands

import (
	"fmt"

	"github.com/alan/pr-status/cmd"
)

// ValidateRepositories ensures at least one repository was supplied
func ValidateRepositories(repos []string) error {
	if len(repos) == 0 {
		return fmt.Errorf("repositories parameter is required (usage: pr-status \"owner/repo1,owner/repo2\" [options])")
	}
	return nil
}

// ValidateLookbackDays rejects negative lookback windows
func ValidateLookbackDays(days int) error {
	if days < 0 {
		return fmt.Errorf("days must be zero or greater, got %d", days)
	}
	return nil
}

// ValidateFormat parses an output format name
func ValidateFormat(format string) (cmd.OutputFormat, error) {
	f, ok := cmd.ParseOutputFormat(format)
	if !ok {
		return "", fmt.Errorf("unknown format %q (use html or markdown)", format)
	}
	return f, nil
}

// ValidateBackend checks the backend name
func ValidateBackend(backend string) error {
	switch backend {
	case cmd.BackendGH, cmd.BackendAPI:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (use %s or %s)", backend, cmd.BackendGH, cmd.BackendAPI)
	}
}
