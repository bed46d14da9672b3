package commands

import (
	"strings"

	"github.com/alan/pr-status/cmd"
)

// ParseRepositories splits a comma-separated repository list, trimming blanks.
// Order and duplicates are preserved.
func ParseRepositories(arg string) []string {
	return cmd.NormalizeRepositories(strings.Split(arg, ","))
}

// RepositoriesFromArgs returns the positional repository list, or the normalized fallback when none was given
func RepositoriesFromArgs(args []string, fallback []string) []string {
	if len(args) == 0 {
		return cmd.NormalizeRepositories(fallback)
	}
	return ParseRepositories(args[0])
}
