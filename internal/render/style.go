package render

import (
	"strings"

	"github.com/alan/pr-status/cmd"
)

// repoRule maps repositories whose name matches to a badge class
type repoRule struct {
	match func(repo string) bool
	class string
}

func contains(keyword string) func(string) bool {
	return func(repo string) bool { return strings.Contains(repo, keyword) }
}

const defaultRepoClass = "bg-gray-100 text-gray-800"

// repoRules are evaluated top to bottom; the first match wins
var repoRules = []repoRule{
	{match: contains("server"), class: "bg-blue-100 text-blue-800"},
	{match: contains("client"), class: "bg-purple-100 text-purple-800"},
	{match: contains("app"), class: "bg-green-100 text-green-800"},
	{match: contains("batch"), class: "bg-orange-100 text-orange-800"},
}

// RepoClass returns the badge color classes for a repository
func RepoClass(repo string) string {
	for _, rule := range repoRules {
		if rule.match(repo) {
			return rule.class
		}
	}
	return defaultRepoClass
}

// RepoDisplayName strips the owner prefix from "owner/name"
func RepoDisplayName(repo string) string {
	if _, name, ok := strings.Cut(repo, "/"); ok {
		return name
	}
	return repo
}

// CIBadge describes how a CI status is presented
type CIBadge struct {
	Icon  string
	Class string
}

var ciBadges = map[cmd.CIStatus]CIBadge{
	cmd.CIStatusFailed:  {Icon: "❌", Class: "bg-red-100 text-red-800"},
	cmd.CIStatusRunning: {Icon: "⏳", Class: "bg-yellow-100 text-yellow-800 animate-pulse-slow"},
	cmd.CIStatusPassed:  {Icon: "✅", Class: "bg-green-100 text-green-800"},
	cmd.CIStatusNoCI:    {Icon: "⚪", Class: "bg-gray-100 text-gray-800"},
}

// BadgeFor returns the badge for a CI status, falling back to the no-CI badge
func BadgeFor(status cmd.CIStatus) CIBadge {
	if badge, ok := ciBadges[status]; ok {
		return badge
	}
	return ciBadges[cmd.CIStatusNoCI]
}
