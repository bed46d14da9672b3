package render

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxNamedRepos is the largest repository count spelled out in the file name
const maxNamedRepos = 4

// ReportPath returns the HTML report location for author and repos under dir.
// The same author and repository list always map to the same file.
// An empty dir means the OS temp directory.
func ReportPath(dir, author string, repos []string) string {
	if dir == "" {
		dir = os.TempDir()
	}

	sum := sha256.Sum256([]byte(author + "_" + strings.Join(repos, "_")))
	hash := hex.EncodeToString(sum[:])[:8]

	return filepath.Join(dir, fmt.Sprintf("pr-status-%s-%s-%s.html", author, repoSuffix(repos), hash))
}

func repoSuffix(repos []string) string {
	if len(repos) > maxNamedRepos {
		return fmt.Sprintf("%drepos", len(repos))
	}

	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		names = append(names, RepoDisplayName(repo))
	}
	return strings.ToLower(strings.Join(names, "+"))
}
