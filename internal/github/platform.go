package github

import "context"

// SearchLimit is the page size used when searching a repository for open PRs
const SearchLimit = 20

// PlatformClient is the set of GitHub queries pr-status depends on.
// Repositories are given as "owner/name".
type PlatformClient interface {
	GetAuthenticatedUser(ctx context.Context) (string, error)
	SearchOpenPRs(ctx context.Context, repo, author string, limit int) ([]SearchResult, error)
	GetPRDetail(ctx context.Context, repo string, number int) (*PRDetail, error)
	GetCheckRuns(ctx context.Context, repo, sha string) ([]CheckRun, error)
}

var (
	_ PlatformClient = (*CLIClient)(nil)
	_ PlatformClient = (*Client)(nil)
)
