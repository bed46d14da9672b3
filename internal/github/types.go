package github

import "time"

// SearchResult is a PR returned by the open-PR search
type SearchResult struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PRDetail holds the fields fetched for a single PR
type PRDetail struct {
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
	Labels    []string  `json:"labels"`
	HeadSHA   string    `json:"head_sha"`
}

// CheckRun is a single CI job result for a commit
type CheckRun struct {
	Name       string `json:"name"`
	Status     string `json:"status"`     // queued, in_progress, completed
	Conclusion string `json:"conclusion"` // success, failure, neutral, ... (empty until completed)
}
