package model

// Bookmark is a user-curated subset of an analyzed article
type Bookmark struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	URL     string `json:"url"`
}
