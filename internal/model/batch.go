package model

// AnalyzedArticle pairs an article with its analysis
type AnalyzedArticle struct {
	Article  Article        `json:"article"`
	Analysis AnalysisResult `json:"analysis"`
}

// BatchResult is the outcome of one search-and-analyze invocation
type BatchResult struct {
	ID       string            `json:"id"`
	Keyword  string            `json:"keyword"`
	Provider ProviderID        `json:"provider"`
	Backend  BackendID         `json:"backend"`
	Articles []AnalyzedArticle `json:"articles"`
	Messages []string          `json:"messages,omitempty"`
}
