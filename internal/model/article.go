package model

import "time"

// ProviderID identifies the search provider that produced an article
type ProviderID string

const (
	ProviderNaver   ProviderID = "naver"
	ProviderNewsAPI ProviderID = "newsapi"
)

// Valid reports whether p names a known provider
func (p ProviderID) Valid() bool {
	return p == ProviderNaver || p == ProviderNewsAPI
}

// Article is one retrieved news item. Title and Description keep the
// provider's raw text, markup included.
type Article struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Source      string     `json:"source"`
	PublishedAt string     `json:"published_at"`
	Provider    ProviderID `json:"provider"`
}

// PublishedDate renders PublishedAt as YYYY-MM-DD for display.
// Unparseable values fall back to their first 10 characters.
func (a Article) PublishedDate() string {
	if a.PublishedAt == "" {
		return ""
	}

	layouts := []string{time.RFC1123Z, time.RFC1123}
	if a.Provider == ProviderNewsAPI {
		layouts = []string{time.RFC3339, "2006-01-02T15:04:05"}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, a.PublishedAt); err == nil {
			return t.Format("2006-01-02")
		}
	}

	if len(a.PublishedAt) > 10 {
		return a.PublishedAt[:10]
	}
	return a.PublishedAt
}
