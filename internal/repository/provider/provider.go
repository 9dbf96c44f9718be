package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

// Sort selects provider-side ordering
type Sort string

const (
	SortRelevance Sort = "relevance"
	SortRecency   Sort = "recency"
)

// Valid reports whether s is a known ordering
func (s Sort) Valid() bool {
	return s == SortRelevance || s == SortRecency
}

// MaxCount is the largest page a provider is asked for
const MaxCount = 100

// ErrInvalidCount is returned when a query asks for fewer than 1 or more than MaxCount articles
var ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", MaxCount)

// ErrInvalidSort is returned for an unknown ordering
var ErrInvalidSort = errors.New("sort must be relevance or recency")

// Query describes one search call
type Query struct {
	Keyword  string
	Count    int
	Sort     Sort
	Language string
}

func (q Query) validate() error {
	if q.Count < 1 || q.Count > MaxCount {
		return ErrInvalidCount
	}
	if q.Sort == "" {
		return nil
	}
	if !q.Sort.Valid() {
		return ErrInvalidSort
	}
	return nil
}

// Provider searches one external news service and normalizes its records.
// Search performs a single request with no retry and no pagination.
type Provider interface {
	ID() model.ProviderID
	Search(ctx context.Context, q Query) ([]model.Article, error)
}

// Settings holds the per-adapter knobs shared by both providers
type Settings struct {
	BaseURL       string
	DefaultSource string
	Timeout       time.Duration
}

const (
	defaultTimeout = 10 * time.Second
	unknownSource  = "unknown"
)

func (s Settings) withDefaults(baseURL string) Settings {
	if s.BaseURL == "" {
		s.BaseURL = baseURL
	}
	if s.DefaultSource == "" {
		s.DefaultSource = unknownSource
	}
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	return s
}

// fetchJSON sends req and decodes a 2xx JSON body into out.
// Failures are mapped to ProviderError or TransportError.
func fetchJSON(client *http.Client, id model.ProviderID, req *http.Request, out interface{}) error {
	resp, err := client.Do(req)
	if err != nil {
		return &model.TransportError{Provider: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &model.ProviderError{Provider: id, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &model.ProviderError{Provider: id, Body: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// newRequest builds a JSON GET request
func newRequest(ctx context.Context, id model.ProviderID, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &model.ProviderError{Provider: id, Body: fmt.Sprintf("creating request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
