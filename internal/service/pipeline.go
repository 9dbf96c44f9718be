package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"

	"github.com/NiceTry3675/news-summarizer/internal/metrics"
	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/repository/provider"
	"github.com/NiceTry3675/news-summarizer/internal/sanitize"
	"github.com/NiceTry3675/news-summarizer/internal/service/progress"
)

// MaxDisplayCount bounds the number of articles analyzed per batch
const MaxDisplayCount = 10

const defaultDisplayCount = 5

// ErrEmptyKeyword is returned when the search keyword is blank
var ErrEmptyKeyword = errors.New("keyword must not be empty")

// ValidationError reports an invalid option
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Options is the per-invocation configuration supplied by the caller
type Options struct {
	Source           model.ProviderID  `json:"source"`
	DisplayCount     int               `json:"display_count"`
	Sort             provider.Sort     `json:"sort"`
	SummaryLength    model.Verbosity   `json:"summary_length"`
	IncludeSentiment bool              `json:"include_sentiment"`
	IncludeKeywords  bool              `json:"include_keywords"`
	Model            model.BackendID   `json:"model"`
	Language         string            `json:"language"`
	Credentials      map[string]string `json:"credentials,omitempty"`
}

func (o Options) withDefaults(language string) Options {
	if o.Source == "" {
		o.Source = model.ProviderNaver
	}
	if o.DisplayCount == 0 {
		o.DisplayCount = defaultDisplayCount
	}
	if o.Sort == "" {
		o.Sort = provider.SortRelevance
	}
	if o.SummaryLength == "" {
		o.SummaryLength = model.VerbosityNormal
	}
	if o.Model == "" {
		o.Model = model.BackendOpenAI
	}
	if o.Language == "" {
		o.Language = language
	}
	return o
}

func (o Options) validate() error {
	if !o.Source.Valid() {
		return &ValidationError{Field: "source", Message: fmt.Sprintf("unknown source %q", o.Source)}
	}
	if o.DisplayCount < 1 || o.DisplayCount > MaxDisplayCount {
		return &ValidationError{Field: "display_count", Message: fmt.Sprintf("must be between 1 and %d", MaxDisplayCount)}
	}
	if !o.Sort.Valid() {
		return &ValidationError{Field: "sort", Message: fmt.Sprintf("unknown sort %q", o.Sort)}
	}
	if !o.SummaryLength.Valid() {
		return &ValidationError{Field: "summary_length", Message: fmt.Sprintf("unknown summary length %q", o.SummaryLength)}
	}
	if !o.Model.Valid() {
		return &ValidationError{Field: "model", Message: fmt.Sprintf("unknown model %q", o.Model)}
	}
	return nil
}

// Pipeline resolves a provider and backend per call, searches, then analyzes
// each hit. It holds no per-session state.
type Pipeline struct {
	registry        *Registry
	defaults        Credentials
	defaultLanguage string
	reporter        progress.Reporter
}

// NewPipeline creates a pipeline. defaults supplies credentials absent from a request.
func NewPipeline(registry *Registry, defaults map[string]string, defaultLanguage string, reporter progress.Reporter) *Pipeline {
	if reporter == nil {
		reporter = progress.Nop
	}
	return &Pipeline{
		registry:        registry,
		defaults:        Credentials{}.merge(defaults),
		defaultLanguage: defaultLanguage,
		reporter:        reporter,
	}
}

// Run executes one search-and-analyze batch.
//
// Invalid options and missing credentials are returned as errors before any
// external call. Provider failures and empty results yield a batch with no
// articles and a user-visible message. Per-article failures are reported in
// Messages alongside the fallback result.
func (p *Pipeline) Run(ctx context.Context, keyword string, opts Options) (*model.BatchResult, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	start := time.Now()

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	opts = opts.withDefaults(p.defaultLanguage)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	providerFactory, ok := p.registry.GetProvider(opts.Source)
	if !ok {
		return nil, &ValidationError{Field: "source", Message: fmt.Sprintf("source %q is not available", opts.Source)}
	}
	backendFactory, ok := p.registry.GetBackend(opts.Model)
	if !ok {
		return nil, &ValidationError{Field: "model", Message: fmt.Sprintf("model %q is not available", opts.Model)}
	}

	creds := p.defaults.merge(opts.Credentials)

	searcher, err := providerFactory(creds)
	if err != nil {
		return nil, err
	}
	analyzer, err := backendFactory(ctx, creds)
	if err != nil {
		return nil, err
	}
	if closer, ok := analyzer.(io.Closer); ok {
		defer closer.Close()
	}

	result := &model.BatchResult{
		ID:       uuid.NewString(),
		Keyword:  keyword,
		Provider: opts.Source,
		Backend:  opts.Model,
		Articles: []model.AnalyzedArticle{},
	}

	articles, err := searcher.Search(ctx, provider.Query{
		Keyword:  keyword,
		Count:    opts.DisplayCount,
		Sort:     opts.Sort,
		Language: opts.Language,
	})
	if err != nil {
		var providerErr *model.ProviderError
		var transportErr *model.TransportError
		if !errors.As(err, &providerErr) && !errors.As(err, &transportErr) {
			return nil, fmt.Errorf("searching %s: %w", opts.Source, err)
		}
		metrics.SearchesTotal.WithLabelValues(string(opts.Source), "error").Inc()
		logger.Printf("search_failed batch=%s provider=%s error=%v", result.ID, opts.Source, err)
		result.Messages = append(result.Messages, fmt.Sprintf("News search failed: %v", err))
		return result, nil
	}

	metrics.SearchesTotal.WithLabelValues(string(opts.Source), "success").Inc()
	metrics.ArticlesFetched.WithLabelValues(string(opts.Source)).Add(float64(len(articles)))

	if len(articles) == 0 {
		result.Messages = append(result.Messages, fmt.Sprintf("No articles found for %q.", keyword))
		return result, nil
	}

	req := model.AnalysisRequest{
		Verbosity:        opts.SummaryLength,
		IncludeSentiment: opts.IncludeSentiment,
		IncludeKeywords:  opts.IncludeKeywords,
		Backend:          opts.Model,
	}
	result.Articles = RunBatch(ctx, result.ID, articles, req, analyzer, p.reporter)

	failed := 0
	for _, a := range result.Articles {
		if a.Analysis.Failed {
			failed++
			result.Messages = append(result.Messages, fmt.Sprintf("Analysis failed for %q: %s", sanitize.Strip(a.Article.Title), a.Analysis.Error))
		}
	}

	logger.Printf("batch_completed batch=%s provider=%s backend=%s articles=%d failed=%d duration_ms=%d",
		result.ID, opts.Source, opts.Model, len(result.Articles), failed, time.Since(start).Milliseconds())

	return result, nil
}
