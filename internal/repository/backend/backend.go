package backend

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

// Backend analyzes one article with a hosted language model.
// Analyze never returns an error: failures degrade to a fallback result.
type Backend interface {
	ID() model.BackendID
	Analyze(ctx context.Context, article model.Article, req model.AnalysisRequest) model.AnalysisResult
}

// Settings configures one backend adapter
type Settings struct {
	APIKey          string
	Model           string
	BaseURL         string
	Timeout         time.Duration
	FallbackSummary string
}

// DefaultFallbackSummary is used when Settings.FallbackSummary is empty
const DefaultFallbackSummary = "Unable to generate analysis."

const defaultTimeout = 60 * time.Second

// combinedMaxTokens bounds single-call responses
const combinedMaxTokens = 400

func (s Settings) withDefaults(modelName string) Settings {
	if s.Model == "" {
		s.Model = modelName
	}
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	if s.FallbackSummary == "" {
		s.FallbackSummary = DefaultFallbackSummary
	}
	return s
}

var (
	errEmptyResponse = errors.New("empty response")
	errNoResponse    = errors.New("no response from model")
)

// Fallback builds the degraded result for a failed analysis. Sentiment and
// keywords are always omitted.
func Fallback(summary string, err error) model.AnalysisResult {
	result := model.AnalysisResult{Summary: summary, Failed: true}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func fail(ctx context.Context, id model.BackendID, article model.Article, fallback string, err error) model.AnalysisResult {
	backendErr := &model.BackendError{Backend: id, Err: err}
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	logger.Printf("analysis_failed backend=%s url=%s error=%v", id, article.URL, err)
	return Fallback(fallback, backendErr)
}

// fromCombined turns a single combined response into a result
func fromCombined(ctx context.Context, id model.BackendID, article model.Article, req model.AnalysisRequest, fallback, text string) model.AnalysisResult {
	parsed := ParseCombined(text, req.IncludeSentiment, req.IncludeKeywords)
	if parsed.Summary == "" {
		return fail(ctx, id, article, fallback, errEmptyResponse)
	}
	return model.AnalysisResult{
		Summary:   parsed.Summary,
		Sentiment: parsed.Sentiment,
		Keywords:  parsed.Keywords,
	}
}
