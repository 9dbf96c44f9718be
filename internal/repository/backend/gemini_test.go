package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/prompt"
)

type fakeGenerator struct {
	text   string
	err    error
	calls  int
	system string
	user   string
}

func (f *fakeGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	return f.text, f.err
}

func TestGemini_Analyze(t *testing.T) {
	gen := &fakeGenerator{text: "Summary line\nPositive reception from markets"}
	g := &Gemini{generator: gen, timeout: time.Second, fallback: "fb"}

	req := model.AnalysisRequest{Verbosity: model.VerbosityNormal, IncludeSentiment: true}
	result := g.Analyze(context.Background(), testArticle, req)

	if gen.calls != 1 {
		t.Errorf("Expected 1 call, got %d", gen.calls)
	}
	if gen.user != prompt.Combined(testArticle.Title, testArticle.Description, req) {
		t.Errorf("Unexpected prompt: %s", gen.user)
	}
	if result.Summary != "Summary line" {
		t.Errorf("Expected 'Summary line', got '%s'", result.Summary)
	}
	if result.Sentiment == nil || result.Sentiment.Label != model.SentimentPositive {
		t.Errorf("Expected positive sentiment, got %+v", result.Sentiment)
	}
	if result.Keywords != nil {
		t.Errorf("Expected no keywords, got %+v", result.Keywords)
	}
}

func TestGemini_Failures(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"call error", &fakeGenerator{err: errors.New("quota exceeded")}},
		{"empty response", &fakeGenerator{text: "   \n  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gemini{generator: tt.gen, timeout: time.Second, fallback: "fb"}
			result := g.Analyze(context.Background(), testArticle, model.AnalysisRequest{
				Verbosity: model.VerbosityShort, IncludeKeywords: true,
			})

			if !result.Failed || result.Summary != "fb" {
				t.Errorf("Expected fallback result, got %+v", result)
			}
			if result.Keywords != nil || result.Sentiment != nil {
				t.Errorf("Expected extras to be omitted, got %+v", result)
			}
		})
	}
}
