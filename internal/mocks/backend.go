package mocks

import (
	"context"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

// Mock analysis backend. Articles whose URL is in FailURLs get the fallback result.
type MockBackend struct {
	BackendID model.BackendID
	FailURLs  map[string]bool
	Fallback  string
	Calls     []model.Article
}

func (m *MockBackend) ID() model.BackendID {
	if m.BackendID == "" {
		return model.BackendOpenAI
	}
	return m.BackendID
}

func (m *MockBackend) Analyze(ctx context.Context, article model.Article, req model.AnalysisRequest) model.AnalysisResult {
	m.Calls = append(m.Calls, article)

	if m.FailURLs[article.URL] {
		return model.AnalysisResult{Summary: m.Fallback, Failed: true, Error: "mock analysis failed"}
	}

	result := model.AnalysisResult{Summary: "summary of " + article.Title}
	if req.IncludeSentiment {
		result.Sentiment = model.NewSentimentResult("neutral tone")
	}
	if req.IncludeKeywords {
		result.Keywords = model.NewKeywordsResult("test, mock")
	}
	return result
}

// MockClosingBackend records Close calls
type MockClosingBackend struct {
	MockBackend
	Closed bool
}

func (m *MockClosingBackend) Close() error {
	m.Closed = true
	return nil
}
