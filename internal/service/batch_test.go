package service

import (
	"context"
	"testing"

	"github.com/NiceTry3675/news-summarizer/internal/mocks"
	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/service/progress"
)

func testArticles(n int) []model.Article {
	articles := make([]model.Article, 0, n)
	for i := 1; i <= n; i++ {
		articles = append(articles, model.Article{
			Title:    "Article " + string(rune('0'+i)),
			URL:      "https://example.com/" + string(rune('0'+i)),
			Source:   "Example",
			Provider: model.ProviderNaver,
		})
	}
	return articles
}

func TestRunBatch_FailureIsolatedAndProgressReported(t *testing.T) {
	articles := testArticles(3)
	backend := &mocks.MockBackend{
		FailURLs: map[string]bool{articles[1].URL: true},
		Fallback: "fallback",
	}

	var events []progress.Event
	reporter := progress.Func(func(ctx context.Context, e progress.Event) {
		events = append(events, e)
	})

	req := model.AnalysisRequest{Verbosity: model.VerbosityShort, IncludeSentiment: true}
	results := RunBatch(context.Background(), "batch-1", articles, req, backend, reporter)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Article.URL != articles[i].URL {
			t.Errorf("Result %d out of order: got %s", i, r.Article.URL)
		}
	}

	if !results[1].Analysis.Failed || results[1].Analysis.Summary != "fallback" {
		t.Errorf("Expected fallback for second article, got %+v", results[1].Analysis)
	}
	if results[1].Analysis.Sentiment != nil || results[1].Analysis.Keywords != nil {
		t.Errorf("Expected no extras on fallback, got %+v", results[1].Analysis)
	}
	for _, i := range []int{0, 2} {
		if results[i].Analysis.Failed {
			t.Errorf("Article %d should not be affected", i)
		}
		if results[i].Analysis.Summary != "summary of "+articles[i].Title {
			t.Errorf("Unexpected summary for article %d: %s", i, results[i].Analysis.Summary)
		}
	}

	if len(events) != 3 {
		t.Fatalf("Expected 3 progress events, got %d", len(events))
	}
	last := 0.0
	for i, e := range events {
		if e.Done != i+1 || e.Total != 3 || e.BatchID != "batch-1" {
			t.Errorf("Unexpected event %d: %+v", i, e)
		}
		if e.Fraction <= last {
			t.Errorf("Progress must increase: %v after %v", e.Fraction, last)
		}
		last = e.Fraction
	}
	if last != 1.0 {
		t.Errorf("Expected final progress 1.0, got %v", last)
	}
	if !events[1].Failed {
		t.Error("Expected second event to be marked failed")
	}
}

func TestRunBatch_SequentialCalls(t *testing.T) {
	articles := testArticles(4)
	backend := &mocks.MockBackend{}

	RunBatch(context.Background(), "b", articles, model.AnalysisRequest{}, backend, nil)

	if len(backend.Calls) != 4 {
		t.Fatalf("Expected 4 backend calls, got %d", len(backend.Calls))
	}
	for i, a := range backend.Calls {
		if a.URL != articles[i].URL {
			t.Errorf("Call %d: expected %s, got %s", i, articles[i].URL, a.URL)
		}
	}
}

func TestRunBatch_Empty(t *testing.T) {
	called := false
	reporter := progress.Func(func(ctx context.Context, e progress.Event) { called = true })

	results := RunBatch(context.Background(), "b", nil, model.AnalysisRequest{}, &mocks.MockBackend{}, reporter)

	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
	if called {
		t.Error("Expected no progress events for empty batch")
	}
}
