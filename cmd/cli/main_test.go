package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

func TestPrintResult(t *testing.T) {
	result := &model.BatchResult{
		Messages: []string{`Analysis failed for "Second": boom`},
		Articles: []model.AnalyzedArticle{
			{
				Article: model.Article{
					Title:       "<b>First</b> story",
					Source:      "Example",
					URL:         "https://example.com/1",
					PublishedAt: "2024-03-05T09:30:00Z",
					Provider:    model.ProviderNewsAPI,
				},
				Analysis: model.AnalysisResult{
					Summary:   "A summary.",
					Sentiment: &model.SentimentResult{Status: model.FieldOK, Label: model.SentimentPositive, Text: "Positive"},
					Keywords:  &model.KeywordsResult{Status: model.FieldParseFailed},
				},
			},
		},
	}

	var buf bytes.Buffer
	printResult(&buf, result)
	out := buf.String()

	expected := []string{
		`! Analysis failed for "Second": boom`,
		"1. First story",
		"Example | 2024-03-05",
		"Summary: A summary.",
		"Sentiment: Positive",
		"Keywords: (unavailable)",
	}
	for _, e := range expected {
		if !strings.Contains(out, e) {
			t.Errorf("Expected output to contain %q, got:\n%s", e, out)
		}
	}
}
