package model

import "testing"

func TestPublishedDate(t *testing.T) {
	tests := []struct {
		name     string
		article  Article
		expected string
	}{
		{
			name:     "newsapi iso with Z",
			article:  Article{Provider: ProviderNewsAPI, PublishedAt: "2024-03-05T09:30:00Z"},
			expected: "2024-03-05",
		},
		{
			name:     "naver rfc1123",
			article:  Article{Provider: ProviderNaver, PublishedAt: "Tue, 05 Mar 2024 18:30:00 +0900"},
			expected: "2024-03-05",
		},
		{
			name:     "unparseable falls back to prefix",
			article:  Article{Provider: ProviderNewsAPI, PublishedAt: "2024-03-05 something"},
			expected: "2024-03-05",
		},
		{
			name:     "short value kept",
			article:  Article{Provider: ProviderNaver, PublishedAt: "today"},
			expected: "today",
		},
		{
			name:     "empty",
			article:  Article{Provider: ProviderNaver},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.article.PublishedAt
			if got := tt.article.PublishedDate(); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
			if tt.article.PublishedAt != original {
				t.Error("PublishedAt must not be mutated")
			}
		})
	}
}

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		text  string
		label SentimentLabel
		ok    bool
	}{
		{"Negative outlook, concerns rising", SentimentNegative, true},
		{"Sentiment: POSITIVE - strong earnings", SentimentPositive, true},
		{"중립적인 보도입니다", SentimentNeutral, true},
		{"neutral, though some negative notes", SentimentNeutral, true},
		{"AI, chips, export", "", false},
		{"부정확한 보도가 있으나 전반적으로 긍정적입니다", SentimentPositive, true},
		{"감정: 부정", SentimentNegative, true},
		{"부정확한 수치", "", false},
		{"Not positive at all: negative outlook", SentimentNegative, true},
		{"non-negative tone, broadly neutral", SentimentNeutral, true},
		{"Positively surprising results", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			label, ok := ClassifySentiment(tt.text)
			if ok != tt.ok {
				t.Errorf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if label != tt.label {
				t.Errorf("Expected label '%s', got '%s'", tt.label, label)
			}
		})
	}
}

func TestSplitKeywords(t *testing.T) {
	got := SplitKeywords(" AI, chips ,, export, policy, growth, trade, tariffs")
	expected := []string{"AI", "chips", "export", "policy", "growth"}

	if len(got) != len(expected) {
		t.Fatalf("Expected %d keywords, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Keyword %d: expected '%s', got '%s'", i, expected[i], got[i])
		}
	}
}
