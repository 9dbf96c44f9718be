package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/prompt"
)

type messagesRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func newMessagesServer(t *testing.T, status int, text string) (*httptest.Server, *[]messagesRequest) {
	t.Helper()
	requests := []messagesRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("Expected x-api-key header, got '%s'", r.Header.Get("X-Api-Key"))
		}
		if r.Header.Get("Anthropic-Version") == "" {
			t.Error("Expected anthropic-version header")
		}

		var req messagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		requests = append(requests, req)

		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
			return
		}

		content, _ := json.Marshal(text)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_01","type":"message","role":"assistant","model":"claude-3-haiku-20240307",` +
			`"content":[{"type":"text","text":` + string(content) + `}],` +
			`"stop_reason":"end_turn","stop_sequence":null,"usage":{"input_tokens":10,"output_tokens":20}}`))
	}))
	return server, &requests
}

func TestAnthropic_SingleCall(t *testing.T) {
	server, requests := newMessagesServer(t, http.StatusOK,
		"Summary line\nNegative outlook, concerns rising\nAI, chips, export, policy, growth")
	defer server.Close()

	backend := NewAnthropic(Settings{APIKey: "test-key", BaseURL: server.URL + "/"})
	req := model.AnalysisRequest{Verbosity: model.VerbosityDetailed, IncludeSentiment: true, IncludeKeywords: true}

	result := backend.Analyze(context.Background(), testArticle, req)

	if len(*requests) != 1 {
		t.Fatalf("Expected exactly 1 call, got %d", len(*requests))
	}

	sent := (*requests)[0]
	if sent.Model != "claude-3-haiku-20240307" {
		t.Errorf("Expected default model, got '%s'", sent.Model)
	}
	if sent.MaxTokens != 400 {
		t.Errorf("Expected max_tokens 400, got %d", sent.MaxTokens)
	}
	if len(sent.System) != 1 || sent.System[0].Text != prompt.CombinedSystem {
		t.Errorf("Unexpected system instruction: %+v", sent.System)
	}

	expectedPrompt := prompt.Build(testArticle.Title, testArticle.Description, model.VerbosityDetailed) +
		"\n\n" + prompt.SentimentClause() + "\n\n" + prompt.KeywordsClause()
	if len(sent.Messages) != 1 || len(sent.Messages[0].Content) != 1 || sent.Messages[0].Content[0].Text != expectedPrompt {
		t.Errorf("Expected combined prompt, got %+v", sent.Messages)
	}

	if result.Summary != "Summary line" {
		t.Errorf("Expected summary 'Summary line', got '%s'", result.Summary)
	}
	if result.Sentiment == nil || result.Sentiment.Status != model.FieldOK || result.Sentiment.Label != model.SentimentNegative {
		t.Errorf("Expected negative sentiment, got %+v", result.Sentiment)
	}
	if result.Keywords == nil || len(result.Keywords.Keywords) != 5 {
		t.Errorf("Expected 5 keywords, got %+v", result.Keywords)
	}
}

func TestAnthropic_ParseAmbiguity(t *testing.T) {
	server, _ := newMessagesServer(t, http.StatusOK, "Summary line\nNothing to classify\nAI, chips")
	defer server.Close()

	backend := NewAnthropic(Settings{APIKey: "test-key", BaseURL: server.URL + "/"})
	result := backend.Analyze(context.Background(), testArticle, model.AnalysisRequest{
		Verbosity: model.VerbosityShort, IncludeSentiment: true, IncludeKeywords: true,
	})

	if result.Failed {
		t.Fatalf("Parse ambiguity must not fail the article: %s", result.Error)
	}
	if result.Summary != "Summary line" {
		t.Errorf("Expected summary to be extracted, got '%s'", result.Summary)
	}
	if result.Sentiment == nil || result.Sentiment.Status != model.FieldParseFailed {
		t.Errorf("Expected parse_failed sentiment, got %+v", result.Sentiment)
	}
	if result.Keywords == nil || result.Keywords.Status != model.FieldOK {
		t.Errorf("Expected keywords ok, got %+v", result.Keywords)
	}
}

func TestAnthropic_Failure(t *testing.T) {
	server, requests := newMessagesServer(t, http.StatusInternalServerError, "")
	defer server.Close()

	backend := NewAnthropic(Settings{APIKey: "test-key", BaseURL: server.URL + "/"})
	result := backend.Analyze(context.Background(), testArticle, model.AnalysisRequest{
		Verbosity: model.VerbosityShort, IncludeSentiment: true, IncludeKeywords: true,
	})

	if len(*requests) != 1 {
		t.Errorf("Expected 1 call with no retry, got %d", len(*requests))
	}
	if !result.Failed || result.Summary != DefaultFallbackSummary {
		t.Errorf("Expected fallback result, got %+v", result)
	}
	if result.Sentiment != nil || result.Keywords != nil {
		t.Errorf("Expected extras to be omitted, got %+v", result)
	}
}
