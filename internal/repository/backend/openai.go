package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/prompt"
)

// OpenAI issues one chat completion per requested capability
type OpenAI struct {
	client   *openai.Client
	model    openai.ChatModel
	fallback string
}

type completionParams struct {
	system      string
	user        string
	temperature float64
	maxTokens   int64
}

// NewOpenAI creates a chat-completions backend. Retries are disabled.
func NewOpenAI(s Settings) *OpenAI {
	s = s.withDefaults("gpt-4o-mini")

	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(s.Timeout),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAI{
		client:   &client,
		model:    openai.ChatModel(s.Model),
		fallback: s.FallbackSummary,
	}
}

func (o *OpenAI) ID() model.BackendID {
	return model.BackendOpenAI
}

// Analyze calls the model once for the summary and once per requested extra.
// Any failed call degrades the whole result.
func (o *OpenAI) Analyze(ctx context.Context, article model.Article, req model.AnalysisRequest) model.AnalysisResult {
	summary, err := o.complete(ctx, completionParams{
		system:      prompt.SummarySystem,
		user:        prompt.Build(article.Title, article.Description, req.Verbosity),
		temperature: 0.3,
		maxTokens:   300,
	})
	if err != nil {
		return fail(ctx, o.ID(), article, o.fallback, err)
	}

	result := model.AnalysisResult{Summary: summary}

	if req.IncludeSentiment {
		text, err := o.complete(ctx, completionParams{
			system:      prompt.SentimentSystem,
			user:        prompt.Sentiment(article.Title, article.Description),
			temperature: 0.1,
			maxTokens:   100,
		})
		if err != nil {
			return fail(ctx, o.ID(), article, o.fallback, err)
		}
		result.Sentiment = model.NewSentimentResult(text)
	}

	if req.IncludeKeywords {
		text, err := o.complete(ctx, completionParams{
			system:      prompt.KeywordsSystem,
			user:        prompt.Keywords(article.Title, article.Description),
			temperature: 0.1,
			maxTokens:   100,
		})
		if err != nil {
			return fail(ctx, o.ID(), article, o.fallback, err)
		}
		result.Keywords = model.NewKeywordsResult(text)
	}

	return result
}

func (o *OpenAI) complete(ctx context.Context, p completionParams) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.system),
			openai.UserMessage(p.user),
		},
		Temperature: openai.Float(p.temperature),
		MaxTokens:   openai.Int(p.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errNoResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}
