package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/prompt"
)

// Anthropic issues a single messages call covering every requested capability
type Anthropic struct {
	client   *anthropic.Client
	model    anthropic.Model
	fallback string
}

// NewAnthropic creates a messages-API backend. Retries are disabled.
func NewAnthropic(s Settings) *Anthropic {
	s = s.withDefaults("claude-3-haiku-20240307")

	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(s.Timeout),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &Anthropic{
		client:   &client,
		model:    anthropic.Model(s.Model),
		fallback: s.FallbackSummary,
	}
}

func (a *Anthropic) ID() model.BackendID {
	return model.BackendAnthropic
}

func (a *Anthropic) Analyze(ctx context.Context, article model.Article, req model.AnalysisRequest) model.AnalysisResult {
	text, err := a.complete(ctx, prompt.Combined(article.Title, article.Description, req))
	if err != nil {
		return fail(ctx, a.ID(), article, a.fallback, err)
	}
	return fromCombined(ctx, a.ID(), article, req, a.fallback, text)
}

func (a *Anthropic) complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: combinedMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: prompt.CombinedSystem},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errNoResponse
	}
	return b.String(), nil
}
