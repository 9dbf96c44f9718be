package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/prompt"
)

// textGenerator produces one response for a system and user instruction
type textGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Gemini issues a single generateContent call, parsed like Anthropic's response
type Gemini struct {
	generator textGenerator
	timeout   time.Duration
	fallback  string
	close     func() error
}

// NewGemini creates a Gemini backend. The returned backend must be closed.
func NewGemini(ctx context.Context, s Settings) (*Gemini, error) {
	s = s.withDefaults("gemini-1.5-flash")

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		generator: &genaiGenerator{client: client, model: s.Model},
		timeout:   s.Timeout,
		fallback:  s.FallbackSummary,
		close:     client.Close,
	}, nil
}

func (g *Gemini) ID() model.BackendID {
	return model.BackendGemini
}

func (g *Gemini) Analyze(ctx context.Context, article model.Article, req model.AnalysisRequest) model.AnalysisResult {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.generator.Generate(callCtx, prompt.CombinedSystem, prompt.Combined(article.Title, article.Description, req))
	if err != nil {
		return fail(ctx, g.ID(), article, g.fallback, err)
	}
	return fromCombined(ctx, g.ID(), article, req, g.fallback, text)
}

// Close releases the underlying client
func (g *Gemini) Close() error {
	if g.close != nil {
		return g.close()
	}
	return nil
}

type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.3)
	m.SetMaxOutputTokens(combinedMaxTokens)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errNoResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
