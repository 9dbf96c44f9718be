package service

import (
	"context"

	"github.com/NiceTry3675/news-summarizer/internal/infrastructure"
	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/repository/backend"
	"github.com/NiceTry3675/news-summarizer/internal/repository/provider"
)

// Credentials maps credential keys to secrets
type Credentials map[string]string

// require returns a MissingCredentialError for the first absent key
func (c Credentials) require(keys ...string) error {
	for _, key := range keys {
		if c[key] == "" {
			return &model.MissingCredentialError{Field: key}
		}
	}
	return nil
}

// merge returns c overlaid with non-empty values from override
func (c Credentials) merge(override map[string]string) Credentials {
	merged := make(Credentials, len(c)+len(override))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range override {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}

// ProviderFactory builds a provider from resolved credentials
type ProviderFactory func(creds Credentials) (provider.Provider, error)

// BackendFactory builds a backend from resolved credentials
type BackendFactory func(ctx context.Context, creds Credentials) (backend.Backend, error)

// Registry manages available providers and backends
type Registry struct {
	providers map[model.ProviderID]ProviderFactory
	backends  map[model.BackendID]BackendFactory
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[model.ProviderID]ProviderFactory),
		backends:  make(map[model.BackendID]BackendFactory),
	}
}

func (r *Registry) RegisterProvider(id model.ProviderID, factory ProviderFactory) {
	r.providers[id] = factory
}

func (r *Registry) RegisterBackend(id model.BackendID, factory BackendFactory) {
	r.backends[id] = factory
}

func (r *Registry) GetProvider(id model.ProviderID) (ProviderFactory, bool) {
	factory, exists := r.providers[id]
	return factory, exists
}

func (r *Registry) GetBackend(id model.BackendID) (BackendFactory, bool) {
	factory, exists := r.backends[id]
	return factory, exists
}

// NewDefaultRegistry registers the Naver and NewsAPI providers and the
// OpenAI, Anthropic and Gemini backends using cfg
func NewDefaultRegistry(cfg *infrastructure.Config) *Registry {
	r := NewRegistry()

	r.RegisterProvider(model.ProviderNaver, func(creds Credentials) (provider.Provider, error) {
		if err := creds.require(infrastructure.CredNaverClientID, infrastructure.CredNaverClientSecret); err != nil {
			return nil, err
		}
		return provider.NewNaver(creds[infrastructure.CredNaverClientID], creds[infrastructure.CredNaverClientSecret], provider.Settings{
			BaseURL:       cfg.NaverBaseURL,
			DefaultSource: cfg.DefaultSource,
			Timeout:       cfg.ProviderTimeout,
		}), nil
	})

	r.RegisterProvider(model.ProviderNewsAPI, func(creds Credentials) (provider.Provider, error) {
		if err := creds.require(infrastructure.CredNewsAPIKey); err != nil {
			return nil, err
		}
		return provider.NewNewsAPI(creds[infrastructure.CredNewsAPIKey], provider.Settings{
			BaseURL:       cfg.NewsAPIBaseURL,
			DefaultSource: cfg.DefaultSource,
			Timeout:       cfg.ProviderTimeout,
		}), nil
	})

	r.RegisterBackend(model.BackendOpenAI, func(ctx context.Context, creds Credentials) (backend.Backend, error) {
		if err := creds.require(infrastructure.CredOpenAIKey); err != nil {
			return nil, err
		}
		return backend.NewOpenAI(backend.Settings{
			APIKey:          creds[infrastructure.CredOpenAIKey],
			Model:           cfg.OpenAIModel,
			BaseURL:         cfg.OpenAIBaseURL,
			Timeout:         cfg.BackendTimeout,
			FallbackSummary: cfg.FallbackSummary,
		}), nil
	})

	r.RegisterBackend(model.BackendAnthropic, func(ctx context.Context, creds Credentials) (backend.Backend, error) {
		if err := creds.require(infrastructure.CredAnthropicKey); err != nil {
			return nil, err
		}
		return backend.NewAnthropic(backend.Settings{
			APIKey:          creds[infrastructure.CredAnthropicKey],
			Model:           cfg.AnthropicModel,
			BaseURL:         cfg.AnthropicBaseURL,
			Timeout:         cfg.BackendTimeout,
			FallbackSummary: cfg.FallbackSummary,
		}), nil
	})

	r.RegisterBackend(model.BackendGemini, func(ctx context.Context, creds Credentials) (backend.Backend, error) {
		if err := creds.require(infrastructure.CredGeminiKey); err != nil {
			return nil, err
		}
		return backend.NewGemini(ctx, backend.Settings{
			APIKey:          creds[infrastructure.CredGeminiKey],
			Model:           cfg.GeminiModel,
			Timeout:         cfg.BackendTimeout,
			FallbackSummary: cfg.FallbackSummary,
		})
	})

	return r
}
