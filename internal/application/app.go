package application

import (
	"fmt"

	"github.com/NiceTry3675/news-summarizer/internal/infrastructure"
	"github.com/NiceTry3675/news-summarizer/internal/repository/events"
	"github.com/NiceTry3675/news-summarizer/internal/service"
	"github.com/NiceTry3675/news-summarizer/internal/service/progress"
	"github.com/NiceTry3675/news-summarizer/internal/session"
	"github.com/NiceTry3675/news-summarizer/internal/transport/handler"
)

// Application represents the application with all business logic components
type Application struct {
	Config         *infrastructure.Config
	Pipeline       *service.Pipeline
	Sessions       *session.Store
	SearchHandler  *handler.SearchHandler
	SessionHandler *handler.SessionHandler
	cleanup        func()
}

// New creates a new application instance from the environment
func New() (*Application, error) {
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig wires all dependencies for the given configuration
func NewWithConfig(cfg *infrastructure.Config) (*Application, error) {
	reporters := progress.Multi{progress.Log{}, progress.Metrics{}}

	var publisher *events.NATSPublisher
	if cfg.NATSURL != "" {
		var err error
		publisher, err = events.NewNATSPublisher(cfg.NATSURL, cfg.NATSProgressSubject)
		if err != nil {
			return nil, fmt.Errorf("creating progress publisher: %w", err)
		}
		reporters = append(reporters, publisher)
	}

	registry := service.NewDefaultRegistry(cfg)
	pipeline := service.NewPipeline(registry, cfg.Credentials, cfg.DefaultLanguage, reporters)
	sessions := session.NewStore()

	return &Application{
		Config:         cfg,
		Pipeline:       pipeline,
		Sessions:       sessions,
		SearchHandler:  handler.NewSearchHandler(pipeline),
		SessionHandler: handler.NewSessionHandler(sessions),
		cleanup: func() {
			if publisher != nil {
				publisher.Close()
			}
		},
	}, nil
}

// Close releases application resources
func (a *Application) Close() {
	if a.cleanup != nil {
		a.cleanup()
	}
}
