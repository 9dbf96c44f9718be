package application

import (
	"testing"
	"time"

	"github.com/NiceTry3675/news-summarizer/internal/infrastructure"
)

func testConfig() *infrastructure.Config {
	return &infrastructure.Config{
		DefaultLanguage:     "ko",
		DefaultSource:       "unknown",
		ProviderTimeout:     time.Second,
		BackendTimeout:      time.Second,
		FallbackSummary:     "Unable to generate analysis.",
		Credentials:         map[string]string{},
		SessionIdleTimeout:  time.Hour,
		NATSProgressSubject: "news.analysis.progress",
	}
}

func TestNewWithConfig(t *testing.T) {
	app, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	if app.Pipeline == nil || app.Sessions == nil {
		t.Fatal("Expected pipeline and session store to be wired")
	}
	if app.SearchHandler == nil || app.SessionHandler == nil {
		t.Fatal("Expected handlers to be wired")
	}
}

func TestNewWithConfig_UnreachableNATS(t *testing.T) {
	cfg := testConfig()
	cfg.NATSURL = "nats://127.0.0.1:1"

	if _, err := NewWithConfig(cfg); err == nil {
		t.Error("Expected error for unreachable NATS server")
	}
}
