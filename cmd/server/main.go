package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/NiceTry3675/news-summarizer/internal/application"
	"github.com/NiceTry3675/news-summarizer/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("News Summarizer Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  NAVER_CLIENT_ID       Naver search client ID\n")
		fmt.Printf("  NAVER_CLIENT_SECRET   Naver search client secret\n")
		fmt.Printf("  NEWSAPI_KEY           NewsAPI key\n")
		fmt.Printf("  OPENAI_API_KEY        OpenAI API key\n")
		fmt.Printf("  ANTHROPIC_API_KEY     Anthropic API key\n")
		fmt.Printf("  GEMINI_API_KEY        Gemini API key\n")
		fmt.Printf("  API_AUTH_TOKEN        Bearer token for /api/v1 (optional)\n")
		fmt.Printf("  NATS_URL              NATS server for progress events (optional)\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("News Summarizer Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	cfg := app.Config

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      server.NewRouter(app),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Expire idle sessions
	c := cron.New()
	_, err = c.AddFunc(cfg.SessionSweepSchedule, func() {
		app.Sessions.Sweep(ctx, cfg.SessionIdleTimeout)
	})
	if err != nil {
		log.Fatalf("Failed to schedule session sweep: %v", err)
	}
	c.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Starting server on %s:%s", cfg.Host, cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-sigChan
	log.Println("🛑 Shutting down server...")

	cancel()
	<-c.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
