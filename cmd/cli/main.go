package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/NiceTry3675/news-summarizer/internal/infrastructure"
	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/repository/provider"
	"github.com/NiceTry3675/news-summarizer/internal/sanitize"
	"github.com/NiceTry3675/news-summarizer/internal/service"
	"github.com/NiceTry3675/news-summarizer/internal/service/progress"
)

func main() {
	var (
		keyword   = flag.String("keyword", "", "Search keyword (required)")
		source    = flag.String("source", string(model.ProviderNaver), "News source: naver or newsapi")
		count     = flag.Int("count", 5, "Number of articles to analyze (1-10)")
		sort      = flag.String("sort", string(provider.SortRelevance), "Ordering: relevance or recency")
		length    = flag.String("length", string(model.VerbosityNormal), "Summary length: short, normal or detailed")
		sentiment = flag.Bool("sentiment", false, "Include sentiment analysis")
		keywords  = flag.Bool("keywords", false, "Include keyword extraction")
		backend   = flag.String("model", string(model.BackendOpenAI), "Analysis model: openai, anthropic or gemini")
		language  = flag.String("lang", "", "NewsAPI language filter (default from DEFAULT_LANGUAGE)")
	)
	flag.Parse()

	cfg, err := infrastructure.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	reporter := progress.Func(func(ctx context.Context, e progress.Event) {
		fmt.Printf("[%d/%d] %s\n", e.Done, e.Total, sanitize.Strip(e.Title))
	})
	pipeline := service.NewPipeline(service.NewDefaultRegistry(cfg), cfg.Credentials, cfg.DefaultLanguage, reporter)

	result, err := pipeline.Run(context.Background(), *keyword, service.Options{
		Source:           model.ProviderID(*source),
		DisplayCount:     *count,
		Sort:             provider.Sort(*sort),
		SummaryLength:    model.Verbosity(*length),
		IncludeSentiment: *sentiment,
		IncludeKeywords:  *keywords,
		Model:            model.BackendID(*backend),
		Language:         *language,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyKeyword) {
			fmt.Fprintln(os.Stderr, "Please enter a search keyword")
			flag.Usage()
			os.Exit(2)
		}
		log.Fatalf("Search failed: %v", err)
	}

	printResult(os.Stdout, result)
}

func printResult(w io.Writer, result *model.BatchResult) {
	for _, msg := range result.Messages {
		fmt.Fprintf(w, "! %s\n", msg)
	}

	for i, a := range result.Articles {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, sanitize.Strip(a.Article.Title))
		fmt.Fprintf(w, "   %s | %s\n", a.Article.Source, a.Article.PublishedDate())
		fmt.Fprintf(w, "   %s\n", a.Article.URL)
		fmt.Fprintf(w, "   Summary: %s\n", a.Analysis.Summary)

		if s := a.Analysis.Sentiment; s != nil {
			if s.Status == model.FieldOK {
				fmt.Fprintf(w, "   Sentiment: %s\n", s.Text)
			} else {
				fmt.Fprintf(w, "   Sentiment: (unavailable)\n")
			}
		}
		if k := a.Analysis.Keywords; k != nil {
			if k.Status == model.FieldOK {
				fmt.Fprintf(w, "   Keywords: %s\n", strings.Join(k.Keywords, ", "))
			} else {
				fmt.Fprintf(w, "   Keywords: (unavailable)\n")
			}
		}
	}
}
