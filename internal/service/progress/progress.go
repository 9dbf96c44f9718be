// Package progress reports batch advancement to interested consumers.
package progress

import (
	"context"
	"log"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/NiceTry3675/news-summarizer/internal/metrics"
)

// Event is emitted once after each article of a batch
type Event struct {
	BatchID  string  `json:"batch_id"`
	Backend  string  `json:"backend"`
	Done     int     `json:"done"`
	Total    int     `json:"total"`
	Fraction float64 `json:"fraction"`
	Title    string  `json:"title"`
	Failed   bool    `json:"failed"`
}

// Reporter consumes progress events
type Reporter interface {
	Report(ctx context.Context, e Event)
}

// Func adapts a function to Reporter
type Func func(ctx context.Context, e Event)

func (f Func) Report(ctx context.Context, e Event) {
	f(ctx, e)
}

// Multi fans an event out to every reporter in order
type Multi []Reporter

func (m Multi) Report(ctx context.Context, e Event) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, e)
		}
	}
}

// Nop discards events
var Nop Reporter = Func(func(context.Context, Event) {})

// Log writes each event to the request log
type Log struct{}

func (Log) Report(ctx context.Context, e Event) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	logger.Printf("batch_progress batch=%s done=%d total=%d fraction=%.2f failed=%t", e.BatchID, e.Done, e.Total, e.Fraction, e.Failed)
}

// Metrics records each event in Prometheus
type Metrics struct{}

func (Metrics) Report(ctx context.Context, e Event) {
	status := "success"
	if e.Failed {
		status = "fallback"
	}
	metrics.ArticlesAnalyzed.WithLabelValues(e.Backend, status).Inc()
	metrics.BatchProgress.Set(e.Fraction)
}
