package service

import (
	"context"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/repository/backend"
	"github.com/NiceTry3675/news-summarizer/internal/sanitize"
	"github.com/NiceTry3675/news-summarizer/internal/service/progress"
)

// RunBatch analyzes articles one at a time in input order. A failed article
// carries its fallback result and never stops the batch. reporter sees one
// event per article.
func RunBatch(ctx context.Context, batchID string, articles []model.Article, req model.AnalysisRequest, b backend.Backend, reporter progress.Reporter) []model.AnalyzedArticle {
	if reporter == nil {
		reporter = progress.Nop
	}

	results := make([]model.AnalyzedArticle, 0, len(articles))
	total := len(articles)

	for i, article := range articles {
		analysis := b.Analyze(ctx, article, req)
		results = append(results, model.AnalyzedArticle{Article: article, Analysis: analysis})

		done := i + 1
		reporter.Report(ctx, progress.Event{
			BatchID:  batchID,
			Backend:  string(b.ID()),
			Done:     done,
			Total:    total,
			Fraction: float64(done) / float64(total),
			Title:    sanitize.Strip(article.Title),
			Failed:   analysis.Failed,
		})
	}

	return results
}
