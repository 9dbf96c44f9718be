// Package prompt renders model instructions for article analysis.
package prompt

import (
	"fmt"
	"strings"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/sanitize"
)

// System instructions per capability
const (
	SummarySystem   = "You are a news analyst who writes accurate, neutral summaries of news articles."
	SentimentSystem = "You are a news analyst who classifies the tone of news articles."
	KeywordsSystem  = "You are a news analyst who extracts the key terms of news articles."
	CombinedSystem  = "You are a news analyst. Follow the requested output format exactly, one item per line, without headings or numbering."
)

var sentenceBounds = map[model.Verbosity]string{
	model.VerbosityShort:    "1-2 sentences",
	model.VerbosityNormal:   "3-4 sentences",
	model.VerbosityDetailed: "5-6 sentences",
}

// SentenceBound returns the sentence-count instruction for a verbosity level.
// Unknown levels use the normal bound.
func SentenceBound(v model.Verbosity) string {
	if bound, ok := sentenceBounds[v]; ok {
		return bound
	}
	return sentenceBounds[model.VerbosityNormal]
}

// Build renders the summary instruction. Title and description are
// sanitized and embedded verbatim; nothing is truncated.
func Build(title, description string, v model.Verbosity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the following news article in %s. ", SentenceBound(v))
	b.WriteString("Write the summary in the same language as the article.\n\n")
	writeArticle(&b, title, description)
	return b.String()
}

// Sentiment renders the standalone sentiment instruction
func Sentiment(title, description string) string {
	var b strings.Builder
	b.WriteString("Classify the overall sentiment of the following news article as positive, negative, or neutral. ")
	b.WriteString("Answer with the label followed by a one-line reason.\n\n")
	writeArticle(&b, title, description)
	return b.String()
}

// Keywords renders the standalone keyword instruction
func Keywords(title, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extract up to %d key terms from the following news article. ", model.MaxKeywords)
	b.WriteString("Answer with a single line of terms separated by commas.\n\n")
	writeArticle(&b, title, description)
	return b.String()
}

// SentimentClause is appended to a summary prompt when sentiment is requested
func SentimentClause() string {
	return "After the summary, on its own line, give the overall sentiment of the article as one of positive, negative, or neutral, followed by a one-line reason."
}

// KeywordsClause is appended to a summary prompt when keywords are requested
func KeywordsClause() string {
	return fmt.Sprintf("On the last line, list up to %d key terms from the article separated by commas.", model.MaxKeywords)
}

// Combined renders one instruction covering every requested capability
func Combined(title, description string, req model.AnalysisRequest) string {
	parts := []string{Build(title, description, req.Verbosity)}
	if req.IncludeSentiment {
		parts = append(parts, SentimentClause())
	}
	if req.IncludeKeywords {
		parts = append(parts, KeywordsClause())
	}
	return strings.Join(parts, "\n\n")
}

func writeArticle(b *strings.Builder, title, description string) {
	fmt.Fprintf(b, "Title: %s\n", sanitize.Strip(title))
	fmt.Fprintf(b, "Content: %s", sanitize.Strip(description))
}
