package backend

import (
	"strings"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

// Parsed is the outcome of splitting a combined response. Sentiment and
// Keywords are nil when not requested and tagged parse_failed when the
// expected line could not be located.
type Parsed struct {
	Summary   string
	Sentiment *model.SentimentResult
	Keywords  *model.KeywordsResult
}

// ParseCombined splits a single-call response into its fields.
//
// With no extras requested the whole text is the summary. Otherwise the first
// non-blank line is the summary, the last line is the keyword line when
// keywords were requested, and the line before it (or the last line) is the
// sentiment line. A sentiment line must name a sentiment label and a keyword
// line must contain a comma; anything else is a parse failure.
func ParseCombined(text string, includeSentiment, includeKeywords bool) Parsed {
	trimmed := strings.TrimSpace(text)
	if !includeSentiment && !includeKeywords {
		return Parsed{Summary: trimmed}
	}

	var lines []string
	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	need := 1
	if includeSentiment {
		need++
	}
	if includeKeywords {
		need++
	}

	if len(lines) < need {
		p := Parsed{Summary: strings.Join(lines, "\n")}
		if includeSentiment {
			p.Sentiment = &model.SentimentResult{Status: model.FieldParseFailed}
		}
		if includeKeywords {
			p.Keywords = &model.KeywordsResult{Status: model.FieldParseFailed}
		}
		return p
	}

	p := Parsed{Summary: lines[0]}
	end := len(lines)

	if includeKeywords {
		end--
		p.Keywords = parseKeywordsLine(lines[end])
	}
	if includeSentiment {
		p.Sentiment = parseSentimentLine(lines[end-1])
	}
	return p
}

func parseSentimentLine(line string) *model.SentimentResult {
	if _, ok := model.ClassifySentiment(line); !ok {
		return &model.SentimentResult{Status: model.FieldParseFailed}
	}
	return model.NewSentimentResult(line)
}

func parseKeywordsLine(line string) *model.KeywordsResult {
	if !strings.Contains(line, ",") {
		return &model.KeywordsResult{Status: model.FieldParseFailed}
	}
	return model.NewKeywordsResult(line)
}
