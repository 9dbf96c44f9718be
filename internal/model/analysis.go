package model

import (
	"regexp"
	"strings"
)

// Verbosity controls requested summary length
type Verbosity string

const (
	VerbosityShort    Verbosity = "short"
	VerbosityNormal   Verbosity = "normal"
	VerbosityDetailed Verbosity = "detailed"
)

// Valid reports whether v is one of the three levels
func (v Verbosity) Valid() bool {
	switch v {
	case VerbosityShort, VerbosityNormal, VerbosityDetailed:
		return true
	}
	return false
}

// BackendID identifies an analysis backend
type BackendID string

const (
	BackendOpenAI    BackendID = "openai"
	BackendAnthropic BackendID = "anthropic"
	BackendGemini    BackendID = "gemini"
)

// Valid reports whether b names a known backend
func (b BackendID) Valid() bool {
	switch b {
	case BackendOpenAI, BackendAnthropic, BackendGemini:
		return true
	}
	return false
}

// AnalysisRequest is the user-chosen configuration for one batch
type AnalysisRequest struct {
	Verbosity        Verbosity `json:"verbosity"`
	IncludeSentiment bool      `json:"include_sentiment"`
	IncludeKeywords  bool      `json:"include_keywords"`
	Backend          BackendID `json:"backend"`
}

// FieldStatus tags whether an optional field was extracted
type FieldStatus string

const (
	FieldOK          FieldStatus = "ok"
	FieldParseFailed FieldStatus = "parse_failed"
)

// SentimentLabel is the classified tone of an article
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// sentimentPattern matches English labels as whole words, optionally negated,
// and Korean labels followed by 적 or a non-Hangul boundary (so 부정확 is not 부정).
var sentimentPattern = regexp.MustCompile(`(?i)\b(not\s+|non-)?(positive|negative|neutral)\b|(긍정|부정|중립)(?:적|[^가-힣]|$)`)

var sentimentLabels = map[string]SentimentLabel{
	"positive": SentimentPositive,
	"negative": SentimentNegative,
	"neutral":  SentimentNeutral,
	"긍정":       SentimentPositive,
	"부정":       SentimentNegative,
	"중립":       SentimentNeutral,
}

// ClassifySentiment returns the label of the first non-negated sentiment
// token in text, case-insensitively. It returns false when there is none.
func ClassifySentiment(text string) (SentimentLabel, bool) {
	for _, m := range sentimentPattern.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			continue
		}
		token := strings.ToLower(m[2])
		if token == "" {
			token = m[3]
		}
		if label, ok := sentimentLabels[token]; ok {
			return label, true
		}
	}
	return "", false
}

// MaxKeywords caps the keyword list
const MaxKeywords = 5

// SplitKeywords splits a comma-separated line into at most MaxKeywords trimmed entries
func SplitKeywords(text string) []string {
	parts := strings.Split(text, ",")
	keywords := make([]string, 0, MaxKeywords)
	for _, part := range parts {
		kw := strings.TrimSpace(part)
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

// SentimentResult carries the sentiment line and its label
type SentimentResult struct {
	Status FieldStatus    `json:"status"`
	Label  SentimentLabel `json:"label,omitempty"`
	Text   string         `json:"text,omitempty"`
}

// KeywordsResult carries the extracted keywords
type KeywordsResult struct {
	Status   FieldStatus `json:"status"`
	Keywords []string    `json:"keywords,omitempty"`
	Text     string      `json:"text,omitempty"`
}

// AnalysisResult is one article's analysis outcome. Sentiment and Keywords
// are nil when not requested or when the backend failed.
type AnalysisResult struct {
	Summary   string           `json:"summary"`
	Sentiment *SentimentResult `json:"sentiment,omitempty"`
	Keywords  *KeywordsResult  `json:"keywords,omitempty"`
	Failed    bool             `json:"failed,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// NewSentimentResult builds a sentiment result from a response line
func NewSentimentResult(text string) *SentimentResult {
	text = strings.TrimSpace(text)
	label, _ := ClassifySentiment(text)
	return &SentimentResult{Status: FieldOK, Label: label, Text: text}
}

// NewKeywordsResult builds a keywords result from a response line
func NewKeywordsResult(text string) *KeywordsResult {
	text = strings.TrimSpace(text)
	return &KeywordsResult{Status: FieldOK, Keywords: SplitKeywords(text), Text: text}
}
