package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/sanitize"
	"github.com/NiceTry3675/news-summarizer/internal/service"
	"github.com/NiceTry3675/news-summarizer/internal/transport/response"
)

// Pipeline runs one search-and-analyze batch
type Pipeline interface {
	Run(ctx context.Context, keyword string, opts service.Options) (*model.BatchResult, error)
}

type SearchHandler struct {
	pipeline Pipeline
}

func NewSearchHandler(pipeline Pipeline) *SearchHandler {
	return &SearchHandler{pipeline: pipeline}
}

type searchRequest struct {
	Keyword string          `json:"keyword"`
	Options service.Options `json:"options"`
}

// articleView adds display fields derived at render time
type articleView struct {
	model.AnalyzedArticle
	DisplayTitle       string `json:"display_title"`
	DisplayDescription string `json:"display_description"`
	PublishedDate      string `json:"published_date"`
}

type batchView struct {
	*model.BatchResult
	Articles []articleView `json:"articles"`
}

func newBatchView(result *model.BatchResult) batchView {
	views := make([]articleView, 0, len(result.Articles))
	for _, a := range result.Articles {
		views = append(views, articleView{
			AnalyzedArticle:    a,
			DisplayTitle:       sanitize.Strip(a.Article.Title),
			DisplayDescription: sanitize.Strip(a.Article.Description),
			PublishedDate:      a.Article.PublishedDate(),
		})
	}
	return batchView{BatchResult: result, Articles: views}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := log.New(funcframework.LogWriter(r.Context()), "", 0)

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON body")
		return
	}

	logger.Printf("search_request keyword=%q source=%s model=%s", req.Keyword, req.Options.Source, req.Options.Model)

	result, err := h.pipeline.Run(r.Context(), req.Keyword, req.Options)
	if err != nil {
		var validationErr *service.ValidationError
		var missingErr *model.MissingCredentialError
		switch {
		case errors.Is(err, service.ErrEmptyKeyword):
			response.WriteBadRequest(w, "Please enter a search keyword")
		case errors.As(err, &validationErr):
			response.WriteBadRequest(w, validationErr.Error())
		case errors.As(err, &missingErr):
			response.WriteUnauthorized(w, missingErr.Error())
		default:
			logger.Printf("Error running search: %v", err)
			response.WriteInternalError(w, "Failed to run search")
		}
		return
	}

	response.WriteSuccess(w, fmt.Sprintf("Analyzed %d articles", len(result.Articles)), newBatchView(result))
}
