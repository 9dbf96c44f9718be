package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

// NewsAPI searches the newsapi.org everything endpoint
type NewsAPI struct {
	apiKey        string
	baseURL       string
	defaultSource string
	httpClient    *http.Client
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// NewNewsAPI creates a NewsAPI adapter authenticated with an API key
func NewNewsAPI(apiKey string, s Settings) *NewsAPI {
	s = s.withDefaults("https://newsapi.org/v2/everything")
	return &NewsAPI{
		apiKey:        apiKey,
		baseURL:       s.BaseURL,
		defaultSource: s.DefaultSource,
		httpClient: &http.Client{
			Timeout: s.Timeout,
		},
	}
}

func (c *NewsAPI) ID() model.ProviderID {
	return model.ProviderNewsAPI
}

// Search runs one query against the everything endpoint
func (c *NewsAPI) Search(ctx context.Context, q Query) ([]model.Article, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", q.Keyword)
	params.Set("pageSize", strconv.Itoa(q.Count))
	params.Set("sortBy", newsAPISort(q.Sort))
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	params.Set("apiKey", c.apiKey)

	req, err := newRequest(ctx, c.ID(), c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var body newsAPIResponse
	if err := fetchJSON(c.httpClient, c.ID(), req, &body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, &model.ProviderError{Provider: c.ID(), StatusCode: http.StatusOK, Body: body.Code + ": " + body.Message}
	}

	articles := make([]model.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, model.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      orDefault(a.Source.Name, c.defaultSource),
			PublishedAt: a.PublishedAt,
			Provider:    model.ProviderNewsAPI,
		})
	}
	return articles, nil
}

func newsAPISort(s Sort) string {
	if s == SortRecency {
		return "publishedAt"
	}
	return "relevancy"
}
