package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

// Naver searches the Naver news search API
type Naver struct {
	clientID      string
	clientSecret  string
	baseURL       string
	defaultSource string
	httpClient    *http.Client
}

type naverResponse struct {
	Items []naverItem `json:"items"`
}

type naverItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Source      string `json:"source"`
}

// NewNaver creates a Naver adapter authenticated with a client id/secret pair
func NewNaver(clientID, clientSecret string, s Settings) *Naver {
	s = s.withDefaults("https://openapi.naver.com/v1/search/news.json")
	return &Naver{
		clientID:      clientID,
		clientSecret:  clientSecret,
		baseURL:       s.BaseURL,
		defaultSource: s.DefaultSource,
		httpClient: &http.Client{
			Timeout: s.Timeout,
		},
	}
}

func (n *Naver) ID() model.ProviderID {
	return model.ProviderNaver
}

// Search runs one news query. Naver has no language filter, so q.Language is ignored.
func (n *Naver) Search(ctx context.Context, q Query) ([]model.Article, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", q.Keyword)
	params.Set("display", strconv.Itoa(q.Count))
	params.Set("sort", naverSort(q.Sort))

	req, err := newRequest(ctx, n.ID(), n.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Naver-Client-Id", n.clientID)
	req.Header.Set("X-Naver-Client-Secret", n.clientSecret)

	var body naverResponse
	if err := fetchJSON(n.httpClient, n.ID(), req, &body); err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(body.Items))
	for _, item := range body.Items {
		articles = append(articles, model.Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			Source:      orDefault(item.Source, n.defaultSource),
			PublishedAt: item.PubDate,
			Provider:    model.ProviderNaver,
		})
	}
	return articles, nil
}

func naverSort(s Sort) string {
	if s == SortRecency {
		return "date"
	}
	return "sim"
}
