package mocks

import (
	"context"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/repository/provider"
)

// Mock search provider
type MockProvider struct {
	ProviderID model.ProviderID
	Articles   []model.Article
	Err        error
	Queries    []provider.Query
}

func (m *MockProvider) ID() model.ProviderID {
	if m.ProviderID == "" {
		return model.ProviderNaver
	}
	return m.ProviderID
}

func (m *MockProvider) Search(ctx context.Context, q provider.Query) ([]model.Article, error) {
	m.Queries = append(m.Queries, q)
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Articles) > q.Count {
		return m.Articles[:q.Count], nil
	}
	return m.Articles, nil
}
