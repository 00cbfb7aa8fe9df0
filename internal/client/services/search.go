package services

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

type SearchService interface {
	Search(ctx context.Context, query string) (models.SearchResult, error)
}

type searchService struct {
	client *client.Client
}

func NewSearchService(c *client.Client) SearchService {
	return &searchService{client: c}
}

// Search across employees and documents. A blank query returns an empty
// result without a request.
func (s *searchService) Search(ctx context.Context, query string) (models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.SearchResult{}, nil
	}
	var out models.SearchResult
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Search, url.Values{"q": {query}}, nil, &out)
	return out, err
}
