package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jonathan/cv-job-matcher/internal/schemas"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

// HTTPSource loads a job catalog from a URL serving the catalog JSON document.
type HTTPSource struct {
	URL string
	// AuthToken, when set, is sent as a Bearer token.
	AuthToken string
	client    *resty.Client
}

// NewHTTPSource creates an HTTP catalog source with retry behavior suited to
// flaky catalog endpoints.
func NewHTTPSource(url string) *HTTPSource {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second)

	return &HTTPSource{URL: url, client: client}
}

// Name identifies the source in logs and errors.
func (s *HTTPSource) Name() string {
	return "http:" + s.URL
}

// Load fetches the catalog document and parses it.
func (s *HTTPSource) Load(ctx context.Context) ([]types.JobListing, error) {
	req := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if s.AuthToken != "" {
		req.SetAuthToken(s.AuthToken)
	}
	resp, err := req.Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode())
	}

	return parseCatalogJSON(resp.Body(), schemas.ResolveSchemaPath(catalogSchemaPath))
}
