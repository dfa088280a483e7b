// =============================================================================
// Sales Analytics System - Product Catalog Client
// =============================================================================
//
// This module fetches product metadata from the remote catalog service
// (a DummyJSON-style products endpoint). The fetch is a single bounded
// request; there are no retries. Callers are expected to degrade to an empty
// catalog when the fetch fails, so a flaky network never aborts a run -
// transactions are simply reported as unmatched.
//
// RESPONSE SHAPE:
//   GET {base_url}?limit={limit}
//   {
//     "products": [
//       {"id": 1, "title": "iPhone 9", "category": "smartphones",
//        "brand": "Apple", "rating": 4.69},
//       ...
//     ]
//   }
//
// =============================================================================

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// Default client settings, matching the catalog service's documented limits.
const (
	// DefaultLimit is the maximum number of products requested per fetch.
	DefaultLimit = 100

	// DefaultTimeout bounds the single catalog request.
	DefaultTimeout = 10 * time.Second
)

// =============================================================================
// FETCHER INTERFACE
// =============================================================================

// Fetcher retrieves catalog entries from a product catalog.
// The interface exists so the enrichment pipeline can be tested without a
// live catalog service.
type Fetcher interface {
	// FetchProducts performs a single catalog request and returns the
	// entries it contains.
	FetchProducts(ctx context.Context) ([]types.CatalogEntry, error)
}

// =============================================================================
// HTTP CLIENT
// =============================================================================

// HTTPClient is the Fetcher implementation backed by the remote catalog
// service over HTTP.
type HTTPClient struct {
	// BaseURL is the catalog endpoint, e.g. "https://dummyjson.com/products".
	BaseURL string

	// Limit is the maximum number of products to request.
	Limit int

	// Client is the underlying HTTP client. Its Timeout bounds the request.
	Client *http.Client
}

// NewHTTPClient creates a catalog client for the given endpoint with the
// given product limit and request timeout. Non-positive values fall back to
// the defaults.
func NewHTTPClient(baseURL string, limit int, timeout time.Duration) *HTTPClient {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		BaseURL: baseURL,
		Limit:   limit,
		Client:  &http.Client{Timeout: timeout},
	}
}

// productsResponse mirrors the catalog service's list response.
type productsResponse struct {
	Products []types.CatalogEntry `json:"products"`
}

// FetchProducts performs the catalog request and decodes the product list.
//
// Any failure - building the request, the network call, a non-200 status, or
// a malformed body - is returned as an error; the caller decides whether to
// degrade to an empty catalog.
func (c *HTTPClient) FetchProducts(ctx context.Context) ([]types.CatalogEntry, error) {
	url := fmt.Sprintf("%s?limit=%d", c.BaseURL, c.Limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog service at %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return payload.Products, nil
}
