package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Ingredient is one active ingredient of a medication.
type Ingredient struct {
	Name     string `json:"name"`
	Strength string `json:"strength"`
}

// Medication is a catalog record returned by the API.
type Medication struct {
	ProductCode string       `json:"product_code"`
	BrandName   string       `json:"brand_name"`
	GenericName string       `json:"generic_name"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	DosageForm  string       `json:"dosage_form"`
	Packaging   string       `json:"packaging,omitempty"`
	LabelerName string       `json:"labeler_name,omitempty"`
}

// SearchResult is a medication plus its relevance score.
type SearchResult struct {
	Medication
	Score float64 `json:"score"`
}

// SearchPage is one page of search results.
type SearchPage struct {
	Results  []SearchResult `json:"results"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// SearchParams are the catalog search parameters. Query is required; zero
// Page/PageSize use the server defaults.
type SearchParams struct {
	Query      string
	Page       int
	PageSize   int
	DosageForm string
}

// Client is the rxdex SDK entry point.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search runs a catalog search.
func (c *Client) Search(ctx context.Context, params SearchParams) (SearchPage, error) {
	q := url.Values{}
	q.Set("q", params.Query)
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.DosageForm != "" {
		q.Set("dosage_form", params.DosageForm)
	}

	var page SearchPage
	err := c.get(ctx, "/v1/medications/search?"+q.Encode(), &page)
	return page, err
}

// GetMedication fetches one medication by product code.
func (c *Client) GetMedication(ctx context.Context, productCode string) (Medication, error) {
	var med Medication
	err := c.get(ctx, "/v1/medications/"+url.PathEscape(productCode), &med)
	return med, err
}

// DosageForms lists the distinct dosage form values of the catalog.
func (c *Client) DosageForms(ctx context.Context) ([]string, error) {
	var resp struct {
		DosageForms []string `json:"dosage_forms"`
	}
	if err := c.get(ctx, "/v1/dosage-forms", &resp); err != nil {
		return nil, err
	}
	return resp.DosageForms, nil
}

// Health reports the service health status string ("ok" or "error").
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("rxdex: %w", err)
	}
	defer res.Body.Close()

	// healthz reports degraded state via 503 with the same body shape.
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return resp.Status, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rxdex: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		return &APIError{StatusCode: res.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
