// Package supabase reads catalog tables through the Supabase PostgREST API.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/csecompass/catalog/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second
	restPrefix     = "/rest/v1/"
	// listOrder is featured first, then newest first.
	listOrder    = "featured.desc,created_at.desc"
	maxErrorBody = 4 << 10
)

// Config captures the settings for talking to a Supabase project.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	// HTTPClient overrides the default client; tests point it at httptest.
	HTTPClient *http.Client
}

// APIError is a non-2xx answer from PostgREST.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("postgrest: status %d", e.Status)
	}
	return fmt.Sprintf("postgrest: status %d: %s (%s)", e.Status, e.Message, e.Code)
}

// Client implements ports.ResourceSource, ports.RoadmapSource and ports.Pinger.
type Client struct {
	base   *url.URL
	apiKey string
	http   *http.Client
}

// New validates cfg and returns a Client. A default timeout is applied when
// none is provided.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, errors.New("supabase: url and api key are required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("supabase: parse url: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{base: base, apiKey: cfg.APIKey, http: hc}, nil
}

// ListResources returns all resources in listing order.
func (c *Client) ListResources(ctx context.Context) ([]domain.Resource, error) {
	var out []domain.Resource
	if err := c.get(ctx, domain.CollectionResources, listQuery(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetResource returns one resource by id.
func (c *Client) GetResource(ctx context.Context, id string) (*domain.Resource, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrResourceNotFound
	}
	var out []domain.Resource
	if err := c.get(ctx, domain.CollectionResources, byIDQuery(id), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrResourceNotFound
	}
	return &out[0], nil
}

// ListRoadmaps returns all roadmaps in listing order.
func (c *Client) ListRoadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	var out []domain.Roadmap
	if err := c.get(ctx, domain.CollectionRoadmaps, listQuery(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRoadmap returns one roadmap by id.
func (c *Client) GetRoadmap(ctx context.Context, id string) (*domain.Roadmap, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRoadmapNotFound
	}
	var out []domain.Roadmap
	if err := c.get(ctx, domain.CollectionRoadmaps, byIDQuery(id), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrRoadmapNotFound
	}
	return &out[0], nil
}

// Ping issues the cheapest possible read against the resources table.
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")
	var out []json.RawMessage
	return c.get(ctx, domain.CollectionResources, q, &out)
}

func listQuery() url.Values {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", listOrder)
	return q
}

func byIDQuery(id string) url.Values {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+id)
	q.Set("limit", "1")
	return q
}

func (c *Client) get(ctx context.Context, table string, q url.Values, dst any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + restPrefix + table
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("supabase: build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: get %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(body, apiErr)
		return fmt.Errorf("supabase: get %s: %w", table, apiErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("supabase: decode %s: %w", table, err)
	}
	return nil
}
