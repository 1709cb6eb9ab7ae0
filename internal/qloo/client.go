// Package qloo provides a client for the Qloo taste-graph hackathon API.
package qloo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://hackathon.api.qloo.com"

// entityTypes maps short entity names to their full URNs.
var entityTypes = map[string]string{
	"movie":       "urn:entity:movie",
	"artist":      "urn:entity:artist",
	"book":        "urn:entity:book",
	"brand":       "urn:entity:brand",
	"destination": "urn:entity:destination",
	"person":      "urn:entity:person",
	"place":       "urn:entity:place",
	"podcast":     "urn:entity:podcast",
	"tv_show":     "urn:entity:tv_show",
	"video_game":  "urn:entity:video_game",
}

// Client is a Qloo API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Qloo client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// InsightsQuery describes a v2 insights request. Filters and Signals are
// added to the query string with "filter." and "signal." prefixes;
// multi-valued entries are comma-joined.
type InsightsQuery struct {
	EntityType string // short name (e.g. "brand") or full URN
	Filters    map[string][]string
	Signals    map[string][]string
	Take       int
	Offset     int
}

// Insights fetches v2 insights for an entity type.
func (c *Client) Insights(ctx context.Context, q InsightsQuery) (*InsightsResponse, error) {
	entityType := q.EntityType
	if urn, ok := entityTypes[entityType]; ok {
		entityType = urn
	}

	take := q.Take
	if take <= 0 {
		take = 10
	}

	params := url.Values{
		"filter.type": {entityType},
		"take":        {strconv.Itoa(take)},
		"offset":      {strconv.Itoa(q.Offset)},
	}
	for key, values := range q.Filters {
		params.Set("filter."+key, strings.Join(values, ","))
	}
	for key, values := range q.Signals {
		params.Set("signal."+key, strings.Join(values, ","))
	}

	var resp InsightsResponse
	if err := c.doGet(ctx, "/v2/insights/", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching insights: %w", err)
	}
	return &resp, nil
}

// TrendingInsights fetches insights biased towards current trends.
func (c *Client) TrendingInsights(ctx context.Context, entityType string, filters map[string][]string, take int) (*InsightsResponse, error) {
	return c.Insights(ctx, InsightsQuery{
		EntityType: entityType,
		Filters:    filters,
		Signals:    map[string][]string{"bias.trends": {"true"}},
		Take:       take,
	})
}

// Tags fetches the available v2 tags.
func (c *Client) Tags(ctx context.Context) (*TagsResponse, error) {
	var resp TagsResponse
	if err := c.doGet(ctx, "/v2/tags", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching tags: %w", err)
	}
	return &resp, nil
}

// Audiences fetches the available audience demographic segments.
func (c *Client) Audiences(ctx context.Context) (*AudiencesResponse, error) {
	var resp AudiencesResponse
	if err := c.doGet(ctx, "/v2/audiences", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching audiences: %w", err)
	}
	return &resp, nil
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) doPost(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
