package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// DefaultBaseURL is the Notion REST API endpoint.
const DefaultBaseURL = "https://api.notion.com"

// notionVersion is sent as the Notion-Version header.
const notionVersion = "2022-06-28"

// DefaultRequestsPerSecond matches Notion's documented rate limit of
// three requests per second.
const DefaultRequestsPerSecond = 3.0

// Client is a minimal Notion API client scoped to a single database.
type Client struct {
	client     *http.Client
	limiter    *rate.Limiter
	baseURL    string
	token      string
	databaseID string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithRequestsPerSecond overrides the request throttle.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client for the given database. The token is
// required; callers typically read it from NOTION_TOKEN.
func NewClient(token, databaseID string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "notion token required")
	}
	if databaseID == "" {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "notion database id required")
	}

	c := &Client{
		client:     &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		baseURL:    DefaultBaseURL,
		token:      token,
		databaseID: databaseID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetDatabase retrieves the client's database, typically for a schema
// check before syncing.
func (c *Client) GetDatabase(ctx context.Context) (*Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/v1/databases/"+c.databaseID, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// queryResponse is one page of database query results.
type queryResponse struct {
	Results    []*Page `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// QueryDatabase retrieves every page in the database, following the
// cursor until the results are exhausted.
func (c *Client) QueryDatabase(ctx context.Context) ([]*Page, error) {
	var pages []*Page
	cursor := ""
	for {
		payload := map[string]any{}
		if cursor != "" {
			payload["start_cursor"] = cursor
		}

		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, "/v1/databases/"+c.databaseID+"/query", payload, &resp); err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)

		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

// CreatePage creates a page in the client's database.
func (c *Client) CreatePage(ctx context.Context, properties Properties, children []Block) (*Page, error) {
	payload := map[string]any{
		"parent":     map[string]string{"database_id": c.databaseID},
		"properties": properties,
	}
	if len(children) > 0 {
		payload["children"] = children
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/v1/pages", payload, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage patches a page's properties.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties Properties) (*Page, error) {
	payload := map[string]any{"properties": properties}

	var page Page
	if err := c.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, payload, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AppendBlockChildren appends content blocks to a page or block.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, children []Block) error {
	payload := map[string]any{"children": children}
	return c.do(ctx, http.MethodPatch, "/v1/blocks/"+blockID+"/children", payload, nil)
}

// do executes one API request, waiting on the rate limiter first.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return plantscraper.Errorf(plantscraper.EINTERNAL, "notion request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return plantscraper.Errorf(plantscraper.ENOTFOUND, "notion: %s %s returned 404", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return plantscraper.Errorf(plantscraper.EINTERNAL, "notion: %s %s returned status %d: %s", method, path, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return plantscraper.Errorf(plantscraper.EINTERNAL, "notion: decoding response: %v", err)
	}
	return nil
}
