// Package github syncs stored plant records to GitHub issues through the
// REST API: one issue per plant, updated in place when the guide content
// changes.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// DefaultBaseURL is the GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// apiVersion is sent as the X-GitHub-Api-Version header.
const apiVersion = "2022-11-28"

// Issue is the subset of the GitHub issue payload the sync cares about.
type Issue struct {
	Number  int     `json:"number"`
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	State   string  `json:"state"`
	HTMLURL string  `json:"html_url"`
	Labels  []Label `json:"labels,omitempty"`
}

// Label is a GitHub issue label.
type Label struct {
	Name string `json:"name"`
}

// IssueRequest carries the mutable fields of an issue. Nil fields are left
// unchanged on update.
type IssueRequest struct {
	Title  *string   `json:"title,omitempty"`
	Body   *string   `json:"body,omitempty"`
	State  *string   `json:"state,omitempty"`
	Labels *[]string `json:"labels,omitempty"`
}

// Client is a minimal GitHub issues client scoped to a single repository.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	owner   string
	repo    string
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

// NewClient creates a Client for the given repository. The token is
// required; callers typically read it from GITHUB_TOKEN.
func NewClient(token, owner, repo string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "github token required")
	}
	if owner == "" || repo == "" {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "github repository owner and name required")
	}

	c := &Client{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultBaseURL,
		token:   token,
		owner:   owner,
		repo:    repo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateIssue opens a new issue in the client's repository.
func (c *Client) CreateIssue(ctx context.Context, title, body string, labels []string) (*Issue, error) {
	req := IssueRequest{Title: &title, Body: &body}
	if len(labels) > 0 {
		req.Labels = &labels
	}

	var issue Issue
	if err := c.do(ctx, http.MethodPost, c.issuesPath(), req, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// UpdateIssue patches an existing issue. Nil request fields are left
// unchanged.
func (c *Client) UpdateIssue(ctx context.Context, number int, req IssueRequest) (*Issue, error) {
	var issue Issue
	if err := c.do(ctx, http.MethodPatch, c.issuePath(number), req, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CloseIssue sets an issue's state to closed.
func (c *Client) CloseIssue(ctx context.Context, number int) (*Issue, error) {
	state := "closed"
	return c.UpdateIssue(ctx, number, IssueRequest{State: &state})
}

// GetIssue retrieves an issue by number. Returns ENOTFOUND if the issue
// does not exist.
func (c *Client) GetIssue(ctx context.Context, number int) (*Issue, error) {
	var issue Issue
	if err := c.do(ctx, http.MethodGet, c.issuePath(number), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// AddComment posts a comment on an issue.
func (c *Client) AddComment(ctx context.Context, number int, body string) error {
	req := struct {
		Body string `json:"body"`
	}{Body: body}
	return c.do(ctx, http.MethodPost, c.issuePath(number)+"/comments", req, nil)
}

func (c *Client) issuesPath() string {
	return fmt.Sprintf("%s/repos/%s/%s/issues", c.baseURL, c.owner, c.repo)
}

func (c *Client) issuePath(number int) string {
	return fmt.Sprintf("%s/%d", c.issuesPath(), number)
}

// do executes one API request, encoding payload as JSON when non-nil and
// decoding the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return plantscraper.Errorf(plantscraper.EINTERNAL, "github request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return plantscraper.Errorf(plantscraper.ENOTFOUND, "github: %s %s returned 404", method, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return plantscraper.Errorf(plantscraper.EINTERNAL, "github: %s %s returned status %d: %s", method, url, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return plantscraper.Errorf(plantscraper.EINTERNAL, "github: decoding response: %v", err)
	}
	return nil
}
