package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client provides read-only access to a WordPress GraphQL endpoint.
type Client struct {
	endpoint string
	withSEO  bool
	http     *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSEOPlugin makes post queries select Yoast SEO metadata.
func WithSEOPlugin(enabled bool) ClientOption {
	return func(c *Client) {
		c.withSEO = enabled
	}
}

// WithHTTPClient replaces the default HTTP client (5s timeout).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient constructs a Client for the given GraphQL endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		http:     &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	if c.endpoint == "" {
		return fmt.Errorf("cms: graphql endpoint not configured")
	}
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: graphql request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("cms: graphql status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("cms: decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("cms: graphql: %s", strings.Join(msgs, "; "))
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("cms: graphql response without data")
	}
	return json.Unmarshal(envelope.Data, out)
}

// PostBySlug fetches a single post. A null post yields ErrNotFound.
func (c *Client) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return nil, ErrNotFound
	}
	var data struct {
		Post *rawPost `json:"post"`
	}
	if err := c.do(ctx, postBySlugQuery(c.withSEO), map[string]any{"slug": slug}, &data); err != nil {
		return nil, err
	}
	if data.Post == nil {
		return nil, ErrNotFound
	}
	p := mapRawPost(*data.Post)
	return &p, nil
}

// PostsByCategory lists the posts filed under a category.
func (c *Client) PostsByCategory(ctx context.Context, categoryID int) ([]Post, error) {
	var data struct {
		Posts rawPostConnection `json:"posts"`
	}
	if err := c.do(ctx, postsByCategoryQuery, map[string]any{"categoryId": categoryID}, &data); err != nil {
		return nil, err
	}
	return data.Posts.posts(), nil
}

// RecentPosts lists the count most recent posts.
func (c *Client) RecentPosts(ctx context.Context, count int) ([]Post, error) {
	if count <= 0 {
		return nil, nil
	}
	var data struct {
		Posts rawPostConnection `json:"posts"`
	}
	if err := c.do(ctx, recentPostsQuery, map[string]any{"count": count}, &data); err != nil {
		return nil, err
	}
	return data.Posts.posts(), nil
}

var _ Source = (*Client)(nil)
