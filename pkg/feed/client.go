// Package feed implements upstream source adapters. Two kinds of providers
// are supported: JSON APIs returning an array of normalized items, and
// classic RSS/Atom feeds. Both produce domain.FeedItem values; failures are
// reported as FetchError (retryable) or ParseError (not retryable).
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/araddon/dateparse"

	"github.com/umputun/feedscope/pkg/domain"
)

// APIClient fetches items from a JSON upstream provider. The provider is
// expected to answer GET <url>?feed=<type>&limit=<n> with a JSON array of
// feed-item shaped objects.
type APIClient struct {
	source  domain.Source
	client  *http.Client
	timeout time.Duration
}

// apiItem is the upstream JSON shape. PublishedAt stays a string here,
// upstream date formats vary and are sometimes garbage.
type apiItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
	Image       string `json:"image"`
}

// NewAPIClient creates a JSON API source adapter
func NewAPIClient(source domain.Source, timeout time.Duration) *APIClient {
	return &APIClient{
		source:  source,
		timeout: timeout,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Name returns the configured source name
func (c *APIClient) Name() string { return c.source.Name }

// Serves reports whether this source contributes to the given feed type
func (c *APIClient) Serves(feedType string) bool { return c.source.Serves(feedType) }

// Fetch retrieves up to limit items for the given feed type. Non-2xx
// responses and transport failures yield a FetchError; a malformed payload
// yields a ParseError.
func (c *APIClient) Fetch(ctx context.Context, feedType string, limit int) ([]domain.FeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL, err := c.buildURL(feedType, limit)
	if err != nil {
		return nil, &FetchError{Source: c.source.Name, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &FetchError{Source: c.source.Name, Err: fmt.Errorf("create request: %w", err)}
	}
	addBrowserHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: c.source.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Source: c.source.Name, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: c.source.Name, Err: fmt.Errorf("read body: %w", err)}
	}

	var raw []apiItem
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Source: c.source.Name, Err: err}
	}

	items := make([]domain.FeedItem, 0, len(raw))
	for _, r := range raw {
		if r.Title == "" {
			continue // upstream noise, an item without a title is unusable
		}
		item := domain.FeedItem{
			Title:        r.Title,
			Link:         r.Link,
			Description:  r.Description,
			Content:      r.Content,
			Source:       r.Source,
			Image:        r.Image,
			PublishedRaw: r.PublishedAt,
		}
		if item.Source == "" {
			item.Source = c.source.Name
		}
		item.PublishedAt = parsePublished(r.PublishedAt)
		items = append(items, item)
	}
	return items, nil
}

func (c *APIClient) buildURL(feedType string, limit int) (string, error) {
	u, err := url.Parse(c.source.URL)
	if err != nil {
		return "", fmt.Errorf("parse source url: %w", err)
	}
	q := u.Query()
	q.Set("feed", feedType)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// parsePublished parses an upstream timestamp leniently. A malformed or empty
// value yields the zero time, which downstream treats as "unknown date, sort
// last" rather than guessing a default.
func parsePublished(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	ts, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}
