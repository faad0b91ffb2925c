package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedscope/pkg/domain"
)

// RSSClient fetches items from an RSS/Atom upstream source. The HTTP fetch
// and the XML parse are separated so transport failures surface as FetchError
// and malformed payloads as ParseError.
type RSSClient struct {
	source  domain.Source
	client  *http.Client
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewRSSClient creates an RSS/Atom source adapter
func NewRSSClient(source domain.Source, timeout time.Duration) *RSSClient {
	return &RSSClient{
		source:  source,
		timeout: timeout,
		parser:  gofeed.NewParser(),
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
func (c *RSSClient) Name() string { return c.source.Name }

// Serves reports whether this source contributes to the given feed type
func (c *RSSClient) Serves(feedType string) bool { return c.source.Serves(feedType) }

// Fetch retrieves and parses the feed, returning at most limit items.
// The feedType parameter is ignored for RSS sources, one feed serves
// whatever types it was configured for.
func (c *RSSClient) Fetch(ctx context.Context, _ string, limit int) ([]domain.FeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := c.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Source: c.source.Name, Err: err}
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Title == "" {
			continue
		}
		fi := domain.FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
			Source:      c.source.Name,
		}
		if item.Image != nil {
			fi.Image = item.Image.URL
		}
		// gofeed already parses dates; keep raw text for diagnostics
		fi.PublishedRaw = item.Published
		if item.PublishedParsed != nil {
			fi.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			fi.PublishedAt = *item.UpdatedParsed
		}
		items = append(items, fi)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (c *RSSClient) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source.URL, http.NoBody)
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
	return body, nil
}
