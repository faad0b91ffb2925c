// Package aggregator orchestrates the ingestion pipeline: fetch raw items
// from the configured upstream sources in parallel, sanitize and annotate
// them (theme, content id, resolved image), de-duplicate, order, and expose
// a single query surface for pagination, infinite scroll and related-article
// ranking. The pipeline is stateless; a short-TTL cache memoizes per-feed
// pools since upstream feeds change on the order of minutes.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedscope/pkg/cache"
	"github.com/umputun/feedscope/pkg/classify"
	"github.com/umputun/feedscope/pkg/domain"
	"github.com/umputun/feedscope/pkg/feed"
	"github.com/umputun/feedscope/pkg/identity"
	"github.com/umputun/feedscope/pkg/images"
	"github.com/umputun/feedscope/pkg/paging"
	"github.com/umputun/feedscope/pkg/relevance"
)

// Source is an upstream provider adapter
type Source interface {
	Name() string
	Serves(feedType string) bool
	Fetch(ctx context.Context, feedType string, limit int) ([]domain.FeedItem, error)
}

// Extractor extracts full content from article URLs, used as optional
// enrichment for items arriving with no description
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Result is a fully annotated item pool plus non-fatal per-source warnings
type Result struct {
	Items    []domain.ClassifiedItem
	Warnings []string
}

// Params configures an Aggregator
type Params struct {
	Sources       []Source
	Extractor     Extractor // nil disables content enrichment
	MaxWorkers    int       // bounded parallelism for fetches and enrichment
	FetchLimit    int       // per-source item cap, 0 means provider default
	RetryAttempts int       // attempts per source fetch, min 1
	RetryDelay    time.Duration
	CacheTTL      time.Duration
}

// Aggregator runs the ingestion pipeline and answers item queries
type Aggregator struct {
	sources       []Source
	extractor     Extractor
	maxWorkers    int
	fetchLimit    int
	retryAttempts int
	retryDelay    time.Duration
	sanitizer     *bluemonday.Policy
	pools         *cache.TTL[Result]
}

// errTerminal marks source errors that must not be retried (malformed payloads)
var errTerminal = errors.New("terminal source error")

// New creates an Aggregator from params, applying sane defaults
func New(p Params) *Aggregator {
	if p.MaxWorkers <= 0 {
		p.MaxWorkers = 4
	}
	if p.RetryAttempts <= 0 {
		p.RetryAttempts = 2 // initial try plus one retry
	}
	if p.RetryDelay <= 0 {
		p.RetryDelay = 250 * time.Millisecond
	}
	return &Aggregator{
		sources:       p.Sources,
		extractor:     p.Extractor,
		maxWorkers:    p.MaxWorkers,
		fetchLimit:    p.FetchLimit,
		retryAttempts: p.RetryAttempts,
		retryDelay:    p.RetryDelay,
		sanitizer:     bluemonday.StrictPolicy(),
		pools:         cache.NewTTL[Result](p.CacheTTL),
	}
}

// Query returns the full annotated, de-duplicated, ordered item pool for the
// feed type. Partial upstream failures produce warnings alongside the items
// that did arrive; an error is returned only when every serving source
// failed, so callers can tell "no articles" from "fetch failed".
func (a *Aggregator) Query(ctx context.Context, feedType string) (Result, error) {
	if cached, ok := a.pools.Get(feedType); ok {
		return cached, nil
	}

	serving := make([]Source, 0, len(a.sources))
	for _, s := range a.sources {
		if s.Serves(feedType) {
			serving = append(serving, s)
		}
	}
	if len(serving) == 0 {
		return Result{Items: []domain.ClassifiedItem{}}, nil
	}

	fetched, warnings := a.fetchAll(ctx, serving, feedType)
	if len(warnings) == len(serving) {
		return Result{}, fmt.Errorf("all %d sources failed for feed %q: %s",
			len(serving), feedType, strings.Join(warnings, "; "))
	}

	res := Result{Items: a.annotate(ctx, fetched), Warnings: warnings}
	a.pools.Set(feedType, res)
	return res, nil
}

// GetPage returns one page of the pool plus any per-source warnings
func (a *Aggregator) GetPage(ctx context.Context, feedType string, pageNumber, pageSize int) (domain.Page, []string, error) {
	res, err := a.Query(ctx, feedType)
	if err != nil {
		return domain.Page{}, nil, err
	}
	return paging.Paginate(res.Items, pageNumber, pageSize), res.Warnings, nil
}

// GetMore returns the next increment of the pool for infinite-scroll callers.
// The caller tracks displayedCount and must gate overlapping invocations.
func (a *Aggregator) GetMore(ctx context.Context, feedType string, displayedCount, increment int) (domain.MoreResult, []string, error) {
	res, err := a.Query(ctx, feedType)
	if err != nil {
		return domain.MoreResult{}, nil, err
	}
	return paging.More(res.Items, displayedCount, increment), res.Warnings, nil
}

// GetRelated ranks the pool against a reference title. When the title matches
// an item in the pool that item's description joins the reference keyword
// text; otherwise the bare title is used.
func (a *Aggregator) GetRelated(ctx context.Context, referenceTitle, feedType string, limit int) ([]domain.RankedItem, []string, error) {
	res, err := a.Query(ctx, feedType)
	if err != nil {
		return nil, nil, err
	}

	reference := domain.FeedItem{Title: referenceTitle}
	for _, item := range res.Items {
		if item.Title == referenceTitle {
			reference = item.FeedItem
			break
		}
	}

	return relevance.Rank(reference, res.Items, limit), res.Warnings, nil
}

// fetchAll queries the serving sources in parallel with bounded workers.
// Results keep source declaration order regardless of completion order, so
// the merged pool is deterministic. A slow or failing source never blocks
// the others; its failure becomes a warning.
func (a *Aggregator) fetchAll(ctx context.Context, serving []Source, feedType string) (items []domain.FeedItem, warnings []string) {
	type sourceResult struct {
		items []domain.FeedItem
		err   error
	}
	results := make([]sourceResult, len(serving))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxWorkers)
	for i := range serving {
		g.Go(func() error {
			results[i].items, results[i].err = a.fetchOne(gctx, serving[i], feedType)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures land in results

	for i, src := range serving {
		if results[i].err != nil {
			log.Printf("[WARN] source %s failed: %v", src.Name(), results[i].err)
			warnings = append(warnings, fmt.Sprintf("source %s: %v", src.Name(), results[i].err))
			continue
		}
		log.Printf("[DEBUG] fetched %d items from %s", len(results[i].items), src.Name())
		items = append(items, results[i].items...)
	}
	return items, warnings
}

// fetchOne fetches from a single source, retrying fetch errors with backoff.
// Parse errors are terminal: the same payload would fail again.
func (a *Aggregator) fetchOne(ctx context.Context, src Source, feedType string) ([]domain.FeedItem, error) {
	var items []domain.FeedItem
	var lastErr error

	retrier := repeater.NewBackoff(a.retryAttempts, a.retryDelay, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		fetched, ferr := src.Fetch(ctx, feedType, a.fetchLimit)
		if ferr != nil {
			lastErr = ferr
			var parseErr *feed.ParseError
			if errors.As(ferr, &parseErr) {
				return errTerminal
			}
			return ferr
		}
		items = fetched
		return nil
	}, errTerminal)

	if err != nil {
		if errors.Is(err, errTerminal) {
			return nil, lastErr
		}
		return nil, err
	}
	return items, nil
}

// annotate turns raw feed items into the final ordered pool: sanitize,
// optionally enrich, de-duplicate by content id, order newest first with
// unknown dates last, and resolve images by final position.
func (a *Aggregator) annotate(ctx context.Context, raw []domain.FeedItem) []domain.ClassifiedItem {
	a.enrich(ctx, raw)

	seen := make(map[string]struct{}, len(raw))
	pool := make([]domain.ClassifiedItem, 0, len(raw))
	for _, item := range raw {
		item.Title = a.clean(item.Title)
		item.Description = a.clean(item.Description)

		id := identity.ContentID(item.Title, item.Source)
		if _, dup := seen[id]; dup {
			continue // same article from an overlapping source, first wins
		}
		seen[id] = struct{}{}

		pool = append(pool, domain.ClassifiedItem{
			FeedItem:  item,
			Theme:     classify.Classify(item.Title),
			ContentID: id,
		})
	}

	// newest first; unknown dates sort last rather than pretending to be now
	sort.SliceStable(pool, func(i, j int) bool {
		pi, pj := pool[i].PublishedAt, pool[j].PublishedAt
		switch {
		case pi.IsZero():
			return false
		case pj.IsZero():
			return true
		default:
			return pi.After(pj)
		}
	})

	// image pick depends on the item's final position, so it runs after ordering
	for i := range pool {
		pool[i].ResolvedImage = images.Resolve(i, pool[i].Title, pool[i].Image)
	}
	return pool
}

// enrich fills empty descriptions by extracting article text, bounded by the
// worker limit. Extraction failures leave the item as-is.
func (a *Aggregator) enrich(ctx context.Context, items []domain.FeedItem) {
	if a.extractor == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxWorkers)
	for i := range items {
		if items[i].Description != "" || items[i].Content != "" || items[i].Link == "" {
			continue
		}
		g.Go(func() error {
			text, err := a.extractor.Extract(gctx, items[i].Link)
			if err != nil {
				log.Printf("[WARN] content extraction failed for %s: %v", items[i].Link, err)
				return nil
			}
			items[i].Content = text
			return nil
		})
	}
	_ = g.Wait()
}

// clean strips HTML markup and collapses entities in upstream text
func (a *Aggregator) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(a.sanitizer.Sanitize(s)))
}
