package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/feedscope/pkg/domain"
	"github.com/umputun/feedscope/pkg/feed"
)

const (
	defaultPageSize  = 30
	maxPageSize      = 100
	defaultIncrement = 10
	defaultRelated   = 4
	maxRelated       = 50
	defaultRSSLimit  = 50
)

// pageResponse is the articles endpoint payload
type pageResponse struct {
	Items      []domain.ClassifiedItem `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalItems int                     `json:"total_items"`
	TotalPages int                     `json:"total_pages"`
	Warnings   []string                `json:"warnings,omitempty"`
}

// moreResponse is the incremental-load endpoint payload
type moreResponse struct {
	Items     []domain.ClassifiedItem `json:"items"`
	Displayed int                     `json:"displayed"`
	HasMore   bool                    `json:"has_more"`
	Warnings  []string                `json:"warnings,omitempty"`
}

// relatedResponse is the related-articles endpoint payload
type relatedResponse struct {
	Items    []domain.RankedItem `json:"items"`
	Warnings []string            `json:"warnings,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// articlesHandler serves one page of the aggregated pool.
// Out-of-range page and pageSize values are clamped, not rejected.
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	feedType := queryString(r, "feed", "all")
	pageNumber := queryInt(r, "page", 1)
	pageSize := clampInt(queryInt(r, "pageSize", defaultPageSize), 1, maxPageSize)

	page, warnings, err := s.aggregator.GetPage(r.Context(), feedType, pageNumber, pageSize)
	if err != nil {
		log.Printf("[ERROR] articles query failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, pageResponse{
		Items:      page.Items,
		Page:       page.PageNumber,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Warnings:   warnings,
	})
}

// articlesMoreHandler serves the next increment for infinite-scroll clients.
// The client tracks its displayed count and must not overlap invocations.
func (s *Server) articlesMoreHandler(w http.ResponseWriter, r *http.Request) {
	feedType := queryString(r, "feed", "all")
	displayed := queryInt(r, "displayed", 0)
	increment := clampInt(queryInt(r, "increment", defaultIncrement), 1, maxPageSize)

	res, warnings, err := s.aggregator.GetMore(r.Context(), feedType, displayed, increment)
	if err != nil {
		log.Printf("[ERROR] articles more query failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, moreResponse{
		Items:     res.Slice,
		Displayed: res.NewDisplayedCount,
		HasMore:   res.HasMore,
		Warnings:  warnings,
	})
}

// relatedHandler serves articles ranked by keyword overlap with the reference title
func (s *Server) relatedHandler(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		renderError(w, r, fmt.Errorf("title is required"), http.StatusBadRequest)
		return
	}
	feedType := queryString(r, "feed", "all")
	limit := clampInt(queryInt(r, "limit", defaultRelated), 1, maxRelated)

	ranked, warnings, err := s.aggregator.GetRelated(r.Context(), title, feedType, limit)
	if err != nil {
		log.Printf("[ERROR] related query failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, relatedResponse{Items: ranked, Warnings: warnings})
}

// rssHandler serves an RSS 2.0 rendering of the pool, optionally filtered by theme
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	theme := domain.ThemeDefault
	if themeStr := r.PathValue("theme"); themeStr != "" {
		parsed, err := domain.ParseTheme(themeStr)
		if err != nil {
			http.Error(w, "unknown theme", http.StatusNotFound)
			return
		}
		theme = parsed
	}

	page, _, err := s.aggregator.GetPage(r.Context(), "all", 1, defaultRSSLimit)
	if err != nil {
		log.Printf("[ERROR] failed to get items for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	items := page.Items
	if theme != domain.ThemeDefault {
		filtered := make([]domain.ClassifiedItem, 0, len(items))
		for _, item := range items {
			if item.Theme == theme {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	generator := feed.NewGenerator(s.config.GetBaseURL())
	rss, err := generator.GenerateRSS(items, theme)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// queryString returns a query parameter or the default when absent
func queryString(r *http.Request, name, defValue string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return defValue
}

// queryInt returns an integer query parameter or the default when absent or malformed
func queryInt(r *http.Request, name string, defValue int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return defValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defValue
	}
	return n
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
