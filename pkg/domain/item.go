package domain

import "time"

// FeedItem represents a normalized news item as delivered by an upstream source.
// PublishedAt is the zero time when the upstream value was missing or malformed;
// PublishedRaw keeps the original text for diagnostics.
type FeedItem struct {
	Title        string    `json:"title"`
	Link         string    `json:"link"`
	Description  string    `json:"description"`
	Content      string    `json:"content,omitempty"`
	Source       string    `json:"source"`
	Image        string    `json:"image,omitempty"`
	PublishedAt  time.Time `json:"published_at,omitempty"`
	PublishedRaw string    `json:"-"`
}

// ClassifiedItem is a FeedItem with all annotations applied.
// ResolvedImage is never empty and ContentID is a pure function of
// (title, source), stable across process restarts.
type ClassifiedItem struct {
	FeedItem
	Theme         Theme  `json:"theme"`
	ResolvedImage string `json:"resolved_image"`
	ContentID     string `json:"content_id"`
}

// RankedItem is a ClassifiedItem with a relevance score against some
// reference item. Scores are computed per request and never persisted.
type RankedItem struct {
	ClassifiedItem
	RelevanceScore int `json:"relevance_score"`
}
