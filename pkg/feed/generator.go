package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/feedscope/pkg/domain"
)

// Generator creates RSS 2.0 output from classified items, one channel per theme
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateRSS creates an RSS 2.0 feed from the given items for a theme.
// Theme "all" or default produces the combined channel.
func (g *Generator) GenerateRSS(items []domain.ClassifiedItem, theme domain.Theme) (string, error) {
	title := "Feedscope - All Topics"
	selfLink := g.baseURL + "/rss"
	if theme != "" && theme != domain.ThemeDefault {
		title = fmt.Sprintf("Feedscope - %s", theme)
		selfLink = fmt.Sprintf("%s/rss/%s", g.baseURL, theme)
	}

	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Market news classified by topic",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a classified item to an RSS item
func (g *Generator) convertToRSSItem(item domain.ClassifiedItem) *RSSItem {
	rssItem := &RSSItem{
		Title:       item.Title,
		Link:        item.Link,
		GUID:        item.ContentID,
		Description: item.Description,
		Categories:  []string{string(item.Theme)},
	}
	if item.Source != "" {
		rssItem.Description = fmt.Sprintf("%s (source: %s)", item.Description, item.Source)
	}
	// unknown publish dates stay empty rather than pretending to be now
	if !item.PublishedAt.IsZero() {
		rssItem.PubDate = item.PublishedAt.Format(time.RFC1123Z)
	}
	return rssItem
}
