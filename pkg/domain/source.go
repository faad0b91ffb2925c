package domain

// SourceKind tells how an upstream source is fetched and parsed.
type SourceKind string

const (
	SourceAPI SourceKind = "api" // JSON array of feed items
	SourceRSS SourceKind = "rss" // RSS/Atom feed
)

// Source describes one upstream provider. Feeds lists the feed types the
// source serves; a source with no feed types serves every feed type.
type Source struct {
	Name  string
	Kind  SourceKind
	URL   string
	Feeds []string
}

// Serves reports whether the source contributes to the given feed type.
// The "all" feed type matches every source.
func (s Source) Serves(feedType string) bool {
	if feedType == "all" || len(s.Feeds) == 0 {
		return true
	}
	for _, f := range s.Feeds {
		if f == feedType {
			return true
		}
	}
	return false
}
