// Package images picks thumbnail URLs for feed items. A provider-supplied
// image is used when valid; otherwise a deterministic fallback is chosen from
// a fixed per-theme pool so repeated renders never flicker between images.
package images

import (
	"net/url"

	"github.com/umputun/feedscope/pkg/classify"
	"github.com/umputun/feedscope/pkg/domain"
	"github.com/umputun/feedscope/pkg/identity"
)

// fallbackPools holds the fixed, ordered fallback image lists per theme.
// Every theme, including default, has a non-empty pool.
var fallbackPools = map[domain.Theme][]string{
	domain.ThemeCrypto: {
		"https://picsum.photos/seed/feedscope-crypto-1/800/450",
		"https://picsum.photos/seed/feedscope-crypto-2/800/450",
		"https://picsum.photos/seed/feedscope-crypto-3/800/450",
		"https://picsum.photos/seed/feedscope-crypto-4/800/450",
	},
	domain.ThemeForex: {
		"https://picsum.photos/seed/feedscope-forex-1/800/450",
		"https://picsum.photos/seed/feedscope-forex-2/800/450",
		"https://picsum.photos/seed/feedscope-forex-3/800/450",
	},
	domain.ThemeStocks: {
		"https://picsum.photos/seed/feedscope-stocks-1/800/450",
		"https://picsum.photos/seed/feedscope-stocks-2/800/450",
		"https://picsum.photos/seed/feedscope-stocks-3/800/450",
		"https://picsum.photos/seed/feedscope-stocks-4/800/450",
	},
	domain.ThemeEconomy: {
		"https://picsum.photos/seed/feedscope-economy-1/800/450",
		"https://picsum.photos/seed/feedscope-economy-2/800/450",
		"https://picsum.photos/seed/feedscope-economy-3/800/450",
	},
	domain.ThemeGold: {
		"https://picsum.photos/seed/feedscope-gold-1/800/450",
		"https://picsum.photos/seed/feedscope-gold-2/800/450",
	},
	domain.ThemeOil: {
		"https://picsum.photos/seed/feedscope-oil-1/800/450",
		"https://picsum.photos/seed/feedscope-oil-2/800/450",
	},
	domain.ThemeBank: {
		"https://picsum.photos/seed/feedscope-bank-1/800/450",
		"https://picsum.photos/seed/feedscope-bank-2/800/450",
		"https://picsum.photos/seed/feedscope-bank-3/800/450",
	},
	domain.ThemeTech: {
		"https://picsum.photos/seed/feedscope-tech-1/800/450",
		"https://picsum.photos/seed/feedscope-tech-2/800/450",
		"https://picsum.photos/seed/feedscope-tech-3/800/450",
		"https://picsum.photos/seed/feedscope-tech-4/800/450",
	},
	domain.ThemeDefault: {
		"https://picsum.photos/seed/feedscope-news-1/800/450",
		"https://picsum.photos/seed/feedscope-news-2/800/450",
		"https://picsum.photos/seed/feedscope-news-3/800/450",
		"https://picsum.photos/seed/feedscope-news-4/800/450",
	},
}

// Resolve returns the thumbnail for an item. A syntactically valid absolute
// http(s) provided URL passes through unchanged; otherwise the item's theme
// pool supplies a fallback at index (charCodeSum(title)+index) mod pool size.
// index is the item's position in the current result set, which keeps the
// pick stable across repeated renders while varying it between positions.
func Resolve(index int, title, provided string) string {
	if validURL(provided) {
		return provided
	}

	pool := fallbackPools[classify.Classify(title)]
	if len(pool) == 0 {
		pool = fallbackPools[domain.ThemeDefault]
	}

	pick := (identity.CharCodeSum(title) + index) % len(pool)
	if pick < 0 {
		pick += len(pool)
	}
	return pool[pick]
}

// validURL reports whether s is an absolute http or https URL.
func validURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
