// Package classify maps free-text titles to a fixed topic taxonomy using
// ordered keyword-substring matching, and provides the keyword extraction
// shared with the relevance ranker.
package classify

import (
	"strings"

	"github.com/umputun/feedscope/pkg/domain"
)

// themeKeywords binds a theme to its lowercase substring keywords.
// Declaration order is the observable contract: the first theme with any
// matching keyword wins, so the table is a slice, never a map.
type themeKeywords struct {
	theme    domain.Theme
	keywords []string
}

var keywordTable = []themeKeywords{
	{domain.ThemeCrypto, []string{"bitcoin", "btc", "ethereum", "eth", "blockchain", "crypto", "krypto", "altcoin", "solana", "dogecoin", "binance", "token", "stablecoin"}},
	{domain.ThemeForex, []string{"forex", "eur/", "usd/", "gbp/", "jpy", "chf", "walut", "kurs euro", "kurs dolara", "kurs franka", "exchange rate"}},
	{domain.ThemeStocks, []string{"akcje", "akcji", "gpw", "wig20", "nasdaq", "s&p", "dow jones", "gield", "giełd", "spolk", "spółk", "stock", "shares", "ipo", "dywidend"}},
	{domain.ThemeEconomy, []string{"inflacj", "pkb", "gdp", "gospodark", "recesj", "stopy procentowe", "bezroboci", "economy", "economic", "budzet", "budżet"}},
	{domain.ThemeGold, []string{"zloto", "złoto", "złota", "gold", "srebro", "silver", "bullion", "metale szlachetne"}},
	{domain.ThemeOil, []string{"ropa", "ropy", "oil", "brent", "wti", "opec", "paliw", "gaz ziemny"}},
	{domain.ThemeBank, []string{"bank", "nbp", "fed", "ecb", "ebc", "rpp", "kredyt", "lokat", "credit"}},
	{domain.ThemeTech, []string{"tech", "sztuczna inteligencja", "apple", "google", "microsoft", "nvidia", "chip", "software", "startup"}},
}

// Classify returns the first theme whose keyword list contains a substring of
// the lowercased title. No match, including an empty title, yields ThemeDefault.
// Matching is deliberately substring-based, not word-boundary based; downstream
// fallback-image selection depends on the exact match behavior.
func Classify(title string) domain.Theme {
	lower := strings.ToLower(title)
	for _, tk := range keywordTable {
		for _, kw := range tk.keywords {
			if strings.Contains(lower, kw) {
				return tk.theme
			}
		}
	}
	return domain.ThemeDefault
}
