package domain

import "fmt"

// Theme is a topical category assigned to every item. The set is closed;
// unclassifiable items get ThemeDefault.
type Theme string

const (
	ThemeCrypto  Theme = "crypto"
	ThemeForex   Theme = "forex"
	ThemeStocks  Theme = "stocks"
	ThemeEconomy Theme = "economy"
	ThemeGold    Theme = "gold"
	ThemeOil     Theme = "oil"
	ThemeBank    Theme = "bank"
	ThemeTech    Theme = "tech"
	ThemeDefault Theme = "default"
)

// Themes lists all themes in their canonical declaration order.
// The order matters: the classifier uses it as the tie-break when a title
// matches keywords of more than one theme.
func Themes() []Theme {
	return []Theme{ThemeCrypto, ThemeForex, ThemeStocks, ThemeEconomy, ThemeGold, ThemeOil, ThemeBank, ThemeTech, ThemeDefault}
}

// ParseTheme converts a string to a Theme, rejecting anything outside the closed set.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", s)
}
