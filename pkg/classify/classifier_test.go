package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/feedscope/pkg/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  domain.Theme
	}{
		{"bitcoin title", "Bitcoin osiąga nowy rekord", domain.ThemeCrypto},
		{"btc uppercase", "BTC above 100k", domain.ThemeCrypto},
		{"forex pair", "EUR/USD hits parity", domain.ThemeForex},
		{"stocks polish", "Akcje na GPW mocno w górę", domain.ThemeStocks},
		{"economy inflation", "Inflacja w Polsce spada", domain.ThemeEconomy},
		{"gold", "Złoto drożeje po decyzji Fed", domain.ThemeGold},
		{"oil brent", "Brent crude climbs on OPEC cuts", domain.ThemeOil},
		{"bank", "NBP utrzymuje stopy bez zmian", domain.ThemeBank},
		{"tech", "Nvidia prezentuje nowy chip", domain.ThemeTech},
		{"no match", "Pogoda na weekend", domain.ThemeDefault},
		{"empty title", "", domain.ThemeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.title))
		})
	}
}

func TestClassify_DeclaredOrderWins(t *testing.T) {
	// title matches crypto (bitcoin), forex (usd/) and bank (fed);
	// crypto is declared first so it must win
	got := Classify("Bitcoin vs USD/PLN after Fed decision")
	assert.Equal(t, domain.ThemeCrypto, got)

	// gold is declared before bank, so "złoto" beats "fed"
	assert.Equal(t, domain.ThemeGold, Classify("Złoto reaguje na Fed"))
}

func TestClassify_SubstringNotWordBoundary(t *testing.T) {
	// "usd/" inside a longer token still matches forex, by design
	assert.Equal(t, domain.ThemeForex, Classify("kursusd/plnwzrost"))
}

func TestClassify_Totality(t *testing.T) {
	// never panics, always a member of the closed set
	for _, title := range []string{"", " ", "1234", "ż", "a very long unrelated headline about gardening"} {
		got := Classify(title)
		_, err := domain.ParseTheme(string(got))
		assert.NoError(t, err, "theme %q must be in the closed set", got)
	}
}

func TestKeywords(t *testing.T) {
	t.Run("lowercase strip and length filter", func(t *testing.T) {
		got := Keywords("Bitcoin: osiąga NOWY rekord!!! w 2024", 0)
		// "nowy" is 4 runes and not a stop word, "w" and "2024" dropped by length
		assert.Equal(t, []string{"bitcoin", "osiąga", "nowy", "rekord"}, got)
	})

	t.Run("stop words dropped", func(t *testing.T) {
		got := Keywords("the market and inflation after that rally", 0)
		assert.Equal(t, []string{"market", "inflation", "rally"}, got)
	})

	t.Run("cap at max in original order", func(t *testing.T) {
		got := Keywords("alpha bravo charlie delta echoes foxtrot golfing hotels india juliet kilos limas", 10)
		assert.Len(t, got, 10)
		assert.Equal(t, "alpha", got[0])
		assert.Equal(t, "juliet", got[9])
	})

	t.Run("dedupe keeps first occurrence", func(t *testing.T) {
		got := Keywords("bitcoin rally bitcoin rally bitcoin", 0)
		assert.Equal(t, []string{"bitcoin", "rally"}, got)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, Keywords("", 0))
	})
}
