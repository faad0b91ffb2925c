package relevance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscope/pkg/domain"
)

func item(title, description string) domain.ClassifiedItem {
	return domain.ClassifiedItem{FeedItem: domain.FeedItem{Title: title, Description: description, Source: "test"}}
}

func TestRank_BitcoinScenario(t *testing.T) {
	reference := domain.FeedItem{Title: "Bitcoin osiąga nowy rekord"}
	candidates := []domain.ClassifiedItem{
		item("Pogoda na weekend nad morzem", ""),
		item("Sejm uchwalił nową ustawę", ""),
		item("Kurs bitcoin przebija kolejną barierę", ""),
		item("Wyniki ligi piłkarskiej", ""),
		item("Nowe przepisy drogowe od stycznia", ""),
	}

	got := Rank(reference, candidates, 4)
	require.Len(t, got, 4)

	// the bitcoin item wins, remaining slots filled in original order with score 0
	assert.Equal(t, "Kurs bitcoin przebija kolejną barierę", got[0].Title)
	assert.Equal(t, 1, got[0].RelevanceScore)
	assert.Equal(t, "Pogoda na weekend nad morzem", got[1].Title)
	assert.Equal(t, "Sejm uchwalił nową ustawę", got[2].Title)
	assert.Equal(t, "Wyniki ligi piłkarskiej", got[3].Title)
	for _, r := range got[1:] {
		assert.Zero(t, r.RelevanceScore)
	}
}

func TestRank_ExcludesExactTitleMatch(t *testing.T) {
	reference := domain.FeedItem{Title: "Bitcoin osiąga nowy rekord"}
	candidates := []domain.ClassifiedItem{
		item("Bitcoin osiąga nowy rekord", ""),
		item("Kurs bitcoin przebija kolejną barierę", ""),
	}

	got := Rank(reference, candidates, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "Kurs bitcoin przebija kolejną barierę", got[0].Title)
}

func TestRank_StableOrderOnTies(t *testing.T) {
	reference := domain.FeedItem{Title: "Inflacja rośnie"}
	candidates := []domain.ClassifiedItem{
		item("Wieczorne podsumowanie dnia", ""),
		item("Inflacja wyżej niż prognozy", ""), // score 1
		item("Poranny przegląd prasy", ""),
		item("Inflacja uderza w portfele", ""), // score 1
	}

	got := Rank(reference, candidates, 4)
	require.Len(t, got, 4)

	// equal scores keep their relative input order on both tiers
	assert.Equal(t, "Inflacja wyżej niż prognozy", got[0].Title)
	assert.Equal(t, "Inflacja uderza w portfele", got[1].Title)
	assert.Equal(t, "Wieczorne podsumowanie dnia", got[2].Title)
	assert.Equal(t, "Poranny przegląd prasy", got[3].Title)
}

func TestRank_ScoreCountsSharedKeywords(t *testing.T) {
	reference := domain.FeedItem{Title: "Inflacja oraz stopy procentowe", Description: "gospodarka hamuje"}
	candidates := []domain.ClassifiedItem{
		item("Stopy procentowe bez zmian, inflacja hamuje", "gospodarka pod presją"),
		item("Inflacja spada", ""),
	}

	got := Rank(reference, candidates, 2)
	require.Len(t, got, 2)
	// shared: inflacja, stopy, procentowe, hamuje, gospodarka
	assert.Equal(t, 5, got[0].RelevanceScore)
	assert.Equal(t, "Stopy procentowe bez zmian, inflacja hamuje", got[0].Title)
	assert.Equal(t, 1, got[1].RelevanceScore)
}

func TestRank_EdgeCases(t *testing.T) {
	t.Run("empty candidate pool", func(t *testing.T) {
		got := Rank(domain.FeedItem{Title: "anything"}, nil, 5)
		assert.Empty(t, got)
	})

	t.Run("zero limit", func(t *testing.T) {
		got := Rank(domain.FeedItem{Title: "anything"}, []domain.ClassifiedItem{item("other", "")}, 0)
		assert.Empty(t, got)
	})

	t.Run("limit above pool size", func(t *testing.T) {
		got := Rank(domain.FeedItem{Title: "anything"}, []domain.ClassifiedItem{item("other", "")}, 100)
		assert.Len(t, got, 1)
	})

	t.Run("empty reference still returns candidates", func(t *testing.T) {
		candidates := []domain.ClassifiedItem{item("alpha headline", ""), item("bravo headline", "")}
		got := Rank(domain.FeedItem{}, candidates, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "alpha headline", got[0].Title)
		assert.Equal(t, "bravo headline", got[1].Title)
	})

	t.Run("large pool keeps stability", func(t *testing.T) {
		candidates := make([]domain.ClassifiedItem, 20)
		for i := range candidates {
			candidates[i] = item(fmt.Sprintf("unrelated headline number %d", i), "")
		}
		got := Rank(domain.FeedItem{Title: "bitcoin"}, candidates, 5)
		require.Len(t, got, 5)
		for i, r := range got {
			assert.Equal(t, fmt.Sprintf("unrelated headline number %d", i), r.Title)
		}
	})
}
