// Package relevance scores candidate items against a reference item by
// counting shared keywords, producing the "related articles" ordering.
package relevance

import (
	"sort"

	"github.com/umputun/feedscope/pkg/classify"
	"github.com/umputun/feedscope/pkg/domain"
)

// Rank scores candidates against the reference title+description keyword set
// and returns the top limit items, best first. Candidates whose title exactly
// equals the reference title are excluded. Ties keep the original candidate
// order (stable sort), and zero-score candidates are still eligible: there is
// no minimum-score cutoff, callers wanting "no related" must check the pool.
func Rank(reference domain.FeedItem, candidates []domain.ClassifiedItem, limit int) []domain.RankedItem {
	if limit <= 0 || len(candidates) == 0 {
		return []domain.RankedItem{}
	}

	refSet := map[string]struct{}{}
	for _, kw := range classify.Keywords(reference.Title+" "+reference.Description, classify.MaxKeywords) {
		refSet[kw] = struct{}{}
	}

	ranked := make([]domain.RankedItem, 0, len(candidates))
	for _, c := range candidates {
		if c.Title == reference.Title {
			continue
		}
		ranked = append(ranked, domain.RankedItem{ClassifiedItem: c, RelevanceScore: score(c, refSet)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// score counts how many of the candidate's keywords appear in the reference set.
func score(c domain.ClassifiedItem, refSet map[string]struct{}) int {
	n := 0
	for _, kw := range classify.Keywords(c.Title+" "+c.Description, classify.MaxKeywords) {
		if _, ok := refSet[kw]; ok {
			n++
		}
	}
	return n
}
