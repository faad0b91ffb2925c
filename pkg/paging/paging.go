// Package paging slices the full item collection into stable windows for
// classic pagination and incremental (infinite-scroll) consumption. All
// functions are pure: out-of-range input is clamped, never rejected, and the
// same inputs always produce the same window.
package paging

import "github.com/umputun/feedscope/pkg/domain"

// Paginate returns the 1-based page of the given size. The page number is
// clamped into [1, totalPages] and totalPages has a floor of 1 even for an
// empty collection. pageSize below 1 is coerced to 1.
func Paginate(items []domain.ClassifiedItem, pageNumber, pageSize int) domain.Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return domain.Page{
		Items:      items[start:end],
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// More returns the next increment of items for infinite-scroll consumption.
// The engine is stateless; the caller tracks displayedCount and must gate
// overlapping invocations itself.
func More(items []domain.ClassifiedItem, displayedCount, increment int) domain.MoreResult {
	if displayedCount < 0 {
		displayedCount = 0
	}
	if increment < 0 {
		increment = 0
	}
	if displayedCount > len(items) {
		displayedCount = len(items)
	}

	newCount := displayedCount + increment
	if newCount > len(items) {
		newCount = len(items)
	}

	return domain.MoreResult{
		Slice:             items[displayedCount:newCount],
		NewDisplayedCount: newCount,
		HasMore:           newCount < len(items),
	}
}
