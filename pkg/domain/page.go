package domain

// Page is a bounded window over the full item collection for classic pagination.
// PageNumber is 1-based; TotalPages is never below 1, even for an empty collection.
type Page struct {
	Items      []ClassifiedItem `json:"items"`
	PageNumber int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
}

// MoreResult is the outcome of one incremental (infinite-scroll) load step.
type MoreResult struct {
	Slice             []ClassifiedItem `json:"items"`
	NewDisplayedCount int              `json:"displayed"`
	HasMore           bool             `json:"has_more"`
}
