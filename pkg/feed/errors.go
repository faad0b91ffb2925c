package feed

import "fmt"

// FetchError indicates a network failure, timeout or non-2xx response from an
// upstream source. Fetch errors are retryable.
type FetchError struct {
	Source string
	Status int // 0 when the request never completed
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError indicates a malformed upstream payload. Parse errors are not
// retryable: the same payload would fail again.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Source, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }
