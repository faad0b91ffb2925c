package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains common browser Accept-Language values; the portal's
// upstreams are mostly Polish so pl variants dominate
var acceptLanguages = []string{
	"pl-PL,pl;q=0.9,en-US;q=0.8",
	"pl,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,pl;q=0.8",
	"en-GB,en;q=0.9",
}

// addBrowserHeaders adds browser-like headers for upstream fetching
// some providers reject obviously non-browser clients
func addBrowserHeaders(req *http.Request) {
	// accept both feed XML and JSON API payloads
	req.Header.Set("Accept", "application/json,application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	// don't request compression - simpler to handle
	req.Header.Set("Cache-Control", "no-cache")

	// randomized language
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation

	req.Header.Set("Connection", "keep-alive")
}
