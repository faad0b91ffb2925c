package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscope/pkg/domain"
)

func apiSource(url string) domain.Source {
	return domain.Source{Name: "TestAPI", Kind: domain.SourceAPI, URL: url, Feeds: []string{"crypto", "stocks"}}
}

func TestAPIClient_Fetch(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := `[
			{"title": "Bitcoin osiąga nowy rekord", "link": "https://example.com/a1",
			 "description": "Kurs BTC w górę", "publishedAt": "2024-05-12T10:30:00Z",
			 "source": "Bankier", "image": "https://cdn.example.com/a1.jpg"},
			{"title": "Inflacja spada", "link": "https://example.com/a2",
			 "description": "", "publishedAt": "not-a-date", "source": ""}
		]`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "crypto", r.URL.Query().Get("feed"))
			assert.Equal(t, "50", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(payload))
		}))
		defer server.Close()

		client := NewAPIClient(apiSource(server.URL), 5*time.Second)
		items, err := client.Fetch(context.Background(), "crypto", 50)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Bitcoin osiąga nowy rekord", items[0].Title)
		assert.Equal(t, "https://example.com/a1", items[0].Link)
		assert.Equal(t, "Bankier", items[0].Source)
		assert.Equal(t, "https://cdn.example.com/a1.jpg", items[0].Image)
		assert.Equal(t, time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC), items[0].PublishedAt.UTC())

		// empty source falls back to the configured source name
		assert.Equal(t, "TestAPI", items[1].Source)
		// malformed date becomes the zero time, raw text preserved
		assert.True(t, items[1].PublishedAt.IsZero())
		assert.Equal(t, "not-a-date", items[1].PublishedRaw)
	})

	t.Run("items without title skipped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"title": ""}, {"title": "ok", "source": "x"}]`))
		}))
		defer server.Close()

		client := NewAPIClient(apiSource(server.URL), 5*time.Second)
		items, err := client.Fetch(context.Background(), "all", 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "ok", items[0].Title)
	})

	t.Run("non-2xx is a fetch error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewAPIClient(apiSource(server.URL), 5*time.Second)
		_, err := client.Fetch(context.Background(), "crypto", 10)
		require.Error(t, err)

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusBadGateway, fetchErr.Status)
		assert.Equal(t, "TestAPI", fetchErr.Source)
	})

	t.Run("malformed json is a parse error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not": "an array"`))
		}))
		defer server.Close()

		client := NewAPIClient(apiSource(server.URL), 5*time.Second)
		_, err := client.Fetch(context.Background(), "crypto", 10)
		require.Error(t, err)

		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
		var fetchErr *FetchError
		assert.False(t, errors.As(err, &fetchErr))
	})

	t.Run("timeout is a fetch error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		client := NewAPIClient(apiSource(server.URL), 10*time.Millisecond)
		_, err := client.Fetch(context.Background(), "crypto", 10)
		require.Error(t, err)

		var fetchErr *FetchError
		assert.True(t, errors.As(err, &fetchErr))
	})
}

func TestAPIClient_Serves(t *testing.T) {
	client := NewAPIClient(apiSource("http://example.com"), time.Second)
	assert.True(t, client.Serves("crypto"))
	assert.True(t, client.Serves("all"))
	assert.False(t, client.Serves("forex"))

	// a source without feed types serves everything
	open := NewAPIClient(domain.Source{Name: "open", URL: "http://example.com"}, time.Second)
	assert.True(t, open.Serves("forex"))
}

func TestParsePublished(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		zero bool
	}{
		{"rfc3339", "2024-05-12T10:30:00Z", false},
		{"rfc1123", "Mon, 02 Jan 2006 15:04:05 -0700", false},
		{"date only", "2024-05-12", false},
		{"empty", "", true},
		{"garbage", "wczoraj wieczorem", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePublished(tt.raw)
			assert.Equal(t, tt.zero, got.IsZero())
		})
	}
}
