package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTL(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		c := NewTTL[string](time.Minute)
		c.Set("k", "v")
		got, ok := c.Get("k")
		assert.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("miss on absent key", func(t *testing.T) {
		c := NewTTL[string](time.Minute)
		_, ok := c.Get("absent")
		assert.False(t, ok)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		c := NewTTL[int](time.Minute)
		current := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return current }

		c.Set("k", 42)
		_, ok := c.Get("k")
		assert.True(t, ok)

		current = current.Add(61 * time.Second)
		_, ok = c.Get("k")
		assert.False(t, ok)
	})

	t.Run("zero ttl disables caching", func(t *testing.T) {
		c := NewTTL[string](0)
		c.Set("k", "v")
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("purge", func(t *testing.T) {
		c := NewTTL[string](time.Minute)
		c.Set("k", "v")
		c.Purge()
		_, ok := c.Get("k")
		assert.False(t, ok)
	})
}
