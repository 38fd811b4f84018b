package matchcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	c := New()

	_, _, ok := c.Get("src")
	assert.False(t, ok)

	c.Put("src", []string{"src", "src2"}, true)
	c.Put("nope", nil, false)

	matches, found, ok := c.Get("src")
	assert.True(t, ok)
	assert.True(t, found)
	assert.Equal(t, []string{"src", "src2"}, matches)

	matches, found, ok = c.Get("nope")
	assert.True(t, ok, "non-matches are cached too")
	assert.False(t, found)
	assert.Nil(t, matches)

	hits, misses := c.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, 1, misses)
	assert.Equal(t, 2, c.Len())
}
