// Package matchcache memoizes filesystem existence answers for the lifetime
// of one gitwrap invocation. Nothing is written to disk: the filesystem can
// change between invocations, and within one invocation the same candidate
// always gets the same answer.
package matchcache

// Cache maps a candidate string to the entries that matched it.
// It is not safe for concurrent use.
type Cache struct {
	entries map[string]entry
	hits    int
	misses  int
}

type entry struct {
	matches []string
	found   bool
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Get returns the cached answer for candidate. ok is false if the candidate
// has not been stored; found is false if it was stored as a non-match.
func (c *Cache) Get(candidate string) (matches []string, found, ok bool) {
	e, ok := c.entries[candidate]
	if !ok {
		c.misses++
		return nil, false, false
	}
	c.hits++
	return e.matches, e.found, true
}

// Put stores the answer for candidate.
func (c *Cache) Put(candidate string, matches []string, found bool) {
	c.entries[candidate] = entry{matches: matches, found: found}
}

// Len returns the number of stored candidates.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
