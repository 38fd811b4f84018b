package pathconv

import (
	"github.com/charmbracelet/log"

	"github.com/sverrirab/gitwrap/internal/matchcache"
	"github.com/sverrirab/gitwrap/internal/protocol"
)

// Matcher checks candidate strings against the WSL filesystem with a prefix
// glob listing. Queries run one at a time, in call order.
type Matcher struct {
	run    Runner
	cache  *matchcache.Cache
	logger *log.Logger
}

// NewMatcher creates a matcher. cache may be nil to query on every call.
func NewMatcher(run Runner, cache *matchcache.Cache, logger *log.Logger) *Matcher {
	return &Matcher{run: run, cache: cache, logger: logger}
}

// Match returns the names of the entries starting with candidate and true,
// or nil and false if there are none or the listing failed. An empty
// candidate never matches and issues no query.
func (m *Matcher) Match(candidate string) ([]string, bool) {
	if candidate == "" {
		return nil, false
	}
	if m.cache != nil {
		if matches, found, ok := m.cache.Get(candidate); ok {
			return matches, found
		}
	}

	matches, found := m.list(candidate)
	if m.cache != nil {
		m.cache.Put(candidate, matches, found)
	}
	return matches, found
}

func (m *Matcher) list(candidate string) ([]string, bool) {
	res := m.run.Run(protocol.ListCommand(candidate))
	if !res.OK() {
		return nil, false
	}
	matches := protocol.ParseListing(res.Lines)
	if len(matches) == 0 {
		return nil, false
	}
	m.logger.Debug("matched", "candidate", candidate, "entries", len(matches))
	return matches, true
}
