package watchlist

import (
	"strings"

	"github.com/gobwas/glob"
)

// Matcher decides which subjects are eligible for price alerts
type Matcher interface {
	Match(uid string) bool
}

type matcher struct {
	patterns []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher creates a Matcher from eligible and ignore patterns
func NewMatcher(eligible, ignores []string) (Matcher, error) {
	m := &matcher{
		patterns: make([]glob.Glob, 0, len(eligible)),
		ignores:  make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range eligible {
		g, err := glob.Compile(normalizeUID(p))
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, g)
	}

	for _, p := range ignores {
		g, err := glob.Compile(normalizeUID(p))
		if err != nil {
			return nil, err
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// Match returns true if the uid matches any eligible pattern and is not ignored
func (m *matcher) Match(uid string) bool {
	uid = normalizeUID(uid)

	for _, ignore := range m.ignores {
		if ignore.Match(uid) {
			return false
		}
	}

	for _, pattern := range m.patterns {
		if pattern.Match(uid) {
			return true
		}
	}

	return false
}

func normalizeUID(uid string) string {
	return strings.ToLower(strings.TrimSpace(uid))
}
