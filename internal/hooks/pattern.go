package hooks

import (
	"errors"
	"regexp"
	"strings"
	"sync"
)

// Matcher is the compiled form of a rule pattern. *regexp.Regexp satisfies
// it; tests substitute their own implementations.
type Matcher interface {
	MatchString(s string) bool
}

// ErrUnsafePattern marks a pattern rejected by the nested-quantifier check.
var ErrUnsafePattern = errors.New("pattern contains a nested quantifier")

// unsafeGroupPattern detects a parenthesized group consisting of exactly one
// quantified atom, with another quantifier or counted repetition applied to
// the group itself: (a+)+, (.+)*, (\d+)+, (\s*)+ and friends. Groups whose
// body is a longer token sequence, such as (-H\s+\S+\s+)*, are fine. This is
// a shape heuristic, not a static analysis: it rejects the canonical
// catastrophic-backtracking forms and may still admit other pathological
// patterns.
var unsafeGroupPattern = regexp.MustCompile(`\((?:\\.|[^\\)])[+*]\)(?:[+*?]|\{\d+(?:,\d*)?\})`)

type patternKey struct {
	flags   string
	pattern string
}

// PatternCache memoizes compiled matchers by (flags, pattern). It is safe
// for concurrent use; racing inserts for the same key are idempotent and
// callers always observe a single matcher instance per key.
type PatternCache struct {
	mu       sync.RWMutex
	matchers map[patternKey]*regexp.Regexp
}

// NewPatternCache creates an empty pattern cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{
		matchers: make(map[patternKey]*regexp.Regexp),
	}
}

// Compile returns a matcher for pattern, rejecting patterns the
// nested-quantifier heuristic flags with ErrUnsafePattern. Cache hits skip
// both the safety check and recompilation.
func (c *PatternCache) Compile(pattern, flags string) (Matcher, error) {
	key := patternKey{flags: flags, pattern: pattern}

	c.mu.RLock()
	cached, ok := c.matchers[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	if unsafeGroupPattern.MatchString(pattern) {
		return nil, ErrUnsafePattern
	}

	compiled, err := regexp.Compile(inlineFlags(flags) + pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.matchers[key]; ok {
		return existing, nil
	}
	c.matchers[key] = compiled
	return compiled, nil
}

// inlineFlags translates configuration flag letters into a Go inline flag
// group. Only i, m and s are meaningful here; anything else is ignored (the
// stateful g flag is already stripped during rule parsing).
func inlineFlags(flags string) string {
	var b strings.Builder
	for _, f := range "ims" {
		if strings.ContainsRune(flags, f) {
			b.WriteRune(f)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}
