package hooks

import "github.com/rs/zerolog"

// RawConfig holds the regexPermissions section of one settings scope.
type RawConfig struct {
	Deny  []RuleEntry `json:"deny,omitempty"`
	Ask   []RuleEntry `json:"ask,omitempty"`
	Allow []RuleEntry `json:"allow,omitempty"`
}

// Merge combines two scopes category by category, a's rules first. Either
// side may be nil; when only one side is present it is returned as is.
func Merge(a, b *RawConfig) *RawConfig {
	switch {
	case a == nil && b == nil:
		return &RawConfig{}
	case b == nil:
		return a
	case a == nil:
		return b
	}

	return &RawConfig{
		Deny:  concatEntries(a.Deny, b.Deny),
		Ask:   concatEntries(a.Ask, b.Ask),
		Allow: concatEntries(a.Allow, b.Allow),
	}
}

func concatEntries(a, b []RuleEntry) []RuleEntry {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make([]RuleEntry, 0, len(a)+len(b))
	merged = append(merged, a...)
	return append(merged, b...)
}

// RuleSet is the compiled policy the engine evaluates against. Within a
// category the order is the configuration order and the first match wins.
// A RuleSet is immutable once prepared and safe to share between
// concurrent evaluations.
type RuleSet struct {
	Deny  []*CompiledRule
	Ask   []*CompiledRule
	Allow []*CompiledRule
}

// Prepare compiles every entry of cfg into a RuleSet. Malformed or unsafe
// entries are dropped one by one; a bad rule never empties its category.
func Prepare(cfg *RawConfig, cache *PatternCache, logger zerolog.Logger) *RuleSet {
	if cfg == nil {
		cfg = &RawConfig{}
	}
	return &RuleSet{
		Deny:  compileEntries("deny", cfg.Deny, cache, logger),
		Ask:   compileEntries("ask", cfg.Ask, cache, logger),
		Allow: compileEntries("allow", cfg.Allow, cache, logger),
	}
}

func compileEntries(category string, entries []RuleEntry, cache *PatternCache, logger zerolog.Logger) []*CompiledRule {
	rules := make([]*CompiledRule, 0, len(entries))
	for _, entry := range entries {
		if rule := ParseRule(entry, cache, logger); rule != nil {
			rules = append(rules, rule)
		}
	}
	logger.Debug().
		Str("category", category).
		Int("loaded", len(rules)).
		Int("configured", len(entries)).
		Msg("compiled permission rules")
	return rules
}
