package hooks

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// RuleEntry is one raw configuration rule: either a bare "Tool(pattern)"
// string or a structured {rule, reason, flags} object.
type RuleEntry struct {
	Rule   string `json:"rule"`
	Reason string `json:"reason,omitempty"`
	Flags  string `json:"flags,omitempty"`
}

// UnmarshalJSON accepts both the bare-string and the structured form.
func (e *RuleEntry) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		return json.Unmarshal(data, &e.Rule)
	}

	type plain RuleEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = RuleEntry(p)
	return nil
}

// CompiledRule is the parsed, ready-to-evaluate form of a RuleEntry. The
// tool matcher is always anchored to the whole tool name and always
// case-sensitive; flags apply to the content matcher only.
type CompiledRule struct {
	Raw     string
	Tool    Matcher
	Content Matcher
	Reason  string
}

// ParseRule compiles one configuration entry. A nil result means the entry
// is malformed or unsafe and must be skipped; a bad rule never fails the
// rest of the rule set.
//
// The rule text is split on the first "(" and the final ")". The content
// pattern may itself contain parentheses; the tool portion may not. This is
// deliberately not a balanced-paren parse, so the split stays byte-for-byte
// compatible with existing configuration files.
func ParseRule(entry RuleEntry, cache *PatternCache, logger zerolog.Logger) *CompiledRule {
	raw := entry.Rule
	if raw == "" {
		logger.Warn().Msg("skipping empty permission rule")
		return nil
	}

	openIdx := strings.Index(raw, "(")
	closeIdx := strings.LastIndex(raw, ")")
	if openIdx < 1 || closeIdx != len(raw)-1 || closeIdx <= openIdx {
		logger.Warn().Str("rule", raw).Msg("skipping rule not of the form Tool(pattern)")
		return nil
	}

	flags := entry.Flags
	if strings.ContainsRune(flags, 'g') {
		logger.Warn().Str("rule", raw).Msg("stripping stateful g flag; matches must not carry state between calls")
		flags = strings.ReplaceAll(flags, "g", "")
	}

	tool, err := cache.Compile("^(?:"+raw[:openIdx]+")$", "")
	if err != nil {
		logger.Warn().Err(err).Str("rule", raw).Msg("skipping rule with invalid tool pattern")
		return nil
	}

	content, err := cache.Compile(raw[openIdx+1:closeIdx], flags)
	if err != nil {
		if errors.Is(err, ErrUnsafePattern) {
			logger.Warn().Str("rule", raw).Msg("skipping rule with unsafe content pattern")
		} else {
			logger.Warn().Err(err).Str("rule", raw).Msg("skipping rule with invalid content pattern")
		}
		return nil
	}

	return &CompiledRule{
		Raw:     raw,
		Tool:    tool,
		Content: content,
		Reason:  entry.Reason,
	}
}
