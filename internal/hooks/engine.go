package hooks

import "strings"

// Engine evaluates tool invocations against a compiled rule set. It holds
// no mutable state, so a single Engine may serve concurrent callers.
type Engine struct {
	rules *RuleSet
}

// NewEngine creates an engine over the given rule set.
func NewEngine(rules *RuleSet) *Engine {
	if rules == nil {
		rules = &RuleSet{}
	}
	return &Engine{rules: rules}
}

// Evaluate decides deny, ask, allow or no-match for one tool invocation.
// Deny takes precedence over ask, ask over allow; within a category the
// first matching rule wins.
//
// Multiline content is additionally checked line by line. Deny and ask
// rules match if any single line matches, so a dangerous sub-command cannot
// ride along inside a longer script. Allow is the mirror image: every line
// must be covered by some allow rule, or the invocation stays undecided.
func (e *Engine) Evaluate(input *ToolInput) Decision {
	content, hasContent := PrimaryContent(input)

	var lines []string
	if hasContent && strings.Contains(content, "\n") {
		lines = splitLines(content)
	}

	for _, rule := range e.rules.Deny {
		if ruleMatches(rule, input.ToolName, content, hasContent, lines) {
			return Decision{
				Kind:   DecisionDeny,
				Reason: reasonOr(rule, "Blocked by permission rule "+rule.Raw),
			}
		}
	}

	for _, rule := range e.rules.Ask {
		if ruleMatches(rule, input.ToolName, content, hasContent, lines) {
			return Decision{
				Kind:   DecisionAsk,
				Reason: reasonOr(rule, "Confirmation required by permission rule "+rule.Raw),
			}
		}
	}

	if len(lines) > 0 {
		return e.evaluateMultilineAllow(input.ToolName, lines)
	}

	if hasContent {
		for _, rule := range e.rules.Allow {
			if rule.Tool.MatchString(input.ToolName) && rule.Content.MatchString(content) {
				return Decision{Kind: DecisionAllow, Reason: rule.Reason}
			}
		}
	}

	return Decision{}
}

// ruleMatches reports whether a deny or ask rule matches the invocation:
// the tool name must match, and the content must match either as a whole or
// on any individual line. An invocation without content matches nothing.
func ruleMatches(rule *CompiledRule, toolName, content string, hasContent bool, lines []string) bool {
	if !hasContent || !rule.Tool.MatchString(toolName) {
		return false
	}
	if rule.Content.MatchString(content) {
		return true
	}
	for _, line := range lines {
		if rule.Content.MatchString(line) {
			return true
		}
	}
	return false
}

// evaluateMultilineAllow approves a multiline invocation only when every
// line matches some allow rule. One uncovered line leaves the whole
// invocation undecided rather than silently approved.
func (e *Engine) evaluateMultilineAllow(toolName string, lines []string) Decision {
	for _, line := range lines {
		covered := false
		for _, rule := range e.rules.Allow {
			if rule.Tool.MatchString(toolName) && rule.Content.MatchString(line) {
				covered = true
				break
			}
		}
		if !covered {
			return Decision{}
		}
	}
	return Decision{Kind: DecisionAllow}
}

// splitLines produces the per-line view of multiline content: split on
// newline, trim each line, drop empty lines.
func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func reasonOr(rule *CompiledRule, fallback string) string {
	if rule.Reason != "" {
		return rule.Reason
	}
	return fallback
}
