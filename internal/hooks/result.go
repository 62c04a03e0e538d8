package hooks

import "encoding/json"

// DecisionKind enumerates the possible outcomes of evaluating a tool
// invocation against a rule set.
type DecisionKind int

const (
	// DecisionNoMatch means no rule governs the invocation; the caller
	// falls back to its own permission flow.
	DecisionNoMatch DecisionKind = iota
	DecisionDeny
	DecisionAsk
	DecisionAllow
)

// String returns the wire name of the decision kind. DecisionNoMatch has no
// wire name; it renders as an empty envelope.
func (k DecisionKind) String() string {
	switch k {
	case DecisionDeny:
		return "deny"
	case DecisionAsk:
		return "ask"
	case DecisionAllow:
		return "allow"
	default:
		return ""
	}
}

// Decision is the outcome of one evaluation. The zero value is no-match.
type Decision struct {
	Kind   DecisionKind
	Reason string
}

type hookEnvelope struct {
	HookSpecificOutput *permissionOutput `json:"hookSpecificOutput,omitempty"`
}

type permissionOutput struct {
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
}

// MarshalHookOutput renders the decision envelope Claude Code expects on
// stdout. A no-match renders as an empty object, which tells the caller to
// apply its own default policy.
func (d Decision) MarshalHookOutput() ([]byte, error) {
	if d.Kind == DecisionNoMatch {
		return []byte("{}"), nil
	}
	return json.Marshal(hookEnvelope{
		HookSpecificOutput: &permissionOutput{
			PermissionDecision:       d.Kind.String(),
			PermissionDecisionReason: d.Reason,
		},
	})
}
