package hooks

// primaryContentFields maps a tool name to the argument field its permission
// rules are matched against.
var primaryContentFields = map[string]string{
	"Bash":      "command",
	"Edit":      "file_path",
	"Write":     "file_path",
	"Read":      "file_path",
	"WebFetch":  "url",
	"Grep":      "pattern",
	"Glob":      "pattern",
	"WebSearch": "query",
}

// fallbackContentFields is probed in order for tools without a fixed mapping.
var fallbackContentFields = []string{"command", "file_path", "url", "pattern"}

// PrimaryContent selects the single argument string that content patterns are
// evaluated against. ok is false when the input carries no applicable field;
// a rule's content pattern never matches such an invocation.
func PrimaryContent(input *ToolInput) (content string, ok bool) {
	if field, known := primaryContentFields[input.ToolName]; known {
		return input.GetStringArg(field)
	}

	for _, field := range fallbackContentFields {
		if value, present := input.GetStringArg(field); present {
			return value, true
		}
	}
	return "", false
}
