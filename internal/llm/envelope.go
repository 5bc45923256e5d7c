package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tecw/truthengine/internal/model"
)

// StripFences removes surrounding Markdown code-fence markers from a
// provider response. Providers asked for JSON frequently wrap it in
// ```json ... ``` fences; this is a documented parsing step, not a
// string-slicing hack buried in a caller.
func StripFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// A language tag may follow the opening fence on the same line
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "json" || first == "" {
			s = s[idx+1:]
		}
	} else {
		s = strings.TrimPrefix(s, "json")
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseStructuredVerdict parses a provider's structured verification
// reply after fence stripping. Callers fall back to the fixed
// unverified/yellow shape when this fails.
func ParseStructuredVerdict(raw string) (*model.StructuredVerdict, error) {
	cleaned := StripFences(raw)

	var verdict model.StructuredVerdict
	if err := json.Unmarshal([]byte(cleaned), &verdict); err != nil {
		return nil, fmt.Errorf("parse verdict payload: %w", err)
	}

	switch verdict.Status {
	case "true", "false", "unverified":
	default:
		return nil, fmt.Errorf("unknown verdict status %q", verdict.Status)
	}

	if verdict.Color == "" {
		verdict.Color = model.Verdict(strings.ToUpper(verdict.Status)).Color()
	}

	return &verdict, nil
}
