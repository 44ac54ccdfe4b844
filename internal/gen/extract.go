package gen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON value from raw model text. Models occasionally
// wrap JSON in prose or code fences despite instructions; after a failed
// direct parse the span from the first '{' to the last '}' gets exactly one
// more parse attempt. No bracket balancing beyond that.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrMalformed)
	}
	span := raw[start : end+1]
	if !json.Valid([]byte(span)) {
		return nil, fmt.Errorf("%w: bracketed span is not valid JSON", ErrMalformed)
	}
	return json.RawMessage(span), nil
}
