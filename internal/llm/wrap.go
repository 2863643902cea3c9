package llm

import (
	"encoding/json"
	"fmt"
)

// wrappedItemsKey names the property that carries an array payload when
// the root of a schema has to be an object.
const wrappedItemsKey = "items"

// isArraySchema reports whether the schema root is an array.
func isArraySchema(s *Schema) bool {
	if s == nil {
		return false
	}
	t, _ := s.Definition["type"].(string)
	return t == "array"
}

// objectRootSchema returns a copy of s whose root is an object holding
// the original array under wrappedItemsKey. OpenAI strict mode and
// Anthropic JSON output only accept object roots.
func objectRootSchema(s *Schema) *Schema {
	return &Schema{
		Name:        s.Name,
		Description: s.Description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				wrappedItemsKey: s.Definition,
			},
			"required":             []any{wrappedItemsKey},
			"additionalProperties": false,
		},
	}
}

// unwrapItems extracts the array from a response produced against an
// objectRootSchema. A bare array is passed through unchanged.
func unwrapItems(raw json.RawMessage) (json.RawMessage, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if _, ok := probe.([]any); ok {
		return raw, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("expected object wrapper: %w", err)}
	}
	items, ok := wrapper[wrappedItemsKey]
	if !ok {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("missing %q in wrapped response", wrappedItemsKey)}
	}
	return items, nil
}
