package backend

import (
	"bytes"
	"encoding/json"
)

// listWrapperKeys is the fixed precedence order for unwrapping list-shaped
// responses; the backend's wrapping convention is not standardized across
// endpoints, so the first present, non-null key wins.
var listWrapperKeys = [...]string{"data", "items", "result"}

// NormalizeList coerces the wrapper shapes the backend uses for list
// resources into a single JSON array. A bare array passes through unchanged;
// an object yields its data, items, or result field (in that order); anything
// else yields an empty array. Total and idempotent.
func NormalizeList(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("[]")
	}
	if trimmed[0] == '[' {
		return trimmed
	}
	if trimmed[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err == nil {
			for _, key := range listWrapperKeys {
				if v, ok := wrapper[key]; ok && !isJSONNull(v) {
					return v
				}
			}
		}
	}
	return json.RawMessage("[]")
}

// DecodeList normalizes raw and decodes the result into typed items. Unknown
// fields on items are ignored, preserving forward tolerance.
func DecodeList[T any](raw json.RawMessage) ([]T, error) {
	var items []T
	if err := json.Unmarshal(NormalizeList(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// extractField returns the named field of a JSON object, or fallback when the
// value is not an object or the field is absent/null.
func extractField(raw json.RawMessage, name string, fallback json.RawMessage) json.RawMessage {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return fallback
	}
	if v, ok := wrapper[name]; ok && !isJSONNull(v) {
		return v
	}
	return fallback
}

func isJSONNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
