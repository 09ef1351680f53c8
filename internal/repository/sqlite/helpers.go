package sqlite

import (
	"encoding/json"
	"fmt"
)

// Helper functions shared across repository implementations

// marshalJSON encodes a value for storage in a TEXT column.
func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal json column: %w", err)
	}
	return string(b), nil
}

// unmarshalJSON decodes a TEXT column into dst, treating the empty string as
// an absent value.
func unmarshalJSON(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	return nil
}
