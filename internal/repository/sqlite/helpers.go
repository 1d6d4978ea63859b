package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Nested sequences (history, to-do lists, video links, plan logs) are stored
// as JSON text columns; the engine only ever reads and writes whole entities.

func marshalColumn(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal column: %w", err)
	}
	return string(b), nil
}

func unmarshalColumn(s sql.NullString, v any) error {
	if !s.Valid || s.String == "" || s.String == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(s.String), v); err != nil {
		return fmt.Errorf("unmarshal column: %w", err)
	}
	return nil
}
