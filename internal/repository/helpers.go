package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// nullableBoolToValue stores an optional flag as NULL, 0 or 1.
func nullableBoolToValue(v *bool) interface{} {
	if v == nil {
		return nil
	}
	return boolToInt(*v)
}

// parseNullableBool is the inverse of nullableBoolToValue.
func parseNullableBool(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := intToBool(int(v.Int64))
	return &b
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// encodeJSON marshals v for a TEXT column.
func encodeJSON(v any, field string) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", field, err)
	}
	return string(raw), nil
}

func decodeJSON(raw string, v any, field string) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decoding %s: %w", field, err)
	}
	return nil
}

func parseTimestamp(s, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

// timestampLayout keeps a fixed fraction width so stored values sort
// chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// nowUTC returns the current UTC time in storage format.
func nowUTC() string {
	return formatTimestamp(time.Now())
}
