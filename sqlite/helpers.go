package sqlite

import (
	"fmt"
	"time"
)

// timeFormat is a fixed-width RFC3339 layout, so stored timestamps sort
// lexically in time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime formats t in UTC with timeFormat.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// parseTime parses a timestamp written by formatTime.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
