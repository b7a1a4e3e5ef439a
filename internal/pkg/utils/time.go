package utils

import "time"

// StartOfDay returns local midnight for the day containing t.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDate accepts the date formats older clients send: bare dates and full
// RFC3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ParseOptionalDate returns nil for empty input so omitted fields stay unset.
func ParseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return nil
	}
	return &parsed
}
