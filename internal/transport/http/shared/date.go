package shared

import (
	"fmt"
	"time"
)

// dateLayouts are the wire formats accepted for accounting record dates,
// matching the formats the task timeline already tolerates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a request date field. Empty means "not provided" and
// yields the zero time without error so optional fields stay optional.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, want RFC3339 or YYYY-MM-DD", value)
}
