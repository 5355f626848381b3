package shared

import (
	"net/http"
	"strconv"
)

// ParsePage reads a 1-based page query parameter, defaulting to 1.
func ParsePage(r *http.Request) int {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	return page
}
