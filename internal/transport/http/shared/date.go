package shared

import (
	"net/http"

	"hrdash/internal/domain/calendar"
)

// ParseDate reads an optional YYYY-MM-DD query parameter. Missing yields the zero Date.
func ParseDate(r *http.Request, param string) (calendar.Date, error) {
	value := r.URL.Query().Get(param)
	if value == "" {
		return calendar.Date{}, nil
	}
	return calendar.Parse(value)
}
