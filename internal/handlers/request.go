package handlers

import (
	"net/http"
	"strings"

	"skatejournal/internal/models"
	"skatejournal/internal/validation"
)

// dayParam reads an optional YYYY-MM-DD query parameter. Absent means zero.
func dayParam(r *http.Request, name string) (models.Day, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	d, err := models.ParseDay(raw)
	if err != nil {
		return 0, validation.ValidationError{Field: name, Message: ErrInvalidDate}
	}
	return d, nil
}

// dayRange reads the optional from/to query parameters
func dayRange(r *http.Request) (models.Day, models.Day, error) {
	from, err := dayParam(r, "from")
	if err != nil {
		return 0, 0, err
	}
	to, err := dayParam(r, "to")
	if err != nil {
		return 0, 0, err
	}
	if !from.IsZero() && !to.IsZero() && to < from {
		return 0, 0, validation.ValidationError{Field: "to", Message: "must not be before from"}
	}
	return from, to, nil
}
