package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"skatejournal/internal/models"
)

// newID returns a fresh record id
func newID() string {
	return uuid.NewString()
}

// now returns the current time truncated to what every dialect stores
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// withDayRange narrows a query on column to [from, to]. Zero bounds are open.
func withDayRange(query string, args []interface{}, column string, from, to models.Day) (string, []interface{}) {
	if !from.IsZero() {
		query += " AND " + column + " >= ?"
		args = append(args, from)
	}
	if !to.IsZero() {
		query += " AND " + column + " <= ?"
		args = append(args, to)
	}
	return query, args
}

// encodeJSON renders v for a JSON text column
func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeJSON reads a JSON text column into v. Corrupt values leave v empty.
func decodeJSON(raw string, v interface{}) {
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), v)
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

// deleted reports whether a DELETE matched a row
func deleted(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
