package progress

import (
	"fmt"

	"skatejournal/internal/models"
)

// PeriodKind selects the length of a comparison window
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// ParsePeriodKind validates a period name from a request
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch PeriodKind(s) {
	case PeriodWeek, PeriodMonth:
		return PeriodKind(s), nil
	case "":
		return PeriodWeek, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Window is an inclusive range of calendar days
type Window struct {
	Start models.Day `json:"start"`
	End   models.Day `json:"end"`
}

// Contains reports whether d falls inside the window
func (w Window) Contains(d models.Day) bool {
	return !d.IsZero() && d >= w.Start && d <= w.End
}

// Days returns the number of days in the window
func (w Window) Days() int {
	return w.End.Sub(w.Start) + 1
}

// WindowFor returns the week (Monday to Sunday) or calendar month holding anchor
func WindowFor(anchor models.Day, kind PeriodKind) Window {
	if kind == PeriodMonth {
		return Window{Start: anchor.MonthStart(), End: anchor.MonthEnd()}
	}
	start := anchor.WeekStart()
	return Window{Start: start, End: start.AddDays(6)}
}

// PreviousWindow returns the period immediately before the one holding anchor
func PreviousWindow(anchor models.Day, kind PeriodKind) Window {
	if kind == PeriodMonth {
		return WindowFor(anchor.MonthStart().AddDays(-1), PeriodMonth)
	}
	return WindowFor(anchor.WeekStart().AddDays(-7), PeriodWeek)
}

// Filter returns the records dated inside w, in their original order
func Filter[T Dated](records []T, w Window) []T {
	var out []T
	for _, r := range records {
		if w.Contains(r.ActivityDay()) {
			out = append(out, r)
		}
	}
	return out
}

// Metric reduces a set of records to a single number
type Metric[T Dated] func(records []T) float64

// Comparison is a metric's value in the current and previous period.
// PercentChange is nil when both periods are zero.
type Comparison struct {
	Period        PeriodKind `json:"period"`
	Current       float64    `json:"current"`
	Previous      float64    `json:"previous"`
	PercentChange *float64   `json:"percentChange"`
	CurrentRange  Window     `json:"currentRange"`
	PreviousRange Window     `json:"previousRange"`
}

// Compare evaluates metric over the period holding anchor and the one before it
func Compare[T Dated](records []T, metric Metric[T], anchor models.Day, kind PeriodKind) Comparison {
	cur := WindowFor(anchor, kind)
	prev := PreviousWindow(anchor, kind)
	current := metric(Filter(records, cur))
	previous := metric(Filter(records, prev))
	return Comparison{
		Period:        kind,
		Current:       current,
		Previous:      previous,
		PercentChange: PercentChange(current, previous),
		CurrentRange:  cur,
		PreviousRange: prev,
	}
}

// PercentChange returns the change from previous to current in percent.
// Growth from zero saturates at +100 and two zero periods return nil
// ("no change"). Rounding is left to whoever displays the value.
func PercentChange(current, previous float64) *float64 {
	var pct float64
	switch {
	case previous == 0 && current == 0:
		return nil
	case previous == 0:
		pct = 100
	default:
		pct = (current - previous) / previous * 100
	}
	return &pct
}

// Count counts records
func Count[T Dated](records []T) float64 {
	return float64(len(records))
}

// TrainingMinutes sums session durations
func TrainingMinutes(sessions []models.TrainingSession) float64 {
	total := 0
	for _, s := range sessions {
		if s.TotalDurationMinutes > 0 {
			total += s.TotalDurationMinutes
		}
	}
	return float64(total)
}

// OnIceHours sums on-ice session time in hours
func OnIceHours(sessions []models.TrainingSession) float64 {
	minutes := 0
	for _, s := range sessions {
		if s.Type == models.SessionOnIce && s.TotalDurationMinutes > 0 {
			minutes += s.TotalDurationMinutes
		}
	}
	return float64(minutes) / 60
}

// LandingRate is the percentage of attempts landed, 0 without attempts
func LandingRate(jumps []models.JumpAttempt) float64 {
	landed := 0
	for _, j := range jumps {
		if j.Landed {
			landed++
		}
	}
	return float64(SuccessRate(landed, len(jumps)))
}
