// Package progress derives training statistics from a skater's records.
// Every function is pure: callers pass in the records and "today".
package progress

import (
	"sort"

	"skatejournal/internal/models"
)

// Dated is any record that happened on a calendar day
type Dated interface {
	ActivityDay() models.Day
}

// ActivityDays collects the valid days of any number of record lists.
// Records with a missing or unparseable date are skipped.
func ActivityDays(lists ...[]models.Day) []models.Day {
	var out []models.Day
	for _, list := range lists {
		for _, d := range list {
			if !d.IsZero() {
				out = append(out, d)
			}
		}
	}
	return out
}

// DaysOf extracts the activity days of records
func DaysOf[T Dated](records []T) []models.Day {
	days := make([]models.Day, 0, len(records))
	for _, r := range records {
		days = append(days, r.ActivityDay())
	}
	return days
}

// uniqueDays returns the distinct valid days sorted newest first
func uniqueDays(days []models.Day) []models.Day {
	seen := make(map[models.Day]struct{}, len(days))
	out := make([]models.Day, 0, len(days))
	for _, d := range days {
		if d.IsZero() {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Streak counts consecutive days with activity ending today. A streak
// whose latest day is yesterday is still alive: the skater has until the
// end of today to extend it. Days after today are ignored.
func Streak(today models.Day, days []models.Day) int {
	distinct := uniqueDays(days)

	i := 0
	for i < len(distinct) && distinct[i] > today {
		i++
	}
	if i == len(distinct) {
		return 0
	}

	expected := today
	if distinct[i] != today {
		expected = today.AddDays(-1)
		if distinct[i] != expected {
			return 0
		}
	}

	streak := 0
	for ; i < len(distinct); i++ {
		if distinct[i] != expected {
			break
		}
		streak++
		expected = expected.AddDays(-1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive active days
func LongestStreak(days []models.Day) int {
	distinct := uniqueDays(days)
	longest, run := 0, 0
	for i, d := range distinct {
		if i > 0 && distinct[i-1].Sub(d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
