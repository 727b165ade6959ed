package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skatejournal/internal/models"
)

func days(values ...string) []models.Day {
	out := make([]models.Day, len(values))
	for i, v := range values {
		out[i] = models.MustParseDay(v)
	}
	return out
}

func TestStreak(t *testing.T) {
	today := models.MustParseDay("2024-06-10")

	tests := []struct {
		name string
		days []models.Day
		want int
	}{
		{name: "empty", days: nil, want: 0},
		{name: "today only", days: days("2024-06-10"), want: 1},
		{name: "yesterday only is still connected", days: days("2024-06-09"), want: 1},
		{name: "two days ago is broken", days: days("2024-06-08"), want: 0},
		{name: "same day many times", days: days("2024-06-10", "2024-06-10", "2024-06-10"), want: 1},
		{name: "breaks at gap", days: days("2024-06-10", "2024-06-09", "2024-06-08", "2024-06-06"), want: 3},
		{name: "unordered input", days: days("2024-06-08", "2024-06-10", "2024-06-09"), want: 3},
		{name: "run ending yesterday", days: days("2024-06-09", "2024-06-08", "2024-06-07", "2024-06-01"), want: 3},
		{name: "gap of two days resets", days: days("2024-06-10", "2024-06-07", "2024-06-06", "2024-06-05"), want: 1},
		{name: "future days ignored", days: days("2024-06-12", "2024-06-10", "2024-06-09"), want: 2},
		{name: "zero days skipped", days: []models.Day{0, models.MustParseDay("2024-06-10"), 0}, want: 1},
		{name: "across month boundary", days: days("2024-06-02", "2024-06-01", "2024-05-31"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(today, tt.days))
		})
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	today := models.MustParseDay("2024-03-01")
	got := Streak(today, days("2024-03-01", "2024-02-29", "2024-02-28", "2024-02-26"))
	assert.Equal(t, 3, got)
}

func TestStreakNonIncreasingAsGapGrows(t *testing.T) {
	today := models.MustParseDay("2024-06-10")
	history := days("2024-05-20", "2024-05-21", "2024-05-22")

	prev := -1
	for gap := 0; gap < 10; gap++ {
		latest := today.AddDays(-gap)
		input := append(append([]models.Day{}, history...), latest, latest.AddDays(-1))
		got := Streak(today, input)
		assert.GreaterOrEqual(t, got, 0)
		if prev >= 0 {
			assert.LessOrEqual(t, got, prev, "gap %d", gap)
		}
		prev = got
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []models.Day
		want int
	}{
		{name: "empty", days: nil, want: 0},
		{name: "single", days: days("2024-01-01"), want: 1},
		{name: "older run is longer", days: days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10", "2024-01-11"), want: 3},
		{name: "duplicates count once", days: days("2024-01-01", "2024-01-01", "2024-01-02"), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(tt.days))
		})
	}
}

func TestActivityDaysMergesAndSkipsMissingDates(t *testing.T) {
	entries := []models.JournalEntry{{Date: models.MustParseDay("2024-06-10")}, {}}
	sessions := []models.TrainingSession{{Date: models.MustParseDay("2024-06-09")}}
	jumps := []models.JumpAttempt{{Date: models.MustParseDay("2024-06-10")}}

	got := ActivityDays(DaysOf(entries), DaysOf(sessions), DaysOf(jumps))
	assert.Len(t, got, 3)
	assert.Equal(t, 2, Streak(models.MustParseDay("2024-06-10"), got))
}
