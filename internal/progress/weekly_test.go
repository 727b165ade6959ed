package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skatejournal/internal/models"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{name: "zero target", current: 3.5, target: 0, want: 0},
		{name: "negative target", current: 3, target: -1, want: 0},
		{name: "half way", current: 2, target: 4, want: 50},
		{name: "capped", current: 9, target: 4, want: 100},
		{name: "nothing done", current: 0, target: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProgressPercent(tt.current, tt.target), 1e-9)
		})
	}
}

func TestWeeklyGoalProgress(t *testing.T) {
	goal := models.WeeklyGoal{
		WeekStart:            models.MustParseDay("2024-06-10"),
		OnIceHoursTarget:     4,
		OffIceSessionsTarget: 2,
		JumpTargets: []models.JumpTarget{
			{JumpType: models.JumpAxel, Level: models.LevelDouble, TargetAttempts: 10, TargetLanded: 1},
			{JumpType: models.JumpLutz, Level: models.LevelTriple, TargetAttempts: 5, TargetLanded: 2},
		},
	}
	sessions := []models.TrainingSession{
		{Date: models.MustParseDay("2024-06-10"), Type: models.SessionOnIce, TotalDurationMinutes: 90},
		{Date: models.MustParseDay("2024-06-12"), Type: models.SessionOnIce, TotalDurationMinutes: 60},
		{Date: models.MustParseDay("2024-06-13"), Type: models.SessionOffIce, TotalDurationMinutes: 45},
		{Date: models.MustParseDay("2024-06-09"), Type: models.SessionOffIce, TotalDurationMinutes: 45},
		{Date: models.MustParseDay("2024-06-17"), Type: models.SessionOnIce, TotalDurationMinutes: 600},
	}
	jumps := []models.JumpAttempt{
		{Date: models.MustParseDay("2024-06-11"), JumpType: models.JumpAxel, Level: models.LevelDouble, Landed: true, Quality: 4},
		{Date: models.MustParseDay("2024-06-11"), JumpType: models.JumpAxel, Level: models.LevelDouble, Landed: true, Quality: 3},
		{Date: models.MustParseDay("2024-06-11"), JumpType: models.JumpAxel, Level: models.LevelSingle, Landed: true, Quality: 5},
		{Date: models.MustParseDay("2024-06-03"), JumpType: models.JumpAxel, Level: models.LevelDouble, Landed: true, Quality: 5},
	}

	got := WeeklyGoalProgress(goal, sessions, jumps)

	assert.Equal(t, "2024-06-16", got.Week.End.String())
	assert.InDelta(t, 2.5, got.OnIceHours.Current, 1e-9)
	assert.InDelta(t, 62.5, got.OnIceHours.Percent, 1e-9)
	assert.Equal(t, 1.0, got.OffIceSessions.Current)
	assert.Equal(t, 50.0, got.OffIceSessions.Percent)

	require.Len(t, got.Jumps, 2)
	axel := got.Jumps[0]
	assert.Equal(t, 2.0, axel.Attempted.Current)
	assert.Equal(t, 20.0, axel.Attempted.Percent)
	assert.Equal(t, 2.0, axel.Landed.Current)
	assert.Equal(t, 100.0, axel.Landed.Percent, "landings over target while attempts are under")

	lutz := got.Jumps[1]
	assert.Zero(t, lutz.Attempted.Current)
	assert.Zero(t, lutz.Landed.Percent)
}

func TestWeeklyGoalProgressZeroTargets(t *testing.T) {
	goal := models.WeeklyGoal{WeekStart: models.MustParseDay("2024-06-10")}
	sessions := []models.TrainingSession{
		{Date: models.MustParseDay("2024-06-11"), Type: models.SessionOnIce, TotalDurationMinutes: 210},
	}

	got := WeeklyGoalProgress(goal, sessions, nil)

	assert.InDelta(t, 3.5, got.OnIceHours.Current, 1e-9)
	assert.Zero(t, got.OnIceHours.Percent)
	assert.Zero(t, got.OffIceSessions.Percent)
	assert.Empty(t, got.Jumps)
}
