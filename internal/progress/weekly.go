package progress

import (
	"math"

	"skatejournal/internal/models"
)

// ProgressPercent returns min(100, 100*current/target). A target of zero
// or less yields 0 whatever the current value.
func ProgressPercent(current, target float64) float64 {
	if target <= 0 || current <= 0 {
		return 0
	}
	return math.Min(100, 100*current/target)
}

// TargetProgress is one measured quantity against its weekly target
type TargetProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

func newTargetProgress(current, target float64) TargetProgress {
	return TargetProgress{Current: current, Target: target, Percent: ProgressPercent(current, target)}
}

// JumpTargetProgress reports attempts and landings for one jump target.
// The two are independent: landings may meet their target while attempts
// fall short.
type JumpTargetProgress struct {
	JumpType  models.JumpType  `json:"jumpType"`
	Level     models.JumpLevel `json:"level"`
	Attempted TargetProgress   `json:"attempted"`
	Landed    TargetProgress   `json:"landed"`
}

// WeeklyProgress is the state of a weekly goal
type WeeklyProgress struct {
	Week           Window               `json:"week"`
	OnIceHours     TargetProgress       `json:"onIceHours"`
	OffIceSessions TargetProgress       `json:"offIceSessions"`
	Jumps          []JumpTargetProgress `json:"jumps"`
}

// WeeklyGoalProgress measures the goal's week of sessions and jumps
// against its targets. Records outside the goal's week are ignored.
func WeeklyGoalProgress(goal models.WeeklyGoal, sessions []models.TrainingSession, jumps []models.JumpAttempt) WeeklyProgress {
	week := WindowFor(goal.WeekStart, PeriodWeek)
	weekSessions := Filter(sessions, week)
	weekJumps := Filter(jumps, week)

	offIce := 0
	for _, s := range weekSessions {
		if s.Type == models.SessionOffIce {
			offIce++
		}
	}

	result := WeeklyProgress{
		Week:           week,
		OnIceHours:     newTargetProgress(OnIceHours(weekSessions), goal.OnIceHoursTarget),
		OffIceSessions: newTargetProgress(float64(offIce), float64(goal.OffIceSessionsTarget)),
		Jumps:          make([]JumpTargetProgress, 0, len(goal.JumpTargets)),
	}

	for _, target := range goal.JumpTargets {
		attempted, landed := 0, 0
		for _, j := range weekJumps {
			if j.JumpType != target.JumpType || j.Level != target.Level {
				continue
			}
			attempted++
			if j.Landed {
				landed++
			}
		}
		result.Jumps = append(result.Jumps, JumpTargetProgress{
			JumpType:  target.JumpType,
			Level:     target.Level,
			Attempted: newTargetProgress(float64(attempted), float64(target.TargetAttempts)),
			Landed:    newTargetProgress(float64(landed), float64(target.TargetLanded)),
		})
	}
	return result
}
