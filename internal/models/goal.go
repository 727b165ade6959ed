package models

import "time"

// GoalTimeframe is the horizon of a goal
type GoalTimeframe string

const (
	TimeframeWeekly  GoalTimeframe = "weekly"
	TimeframeMonthly GoalTimeframe = "monthly"
	TimeframeSeason  GoalTimeframe = "season"
)

// GoalTimeframes lists timeframes from shortest to longest
var GoalTimeframes = []GoalTimeframe{TimeframeWeekly, TimeframeMonthly, TimeframeSeason}

// Valid reports whether t is a known timeframe
func (t GoalTimeframe) Valid() bool {
	return t == TimeframeWeekly || t == TimeframeMonthly || t == TimeframeSeason
}

// Goal is a free-form skater goal with a manual progress slider.
//
// Completed should be true exactly when Progress is 100. SetProgress and
// SetCompleted keep that rule; rows written by older clients may still
// disagree and are returned as stored.
type Goal struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"ownerId"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Timeframe   GoalTimeframe `json:"timeframe"`
	Category    string        `json:"category"`
	Progress    int           `json:"progress"`
	Completed   bool          `json:"completed"`
	TargetDate  Day           `json:"targetDate,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// SetProgress clamps p to [0,100] and derives Completed from it
func (g *Goal) SetProgress(p int) {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	g.Progress = p
	g.Completed = p == 100
}

// SetCompleted marks the goal done (progress 100) or reopens it.
// Reopening a goal at 100% resets its progress to 0.
func (g *Goal) SetCompleted(done bool) {
	if done {
		g.SetProgress(100)
		return
	}
	g.Completed = false
	if g.Progress >= 100 {
		g.Progress = 0
	}
}

// IsConsistent reports whether Completed agrees with Progress
func (g Goal) IsConsistent() bool {
	return g.Completed == (g.Progress == 100)
}

// JumpTarget is a weekly attempt/landing target for one jump and level
type JumpTarget struct {
	JumpType       JumpType  `json:"jumpType"`
	Level          JumpLevel `json:"level"`
	TargetAttempts int       `json:"targetAttempts"`
	TargetLanded   int       `json:"targetLanded"`
}

// WeeklyGoal holds the training targets for one ISO week.
// There is at most one per owner and WeekStart, which is always a Monday.
type WeeklyGoal struct {
	ID                   string       `json:"id"`
	OwnerID              string       `json:"ownerId"`
	WeekStart            Day          `json:"weekStart"`
	OnIceHoursTarget     float64      `json:"onIceHoursTarget"`
	OffIceSessionsTarget int          `json:"offIceSessionsTarget"`
	JumpTargets          []JumpTarget `json:"jumpTargets"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// WeekEnd returns the Sunday closing the goal's week
func (w WeeklyGoal) WeekEnd() Day {
	return w.WeekStart.AddDays(6)
}
