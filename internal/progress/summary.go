package progress

import (
	"skatejournal/internal/models"
)

// Snapshot is everything known about one skater at a point in time.
// It is read-only input to the functions in this package.
type Snapshot struct {
	Profile     *models.Profile
	Entries     []models.JournalEntry
	Sessions    []models.TrainingSession
	Jumps       []models.JumpAttempt
	Goals       []models.Goal
	WeeklyGoals []models.WeeklyGoal
}

// ActivityDays returns the days of every entry, session and jump
func (s Snapshot) ActivityDays() []models.Day {
	return ActivityDays(DaysOf(s.Entries), DaysOf(s.Sessions), DaysOf(s.Jumps))
}

// dated drops records without a valid day. The result shares no slices
// with s.
func (s Snapshot) dated() Snapshot {
	out := s
	out.Entries = keepDated(s.Entries)
	out.Sessions = keepDated(s.Sessions)
	out.Jumps = keepDated(s.Jumps)
	return out
}

func keepDated[T Dated](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !r.ActivityDay().IsZero() {
			out = append(out, r)
		}
	}
	return out
}

// WeeklyGoalFor returns the weekly goal covering day, if any
func (s Snapshot) WeeklyGoalFor(day models.Day) (models.WeeklyGoal, bool) {
	start := day.WeekStart()
	for _, g := range s.WeeklyGoals {
		if g.WeekStart == start {
			return g, true
		}
	}
	return models.WeeklyGoal{}, false
}

// GoalSummary aggregates goals of one timeframe
type GoalSummary struct {
	Timeframe       models.GoalTimeframe `json:"timeframe"`
	Total           int                  `json:"total"`
	Completed       int                  `json:"completed"`
	CompletionRate  int                  `json:"completionRate"`
	AverageProgress float64              `json:"averageProgress"`
}

// GoalCompletion summarizes goals per timeframe, in timeframe order.
// Timeframes without goals are omitted.
func GoalCompletion(goals []models.Goal) []GoalSummary {
	byFrame := make(map[models.GoalTimeframe]*GoalSummary)
	progressSum := make(map[models.GoalTimeframe]int)
	for _, g := range goals {
		sum, ok := byFrame[g.Timeframe]
		if !ok {
			sum = &GoalSummary{Timeframe: g.Timeframe}
			byFrame[g.Timeframe] = sum
		}
		sum.Total++
		if g.Completed {
			sum.Completed++
		}
		p := g.Progress
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		progressSum[g.Timeframe] += p
	}

	var out []GoalSummary
	for _, tf := range models.GoalTimeframes {
		sum, ok := byFrame[tf]
		if !ok {
			continue
		}
		sum.CompletionRate = SuccessRate(sum.Completed, sum.Total)
		sum.AverageProgress = float64(progressSum[tf]) / float64(sum.Total)
		out = append(out, *sum)
	}
	return out
}

// Ratings holds average journal ratings; nil fields had no ratings
type Ratings struct {
	EmotionalState  *float64 `json:"emotionalState"`
	ConfidenceLevel *float64 `json:"confidenceLevel"`
	FocusLevel      *float64 `json:"focusLevel"`
}

// AverageRatings averages the optional 1-10 ratings of entries in w
func AverageRatings(entries []models.JournalEntry, w Window) Ratings {
	var emo, conf, focus []int
	for _, e := range Filter(entries, w) {
		if e.EmotionalState != nil {
			emo = append(emo, *e.EmotionalState)
		}
		if e.ConfidenceLevel != nil {
			conf = append(conf, *e.ConfidenceLevel)
		}
		if e.FocusLevel != nil {
			focus = append(focus, *e.FocusLevel)
		}
	}
	return Ratings{
		EmotionalState:  mean(emo),
		ConfidenceLevel: mean(conf),
		FocusLevel:      mean(focus),
	}
}

func mean(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	total := 0
	for _, v := range values {
		total += v
	}
	m := float64(total) / float64(len(values))
	return &m
}

// Totals counts all-time records
type Totals struct {
	JournalEntries   int     `json:"journalEntries"`
	TrainingSessions int     `json:"trainingSessions"`
	TrainingHours    float64 `json:"trainingHours"`
	JumpAttempts     int     `json:"jumpAttempts"`
	JumpsLanded      int     `json:"jumpsLanded"`
	ActiveDays       int     `json:"activeDays"`
}

// Summary is the dashboard view of a snapshot
type Summary struct {
	Today         models.Day      `json:"today"`
	CurrentStreak int             `json:"currentStreak"`
	LongestStreak int             `json:"longestStreak"`
	Totals        Totals          `json:"totals"`
	Weekly        PeriodSummary   `json:"weekly"`
	Monthly       PeriodSummary   `json:"monthly"`
	WeeklyGoal    *WeeklyProgress `json:"weeklyGoal,omitempty"`
	Jumps         []JumpStats     `json:"jumps"`
	Goals         []GoalSummary   `json:"goals"`
	WeeklyRatings Ratings         `json:"weeklyRatings"`
}

// PeriodSummary compares the main training metrics across two periods
type PeriodSummary struct {
	TrainingMinutes Comparison `json:"trainingMinutes"`
	Sessions        Comparison `json:"sessions"`
	JournalEntries  Comparison `json:"journalEntries"`
	JumpAttempts    Comparison `json:"jumpAttempts"`
	LandingRate     Comparison `json:"landingRate"`
}

// ComparePeriod evaluates the dashboard metrics for the period holding today
func ComparePeriod(s Snapshot, today models.Day, kind PeriodKind) PeriodSummary {
	return PeriodSummary{
		TrainingMinutes: Compare(s.Sessions, TrainingMinutes, today, kind),
		Sessions:        Compare(s.Sessions, Count[models.TrainingSession], today, kind),
		JournalEntries:  Compare(s.Entries, Count[models.JournalEntry], today, kind),
		JumpAttempts:    Compare(s.Jumps, Count[models.JumpAttempt], today, kind),
		LandingRate:     Compare(s.Jumps, LandingRate, today, kind),
	}
}

// Summarize builds the dashboard summary for today
func Summarize(s Snapshot, today models.Day) Summary {
	s = s.dated()
	days := s.ActivityDays()

	totals := Totals{
		JournalEntries:   len(s.Entries),
		TrainingSessions: len(s.Sessions),
		TrainingHours:    TrainingMinutes(s.Sessions) / 60,
		JumpAttempts:     len(s.Jumps),
		ActiveDays:       len(uniqueDays(days)),
	}
	for _, j := range s.Jumps {
		if j.Landed {
			totals.JumpsLanded++
		}
	}

	summary := Summary{
		Today:         today,
		CurrentStreak: Streak(today, days),
		LongestStreak: LongestStreak(days),
		Totals:        totals,
		Weekly:        ComparePeriod(s, today, PeriodWeek),
		Monthly:       ComparePeriod(s, today, PeriodMonth),
		Jumps:         JumpStatistics(s.Jumps),
		Goals:         GoalCompletion(s.Goals),
		WeeklyRatings: AverageRatings(s.Entries, WindowFor(today, PeriodWeek)),
	}
	if goal, ok := s.WeeklyGoalFor(today); ok {
		wp := WeeklyGoalProgress(goal, s.Sessions, s.Jumps)
		summary.WeeklyGoal = &wp
	}
	return summary
}
