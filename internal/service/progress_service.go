package service

import (
	"fmt"
	"time"

	"skatejournal/internal/models"
	"skatejournal/internal/progress"
	"skatejournal/internal/repository"
	"skatejournal/internal/validation"
)

// Comparable metrics for ProgressService.Compare
const (
	MetricTrainingMinutes = "trainingMinutes"
	MetricOnIceHours      = "onIceHours"
	MetricSessions        = "sessions"
	MetricJournalEntries  = "journalEntries"
	MetricJumpAttempts    = "jumpAttempts"
	MetricLandingRate     = "landingRate"
)

// StreakResult is the current and best run of consecutive active days
type StreakResult struct {
	Today   models.Day `json:"today"`
	Current int        `json:"current"`
	Longest int        `json:"longest"`
}

// ProgressService loads an owner's snapshot and runs the progress
// aggregations on it. "Today" is the clock's date in the owner's time zone.
type ProgressService struct {
	profiles *repository.ProfileRepository
	journal  *repository.JournalRepository
	training *repository.TrainingRepository
	jumps    *repository.JumpRepository
	goals    *repository.GoalRepository
	weekly   *repository.WeeklyGoalRepository
	now      func() time.Time
}

// NewProgressService creates a new progress service using the wall clock
func NewProgressService(
	profiles *repository.ProfileRepository,
	journal *repository.JournalRepository,
	training *repository.TrainingRepository,
	jumps *repository.JumpRepository,
	goals *repository.GoalRepository,
	weekly *repository.WeeklyGoalRepository,
) *ProgressService {
	return &ProgressService{
		profiles: profiles,
		journal:  journal,
		training: training,
		jumps:    jumps,
		goals:    goals,
		weekly:   weekly,
		now:      time.Now,
	}
}

// SetClock replaces the service's clock
func (s *ProgressService) SetClock(now func() time.Time) {
	s.now = now
}

// Snapshot loads everything recorded by the owner
func (s *ProgressService) Snapshot(ownerID string) (progress.Snapshot, error) {
	var snap progress.Snapshot
	var err error

	if snap.Profile, err = s.profiles.Get(ownerID); err != nil {
		return snap, err
	}
	if snap.Profile == nil {
		snap.Profile = &models.Profile{OwnerID: ownerID}
	}
	if snap.Entries, err = s.journal.ListByOwner(ownerID, 0, 0); err != nil {
		return snap, err
	}
	if snap.Sessions, err = s.training.ListByOwner(ownerID, 0, 0); err != nil {
		return snap, err
	}
	if snap.Jumps, err = s.jumps.ListByOwner(ownerID, 0, 0); err != nil {
		return snap, err
	}
	if snap.Goals, err = s.goals.ListByOwner(ownerID); err != nil {
		return snap, err
	}
	if snap.WeeklyGoals, err = s.weekly.ListByOwner(ownerID); err != nil {
		return snap, err
	}
	return snap, nil
}

// Today returns the current day in the profile's time zone
func (s *ProgressService) Today(p *models.Profile) models.Day {
	return models.Today(s.now(), p.Location())
}

// Summary builds the owner's dashboard summary
func (s *ProgressService) Summary(ownerID string) (progress.Summary, error) {
	snap, err := s.Snapshot(ownerID)
	if err != nil {
		return progress.Summary{}, err
	}
	return progress.Summarize(snap, s.Today(snap.Profile)), nil
}

// Streak returns the owner's current and longest activity streaks
func (s *ProgressService) Streak(ownerID string) (StreakResult, error) {
	snap, err := s.Snapshot(ownerID)
	if err != nil {
		return StreakResult{}, err
	}
	today := s.Today(snap.Profile)
	days := snap.ActivityDays()
	return StreakResult{
		Today:   today,
		Current: progress.Streak(today, days),
		Longest: progress.LongestStreak(days),
	}, nil
}

// Compare evaluates metric for the current period against the previous one
func (s *ProgressService) Compare(ownerID, metric string, kind progress.PeriodKind) (progress.Comparison, error) {
	snap, err := s.Snapshot(ownerID)
	if err != nil {
		return progress.Comparison{}, err
	}
	today := s.Today(snap.Profile)

	switch metric {
	case MetricTrainingMinutes, "":
		return progress.Compare(snap.Sessions, progress.TrainingMinutes, today, kind), nil
	case MetricOnIceHours:
		return progress.Compare(snap.Sessions, progress.OnIceHours, today, kind), nil
	case MetricSessions:
		return progress.Compare(snap.Sessions, progress.Count[models.TrainingSession], today, kind), nil
	case MetricJournalEntries:
		return progress.Compare(snap.Entries, progress.Count[models.JournalEntry], today, kind), nil
	case MetricJumpAttempts:
		return progress.Compare(snap.Jumps, progress.Count[models.JumpAttempt], today, kind), nil
	case MetricLandingRate:
		return progress.Compare(snap.Jumps, progress.LandingRate, today, kind), nil
	default:
		return progress.Comparison{}, validation.ValidationError{Field: "metric", Message: fmt.Sprintf("unknown metric %q", metric)}
	}
}

// WeeklyGoalProgress measures the owner's week holding day against its
// weekly goal. A zero day means today.
func (s *ProgressService) WeeklyGoalProgress(ownerID string, day models.Day) (*progress.WeeklyProgress, error) {
	snap, err := s.Snapshot(ownerID)
	if err != nil {
		return nil, err
	}
	if day.IsZero() {
		day = s.Today(snap.Profile)
	}
	goal, ok := snap.WeeklyGoalFor(day)
	if !ok {
		return nil, fmt.Errorf("weekly goal for %s: %w", day, ErrNotFound)
	}
	wp := progress.WeeklyGoalProgress(goal, snap.Sessions, snap.Jumps)
	return &wp, nil
}

// JumpStatistics aggregates the owner's jump attempts between from and to
func (s *ProgressService) JumpStatistics(ownerID string, from, to models.Day) ([]progress.JumpStats, error) {
	attempts, err := s.jumps.ListByOwner(ownerID, from, to)
	if err != nil {
		return nil, err
	}
	return progress.JumpStatistics(attempts), nil
}
