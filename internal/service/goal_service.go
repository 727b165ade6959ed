package service

import (
	"fmt"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/repository"
	"skatejournal/internal/validation"
)

// GoalService handles goals and weekly training targets
type GoalService struct {
	goals  *repository.GoalRepository
	weekly *repository.WeeklyGoalRepository
	log    *logger.Logger
}

// NewGoalService creates a new goal service
func NewGoalService(goals *repository.GoalRepository, weekly *repository.WeeklyGoalRepository, log *logger.Logger) *GoalService {
	return &GoalService{goals: goals, weekly: weekly, log: log}
}

// ListGoals returns the owner's goals
func (s *GoalService) ListGoals(ownerID string) ([]models.Goal, error) {
	return s.goals.ListByOwner(ownerID)
}

// CreateGoal validates and stores a goal. Completion is derived from the
// initial progress.
func (s *GoalService) CreateGoal(ownerID string, g *models.Goal) error {
	g.ID = ""
	g.OwnerID = ownerID
	if err := validation.ValidateGoal(g); err != nil {
		return err
	}
	g.SetProgress(g.Progress)
	return s.goals.Create(g)
}

// SetProgress updates a goal's progress, completing it at 100
func (s *GoalService) SetProgress(ownerID, id string, progress int) (*models.Goal, error) {
	if err := validation.ValidateProgress(progress); err != nil {
		return nil, err
	}
	return s.mutate(ownerID, id, func(g *models.Goal) { g.SetProgress(progress) })
}

// SetCompleted marks a goal done (progress 100) or reopens it
func (s *GoalService) SetCompleted(ownerID, id string, completed bool) (*models.Goal, error) {
	return s.mutate(ownerID, id, func(g *models.Goal) { g.SetCompleted(completed) })
}

func (s *GoalService) mutate(ownerID, id string, apply func(g *models.Goal)) (*models.Goal, error) {
	g, err := s.goals.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	apply(g)
	if err := s.goals.UpdateProgress(g); err != nil {
		return nil, err
	}
	if g.Completed {
		s.log.Info("goal completed", "owner_id", ownerID, "goal_id", id)
	}
	return g, nil
}

// DeleteGoal removes one of the owner's goals
func (s *GoalService) DeleteGoal(ownerID, id string) error {
	return notFoundUnless(s.goals.Delete(ownerID, id))
}

// ListWeeklyGoals returns the owner's weekly goals, latest week first
func (s *GoalService) ListWeeklyGoals(ownerID string) ([]models.WeeklyGoal, error) {
	return s.weekly.ListByOwner(ownerID)
}

// GetWeeklyGoal returns the owner's goal for the week holding day
func (s *GoalService) GetWeeklyGoal(ownerID string, day models.Day) (*models.WeeklyGoal, error) {
	g, err := s.weekly.GetByWeek(ownerID, day.WeekStart())
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("weekly goal for %s: %w", day, ErrNotFound)
	}
	return g, nil
}

// UpsertWeeklyGoal stores the targets for the week holding g.WeekStart,
// replacing any goal already set for that week
func (s *GoalService) UpsertWeeklyGoal(ownerID string, g *models.WeeklyGoal) error {
	g.ID = ""
	g.OwnerID = ownerID
	if err := validation.ValidateWeeklyGoal(g); err != nil {
		return err
	}
	g.WeekStart = g.WeekStart.WeekStart()
	return s.weekly.Upsert(g)
}
