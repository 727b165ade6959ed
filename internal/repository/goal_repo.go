package repository

import (
	"database/sql"
	"fmt"

	"skatejournal/internal/database"
	"skatejournal/internal/models"
)

const goalColumns = `id, owner_id, title, description, timeframe, category, progress, completed,
	target_date, created_at, updated_at`

// GoalRepository handles goal database operations
type GoalRepository struct {
	db database.DBTX
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db database.DBTX) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create inserts a goal
func (r *GoalRepository) Create(g *models.Goal) error {
	if g.ID == "" {
		g.ID = newID()
	}
	ts := now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = ts
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = g.CreatedAt
	}

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		g.ID, g.OwnerID, g.Title, g.Description, string(g.Timeframe), g.Category, g.Progress, g.Completed,
		g.TargetDate, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves one of the owner's goals. Stored rows are returned as
// read, even when progress and completion disagree.
func (r *GoalRepository) GetByID(ownerID, id string) (*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE owner_id = ? AND id = ?`
	g, err := scanGoal(r.db.QueryRow(query, ownerID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return g, nil
}

// ListByOwner returns the owner's goals, oldest first
func (r *GoalRepository) ListByOwner(ownerID string) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE owner_id = ? ORDER BY created_at ASC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

// UpdateProgress writes the goal's progress and completion flag
func (r *GoalRepository) UpdateProgress(g *models.Goal) error {
	g.UpdatedAt = now()
	query := `UPDATE goals SET progress = ?, completed = ?, updated_at = ? WHERE owner_id = ? AND id = ?`
	if _, err := r.db.Exec(query, g.Progress, g.Completed, g.UpdatedAt, g.OwnerID, g.ID); err != nil {
		return fmt.Errorf("failed to update goal progress: %w", err)
	}
	return nil
}

// Delete removes one of the owner's goals
func (r *GoalRepository) Delete(ownerID, id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM goals WHERE owner_id = ? AND id = ?", ownerID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete goal: %w", err)
	}
	return deleted(result)
}

func scanGoal(row rowScanner) (*models.Goal, error) {
	var g models.Goal
	var timeframe string
	err := row.Scan(
		&g.ID, &g.OwnerID, &g.Title, &g.Description, &timeframe, &g.Category, &g.Progress, &g.Completed,
		&g.TargetDate, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Timeframe = models.GoalTimeframe(timeframe)
	return &g, nil
}
