package repository

import (
	"database/sql"
	"fmt"

	"skatejournal/internal/database"
	"skatejournal/internal/models"
)

const weeklyGoalColumns = `id, owner_id, week_start, on_ice_hours_target, off_ice_sessions_target,
	jump_targets, created_at, updated_at`

// WeeklyGoalRepository handles weekly goal database operations.
// There is at most one weekly goal per owner and week.
type WeeklyGoalRepository struct {
	db *database.DB
}

// NewWeeklyGoalRepository creates a new weekly goal repository
func NewWeeklyGoalRepository(db *database.DB) *WeeklyGoalRepository {
	return &WeeklyGoalRepository{db: db}
}

// Upsert stores g as the goal for its owner and week, replacing the targets
// of an existing goal for that week. g.WeekStart must already be a Monday.
func (r *WeeklyGoalRepository) Upsert(g *models.WeeklyGoal) error {
	return r.db.WithTx(func(tx *database.Tx) error {
		return r.UpsertTx(tx, g)
	})
}

// UpsertTx is Upsert inside a caller-owned transaction
func (r *WeeklyGoalRepository) UpsertTx(tx *database.Tx, g *models.WeeklyGoal) error {
	if g.JumpTargets == nil {
		g.JumpTargets = []models.JumpTarget{}
	}
	targets, err := encodeJSON(g.JumpTargets)
	if err != nil {
		return fmt.Errorf("failed to encode jump targets: %w", err)
	}
	return upsertWeeklyGoal(tx, g, targets)
}

func upsertWeeklyGoal(tx database.DBTX, g *models.WeeklyGoal, targets string) error {
	ts := now()
	existing, err := getWeeklyGoal(tx, g.OwnerID, g.WeekStart)
	if err != nil {
		return err
	}

	if existing != nil {
		query := `
			UPDATE weekly_goals
			SET on_ice_hours_target = ?, off_ice_sessions_target = ?, jump_targets = ?, updated_at = ?
			WHERE id = ?
		`
		if _, err := tx.Exec(query, g.OnIceHoursTarget, g.OffIceSessionsTarget, targets, ts, existing.ID); err != nil {
			return fmt.Errorf("failed to update weekly goal: %w", err)
		}
		g.ID = existing.ID
		g.CreatedAt = existing.CreatedAt
		g.UpdatedAt = ts
		return nil
	}

	if g.ID == "" {
		g.ID = newID()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = ts
	}
	g.UpdatedAt = ts
	query := `
		INSERT INTO weekly_goals (` + weeklyGoalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query, g.ID, g.OwnerID, g.WeekStart, g.OnIceHoursTarget, g.OffIceSessionsTarget, targets, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create weekly goal: %w", err)
	}
	return nil
}

// GetByWeek returns the owner's goal for the week starting weekStart
func (r *WeeklyGoalRepository) GetByWeek(ownerID string, weekStart models.Day) (*models.WeeklyGoal, error) {
	return getWeeklyGoal(r.db, ownerID, weekStart)
}

func getWeeklyGoal(db database.DBTX, ownerID string, weekStart models.Day) (*models.WeeklyGoal, error) {
	query := `SELECT ` + weeklyGoalColumns + ` FROM weekly_goals WHERE owner_id = ? AND week_start = ?`
	g, err := scanWeeklyGoal(db.QueryRow(query, ownerID, weekStart))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly goal: %w", err)
	}
	return g, nil
}

// ListByOwner returns the owner's weekly goals, most recent week first
func (r *WeeklyGoalRepository) ListByOwner(ownerID string) ([]models.WeeklyGoal, error) {
	return listWeeklyGoals(r.db, ownerID)
}

func listWeeklyGoals(db database.DBTX, ownerID string) ([]models.WeeklyGoal, error) {
	query := `SELECT ` + weeklyGoalColumns + ` FROM weekly_goals WHERE owner_id = ? ORDER BY week_start DESC`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly goals: %w", err)
	}
	defer rows.Close()

	goals := []models.WeeklyGoal{}
	for rows.Next() {
		g, err := scanWeeklyGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly goal: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func scanWeeklyGoal(row rowScanner) (*models.WeeklyGoal, error) {
	var g models.WeeklyGoal
	var targets string
	err := row.Scan(&g.ID, &g.OwnerID, &g.WeekStart, &g.OnIceHoursTarget, &g.OffIceSessionsTarget, &targets, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.JumpTargets = []models.JumpTarget{}
	decodeJSON(targets, &g.JumpTargets)
	return &g, nil
}
