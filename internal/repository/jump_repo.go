package repository

import (
	"database/sql"
	"fmt"

	"skatejournal/internal/database"
	"skatejournal/internal/models"
)

const jumpColumns = `id, owner_id, date, jump_type, level, landed, quality, notes, created_at`

// JumpRepository handles jump attempt database operations
type JumpRepository struct {
	db database.DBTX
}

// NewJumpRepository creates a new jump repository
func NewJumpRepository(db database.DBTX) *JumpRepository {
	return &JumpRepository{db: db}
}

// Create inserts a jump attempt
func (r *JumpRepository) Create(j *models.JumpAttempt) error {
	if j.ID == "" {
		j.ID = newID()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now()
	}

	query := `
		INSERT INTO jump_attempts (` + jumpColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, j.ID, j.OwnerID, j.Date, string(j.JumpType), string(j.Level), j.Landed, j.Quality, j.Notes, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create jump attempt: %w", err)
	}
	return nil
}

// GetByID retrieves one of the owner's attempts
func (r *JumpRepository) GetByID(ownerID, id string) (*models.JumpAttempt, error) {
	query := `SELECT ` + jumpColumns + ` FROM jump_attempts WHERE owner_id = ? AND id = ?`
	j, err := scanJumpAttempt(r.db.QueryRow(query, ownerID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get jump attempt: %w", err)
	}
	return j, nil
}

// ListByOwner returns the owner's attempts between from and to, newest first
func (r *JumpRepository) ListByOwner(ownerID string, from, to models.Day) ([]models.JumpAttempt, error) {
	query, args := withDayRange(
		`SELECT `+jumpColumns+` FROM jump_attempts WHERE owner_id = ?`,
		[]interface{}{ownerID}, "date", from, to)
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jump attempts: %w", err)
	}
	defer rows.Close()

	attempts := []models.JumpAttempt{}
	for rows.Next() {
		j, err := scanJumpAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan jump attempt: %w", err)
		}
		attempts = append(attempts, *j)
	}
	return attempts, rows.Err()
}

// Delete removes one of the owner's attempts
func (r *JumpRepository) Delete(ownerID, id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM jump_attempts WHERE owner_id = ? AND id = ?", ownerID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete jump attempt: %w", err)
	}
	return deleted(result)
}

func scanJumpAttempt(row rowScanner) (*models.JumpAttempt, error) {
	var j models.JumpAttempt
	var jumpType, level string
	err := row.Scan(&j.ID, &j.OwnerID, &j.Date, &jumpType, &level, &j.Landed, &j.Quality, &j.Notes, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	j.JumpType = models.JumpType(jumpType)
	j.Level = models.JumpLevel(level)
	return &j, nil
}
