package repository

import (
	"database/sql"
	"fmt"

	"skatejournal/internal/database"
	"skatejournal/internal/models"
)

const trainingColumns = `id, owner_id, date, type, total_duration_minutes, activities, notes, created_at`

// TrainingRepository handles training session database operations
type TrainingRepository struct {
	db database.DBTX
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db database.DBTX) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// Create inserts a session. Sub-activities are stored as a JSON column.
func (r *TrainingRepository) Create(s *models.TrainingSession) error {
	if s.ID == "" {
		s.ID = newID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now()
	}
	if s.Activities == nil {
		s.Activities = []models.SubActivity{}
	}
	activities, err := encodeJSON(s.Activities)
	if err != nil {
		return fmt.Errorf("failed to encode activities: %w", err)
	}

	query := `
		INSERT INTO training_sessions (` + trainingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, s.ID, s.OwnerID, s.Date, string(s.Type), s.TotalDurationMinutes, activities, s.Notes, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create training session: %w", err)
	}
	return nil
}

// GetByID retrieves one of the owner's sessions
func (r *TrainingRepository) GetByID(ownerID, id string) (*models.TrainingSession, error) {
	query := `SELECT ` + trainingColumns + ` FROM training_sessions WHERE owner_id = ? AND id = ?`
	s, err := scanTrainingSession(r.db.QueryRow(query, ownerID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get training session: %w", err)
	}
	return s, nil
}

// ListByOwner returns the owner's sessions between from and to, newest first
func (r *TrainingRepository) ListByOwner(ownerID string, from, to models.Day) ([]models.TrainingSession, error) {
	query, args := withDayRange(
		`SELECT `+trainingColumns+` FROM training_sessions WHERE owner_id = ?`,
		[]interface{}{ownerID}, "date", from, to)
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list training sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.TrainingSession{}
	for rows.Next() {
		s, err := scanTrainingSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Delete removes one of the owner's sessions
func (r *TrainingRepository) Delete(ownerID, id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM training_sessions WHERE owner_id = ? AND id = ?", ownerID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete training session: %w", err)
	}
	return deleted(result)
}

func scanTrainingSession(row rowScanner) (*models.TrainingSession, error) {
	var s models.TrainingSession
	var sessionType, activities string
	err := row.Scan(&s.ID, &s.OwnerID, &s.Date, &sessionType, &s.TotalDurationMinutes, &activities, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Type = models.SessionType(sessionType)
	s.Activities = []models.SubActivity{}
	decodeJSON(activities, &s.Activities)
	return &s, nil
}
