package repository

import (
	"database/sql"
	"fmt"

	"skatejournal/internal/database"
	"skatejournal/internal/models"
)

const profileColumns = `owner_id, name, email, skating_level, club, coach, time_zone,
	reminder_enabled, reminder_time, created_at, updated_at`

// ProfileRepository handles skater profile database operations
type ProfileRepository struct {
	db database.DBTX
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db database.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get retrieves the owner's profile, or nil if none was saved yet
func (r *ProfileRepository) Get(ownerID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = ?`
	p, err := scanProfile(r.db.QueryRow(query, ownerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// Upsert creates or replaces the owner's profile
func (r *ProfileRepository) Upsert(p *models.Profile) error {
	existing, err := r.Get(p.OwnerID)
	if err != nil {
		return err
	}

	ts := now()
	p.UpdatedAt = ts
	if existing != nil {
		p.CreatedAt = existing.CreatedAt
		query := `
			UPDATE profiles
			SET name = ?, email = ?, skating_level = ?, club = ?, coach = ?, time_zone = ?,
			    reminder_enabled = ?, reminder_time = ?, updated_at = ?
			WHERE owner_id = ?
		`
		_, err := r.db.Exec(query, p.Name, p.Email, p.SkatingLevel, p.Club, p.Coach, p.TimeZone,
			p.ReminderEnabled, p.ReminderTime, p.UpdatedAt, p.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		return nil
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = ts
	}
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, p.OwnerID, p.Name, p.Email, p.SkatingLevel, p.Club, p.Coach, p.TimeZone,
		p.ReminderEnabled, p.ReminderTime, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// ListReminderEnabled returns every profile with daily reminders switched on
func (r *ProfileRepository) ListReminderEnabled() ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE reminder_enabled = ` +
		r.db.GetDialect().BoolValue(true) + ` ORDER BY owner_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.OwnerID, &p.Name, &p.Email, &p.SkatingLevel, &p.Club, &p.Coach, &p.TimeZone,
		&p.ReminderEnabled, &p.ReminderTime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
