package repository

import (
	"database/sql"
	"fmt"

	"skatejournal/internal/database"
	"skatejournal/internal/models"
)

const journalColumns = `id, owner_id, date, feeling, highlights, challenges, gratitude, notes,
	emotional_state, confidence_level, focus_level, created_at`

// JournalRepository handles journal entry database operations
type JournalRepository struct {
	db database.DBTX
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db database.DBTX) *JournalRepository {
	return &JournalRepository{db: db}
}

// Create inserts an entry, assigning an id and creation time when missing
func (r *JournalRepository) Create(e *models.JournalEntry) error {
	if e.ID == "" {
		e.ID = newID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now()
	}

	query := `
		INSERT INTO journal_entries (` + journalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		e.ID, e.OwnerID, e.Date, string(e.Feeling), e.Highlights, e.Challenges, e.Gratitude, e.Notes,
		nullInt(e.EmotionalState), nullInt(e.ConfidenceLevel), nullInt(e.FocusLevel), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}
	return nil
}

// GetByID retrieves one of the owner's entries
func (r *JournalRepository) GetByID(ownerID, id string) (*models.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE owner_id = ? AND id = ?`
	e, err := scanJournalEntry(r.db.QueryRow(query, ownerID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return e, nil
}

// ListByOwner returns the owner's entries between from and to, newest first.
// Zero bounds are open.
func (r *JournalRepository) ListByOwner(ownerID string, from, to models.Day) ([]models.JournalEntry, error) {
	query, args := withDayRange(
		`SELECT `+journalColumns+` FROM journal_entries WHERE owner_id = ?`,
		[]interface{}{ownerID}, "date", from, to)
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// HasEntryOn reports whether the owner journaled on day
func (r *JournalRepository) HasEntryOn(ownerID string, day models.Day) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM journal_entries WHERE owner_id = ? AND date = ?", ownerID, day).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count > 0, nil
}

// Delete removes one of the owner's entries, reporting whether it existed
func (r *JournalRepository) Delete(ownerID, id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM journal_entries WHERE owner_id = ? AND id = ?", ownerID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return deleted(result)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJournalEntry(row rowScanner) (*models.JournalEntry, error) {
	var e models.JournalEntry
	var feeling string
	var emotional, confidence, focus sql.NullInt64
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Date, &feeling, &e.Highlights, &e.Challenges, &e.Gratitude, &e.Notes,
		&emotional, &confidence, &focus, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Feeling = models.Feeling(feeling)
	e.EmotionalState = intPtr(emotional)
	e.ConfidenceLevel = intPtr(confidence)
	e.FocusLevel = intPtr(focus)
	return &e, nil
}
