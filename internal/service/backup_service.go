package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"skatejournal/internal/database"
	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/repository"
	"skatejournal/internal/validation"
)

// LocalStore is the browser client's local storage layout. Dates are
// ISO-8601 strings and are re-parsed on import.
type LocalStore struct {
	Profile          *models.Profile          `json:"profile"`
	JournalEntries   []models.JournalEntry    `json:"journalEntries"`
	TrainingSessions []models.TrainingSession `json:"trainingSessions"`
	JumpAttempts     []models.JumpAttempt     `json:"jumpAttempts"`
	WeeklyGoals      []models.WeeklyGoal      `json:"weeklyGoals"`
	Goals            []models.Goal            `json:"goals"`
}

// ImportResult counts what an import stored and what it left out
type ImportResult struct {
	JournalEntries   int `json:"journalEntries"`
	TrainingSessions int `json:"trainingSessions"`
	JumpAttempts     int `json:"jumpAttempts"`
	WeeklyGoals      int `json:"weeklyGoals"`
	Goals            int `json:"goals"`
	Duplicates       int `json:"duplicates"`
	Skipped          int `json:"skipped"`
}

// BackupService moves one owner's data in and out of the local store format
type BackupService struct {
	db  *database.DB
	log *logger.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, log *logger.Logger) *BackupService {
	return &BackupService{db: db, log: log}
}

// Export collects everything the owner recorded
func (s *BackupService) Export(ownerID string) (*LocalStore, error) {
	store := &LocalStore{}
	var err error

	if store.Profile, err = repository.NewProfileRepository(s.db).Get(ownerID); err != nil {
		return nil, fmt.Errorf("failed to export profile: %w", err)
	}
	if store.JournalEntries, err = repository.NewJournalRepository(s.db).ListByOwner(ownerID, 0, 0); err != nil {
		return nil, fmt.Errorf("failed to export journal entries: %w", err)
	}
	if store.TrainingSessions, err = repository.NewTrainingRepository(s.db).ListByOwner(ownerID, 0, 0); err != nil {
		return nil, fmt.Errorf("failed to export training sessions: %w", err)
	}
	if store.JumpAttempts, err = repository.NewJumpRepository(s.db).ListByOwner(ownerID, 0, 0); err != nil {
		return nil, fmt.Errorf("failed to export jump attempts: %w", err)
	}
	if store.WeeklyGoals, err = repository.NewWeeklyGoalRepository(s.db).ListByOwner(ownerID); err != nil {
		return nil, fmt.Errorf("failed to export weekly goals: %w", err)
	}
	if store.Goals, err = repository.NewGoalRepository(s.db).ListByOwner(ownerID); err != nil {
		return nil, fmt.Errorf("failed to export goals: %w", err)
	}

	s.log.Info("exported owner data",
		"owner_id", ownerID,
		"journal_entries", len(store.JournalEntries),
		"training_sessions", len(store.TrainingSessions),
		"jump_attempts", len(store.JumpAttempts),
		"weekly_goals", len(store.WeeklyGoals),
		"goals", len(store.Goals),
	)
	return store, nil
}

// WriteExport writes the owner's export as indented JSON
func (s *BackupService) WriteExport(w io.Writer, ownerID string) error {
	store, err := s.Export(ownerID)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(store); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// ownerTables hold owner data, child data first
var ownerTables = []string{
	"jump_attempts",
	"training_sessions",
	"journal_entries",
	"weekly_goals",
	"goals",
	"profiles",
}

// DecodeLocalStore reads a local store document
func DecodeLocalStore(r io.Reader) (*LocalStore, error) {
	var store LocalStore
	if err := json.NewDecoder(r).Decode(&store); err != nil {
		return nil, validation.ValidationError{Field: "body", Message: fmt.Sprintf("invalid local store document: %v", err)}
	}
	return &store, nil
}

// ReadImport decodes a local store document and imports it for the owner
func (s *BackupService) ReadImport(r io.Reader, ownerID string) (*ImportResult, error) {
	store, err := DecodeLocalStore(r)
	if err != nil {
		return nil, err
	}
	return s.Import(ownerID, store)
}

// Import stores the records of a local store document under ownerID in
// one transaction. Records whose date could not be parsed or that fail
// validation are skipped. A record with an id is stored under an id
// derived from the owner and its original id, and is counted as a
// duplicate when the owner already has it, so importing the same
// document twice stores it once.
func (s *BackupService) Import(ownerID string, store *LocalStore) (*ImportResult, error) {
	return s.importStore(ownerID, store, false)
}

// Replace deletes everything the owner has and imports store in its place.
// Both happen in one transaction, so a failed import keeps the old data.
func (s *BackupService) Replace(ownerID string, store *LocalStore) (*ImportResult, error) {
	return s.importStore(ownerID, store, true)
}

func (s *BackupService) importStore(ownerID string, store *LocalStore, replace bool) (*ImportResult, error) {
	result := &ImportResult{}

	err := s.db.WithTx(func(tx *database.Tx) error {
		if replace {
			if err := clearOwner(tx, ownerID); err != nil {
				return err
			}
		}

		if store.Profile != nil {
			p := *store.Profile
			p.OwnerID = ownerID
			if err := validation.ValidateProfile(&p); err != nil {
				result.Skipped++
			} else if err := repository.NewProfileRepository(tx).Upsert(&p); err != nil {
				return err
			}
		}

		journal := repository.NewJournalRepository(tx)
		for _, e := range store.JournalEntries {
			e.OwnerID = ownerID
			ok, err := prepareImport(ownerID, &e.ID, validation.ValidateJournalEntry(&e), func(id string) (bool, error) {
				existing, err := journal.GetByID(ownerID, id)
				return existing != nil, err
			}, result)
			if err != nil {
				return err
			}
			if ok {
				if err := journal.Create(&e); err != nil {
					return err
				}
				result.JournalEntries++
			}
		}

		training := repository.NewTrainingRepository(tx)
		for _, ts := range store.TrainingSessions {
			ts.OwnerID = ownerID
			ok, err := prepareImport(ownerID, &ts.ID, validation.ValidateTrainingSession(&ts), func(id string) (bool, error) {
				existing, err := training.GetByID(ownerID, id)
				return existing != nil, err
			}, result)
			if err != nil {
				return err
			}
			if ok {
				if err := training.Create(&ts); err != nil {
					return err
				}
				result.TrainingSessions++
			}
		}

		jumps := repository.NewJumpRepository(tx)
		for _, j := range store.JumpAttempts {
			j.OwnerID = ownerID
			ok, err := prepareImport(ownerID, &j.ID, validation.ValidateJumpAttempt(&j), func(id string) (bool, error) {
				existing, err := jumps.GetByID(ownerID, id)
				return existing != nil, err
			}, result)
			if err != nil {
				return err
			}
			if ok {
				if err := jumps.Create(&j); err != nil {
					return err
				}
				result.JumpAttempts++
			}
		}

		goals := repository.NewGoalRepository(tx)
		for _, g := range store.Goals {
			g.OwnerID = ownerID
			ok, err := prepareImport(ownerID, &g.ID, validation.ValidateGoal(&g), func(id string) (bool, error) {
				existing, err := goals.GetByID(ownerID, id)
				return existing != nil, err
			}, result)
			if err != nil {
				return err
			}
			if ok {
				if err := goals.Create(&g); err != nil {
					return err
				}
				result.Goals++
			}
		}

		weekly := repository.NewWeeklyGoalRepository(s.db)
		for _, wg := range store.WeeklyGoals {
			wg.OwnerID = ownerID
			if err := validation.ValidateWeeklyGoal(&wg); err != nil {
				result.Skipped++
				continue
			}
			wg.ID = ""
			wg.WeekStart = wg.WeekStart.WeekStart()
			if err := weekly.UpsertTx(tx, &wg); err != nil {
				return err
			}
			result.WeeklyGoals++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import local store: %w", err)
	}

	s.log.Info("imported owner data",
		"owner_id", ownerID,
		"replaced", replace,
		"journal_entries", result.JournalEntries,
		"training_sessions", result.TrainingSessions,
		"jump_attempts", result.JumpAttempts,
		"weekly_goals", result.WeeklyGoals,
		"goals", result.Goals,
		"duplicates", result.Duplicates,
		"skipped", result.Skipped,
	)
	return result, nil
}

// clearOwner deletes every row the owner has
func clearOwner(tx database.DBTX, ownerID string) error {
	for _, table := range ownerTables {
		query := fmt.Sprintf("DELETE FROM %s WHERE owner_id = ?", table)
		if _, err := tx.Exec(query, ownerID); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// importID derives the stored id of an imported record. The same owner and
// original id always give the same id, and different owners never share one.
func importID(ownerID, id string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(ownerID+"/"+id)).String()
}

// prepareImport decides whether one imported record is stored. Invalid
// records are skipped. A record the owner already has, either under its
// own id (an export of this owner) or under the derived id (an earlier
// import), is a duplicate. Records without an id get a fresh one.
func prepareImport(ownerID string, id *string, invalid error, exists func(id string) (bool, error), result *ImportResult) (bool, error) {
	if invalid != nil {
		result.Skipped++
		return false, nil
	}
	if *id == "" {
		return true, nil
	}

	derived := importID(ownerID, *id)
	for _, candidate := range []string{*id, derived} {
		found, err := exists(candidate)
		if err != nil {
			return false, err
		}
		if found {
			result.Duplicates++
			return false, nil
		}
	}
	*id = derived
	return true, nil
}
