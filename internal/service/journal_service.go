package service

import (
	"fmt"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/repository"
	"skatejournal/internal/validation"
)

// JournalService handles profile edits and the daily activity logs:
// journal entries, training sessions and jump attempts
type JournalService struct {
	profiles *repository.ProfileRepository
	journal  *repository.JournalRepository
	training *repository.TrainingRepository
	jumps    *repository.JumpRepository
	log      *logger.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(
	profiles *repository.ProfileRepository,
	journal *repository.JournalRepository,
	training *repository.TrainingRepository,
	jumps *repository.JumpRepository,
	log *logger.Logger,
) *JournalService {
	return &JournalService{
		profiles: profiles,
		journal:  journal,
		training: training,
		jumps:    jumps,
		log:      log,
	}
}

// GetProfile returns the owner's profile. An owner who never saved one
// gets an empty profile rather than an error.
func (s *JournalService) GetProfile(ownerID string) (*models.Profile, error) {
	p, err := s.profiles.Get(ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &models.Profile{OwnerID: ownerID}, nil
	}
	return p, nil
}

// UpdateProfile validates and saves the owner's profile
func (s *JournalService) UpdateProfile(ownerID string, p *models.Profile) error {
	p.OwnerID = ownerID
	if err := validation.ValidateProfile(p); err != nil {
		return err
	}
	if err := s.profiles.Upsert(p); err != nil {
		return err
	}
	s.log.Info("profile updated", "owner_id", ownerID)
	return nil
}

// CreateEntry validates and stores a journal entry for the owner
func (s *JournalService) CreateEntry(ownerID string, e *models.JournalEntry) error {
	e.ID = ""
	e.OwnerID = ownerID
	if err := validation.ValidateJournalEntry(e); err != nil {
		return err
	}
	return s.journal.Create(e)
}

// ListEntries returns the owner's journal entries between from and to
func (s *JournalService) ListEntries(ownerID string, from, to models.Day) ([]models.JournalEntry, error) {
	return s.journal.ListByOwner(ownerID, from, to)
}

// DeleteEntry removes one of the owner's journal entries
func (s *JournalService) DeleteEntry(ownerID, id string) error {
	return notFoundUnless(s.journal.Delete(ownerID, id))
}

// CreateSession validates and stores a training session for the owner
func (s *JournalService) CreateSession(ownerID string, ts *models.TrainingSession) error {
	ts.ID = ""
	ts.OwnerID = ownerID
	if err := validation.ValidateTrainingSession(ts); err != nil {
		return err
	}
	return s.training.Create(ts)
}

// ListSessions returns the owner's training sessions between from and to
func (s *JournalService) ListSessions(ownerID string, from, to models.Day) ([]models.TrainingSession, error) {
	return s.training.ListByOwner(ownerID, from, to)
}

// DeleteSession removes one of the owner's training sessions
func (s *JournalService) DeleteSession(ownerID, id string) error {
	return notFoundUnless(s.training.Delete(ownerID, id))
}

// CreateJump validates and stores a jump attempt for the owner
func (s *JournalService) CreateJump(ownerID string, j *models.JumpAttempt) error {
	j.ID = ""
	j.OwnerID = ownerID
	if err := validation.ValidateJumpAttempt(j); err != nil {
		return err
	}
	return s.jumps.Create(j)
}

// ListJumps returns the owner's jump attempts between from and to
func (s *JournalService) ListJumps(ownerID string, from, to models.Day) ([]models.JumpAttempt, error) {
	return s.jumps.ListByOwner(ownerID, from, to)
}

// DeleteJump removes one of the owner's jump attempts
func (s *JournalService) DeleteJump(ownerID, id string) error {
	return notFoundUnless(s.jumps.Delete(ownerID, id))
}

// HasEntryOn reports whether the owner journaled on day
func (s *JournalService) HasEntryOn(ownerID string, day models.Day) (bool, error) {
	return s.journal.HasEntryOn(ownerID, day)
}

func notFoundUnless(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("record: %w", ErrNotFound)
	}
	return nil
}
