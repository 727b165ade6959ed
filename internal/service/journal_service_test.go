package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skatejournal/internal/models"
	"skatejournal/internal/validation"
)

func TestJournalServiceEntries(t *testing.T) {
	svc := newTestServices(t)

	entry := &models.JournalEntry{ID: "client-chosen", OwnerID: "someone-else", Date: models.MustParseDay("2024-06-10"), Feeling: models.FeelingGreat}
	require.NoError(t, svc.journal.CreateEntry("owner-1", entry))
	assert.NotEqual(t, "client-chosen", entry.ID)
	assert.Equal(t, "owner-1", entry.OwnerID)

	err := svc.journal.CreateEntry("owner-1", &models.JournalEntry{Feeling: models.FeelingGood})
	assert.True(t, validation.IsValidationError(err), "entry without a date is rejected")

	entries, err := svc.journal.ListEntries("owner-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.True(t, errors.Is(svc.journal.DeleteEntry("owner-2", entry.ID), ErrNotFound))
	require.NoError(t, svc.journal.DeleteEntry("owner-1", entry.ID))
}

func TestJournalServiceSessionsAndJumps(t *testing.T) {
	svc := newTestServices(t)

	session := &models.TrainingSession{Date: models.MustParseDay("2024-06-10"), Type: models.SessionOnIce, TotalDurationMinutes: 60}
	require.NoError(t, svc.journal.CreateSession("owner-1", session))
	err := svc.journal.CreateSession("owner-1", &models.TrainingSession{Date: models.MustParseDay("2024-06-10"), Type: models.SessionOnIce, TotalDurationMinutes: -5})
	assert.True(t, validation.IsValidationError(err))

	jump := &models.JumpAttempt{Date: models.MustParseDay("2024-06-10"), JumpType: models.JumpLoop, Level: models.LevelDouble, Quality: 3}
	require.NoError(t, svc.journal.CreateJump("owner-1", jump))
	err = svc.journal.CreateJump("owner-1", &models.JumpAttempt{Date: models.MustParseDay("2024-06-10"), JumpType: models.JumpLoop, Level: models.LevelDouble, Quality: 9})
	assert.True(t, validation.IsValidationError(err))

	sessions, err := svc.journal.ListSessions("owner-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
	jumps, err := svc.journal.ListJumps("owner-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, jumps, 1)

	require.NoError(t, svc.journal.DeleteSession("owner-1", session.ID))
	require.NoError(t, svc.journal.DeleteJump("owner-1", jump.ID))
	assert.ErrorIs(t, svc.journal.DeleteJump("owner-1", jump.ID), ErrNotFound)
}

func TestJournalServiceProfile(t *testing.T) {
	svc := newTestServices(t)

	p, err := svc.journal.GetProfile("owner-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", p.OwnerID)
	assert.Empty(t, p.Name)

	err = svc.journal.UpdateProfile("owner-1", &models.Profile{Name: "Mia", TimeZone: "Nowhere/Land"})
	assert.True(t, validation.IsValidationError(err))

	require.NoError(t, svc.journal.UpdateProfile("owner-1", &models.Profile{OwnerID: "spoofed", Name: "Mia", TimeZone: "Asia/Tokyo"}))
	p, err = svc.journal.GetProfile("owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Mia", p.Name)
	assert.Equal(t, "Asia/Tokyo", p.TimeZone)
}
