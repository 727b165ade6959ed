package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"skatejournal/internal/database"
	"skatejournal/internal/logger"
	"skatejournal/internal/repository"
)

type testServices struct {
	db       *database.DB
	journal  *JournalService
	goals    *GoalService
	progress *ProgressService
	backup   *BackupService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database-backed service test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.RunMigrations()
	require.NoError(t, err)

	log := logger.Nop()
	profiles := repository.NewProfileRepository(db)
	journal := repository.NewJournalRepository(db)
	training := repository.NewTrainingRepository(db)
	jumps := repository.NewJumpRepository(db)
	goals := repository.NewGoalRepository(db)
	weekly := repository.NewWeeklyGoalRepository(db)

	return &testServices{
		db:       db,
		journal:  NewJournalService(profiles, journal, training, jumps, log),
		goals:    NewGoalService(goals, weekly, log),
		progress: NewProgressService(profiles, journal, training, jumps, goals, weekly),
		backup:   NewBackupService(db, log),
	}
}

func fixedClock(value string) func() time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}
