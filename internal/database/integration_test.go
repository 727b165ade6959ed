package database

import (
	"errors"
	"path/filepath"
	"testing"
)

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(filepath.Join(t.TempDir(), "integration.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	applied, err := db.RunMigrations()
	if err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if len(applied) != 1 {
		t.Fatalf("applied %v, want one migration", applied)
	}

	tables := []string{"profiles", "journal_entries", "training_sessions", "jump_attempts", "goals", "weekly_goals"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	t.Run("migrations are idempotent", func(t *testing.T) {
		applied, err := db.RunMigrations()
		if err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		if len(applied) != 0 {
			t.Errorf("second run applied %v", applied)
		}
	})

	t.Run("weekly goal week key is unique", func(t *testing.T) {
		insert := "INSERT INTO weekly_goals (id, owner_id, week_start) VALUES (?, ?, ?)"
		if _, err := db.Exec(insert, "w1", "owner-1", "2024-06-10"); err != nil {
			t.Fatalf("first insert: %v", err)
		}
		if _, err := db.Exec(insert, "w2", "owner-1", "2024-06-10"); err == nil {
			t.Error("duplicate week for the same owner should fail")
		}
		if _, err := db.Exec(insert, "w3", "owner-2", "2024-06-10"); err != nil {
			t.Errorf("same week for another owner: %v", err)
		}
	})

	t.Run("rolled back transaction leaves no rows", func(t *testing.T) {
		err := db.WithTx(func(tx *Tx) error {
			if _, err := tx.Exec("INSERT INTO goals (id, owner_id, title, timeframe) VALUES (?, ?, ?, ?)", "g1", "owner-1", "Axel", "season"); err != nil {
				return err
			}
			return errRollback
		})
		if err != errRollback {
			t.Fatalf("WithTx() error = %v", err)
		}
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM goals").Scan(&count); err != nil {
			t.Fatal(err)
		}
		if count != 0 {
			t.Errorf("goals count = %d after rollback", count)
		}
	})
}

var errRollback = errors.New("rollback")
