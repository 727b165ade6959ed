package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})

	t.Run("BoolValue", func(t *testing.T) {
		if dialect.BoolValue(true) != "1" || dialect.BoolValue(false) != "0" {
			t.Error("BoolValue() should render integers for SQLite")
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
		}
	})

	t.Run("BoolValue", func(t *testing.T) {
		if dialect.BoolValue(true) != "TRUE" {
			t.Error("BoolValue(true) should be TRUE for PostgreSQL")
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "mysql" {
			t.Errorf("MigrationsSubdir() = %v, want mysql", got)
		}
	})
}

func TestMySQLDSNEnablesParseTime(t *testing.T) {
	dialect := NewMySQLDialect()
	tests := []struct {
		url  string
		want string
	}{
		{url: "user:pw@tcp(db:3306)/skate", want: "user:pw@tcp(db:3306)/skate?parseTime=true"},
		{url: "user:pw@tcp(db:3306)/skate?charset=utf8mb4", want: "user:pw@tcp(db:3306)/skate?charset=utf8mb4&parseTime=true"},
		{url: "user:pw@tcp(db:3306)/skate?parseTime=false", want: "user:pw@tcp(db:3306)/skate?parseTime=false"},
	}

	for _, tt := range tests {
		if got := dialect.DSN(DialectConfig{URL: tt.url}); got != tt.want {
			t.Errorf("DSN(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM goals WHERE id = ?",
			expected: "SELECT * FROM goals WHERE id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM goals WHERE id = ?",
			expected: "SELECT * FROM goals WHERE id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "SELECT id FROM weekly_goals WHERE owner_id = ? AND week_start = ?",
			expected: "SELECT id FROM weekly_goals WHERE owner_id = $1 AND week_start = $2",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE goals SET progress = ?, completed = ? WHERE id = ?",
			expected: "UPDATE goals SET progress = ?, completed = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.dialect.RewriteQuery(tt.query); result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestRewritePlaceholdersRewritesEveryQuestionMark(t *testing.T) {
	got := rewritePlaceholdersToNumbered("SELECT '?' FROM goals WHERE id = ?")
	want := "SELECT '$1' FROM goals WHERE id = $2"
	if got != want {
		t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", got, want)
	}
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (x INT);\n\n CREATE INDEX i ON a(x);\n")
	if len(got) != 2 || got[1] != "CREATE INDEX i ON a(x)" {
		t.Errorf("splitStatements() = %q", got)
	}
}

func TestEmbeddedMigrationsPerDialect(t *testing.T) {
	for _, d := range []Dialect{NewSQLiteDialect(), NewPostgresDialect(), NewMySQLDialect()} {
		content, err := migrationFiles.ReadFile("migrations/" + d.MigrationsSubdir() + "/001_initial_schema.sql")
		if err != nil {
			t.Fatalf("%s: %v", d.MigrationsSubdir(), err)
		}
		if len(splitStatements(string(content))) == 0 {
			t.Errorf("%s: empty migration", d.MigrationsSubdir())
		}
	}
}
