package migrations

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	tests := map[string]string{
		"001_create_users_table.sql": "001",
		"002_students.sql":           "002",
		"003.sql":                    "003",
	}

	for filename, want := range tests {
		if got := migrationVersion(filename); got != want {
			t.Errorf("migrationVersion(%q) = %q, want %q", filename, got, want)
		}
	}
}

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "000_dir.sql"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	files, err := migrationFiles(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"001_a.sql", "002_b.sql"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

func TestMigrationFiles_MissingDir(t *testing.T) {
	if _, err := migrationFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestShippedMigrations(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("failed to list shipped migrations: %v", err)
	}

	seen := map[string]bool{}
	for _, file := range files {
		version := migrationVersion(file)
		if seen[version] {
			t.Errorf("duplicate migration version %s", version)
		}
		seen[version] = true
	}
	if len(files) < 2 {
		t.Errorf("expected users and students migrations, got %v", files)
	}
}
