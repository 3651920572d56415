package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wishlane-app/wishlane-backend/pkg/migrate"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestInviteMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_invites.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no invite migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE wishlist_invites",
		"CONSTRAINT wishlist_invites_wishlist_email_key UNIQUE (wishlist_id, email)",
		"status      text NOT NULL DEFAULT 'pending'",
		"DROP TABLE wishlist_invites",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSocialMigrationContainsUniqueLike(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_social_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no social migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE item_likes",
		"CONSTRAINT item_likes_item_user_key UNIQUE (item_id, user_id)",
		"CREATE TABLE item_comments",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestCreateSQLMigrationScaffold(t *testing.T) {
	dir := t.TempDir()

	path, err := migrate.CreateSQLMigration(dir, "Add Gift Reservations!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_gift_reservations.sql") {
		t.Fatalf("unexpected filename: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scaffold: %v", err)
	}
	content := string(data)
	for _, sub := range []string{
		"-- +goose Up",
		"-- +goose Down",
		"add_gift_reservations",
		"gen_random_uuid()",
	} {
		if !strings.Contains(content, sub) {
			t.Errorf("scaffold missing %q", sub)
		}
	}

	if err := migrate.ValidateDir(dir); err != nil {
		t.Fatalf("scaffold should validate: %v", err)
	}
}

func TestValidateDirRejectsUnbalancedMarkers(t *testing.T) {
	dir := t.TempDir()
	broken := "-- +goose Up\n-- +goose StatementBegin\nSELECT 1;\n\n-- +goose Down\n"
	if err := os.WriteFile(filepath.Join(dir, "20260101000000_broken.sql"), []byte(broken), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}

	err := migrate.ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "StatementBegin") {
		t.Fatalf("expected marker mismatch error, got %v", err)
	}
}
