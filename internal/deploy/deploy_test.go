package deploy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyCreates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitty", "kitty.conf")

	rec := New(false).Apply(Item{App: "kitty", Path: path, Content: "background #282828\n"})
	if rec.Action != ActionCreated {
		t.Fatalf("Action = %s, want created", rec.Action)
	}
	if rec.BackupPath != "" {
		t.Errorf("created file should have no backup, got %s", rec.BackupPath)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "background #282828\n" {
		t.Errorf("wrote %q", content)
	}
}

func TestApplyUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	if err := os.WriteFile(path, []byte("same\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := New(false).Apply(Item{App: "mako", Path: path, Content: "same\n"})
	if rec.Action != ActionUnchanged {
		t.Fatalf("Action = %s, want unchanged", rec.Action)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("unchanged deploy must not create backups, dir has %d entries", len(entries))
	}
}

func TestApplyUpdatesWithBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := New(false).Apply(Item{App: "waybar", Path: path, Content: "new\n"})
	if rec.Action != ActionUpdated {
		t.Fatalf("Action = %s, want updated", rec.Action)
	}
	if rec.BackupPath == "" {
		t.Fatal("updated deploy must record a backup path")
	}
	if !strings.HasSuffix(rec.BackupPath, ".bak") {
		t.Errorf("backup name %s should end in .bak", rec.BackupPath)
	}

	backup, err := os.ReadFile(rec.BackupPath)
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if string(backup) != "old\n" {
		t.Errorf("backup holds %q, want prior content", backup)
	}
	current, _ := os.ReadFile(path)
	if string(current) != "new\n" {
		t.Errorf("target holds %q", current)
	}
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.conf")
	if err := os.WriteFile(existing, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.conf")

	d := New(true)
	recs := d.ApplyAll([]Item{
		{App: "kitty", Path: existing, Content: "new\n"},
		{App: "mako", Path: missing, Content: "fresh\n"},
	})

	if recs[0].Action != ActionUpdated || recs[0].BackupPath == "" {
		t.Errorf("dry run should report updated with backup path: %+v", recs[0])
	}
	if recs[1].Action != ActionCreated {
		t.Errorf("dry run should report created: %+v", recs[1])
	}

	content, _ := os.ReadFile(existing)
	if string(content) != "old\n" {
		t.Error("dry run modified an existing file")
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Error("dry run created a file")
	}
	if _, err := os.Stat(recs[0].BackupPath); !os.IsNotExist(err) {
		t.Error("dry run wrote a backup")
	}
}

func TestBackupPathCollision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	fixed := time.Unix(1700000000, 0)
	d := &Deployer{now: func() time.Time { return fixed }}

	first := d.backupPath(path)
	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	second := d.backupPath(path)
	if second == first {
		t.Fatal("collision not resolved")
	}
	if !strings.Contains(second, "1700000000-1") {
		t.Errorf("expected bumped suffix, got %s", second)
	}
}

func TestApplyAllContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	// A file where a directory is needed forces MkdirAll to fail.
	if err := os.WriteFile(blocked, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	recs := New(false).ApplyAll([]Item{
		{App: "kitty", Path: filepath.Join(blocked, "kitty.conf"), Content: "a\n"},
		{App: "mako", Path: filepath.Join(dir, "mako", "config"), Content: "b\n"},
	})

	if recs[0].Action != ActionFailed || recs[0].Err == nil {
		t.Errorf("expected first item to fail: %+v", recs[0])
	}
	if recs[1].Action != ActionCreated {
		t.Errorf("failure must not abort later items: %+v", recs[1])
	}

	var derr *Error
	if !errors.As(recs[0].Err, &derr) {
		t.Fatalf("expected *Error, got %T", recs[0].Err)
	}
	if derr.App != "kitty" {
		t.Errorf("error names app %q", derr.App)
	}
}

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		app  string
		want string
	}{
		{"kitty", "kitty/kitty.conf"},
		{"neovim", "nvim/colors/nord.lua"},
		{"starship", "starship.toml"},
		{"btop", "btop/themes/nord.theme"},
		{"git", "git/themes/nord.conf"},
	}
	for _, tt := range tests {
		t.Run(tt.app, func(t *testing.T) {
			got, err := DestinationPath(tt.app, "nord", "/base")
			if err != nil {
				t.Fatal(err)
			}
			if got != filepath.Join("/base", filepath.FromSlash(tt.want)) {
				t.Errorf("DestinationPath(%s) = %s", tt.app, got)
			}
		})
	}

	if _, err := DestinationPath("emacs", "nord", "/base"); err == nil {
		t.Fatal("expected error for unknown app")
	}
}

func TestEveryAppHasDestination(t *testing.T) {
	for _, app := range Apps {
		if _, err := DestinationPath(app, "x", "/base"); err != nil {
			t.Errorf("no destination for %s: %v", app, err)
		}
	}
}

func TestListAndCleanBackups(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "kitty")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	old := filepath.Join(sub, "kitty.conf.1600000000.bak")
	if err := os.WriteFile(old, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-40 * 24 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}
	fresh := filepath.Join(sub, "kitty.conf.1900000000.bak")
	if err := os.WriteFile(fresh, []byte("fresh"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "kitty.conf"), []byte("live"), 0644); err != nil {
		t.Fatal(err)
	}

	backups, err := ListBackups(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Fatalf("ListBackups() found %d, want 2", len(backups))
	}

	removed, err := CleanBackups(dir, 30*24*time.Hour, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 1 || removed[0].Path != old {
		t.Fatalf("CleanBackups removed %v", removed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("old backup still present")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("fresh backup should survive")
	}
}
