// Package deploy writes rendered theme output into application config
// locations, backing up any differing prior file. Dry-run mode produces the
// same records with no filesystem writes.
package deploy

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/huffs-projects/themectl/internal/logger"
)

// Action classifies the outcome of one deployment.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionUnchanged Action = "unchanged"
	ActionFailed    Action = "failed"
)

// Error is a per-target deployment failure. One target's failure never
// aborts the remaining targets.
type Error struct {
	App  string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("deployment failed for %s at %s: %v", e.App, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Item is one pending deployment: a target app, its rendered content, and
// the destination path.
type Item struct {
	App     string
	Path    string
	Content string
}

// Record reports what one deployment did (or, in dry-run, would do).
type Record struct {
	App        string
	Path       string
	Action     Action
	BackupPath string
	Err        error
}

// Deployer applies rendered output to the filesystem.
type Deployer struct {
	DryRun bool

	// now is swappable for tests; backup names embed a timestamp.
	now func() time.Time
}

// New creates a Deployer.
func New(dryRun bool) *Deployer {
	return &Deployer{DryRun: dryRun, now: time.Now}
}

// Apply deploys a single item. Failures are captured in the returned record
// rather than returned as an error, so batch callers can continue.
func (d *Deployer) Apply(item Item) Record {
	rec := Record{App: item.App, Path: item.Path}

	existing, err := os.ReadFile(item.Path)
	switch {
	case err == nil:
		if bytes.Equal(existing, []byte(item.Content)) {
			rec.Action = ActionUnchanged
			logger.Debug("config unchanged",
				logger.String("app", item.App), logger.String("path", item.Path))
			return rec
		}
		rec.Action = ActionUpdated
		rec.BackupPath = d.backupPath(item.Path)
		if !d.DryRun {
			if err := copyFile(item.Path, rec.BackupPath); err != nil {
				rec.Action = ActionFailed
				rec.Err = &Error{App: item.App, Path: item.Path, Err: fmt.Errorf("backup failed: %w", err)}
				return rec
			}
		}
	case os.IsNotExist(err):
		rec.Action = ActionCreated
	default:
		rec.Action = ActionFailed
		rec.Err = &Error{App: item.App, Path: item.Path, Err: err}
		return rec
	}

	if d.DryRun {
		return rec
	}

	if err := os.MkdirAll(filepath.Dir(item.Path), 0755); err != nil {
		rec.Action = ActionFailed
		rec.Err = &Error{App: item.App, Path: item.Path, Err: fmt.Errorf("cannot create directory: %w", err)}
		return rec
	}
	if err := os.WriteFile(item.Path, []byte(item.Content), 0644); err != nil {
		rec.Action = ActionFailed
		rec.Err = &Error{App: item.App, Path: item.Path, Err: err}
		return rec
	}

	logger.Debug("config written",
		logger.String("app", item.App),
		logger.String("path", item.Path),
		logger.String("action", string(rec.Action)))
	return rec
}

// ApplyAll deploys every item, catch-and-continue. The returned records are
// in item order.
func (d *Deployer) ApplyAll(items []Item) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, d.Apply(item))
	}
	return records
}

// backupPath derives a backup name that never clobbers a prior backup:
// <path>.<unix-ts>.bak, with a -N suffix on collision.
func (d *Deployer) backupPath(path string) string {
	ts := d.now().Unix()
	candidate := fmt.Sprintf("%s.%d.bak", path, ts)
	for n := 1; ; n++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s.%d-%d.bak", path, ts, n)
	}
}

func copyFile(src, dst string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, content, info.Mode().Perm())
}
