package deploy

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Backup describes one backup file created by a prior deployment.
type Backup struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// ListBackups walks baseDir for the *.bak files deployments leave behind,
// sorted by path via the walk order.
func ListBackups(baseDir string) ([]Backup, error) {
	var backups []Backup
	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".bak") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		backups = append(backups, Backup{Path: path, Size: info.Size(), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for backups: %w", baseDir, err)
	}
	return backups, nil
}

// CleanBackups removes backups older than maxAge. In dry-run mode it only
// reports what would be removed. Returns the affected backups.
func CleanBackups(baseDir string, maxAge time.Duration, dryRun bool) ([]Backup, error) {
	backups, err := ListBackups(baseDir)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().Add(-maxAge)
	var removed []Backup
	for _, b := range backups {
		if b.ModTime.After(cutoff) {
			continue
		}
		if !dryRun {
			if err := os.Remove(b.Path); err != nil {
				return removed, fmt.Errorf("failed to remove backup %s: %w", b.Path, err)
			}
		}
		removed = append(removed, b)
	}
	return removed, nil
}
