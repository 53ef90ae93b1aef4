// Package downloads manages the scratch directory that browser downloads
// (order invoices) are saved into.
package downloads

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultDir is where downloads land unless configured otherwise.
const DefaultDir = "./playwright-downloads"

// Dir is a downloads directory on fs. Cleanup failures are logged, never returned.
type Dir struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// New returns a Dir rooted at path on fs.
func New(fs afero.Fs, path string, logger *zap.Logger) *Dir {
	if path == "" {
		path = DefaultDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dir{fs: fs, path: path, logger: logger.Named("downloads")}
}

// NewOS returns a Dir on the real filesystem.
func NewOS(path string, logger *zap.Logger) *Dir {
	return New(afero.NewOsFs(), path, logger)
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

// Join returns name resolved inside the directory.
func (d *Dir) Join(name string) string {
	return filepath.Join(d.path, name)
}

// Sub returns a Dir for name inside d on the same filesystem. Characters
// outside [A-Za-z0-9._-] in name are replaced with '_', so test names such as
// "TestA/case_1" map to one flat directory.
func (d *Dir) Sub(name string) *Dir {
	return &Dir{fs: d.fs, path: filepath.Join(d.path, SafeName(name)), logger: d.logger}
}

// SafeName maps name to a single path element.
func SafeName(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, name)
	if strings.Trim(safe, ".") == "" {
		return "_"
	}
	return safe
}

// Remove deletes the directory and everything under it.
func (d *Dir) Remove() {
	if err := d.fs.RemoveAll(d.path); err != nil {
		d.logger.Warn("could not remove downloads directory", zap.String("dir", d.path), zap.Error(err))
	}
}

// Ensure creates the directory if it does not exist.
func (d *Dir) Ensure() error {
	return d.fs.MkdirAll(d.path, 0o755)
}

// CleanupFile removes a single file if present.
func (d *Dir) CleanupFile(path string) {
	exists, err := afero.Exists(d.fs, path)
	if err != nil {
		d.logger.Warn("could not stat downloaded file", zap.String("path", path), zap.Error(err))
		return
	}
	if !exists {
		return
	}
	if err := d.fs.Remove(path); err != nil {
		d.logger.Warn("could not delete downloaded file", zap.String("path", path), zap.Error(err))
		return
	}
	d.logger.Info("cleaned up downloaded file", zap.String("path", path))
}

// CleanupAll removes every regular file directly inside the directory and
// returns how many were removed. Subdirectories are left untouched.
func (d *Dir) CleanupAll() int {
	exists, err := afero.DirExists(d.fs, d.path)
	if err != nil || !exists {
		return 0
	}

	entries, err := afero.ReadDir(d.fs, d.path)
	if err != nil {
		d.logger.Warn("could not read downloads directory", zap.String("dir", d.path), zap.Error(err))
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		path := filepath.Join(d.path, entry.Name())
		if err := d.fs.Remove(path); err != nil {
			d.logger.Warn("could not delete downloaded file", zap.String("path", path), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		d.logger.Info("cleaned up downloads directory", zap.String("dir", d.path), zap.Int("files", removed))
	}
	return removed
}

// Verify reports whether path exists and is non-empty.
func (d *Dir) Verify(path string) bool {
	info, err := d.fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
