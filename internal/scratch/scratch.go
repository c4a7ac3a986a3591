// Package scratch manages the throwaway directory trees used while
// assembling a profile archive.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Dir is a scratch directory owned by a single build. It exists from New
// until Cleanup and is never shared.
type Dir struct {
	path   string
	logger hclog.Logger
}

// New creates a fresh scratch directory under the system temp root.
func New(logger hclog.Logger) (*Dir, error) {
	path, err := os.MkdirTemp("", "stamptools-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	logger.Debug("📁 Created scratch directory", "path", path)
	return &Dir{path: path, logger: logger}, nil
}

// Path returns the scratch root.
func (d *Dir) Path() string {
	return d.path
}

// Join resolves a path relative to the scratch root.
func (d *Dir) Join(parts ...string) string {
	return filepath.Join(append([]string{d.path}, parts...)...)
}

// Cleanup removes the scratch tree. Safe to defer; failures are logged, not
// returned, since nothing can be done about them at that point.
func (d *Dir) Cleanup() {
	if err := os.RemoveAll(d.path); err != nil {
		d.logger.Warn("⚠️ Failed to remove scratch directory", "path", d.path, "error", err)
		return
	}
	d.logger.Debug("🧹 Removed scratch directory", "path", d.path)
}
