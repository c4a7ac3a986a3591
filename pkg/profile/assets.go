package profile

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// StampAsset is a stamp image discovered in the stamps directory.
type StampAsset struct {
	// Index is the stamp number, taken from the file name.
	Index int

	// Path is the location of the source PNG.
	Path string
}

// DiscoverStamps scans stampsDir for "{index}.png" across the layout's index
// range, skipping reserved indices. Missing files are warnings, not errors;
// they are simply left out of the result. Returns ErrNoStampsFound when
// nothing is discovered.
func DiscoverStamps(stampsDir string, layout Layout, logger hclog.Logger) ([]StampAsset, error) {
	if info, err := os.Stat(stampsDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrStampsDirMissing, stampsDir)
	}

	var stamps []StampAsset
	for i := 1; i <= layout.StampCount; i++ {
		if layout.Reserved(i) {
			continue
		}

		path := filepath.Join(stampsDir, fmt.Sprintf("%d.png", i))
		if _, err := os.Stat(path); err != nil {
			logger.Warn("⚠️ Missing stamp image", "path", path)
			continue
		}
		stamps = append(stamps, StampAsset{Index: i, Path: path})
	}

	if len(stamps) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoStampsFound, stampsDir)
	}
	return stamps, nil
}

// HashFile computes the MD5 hex digest of a file's contents. The digest
// names the stamp's thumbnail inside the archive, so it must be stable
// across runs on unchanged input.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return fmt.Sprintf("%x", md5.Sum(data)), nil
}
