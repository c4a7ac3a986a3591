package scratch

import (
	"fmt"
	"os"
)

// ValidateSourceDir checks that a source directory exists and is a
// directory. Used before building so the failure message can point at the
// expected location instead of a scan coming up empty.
func ValidateSourceDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("source directory not found: %s", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", path)
	}
	return nil
}
