package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyAcceptsBuiltArchive(t *testing.T) {
	stampsDir := t.TempDir()
	for i := 1; i <= 3; i++ {
		writeStamp(t, stampsDir, i, 32, 32)
	}

	out := buildTo(t, stampsDir, Options{})
	require.NoError(t, Verify(out, testLogger()))
}

func TestVerifyRejectsMissingHeader(t *testing.T) {
	stampsDir := t.TempDir()
	writeStamp(t, stampsDir, 1, 32, 32)
	out := buildTo(t, stampsDir, Options{})

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	// Strip the sentinel: still a valid zip, no longer a valid profile.
	stripped := filepath.Join(t.TempDir(), "stripped.ulanziDeckProfile")
	require.NoError(t, os.WriteFile(stripped, data[len(HeaderMagic):], 0o644))

	require.ErrorIs(t, Verify(stripped, testLogger()), ErrBadHeader)
}

func TestVerifyRejectsTruncatedArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ulanziDeckProfile")
	require.NoError(t, os.WriteFile(path, []byte(HeaderMagic+"not a zip"), 0o644))

	require.ErrorIs(t, Verify(path, testLogger()), ErrBadArchive)
}

func TestVerifyRejectsMissingFile(t *testing.T) {
	require.Error(t, Verify(filepath.Join(t.TempDir(), "missing"), testLogger()))
}
