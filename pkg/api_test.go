package pkg

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coloring-page-maker/stamptools/pkg/profile"
)

func writeTestStamp(t *testing.T, dir string, index int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: uint8(index * 31), A: 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%d.png", index)))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestBuildProfile(t *testing.T) {
	stampsDir := t.TempDir()
	writeTestStamp(t, stampsDir, 1)
	writeTestStamp(t, stampsDir, 2)

	outputPath := filepath.Join(t.TempDir(), "out.ulanziDeckProfile")
	logger := hclog.NewNullLogger()

	out, err := BuildProfile(logger, stampsDir, outputPath)
	require.NoError(t, err)
	assert.Equal(t, outputPath, out)
	require.NoError(t, profile.Verify(out, logger))
}

func TestBuildProfileForDevice(t *testing.T) {
	stampsDir := t.TempDir()
	writeTestStamp(t, stampsDir, 1)

	outputPath := filepath.Join(t.TempDir(), "d300.ulanziDeckProfile")
	out, err := BuildProfileForDevice(hclog.NewNullLogger(), stampsDir, outputPath, "D300")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, profile.HeaderMagic, string(data[:len(profile.HeaderMagic)]))
}
