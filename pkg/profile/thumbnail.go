package profile

import (
	"fmt"
	"io"
	"os"

	"github.com/coloring-page-maker/stamptools/pkg/imaging"
)

// Thumbnailer renders a button icon from a stamp image file.
//
// Two implementations exist: ScaledThumbnailer produces proper fixed-size
// icons, CopyThumbnailer copies the stamp verbatim. The builder prefers the
// former and degrades to the latter when rendering fails, so thumbnailing is
// best-effort and never aborts a build.
type Thumbnailer interface {
	Thumbnail(sourcePath, destPath string) error
}

// ScaledThumbnailer scales a stamp down onto a transparent square canvas,
// preserving aspect ratio and alpha, centered.
type ScaledThumbnailer struct {
	// Size is the canvas edge in pixels. Zero means ThumbnailSize.
	Size int
}

func (t ScaledThumbnailer) Thumbnail(sourcePath, destPath string) error {
	size := t.Size
	if size == 0 {
		size = ThumbnailSize
	}

	img, err := imaging.Load(sourcePath)
	if err != nil {
		return fmt.Errorf("thumbnailing: %w", err)
	}

	return imaging.SavePNG(destPath, imaging.Thumbnail(img, size))
}

// CopyThumbnailer copies the stamp verbatim. The deck then shows the
// full-size image scaled by the device firmware instead of a real thumbnail.
type CopyThumbnailer struct{}

func (CopyThumbnailer) Thumbnail(sourcePath, destPath string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("copying stamp: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerms)
	if err != nil {
		return fmt.Errorf("copying stamp: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copying stamp: %w", err)
	}
	return dst.Close()
}
