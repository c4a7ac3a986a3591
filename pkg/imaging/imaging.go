// Package imaging provides the PNG decode/scale/encode helpers shared by the
// profile builder, the stamp generator and the resize tool.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	_ "image/jpeg" // the generative API may return JPEG

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Load decodes an image file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Decode decodes image bytes held in memory.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image bytes: %w", err)
	}
	return img, nil
}

// SavePNG writes img to path as PNG, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// ToRGBA returns img converted to RGBA, or img itself if it already is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Copy(rgba, img.Bounds().Min, img, img.Bounds(), draw.Src, nil)
	return rgba
}

// ResizeExact returns img resized to exactly width x height using Lanczos3.
func ResizeExact(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// FitHeight scales img to the target height, preserving aspect ratio.
func FitHeight(img image.Image, height int) image.Image {
	b := img.Bounds()
	ratio := float64(b.Dx()) / float64(b.Dy())
	width := int(ratio * float64(height))
	if width < 1 {
		width = 1
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// Thumbnail renders img onto a transparent size x size canvas, scaled down to
// fit while preserving aspect ratio and centered. Images already within the
// bounds are not upscaled.
func Thumbnail(img image.Image, size int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	tw, th := w, h
	if w > size || h > size {
		if w >= h {
			tw = size
			th = h * size / w
		} else {
			th = size
			tw = w * size / h
		}
		if tw < 1 {
			tw = 1
		}
		if th < 1 {
			th = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	offX := (size - tw) / 2
	offY := (size - th) / 2
	target := image.Rect(offX, offY, offX+tw, offY+th)
	draw.CatmullRom.Scale(dst, target, img, b, draw.Over, nil)
	return dst
}

// Opaque returns a size x size canvas filled with the given color.
func Opaque(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
