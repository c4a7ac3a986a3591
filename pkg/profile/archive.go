package profile

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// zipTree writes every file under root into a deflate zip at outputPath,
// preserving paths relative to root.
func zipTree(root, outputPath string) error {
	out, err := os.OpenFile(outputPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, FilePerms)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	zw := zip.NewWriter(out)
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if walkErr != nil {
		zw.Close()
		out.Close()
		return fmt.Errorf("writing archive: %w", walkErr)
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("closing archive: %w", err)
	}
	return out.Close()
}

// patchHeader rewrites the archive with HeaderMagic prepended. The device
// software requires the sentinel before the zip magic bytes, which
// archive/zip cannot emit on its own, so the file is rewritten after the
// fact.
func patchHeader(outputPath string) error {
	zipContent, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("re-reading archive: %w", err)
	}

	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerms)
	if err != nil {
		return fmt.Errorf("rewriting archive: %w", err)
	}

	if _, err := out.Write([]byte(HeaderMagic)); err != nil {
		out.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := out.Write(zipContent); err != nil {
		out.Close()
		return fmt.Errorf("writing archive body: %w", err)
	}
	return out.Close()
}
