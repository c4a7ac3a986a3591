package profile

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Verify checks a built profile archive: the sentinel header, that the
// remaining bytes form a readable zip, that both manifests parse, and that
// every keypad action's icon reference resolves to a file under the page's
// Images directory.
func Verify(path string, logger hclog.Logger) error {
	logger.Info("🔎 Verifying profile archive", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}

	if len(data) < len(HeaderMagic) || string(data[:len(HeaderMagic)]) != HeaderMagic {
		return fmt.Errorf("%w: %s", ErrBadHeader, path)
	}

	body := data[len(HeaderMagic):]
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArchive, err)
	}

	entries := make(map[string]bool, len(zr.File))
	var rootManifestName, pageManifestName string
	for _, f := range zr.File {
		entries[f.Name] = true
		parts := strings.Split(f.Name, "/")
		switch {
		case len(parts) == 2 && parts[1] == ManifestFileName:
			rootManifestName = f.Name
		case strings.Contains(f.Name, "/"+ProfilesDirName+"/") && strings.HasSuffix(f.Name, "/"+ManifestFileName):
			pageManifestName = f.Name
		}
	}
	if rootManifestName == "" || pageManifestName == "" {
		return fmt.Errorf("%w: manifest.json missing", ErrBadArchive)
	}

	var manifest Manifest
	if err := unmarshalEntry(zr, rootManifestName, &manifest); err != nil {
		return err
	}
	if manifest.Version != FormatVersion {
		return fmt.Errorf("%w: version %q", ErrBadArchive, manifest.Version)
	}

	var page PageManifest
	if err := unmarshalEntry(zr, pageManifestName, &page); err != nil {
		return err
	}

	pageDir := strings.TrimSuffix(pageManifestName, "/"+ManifestFileName)
	for _, controller := range page.Controllers {
		for key, action := range controller.Actions {
			for _, view := range action.ViewParam {
				if view.Icon == "" {
					continue
				}
				if !entries[pageDir+"/"+view.Icon] {
					return fmt.Errorf("%w: action %s references %s", ErrDanglingIcon, key, view.Icon)
				}
			}
		}
	}

	logger.Info("✅ Profile archive verified", "entries", len(entries))
	return nil
}

func unmarshalEntry(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
