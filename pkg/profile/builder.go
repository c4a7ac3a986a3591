package profile

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/coloring-page-maker/stamptools/internal/scratch"
	"github.com/coloring-page-maker/stamptools/pkg/imaging"
)

// Options configures a profile build.
type Options struct {
	// StampsDir holds the source images, named "{index}.png".
	StampsDir string

	// OutputPath is the destination .ulanziDeckProfile file. Parent
	// directories are created if absent.
	OutputPath string

	// DeviceModel selects the target device variant. Defaults to
	// DefaultDeviceModel. Passed through unvalidated.
	DeviceModel string

	// ProfileName is the display name shown in Ulanzi Studio.
	ProfileName string

	// Layout overrides the grid/hotkey configuration. Zero value means
	// DefaultLayout.
	Layout Layout

	// Thumbnailer overrides the button icon strategy. Nil means
	// ScaledThumbnailer with the default size.
	Thumbnailer Thumbnailer
}

func (o *Options) fillDefaults() {
	if o.StampsDir == "" {
		o.StampsDir = DefaultStampsDir
	}
	if o.OutputPath == "" {
		o.OutputPath = DefaultOutputFile
	}
	if o.DeviceModel == "" {
		o.DeviceModel = DefaultDeviceModel
	}
	if o.ProfileName == "" {
		o.ProfileName = DefaultProfileName
	}
	if o.Layout.Columns == 0 {
		o.Layout = DefaultLayout()
	}
	if o.Thumbnailer == nil {
		o.Thumbnailer = ScaledThumbnailer{}
	}
}

// Build assembles a complete Ulanzi Studio profile archive from the stamps
// in opts.StampsDir and writes it to opts.OutputPath.
//
// The profile tree is laid out in a scratch directory, zipped, and the
// result rewritten with the HeaderMagic sentinel prepended. The scratch tree
// is removed on all exit paths; the destination file is only written once
// the whole tree is assembled.
//
// Returns the output path on success.
func Build(logger hclog.Logger, opts Options) (string, error) {
	opts.fillDefaults()
	layout := opts.Layout

	// 🔍 Discovery
	stamps, err := DiscoverStamps(opts.StampsDir, layout, logger)
	if err != nil {
		return "", err
	}
	logger.Info("🔍 Discovered stamps", "count", len(stamps), "dir", opts.StampsDir)

	dir, err := scratch.New(logger)
	if err != nil {
		return "", err
	}
	defer dir.Cleanup()

	profileUUID := uuid.NewString()
	pageUUID := uuid.NewString()

	profileDir := dir.Join(profileUUID + ProfileDirSuffix)
	pageDir := filepath.Join(profileDir, ProfilesDirName, pageUUID)
	imagesDir := filepath.Join(pageDir, ImagesDirName)
	if err := os.MkdirAll(imagesDir, DirPerms); err != nil {
		return "", fmt.Errorf("creating profile tree: %w", err)
	}

	// 📜 Root manifest
	manifest := Manifest{
		Device: DeviceInfo{
			Model: opts.DeviceModel,
			UUID:  DeviceUUID,
		},
		Icon: IconFileName,
		Name: opts.ProfileName,
		Pages: PagesInfo{
			Current: pageUUID,
			Pages:   []string{pageUUID},
		},
		Version: FormatVersion,
	}
	if err := writeJSON(filepath.Join(profileDir, ManifestFileName), manifest); err != nil {
		return "", err
	}

	// 🖼️ Profile icon, best effort like thumbnails
	icon := imaging.Opaque(ProfileIconSize, color.White)
	if err := imaging.SavePNG(filepath.Join(profileDir, IconFileName), icon); err != nil {
		logger.Warn("⚠️ Skipping profile icon", "error", err)
	}

	// 🎨 Place stamps on the keypad grid in discovery order
	actions := make(map[string]Action)
	lastLetter := ""
	for idx, stamp := range stamps {
		if idx >= layout.Capacity() {
			logger.Warn("⚠️ Keypad full, dropping remaining stamps",
				"placed", idx, "dropped", len(stamps)-idx)
			break
		}

		hash, err := HashFile(stamp.Path)
		if err != nil {
			return "", err
		}
		iconFileName := hash + ".png"

		dest := filepath.Join(imagesDir, iconFileName)
		if err := opts.Thumbnailer.Thumbnail(stamp.Path, dest); err != nil {
			logger.Warn("⚠️ Thumbnail failed, copying stamp verbatim",
				"stamp", stamp.Index, "error", err)
			if err := (CopyThumbnailer{}).Thumbnail(stamp.Path, dest); err != nil {
				return "", err
			}
		}

		letter := string(layout.HotkeyAlphabet[idx])
		actions[layout.PositionKey(idx)] = NewHotkeyAction(stamp.Index, iconFileName, letter)
		lastLetter = letter
		logger.Debug("🎨 Placed stamp",
			"stamp", stamp.Index, "position", layout.PositionKey(idx), "hotkey", letter)
	}

	// 📜 Page manifest: populated keypad, empty encoder set
	page := PageManifest{
		Controllers: []Controller{
			{Actions: actions, Type: "Keypad"},
			{Actions: map[string]Action{}, Type: "Encoder"},
		},
		Icon: "",
		Name: DefaultPageName,
	}
	if err := writeJSON(filepath.Join(pageDir, ManifestFileName), page); err != nil {
		return "", err
	}

	// 💾 Serialize: zip the tree, then patch the sentinel header in
	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), DirPerms); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := zipTree(dir.Path(), opts.OutputPath); err != nil {
		return "", err
	}
	if err := patchHeader(opts.OutputPath); err != nil {
		return "", err
	}

	logger.Info("✅ Generated Ulanzi profile",
		"output", opts.OutputPath,
		"stamps", len(actions),
		"hotkeys", HotkeyModifiers+"+A-"+lastLetter,
		"device", opts.DeviceModel)
	return opts.OutputPath, nil
}
