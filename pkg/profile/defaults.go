package profile

import "fmt"

// =================================
// Archive format
// =================================
const (
	// HeaderMagic is the 12-byte sentinel Ulanzi Studio expects before the
	// zip's own magic bytes. Imports fail without it.
	HeaderMagic = "#Version: 2\n"

	ProfileDirSuffix = ".ulanziProfile"
	ProfilesDirName  = "Profiles"
	ImagesDirName    = "Images"
	ManifestFileName = "manifest.json"
	IconFileName     = "icon.png"
	FormatVersion    = "2.0"
	DeviceUUID       = "generated"
)

// =================================
// Action defaults
// =================================
const (
	HotkeyActionType = "com.ulanzi.ulanzideck.system.hotkey"
	HotkeyModifiers  = "Ctrl+Shift+Alt"
	DefaultIconRef   = "Images/btn_hotkey.png"
)

// =================================
// Profile defaults
// =================================
const (
	DefaultDeviceModel = "D200H"
	DefaultProfileName = "Coloring Page Maker"
	DefaultPageName    = "Main Page"
	DefaultOutputFile  = "public/Coloring Page Maker.ulanziDeckProfile"
	DefaultStampsDir   = "public/stamps"
)

// =================================
// Image defaults
// =================================
const (
	ThumbnailSize   = 80  // button icon edge, pixels
	ProfileIconSize = 256 // profile icon edge, pixels
)

// =================================
// File permissions defaults
// =================================
const (
	FilePerms = 0o644
	DirPerms  = 0o755
)

// Layout describes the button grid of the target device and how stamp
// assets map onto it. All placement constants live here rather than in the
// build routine.
type Layout struct {
	// Columns is the keypad grid width; rows follow in reading order.
	Columns int

	// MaxActions caps how many stamps are placed. Stamps discovered beyond
	// the cap are dropped silently.
	MaxActions int

	// HotkeyAlphabet supplies hotkey letters in discovery order.
	HotkeyAlphabet string

	// StampCount is the highest stamp index scanned for.
	StampCount int

	// ReservedIndices are stamp indices never placed on the keypad.
	ReservedIndices []int
}

// DefaultLayout matches the D200H keypad: 5 columns by 3 rows with hotkeys
// A through M, leaving the last two cells free. Stamp 14 is the remove tool
// and is never placed.
func DefaultLayout() Layout {
	return Layout{
		Columns:         5,
		MaxActions:      13,
		HotkeyAlphabet:  "ABCDEFGHIJKLM",
		StampCount:      14,
		ReservedIndices: []int{14},
	}
}

// Reserved reports whether a stamp index is excluded from placement.
func (l Layout) Reserved(index int) bool {
	for _, r := range l.ReservedIndices {
		if r == index {
			return true
		}
	}
	return false
}

// Position returns the grid cell, in reading order, for the action at
// discovery order idx.
func (l Layout) Position(idx int) (col, row int) {
	return idx % l.Columns, idx / l.Columns
}

// PositionKey returns the "{col}_{row}" key Ulanzi uses in page manifests.
func (l Layout) PositionKey(idx int) string {
	col, row := l.Position(idx)
	return fmt.Sprintf("%d_%d", col, row)
}

// Capacity is the number of stamps that can actually be placed, limited by
// both the action cap and the hotkey alphabet.
func (l Layout) Capacity() int {
	if len(l.HotkeyAlphabet) < l.MaxActions {
		return len(l.HotkeyAlphabet)
	}
	return l.MaxActions
}
