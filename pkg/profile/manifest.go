package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Manifest is the root manifest.json of a .ulanziProfile tree.
type Manifest struct {
	Device  DeviceInfo `json:"Device"`
	Icon    string     `json:"Icon"`
	Name    string     `json:"Name"`
	Pages   PagesInfo  `json:"Pages"`
	Version string     `json:"Version"`
}

// DeviceInfo identifies the target device variant. The model string is
// passed through to the device software unvalidated.
type DeviceInfo struct {
	Model string `json:"Model"`
	UUID  string `json:"UUID"`
}

// PagesInfo lists the profile's pages by UUID.
type PagesInfo struct {
	Current string   `json:"Current"`
	Pages   []string `json:"Pages"`
}

// PageManifest is the manifest.json of a single profile page. Ulanzi splits
// a page into one controller per input kind; this profile only populates the
// keypad, the encoder set stays empty.
type PageManifest struct {
	Controllers []Controller `json:"Controllers"`
	Icon        string       `json:"Icon"`
	Name        string       `json:"Name"`
}

// Controller holds the actions of one input kind, keyed by "{col}_{row}"
// grid position.
type Controller struct {
	Actions map[string]Action `json:"Actions"`
	Type    string            `json:"Type"`
}

// Action is a single button binding.
type Action struct {
	Action      string      `json:"Action"`
	ActionID    string      `json:"ActionID"`
	ActionParam ActionParam `json:"ActionParam"`
	LinkedTitle bool        `json:"LinkedTitle"`
	Name        string      `json:"Name"`
	State       int         `json:"State"`
	ViewParam   []ViewParam `json:"ViewParam"`
}

// ActionParam carries the hotkey the button sends.
type ActionParam struct {
	Hotkey string `json:"Hotkey"`
}

// ViewParam describes how the button is rendered.
type ViewParam struct {
	Icon    string `json:"Icon"`
	IconDef string `json:"IconDef"`
	IconEx  string `json:"IconEx"`
	Text    string `json:"Text"`
}

// NewHotkeyAction builds the keypad action for a stamp: a system hotkey
// binding with the stamp's thumbnail as button icon.
func NewHotkeyAction(stampIndex int, iconFileName, hotkeyLetter string) Action {
	iconRef := ImagesDirName + "/" + iconFileName
	return Action{
		Action:      HotkeyActionType,
		ActionID:    uuid.NewString(),
		ActionParam: ActionParam{Hotkey: HotkeyModifiers + "+" + hotkeyLetter},
		LinkedTitle: true,
		Name:        "Hotkey",
		State:       0,
		ViewParam: []ViewParam{
			{
				Icon:    iconRef,
				IconDef: DefaultIconRef,
				IconEx:  iconRef,
				Text:    fmt.Sprintf("Stamp %d", stampIndex),
			},
		},
	}
}

// writeJSON marshals v and writes it to path.
func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, FilePerms); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
