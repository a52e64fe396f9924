package desktop

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olubunmitosin/kesty-whatsapp/common"
)

// Accelerators use the "+"-joined form understood by the toolkit parser.
const (
	AcceleratorFullScreen    = "ctrl+cmdorctrl+f"
	AcceleratorFullScreenKey = "cmdorctrl+f"
)

const (
	labelMuteSound         = "Mute Sound"
	labelUnmuteSound       = "Unmute Sound"
	labelClearAppData      = "Clear App Data"
	labelReloadApplication = "Reload Application"
	labelToggleFullScreen  = "Toggle Full Screen"
)

type MenuItem struct {
	Label       string
	Accelerator string
	Hidden      bool
	Action      func()
}

type MenuGroup struct {
	Label string
	Items []MenuItem
}

// MenuActions are the callbacks wired into the menu.
type MenuActions struct {
	Exit             func()
	SelectTheme      func(theme string)
	ToggleSound      func()
	ClearAppData     func()
	Reload           func()
	ToggleFullScreen func()
}

var titleCaser = cases.Title(language.English)

// SoundLabel is the mute menu entry label for the given state.
func SoundLabel(muted bool) string {
	if muted {
		return labelUnmuteSound
	}
	return labelMuteSound
}

// BuildMenu returns the File, Theme and Action groups for the current
// settings. Menus are rebuilt from scratch whenever a label must change.
func BuildMenu(s Settings, act MenuActions) []MenuGroup {
	themeItem := func(theme string) MenuItem {
		return MenuItem{
			Label: titleCaser.String(theme),
			Action: func() {
				if act.SelectTheme != nil {
					act.SelectTheme(theme)
				}
			},
		}
	}

	return []MenuGroup{
		{
			Label: "File",
			Items: []MenuItem{
				{Label: "Exit", Action: act.Exit},
			},
		},
		{
			Label: "Theme",
			Items: []MenuItem{
				themeItem(common.ThemeLight),
				themeItem(common.ThemeDark),
			},
		},
		{
			Label: "Action",
			Items: []MenuItem{
				{Label: SoundLabel(s.SoundMuted()), Action: act.ToggleSound},
				{Label: labelClearAppData, Action: act.ClearAppData},
				{Label: labelReloadApplication, Action: act.Reload},
				{Label: labelToggleFullScreen, Accelerator: AcceleratorFullScreen, Action: act.ToggleFullScreen},
				{Label: labelToggleFullScreen, Accelerator: AcceleratorFullScreenKey, Hidden: true, Action: act.ToggleFullScreen},
			},
		},
	}
}

// FindItem returns the first item with the given label, for tests and
// adapters that need to locate an entry.
func FindItem(groups []MenuGroup, group, label string) (MenuItem, bool) {
	for _, g := range groups {
		if g.Label != group {
			continue
		}
		for _, item := range g.Items {
			if item.Label == label {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}
