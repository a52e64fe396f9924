package ui

import (
	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/olubunmitosin/kesty-whatsapp/desktop"
)

// buildAppMenu converts the menu groups into the toolkit menu. The macOS
// application menu and the edit menu are always present so the standard
// shortcuts keep working inside the page.
func buildAppMenu(groups []desktop.MenuGroup) *menu.Menu {
	appMenu := menu.NewMenu()
	appMenu.Append(menu.AppMenu())

	for _, group := range groups {
		sub := appMenu.AddSubmenu(group.Label)
		for _, item := range group.Items {
			entry := sub.AddText(item.Label, accelerator(item.Accelerator), clickHandler(item.Action))
			entry.Hidden = item.Hidden
		}
	}

	appMenu.Append(menu.EditMenu())
	return appMenu
}

func accelerator(s string) *keys.Accelerator {
	if s == "" {
		return nil
	}
	acc, err := keys.Parse(s)
	if err != nil {
		log.Warning("invalid menu accelerator %q: %v", s, err)
		return nil
	}
	return acc
}

func clickHandler(action func()) menu.Callback {
	if action == nil {
		return nil
	}
	return func(*menu.CallbackData) {
		action()
	}
}
