package desktop

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/OpenNHP/opennhp/nhp/log"
)

// Signals raised by the hosted page.
const (
	SignalChangeIcon        = "change-icon"
	SignalNotificationClick = "notification-click"
	SignalWindowFocus       = "window-focus"
	SignalLeaveFullScreen   = "leave-full-screen"
	SignalOpenExternal      = "open-external"
	SignalSearchSelection   = "search-selection"
)

// Signals lists every page signal the app listens to.
func Signals() []string {
	return []string{
		SignalChangeIcon,
		SignalNotificationClick,
		SignalWindowFocus,
		SignalLeaveFullScreen,
		SignalOpenExternal,
		SignalSearchSelection,
	}
}

const searchURL = "https://google.com/search?q="

// Notifications relays page signals into tray and window changes and sends
// native notifications for user actions.
type Notifications struct {
	app *App
}

// Handle dispatches one page signal. Unknown signals are logged and dropped.
func (n *Notifications) Handle(signal string, data ...any) {
	switch signal {
	case SignalChangeIcon:
		n.app.Tray.MarkUnread()
	case SignalNotificationClick:
		n.app.Window.ShowAndCenter()
	case SignalWindowFocus:
		n.app.Tray.ClearUnread()
	case SignalLeaveFullScreen:
		n.app.Window.LeaveFullScreen()
	case SignalOpenExternal:
		n.openExternal(firstString(data))
	case SignalSearchSelection:
		text := strings.TrimSpace(firstString(data))
		if text == "" {
			return
		}
		n.openExternal(searchURL + url.QueryEscape(text))
	default:
		log.Warning("unknown page signal: %s", signal)
	}
}

func (n *Notifications) openExternal(raw string) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		log.Warning("refusing to open external url %q", raw)
		return
	}
	if err := n.app.host.OpenExternal(u.String()); err != nil {
		log.Error("failed to open external url %s: %v", u, err)
	}
}

func (n *Notifications) soundToggled(muted bool) {
	if muted {
		n.app.host.Notify("Sound Muted", "App sound has been muted completely. Audio, video, and any other sound.")
		return
	}
	n.app.host.Notify("Sound Enabled", "App sound has been re-enabled.")
}

func firstString(data []any) string {
	if len(data) == 0 || data[0] == nil {
		return ""
	}
	if s, ok := data[0].(string); ok {
		return s
	}
	return fmt.Sprint(data[0])
}
