package desktop

// WindowHost drives the single native window.
type WindowHost interface {
	WindowShow()
	WindowHide()
	WindowFocus()
	WindowCenter()
	WindowSetPosition(x, y int)
	WindowSetFullScreen(on bool)
	// PrimaryWorkArea reports the usable size of the primary display.
	PrimaryWorkArea() (width, height int, ok bool)
}

// TrayHost owns the tray icon.
type TrayHost interface {
	SetTrayIcon(icon []byte)
	DestroyTray()
}

// PageHost talks to the hosted web content.
type PageHost interface {
	ExecJS(js string)
	ReloadPage()
}

// ShellHost covers menus, notifications and process level actions.
type ShellHost interface {
	SetMenu(groups []MenuGroup)
	Notify(title, body string)
	OpenExternal(url string) error
	TrashDir(path string) error
	Relaunch(args []string) error
	// Quit asks the toolkit loop to finish; the window close path runs.
	Quit()
	// Exit terminates the process immediately.
	Exit(code int)
}

// Host is everything the controllers need from the GUI toolkit.
type Host interface {
	WindowHost
	TrayHost
	PageHost
	ShellHost
}

// Settings is the persisted state the controllers read and write.
type Settings interface {
	Theme() string
	SetTheme(theme string) error
	SoundMuted() bool
	SetSoundMuted(muted bool) error
}
