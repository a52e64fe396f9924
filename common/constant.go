package common

const (
	AppName    = "WhatsApp"
	AppID      = "com.kesty.whatsapp"
	DefaultURL = "https://web.whatsapp.com/"

	WindowWidth  = 1200
	WindowHeight = 750

	// StorageKey prefixes every persisted setting name.
	StorageKey = "kestyW_"

	RelaunchFlag = "relaunch"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	DarkThemeDelayMs = 1000
	DefaultLogLevel  = 4
)

// ExeDirPath and UserDataDir are resolved once at startup.
var (
	ExeDirPath  string
	UserDataDir string
)
