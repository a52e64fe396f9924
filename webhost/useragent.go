package webhost

import "runtime"

const (
	userAgentMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	userAgentWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	userAgentLinux   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// UserAgent returns the desktop Chrome user agent for goos. The hosted site
// refuses embedded browsers it does not recognise.
func UserAgent(goos string) string {
	switch goos {
	case "darwin":
		return userAgentMac
	case "windows":
		return userAgentWindows
	default:
		return userAgentLinux
	}
}

// DefaultUserAgent is UserAgent for the running platform.
func DefaultUserAgent() string {
	return UserAgent(runtime.GOOS)
}
