package version

import (
	"os"
	"path/filepath"

	"howett.net/plist"
)

// Set at build time with -ldflags "-X".
var (
	Version     = "1.0.0"
	BuildNumber = ""
	CommitID    = ""
	BuildTime   = ""
)

// Info contains detailed version information
type Info struct {
	Version     string `json:"version"`
	BuildNumber string `json:"buildNumber"`
	CommitID    string `json:"commitId"`
	BuildTime   string `json:"buildTime"`
}

// Get returns the build version, preferring the macOS bundle's short version
// string when running from an .app bundle.
func Get() Info {
	info := Info{
		Version:     Version,
		BuildNumber: BuildNumber,
		CommitID:    CommitID,
		BuildTime:   BuildTime,
	}
	if exe, err := os.Executable(); err == nil {
		if b, ok := bundleInfo(exe); ok {
			if b.ShortVersion != "" {
				info.Version = b.ShortVersion
			}
			if info.BuildNumber == "" {
				info.BuildNumber = b.BundleVersion
			}
		}
	}
	return info
}

func (i Info) String() string {
	if i.BuildNumber != "" {
		return i.Version + "+" + i.BuildNumber
	}
	return i.Version
}

type bundle struct {
	ShortVersion  string `plist:"CFBundleShortVersionString"`
	BundleVersion string `plist:"CFBundleVersion"`
	Identifier    string `plist:"CFBundleIdentifier"`
}

// bundleInfo reads Contents/Info.plist when exe lives in
// <name>.app/Contents/MacOS.
func bundleInfo(exe string) (bundle, bool) {
	macOSDir := filepath.Dir(exe)
	if filepath.Base(macOSDir) != "MacOS" {
		return bundle{}, false
	}
	contentsDir := filepath.Dir(macOSDir)
	if filepath.Base(contentsDir) != "Contents" || filepath.Ext(filepath.Dir(contentsDir)) != ".app" {
		return bundle{}, false
	}

	data, err := os.ReadFile(filepath.Join(contentsDir, "Info.plist"))
	if err != nil {
		return bundle{}, false
	}
	var b bundle
	if _, err := plist.Unmarshal(data, &b); err != nil {
		return bundle{}, false
	}
	return b, true
}
