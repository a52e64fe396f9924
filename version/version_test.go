package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const infoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>com.kesty.whatsapp</string>
	<key>CFBundleShortVersionString</key>
	<string>2.3.4</string>
	<key>CFBundleVersion</key>
	<string>99</string>
</dict>
</plist>`

func TestBundleInfo(t *testing.T) {
	contents := filepath.Join(t.TempDir(), "WhatsApp.app", "Contents")
	require.NoError(t, os.MkdirAll(filepath.Join(contents, "MacOS"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(contents, "Info.plist"), []byte(infoPlist), 0644))

	b, ok := bundleInfo(filepath.Join(contents, "MacOS", "kesty"))
	require.True(t, ok)
	assert.Equal(t, "2.3.4", b.ShortVersion)
	assert.Equal(t, "99", b.BundleVersion)
	assert.Equal(t, "com.kesty.whatsapp", b.Identifier)
}

func TestBundleInfo_NotABundle(t *testing.T) {
	_, ok := bundleInfo(filepath.Join(t.TempDir(), "bin", "kesty"))
	assert.False(t, ok)

	dir := filepath.Join(t.TempDir(), "Folder", "Contents", "MacOS")
	_, ok = bundleInfo(filepath.Join(dir, "kesty"))
	assert.False(t, ok)
}

func TestInfo_String(t *testing.T) {
	assert.Equal(t, "1.2.3", Info{Version: "1.2.3"}.String())
	assert.Equal(t, "1.2.3+7", Info{Version: "1.2.3", BuildNumber: "7"}.String())
}
