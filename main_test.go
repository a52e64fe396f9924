package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olubunmitosin/kesty-whatsapp/common"
	"github.com/olubunmitosin/kesty-whatsapp/settings"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "kesty-main-log")
	if err != nil {
		panic(err)
	}
	common.InitLogger(dir, common.DefaultLogLevel, "main-test")
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestSetSetting(t *testing.T) {
	store := settings.Open(t.TempDir(), "")

	require.NoError(t, setSetting(store, settings.KeySound, "true"))
	assert.True(t, store.SoundMuted())

	require.NoError(t, setSetting(store, settings.KeyTheme, common.ThemeDark))
	assert.Equal(t, common.ThemeDark, store.Theme())

	require.NoError(t, setSetting(store, "note", "hello"))
	v, ok := store.Get("note")
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestSetSettingRejectsBadValues(t *testing.T) {
	store := settings.Open(t.TempDir(), "")

	assert.Error(t, setSetting(store, settings.KeySound, "loud"))
	assert.Error(t, setSetting(store, settings.KeyTheme, "sepia"))
	assert.Empty(t, store.Names())
}

func TestPrintSettings(t *testing.T) {
	store := settings.Open(t.TempDir(), "")
	require.NoError(t, store.SetSoundMuted(true))
	require.NoError(t, store.SetTheme(common.ThemeDark))

	var out bytes.Buffer
	require.NoError(t, printSettings(&out, store, ""))
	assert.Equal(t, "sound = true\ntheme = dark\n", out.String())

	out.Reset()
	require.NoError(t, printSettings(&out, store, settings.KeyTheme))
	assert.Equal(t, "dark\n", out.String())

	assert.Error(t, printSettings(&out, store, "missing"))
}

func TestAppCommands(t *testing.T) {
	app := newApp()
	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"run", "clear-data", "settings"}, names)

	relaunch := app.Command("run").Flags[2]
	assert.Equal(t, []string{common.RelaunchFlag}, relaunch.Names())
}
