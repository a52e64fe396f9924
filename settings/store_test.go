package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olubunmitosin/kesty-whatsapp/common"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "kesty-settings-log")
	if err != nil {
		panic(err)
	}
	common.InitLogger(dir, common.DefaultLogLevel, "settings-test")
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestStore_Defaults(t *testing.T) {
	s := Open(t.TempDir(), "")

	assert.Equal(t, common.ThemeLight, s.Theme())
	assert.False(t, s.SoundMuted())

	_, ok := s.Get(KeyTheme)
	assert.False(t, ok)
	assert.NoFileExists(t, s.Path())
}

func TestStore_SetThenGet(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, "")

	require.NoError(t, s.SetTheme(common.ThemeDark))
	assert.Equal(t, common.ThemeDark, s.Theme())

	v, ok := s.Get(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	// a second store over the same directory sees the write
	assert.Equal(t, common.ThemeDark, Open(dir, "").Theme())
}

func TestStore_KeysArePrefixed(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, "kestyW_")
	require.NoError(t, s.SetSoundMuted(true))

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "kestyW_sound")

	other := Open(dir, "other_")
	assert.False(t, other.SoundMuted())
	assert.Empty(t, other.Names())
	assert.Equal(t, []string{"sound"}, s.Names())
}

func TestStore_SoundRoundTrip(t *testing.T) {
	s := Open(t.TempDir(), "")
	start := s.SoundMuted()

	require.NoError(t, s.SetSoundMuted(!s.SoundMuted()))
	assert.NotEqual(t, start, s.SoundMuted())
	require.NoError(t, s.SetSoundMuted(!s.SoundMuted()))
	assert.Equal(t, start, s.SoundMuted())
}

func TestStore_ClearedDirectoryReadsDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "userData")
	s := Open(dir, "")
	require.NoError(t, s.SetTheme(common.ThemeDark))

	require.NoError(t, os.RemoveAll(dir))

	assert.Equal(t, common.ThemeLight, s.Theme())
	_, ok := s.Get(KeyTheme)
	assert.False(t, ok)
}

func TestStore_CorruptFileReadsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not = [toml"), 0644))

	s := Open(dir, "")
	assert.Equal(t, common.ThemeLight, s.Theme())

	// a write replaces the unreadable file
	require.NoError(t, s.SetTheme(common.ThemeDark))
	assert.Equal(t, common.ThemeDark, s.Theme())
}

func TestStore_RejectsUnsupportedValues(t *testing.T) {
	s := Open(t.TempDir(), "")
	assert.ErrorIs(t, s.Set("list", []string{"a"}), errUnsupportedValue)
	assert.Error(t, s.SetTheme("sepia"))
}

func TestStore_UnknownThemeValueReadsLight(t *testing.T) {
	s := Open(t.TempDir(), "")
	require.NoError(t, s.Set(KeyTheme, "sepia"))
	assert.Equal(t, common.ThemeLight, s.Theme())
}
