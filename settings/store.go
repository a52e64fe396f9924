package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/olubunmitosin/kesty-whatsapp/common"
)

const FileName = "settings.toml"

// Setting names. The stored key is the store prefix followed by the name.
const (
	KeyTheme = "theme"
	KeySound = "sound"
)

var errUnsupportedValue = errors.New("settings value must be a string, bool or number")

// Store is a small persistent key-value map. Every read goes to disk and
// every write is flushed before Set returns, so a value that was set is
// visible to the next Get even across processes.
type Store struct {
	mu     sync.Mutex
	dir    string
	prefix string
}

// Open returns a store rooted at dir. The file is created on first write.
func Open(dir, prefix string) *Store {
	if prefix == "" {
		prefix = common.StorageKey
	}
	return &Store{dir: dir, prefix: prefix}
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

func (s *Store) Prefix() string {
	return s.prefix
}

// Get returns the value stored under name. Missing files, parse failures and
// absent keys all report ok == false.
func (s *Store) Get(name string) (value any, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	value, ok = values[s.prefix+name]
	return value, ok
}

// Set stores value under name and writes the file.
func (s *Store) Set(name string, value any) error {
	switch value.(type) {
	case string, bool, int, int64, float64:
	default:
		return fmt.Errorf("%s: %w", name, errUnsupportedValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	values[s.prefix+name] = value
	return s.save(values)
}

// Names lists the setting names currently stored under this prefix.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for key := range s.load() {
		if name, found := strings.CutPrefix(key, s.prefix); found {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Theme returns the stored theme, defaulting to light.
func (s *Store) Theme() string {
	v, ok := s.Get(KeyTheme)
	if !ok {
		return common.ThemeLight
	}
	if theme, _ := v.(string); theme == common.ThemeDark {
		return common.ThemeDark
	}
	return common.ThemeLight
}

func (s *Store) SetTheme(theme string) error {
	if theme != common.ThemeLight && theme != common.ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.Set(KeyTheme, theme)
}

// SoundMuted reports whether app sound is muted. Absent means enabled.
func (s *Store) SoundMuted() bool {
	v, ok := s.Get(KeySound)
	if !ok {
		return false
	}
	muted, _ := v.(bool)
	return muted
}

func (s *Store) SetSoundMuted(muted bool) error {
	return s.Set(KeySound, muted)
}

func (s *Store) load() map[string]any {
	values := make(map[string]any)

	content, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error("failed to read settings: %v", err)
		}
		return values
	}

	if err := toml.Unmarshal(content, &values); err != nil {
		log.Error("failed to unmarshal settings: %v", err)
		return make(map[string]any)
	}
	return values
}

func (s *Store) save(values map[string]any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	data, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("create settings temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	return os.Rename(tmp.Name(), s.Path())
}
