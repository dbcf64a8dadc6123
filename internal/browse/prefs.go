package browse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

const DefaultTheme = ThemeLight

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light, dark or system)", s)
}

// Resolve turns system into the concrete theme the platform prefers.
func (t Theme) Resolve(systemDark bool) Theme {
	if t != ThemeSystem {
		return t
	}
	if systemDark {
		return ThemeDark
	}
	return ThemeLight
}

type Settings struct {
	Theme Theme `yaml:"theme"`
}

func DefaultSettings() Settings { return Settings{Theme: DefaultTheme} }

// Prefs persists Settings. Callers Load once at start and Save after each
// change.
type Prefs interface {
	Load() (Settings, error)
	Save(Settings) error
}

// FilePrefs keeps settings in a YAML file.
type FilePrefs struct {
	path string
}

func NewFilePrefs(path string) *FilePrefs { return &FilePrefs{path: path} }

// DefaultPrefsPath is the settings file under the user config directory.
func DefaultPrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "staycation", "prefs.yaml"), nil
}

// Load returns defaults when the file does not exist yet. An unknown
// theme in the file falls back to the default.
func (p *FilePrefs) Load() (Settings, error) {
	b, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read prefs: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("decode prefs: %w", err)
	}
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		s.Theme = DefaultTheme
	}
	return s, nil
}

// Save writes through a temp file so a crash never leaves half a file.
func (p *FilePrefs) Save(s Settings) error {
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return os.Rename(tmp, p.path)
}

// MemoryPrefs is an in-process Prefs.
type MemoryPrefs struct {
	mu sync.Mutex
	s  *Settings
}

func (m *MemoryPrefs) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s == nil {
		return DefaultSettings(), nil
	}
	return *m.s, nil
}

func (m *MemoryPrefs) Save(s Settings) error {
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = &s
	return nil
}
