// ABOUTME: YAML settings store with environment overrides
// ABOUTME: Holds the overlay's two core keys plus host tuning values

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized as overrides on top of the file.
const (
	EnvEnabled = "HALO_ENABLED"
	EnvStyle   = "HALO_STYLE"
	EnvScale   = "HALO_SCALE"
)

// Settings is the persisted configuration. Enabled and Style are the two
// live keys the overlay controller reacts to; the rest tune the host.
type Settings struct {
	Enabled       bool    `yaml:"enabled"`
	Style         int     `yaml:"style"`
	Scale         float64 `yaml:"scale,omitempty"`
	BurnInOffsetX float64 `yaml:"burn_in_offset_x,omitempty"`
	BurnInOffsetY float64 `yaml:"burn_in_offset_y,omitempty"`
	StyleDir      string  `yaml:"style_dir,omitempty"`
}

// Defaults returns the settings used when no file exists yet.
func Defaults() Settings {
	return Settings{
		Enabled:       true,
		Style:         0,
		Scale:         1.0,
		BurnInOffsetX: 7,
		BurnInOffsetY: 9,
	}
}

// LoadEnvFile loads a dotenv file into the process environment so its
// values act as overrides. A missing file is fine.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Store reads and writes one settings file. Safe for concurrent use; the
// watcher stats and reloads it from its polling goroutine while the host
// saves from the UI loop.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the settings file, applies environment overrides, and returns
// the result. A missing file yields Defaults (with overrides applied).
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Defaults()
	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		// First run: defaults.
	case err != nil:
		return st, fmt.Errorf("reading settings: %w", err)
	default:
		if err := yaml.Unmarshal(data, &st); err != nil {
			return Defaults(), fmt.Errorf("parsing %s: %w", s.path, err)
		}
	}

	applyEnvOverrides(&st)
	return st, nil
}

// Save writes the settings file, creating parent directories as needed.
func (s *Store) Save(st Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

func applyEnvOverrides(st *Settings) {
	if v := strings.TrimSpace(os.Getenv(EnvEnabled)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			st.Enabled = b
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvStyle)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			st.Style = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvScale)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			st.Scale = f
		}
	}
}
