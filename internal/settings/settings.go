// Package settings holds the user-tunable launcher options. Values are read
// per utterance and per cue by the audio layer, so the store reloads the
// backing file as soon as it changes rather than caching for the session.
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const defaultFileName = "settings.yaml"

// Values mirrors the on-disk YAML document.
type Values struct {
	StereoSound  bool     `yaml:"stereo_sound"`
	StereoSpeech bool     `yaml:"stereo_speech"`
	Volume       int      `yaml:"volume,omitempty"`
	AppDirs      []string `yaml:"app_dirs,omitempty"`
	GameDirs     []string `yaml:"game_dirs,omitempty"`
	PluginDir    string   `yaml:"plugin_dir,omitempty"`
	Favorites    []string `yaml:"favorites,omitempty"`
}

// Defaults returns the values used when no settings file exists yet.
func Defaults() Values {
	return Values{
		StereoSound:  true,
		StereoSpeech: true,
		Volume:       80,
	}
}

// Store serves current settings to the rest of the launcher. Safe for
// concurrent readers; the watcher goroutine is the only writer after Load.
type Store struct {
	mu     sync.RWMutex
	path   string
	values Values
}

// Load reads the settings file, falling back to defaults when it is missing.
// A malformed file is an error: silently reverting a blind user's audio
// preferences is worse than failing loudly at startup.
func Load(path string) (*Store, error) {
	s := &Store{path: path, values: Defaults()}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	var v Values
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	s.values = v
	return s, nil
}

// DefaultPath places the settings file under the user config directory.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return defaultFileName
	}
	return filepath.Join(base, "titan-menu", defaultFileName)
}

// Path returns the backing file path; empty for an in-memory store.
func (s *Store) Path() string { return s.path }

// Reload re-reads the backing file. Unreadable or malformed content leaves the
// current values in place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var v Values
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	s.mu.Lock()
	s.values = v
	s.mu.Unlock()
	return nil
}

// Save writes the current values back to disk, creating the directory when
// missing.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	s.mu.RLock()
	v := s.values
	s.mu.RUnlock()
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Set replaces the current values. Used by tests and by settings actions.
func (s *Store) Set(v Values) {
	s.mu.Lock()
	s.values = v
	s.mu.Unlock()
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := s.values
	v.AppDirs = append([]string(nil), s.values.AppDirs...)
	v.GameDirs = append([]string(nil), s.values.GameDirs...)
	v.Favorites = append([]string(nil), s.values.Favorites...)
	return v
}

// StereoSound reports whether cues honour their pan value.
func (s *Store) StereoSound() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.StereoSound
}

// StereoSpeech reports whether utterances honour pan and pitch offset.
func (s *Store) StereoSpeech() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.StereoSpeech
}

// Volume returns the launcher output volume in percent.
func (s *Store) Volume() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Volume
}
