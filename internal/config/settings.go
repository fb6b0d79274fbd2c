package config

import (
	"sync"

	"github.com/suntray-io/suntray/internal/models"
)

// DefaultDaemonBinary is the binary launched when settings don't name one.
const DefaultDaemonBinary = "hyprsunset"

// Store is a handle to the persisted settings file. It loads once at
// construction and writes back on every mutation, so the on-disk file always
// reflects the last accepted value.
type Store struct {
	mu       sync.Mutex
	path     string
	settings *models.Settings
}

// OpenStore loads the global settings from ~/.suntray/settings.yaml.
// If the file doesn't exist, it starts from default settings.
func OpenStore() (*Store, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return OpenStoreAt(path)
}

// OpenStoreAt loads settings from an explicit path.
func OpenStoreAt(path string) (*Store, error) {
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, settings: settings}, nil
}

// Path returns the settings file path backing this store.
func (s *Store) Path() string {
	return s.path
}

// Settings returns a snapshot of the current settings.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.settings
}

// Temperature returns the persisted target temperature in Kelvin.
func (s *Store) Temperature() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Temperature
}

// SetTemperature persists a new target temperature.
func (s *Store) SetTemperature(kelvin int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Temperature = kelvin
	return SaveYAML(s.path, s.settings)
}

// Enabled returns whether the daemon should be running.
func (s *Store) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Enabled
}

// SetEnabled persists the enabled flag. Written on every controller state
// change so a restart of the supervisor restores the last observed state.
func (s *Store) SetEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Enabled == enabled {
		return nil
	}
	s.settings.Enabled = enabled
	return SaveYAML(s.path, s.settings)
}

// DaemonBinary returns the configured daemon binary, falling back to the
// default PATH lookup name.
func (s *Store) DaemonBinary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Daemon.Path != "" {
		return s.settings.Daemon.Path
	}
	return DefaultDaemonBinary
}

// Schedule returns the persisted schedule configuration.
func (s *Store) Schedule() models.ScheduleConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Schedule
}

// Reload re-reads the settings file, replacing the in-memory copy. Used by
// the settings watcher when the file is edited externally. Returns the fresh
// snapshot.
func (s *Store) Reload() (models.Settings, error) {
	settings, err := LoadYAMLOrDefault(s.path, models.NewSettings)
	if err != nil {
		return models.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return *settings, nil
}
