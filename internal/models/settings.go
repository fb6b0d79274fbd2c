package models

// Temperature bounds for the color-temperature daemon, in Kelvin.
const (
	MinTemperature     = 2000
	MaxTemperature     = 6000
	DefaultTemperature = 4000
	TemperatureStep    = 100
)

// DaemonConfig holds configuration for the supervised daemon binary.
type DaemonConfig struct {
	Path string `yaml:"path"` // Empty means lookup in PATH
}

// ScheduleConfig holds the optional daily enable/disable schedule.
// Times are local wall-clock in "HH:MM" form.
type ScheduleConfig struct {
	Enabled   bool   `yaml:"enabled"`
	EnableAt  string `yaml:"enable_at"`
	DisableAt string `yaml:"disable_at"`
}

// Settings represents global application settings.
// This corresponds to ~/.suntray/settings.yaml.
type Settings struct {
	Version     int            `yaml:"version"`
	Temperature int            `yaml:"temperature"`
	Enabled     bool           `yaml:"enabled"`
	LogLevel    string         `yaml:"log_level"`
	Daemon      DaemonConfig   `yaml:"daemon"`
	Schedule    ScheduleConfig `yaml:"schedule"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:     1,
		Temperature: DefaultTemperature,
		Enabled:     false,
		LogLevel:    "info",
		Daemon: DaemonConfig{
			Path: "", // Empty means lookup "hyprsunset" in PATH
		},
		Schedule: ScheduleConfig{
			Enabled:   false,
			EnableAt:  "20:00",
			DisableAt: "07:00",
		},
	}
}

// ClampTemperature constrains a Kelvin value to the supported range.
// Values are accepted at any granularity; only the UI snaps to steps.
func ClampTemperature(kelvin int) int {
	if kelvin < MinTemperature {
		return MinTemperature
	}
	if kelvin > MaxTemperature {
		return MaxTemperature
	}
	return kelvin
}
