package models

import "time"

// DaemonInfo represents the running supervisor's connection information.
// This corresponds to ~/.suntray/daemon.yaml.
type DaemonInfo struct {
	Version   int       `yaml:"version"`
	Socket    string    `yaml:"socket"`
	PID       int       `yaml:"pid"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(socket string, pid int) *DaemonInfo {
	return &DaemonInfo{
		Version:   1,
		Socket:    socket,
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}
