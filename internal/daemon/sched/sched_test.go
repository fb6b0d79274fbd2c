package sched

import (
	"testing"

	"github.com/suntray-io/suntray/internal/models"
)

type nopActions struct{}

func (nopActions) Start() bool { return true }
func (nopActions) Stop()       {}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "evening", clock: "20:00", hour: 20, minute: 0},
		{name: "morning", clock: "07:30", hour: 7, minute: 30},
		{name: "midnight", clock: "00:00", hour: 0, minute: 0},
		{name: "end of day", clock: "23:59", hour: 23, minute: 59},
		{name: "hour out of range", clock: "24:00", wantErr: true},
		{name: "minute out of range", clock: "12:60", wantErr: true},
		{name: "missing minute", clock: "12", wantErr: true},
		{name: "not a number", clock: "ab:cd", wantErr: true},
		{name: "empty", clock: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.clock)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) succeeded, want error", tt.clock)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) error: %v", tt.clock, err)
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.clock, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}

func TestApplyDisabledClearsJobs(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer func() { _ = s.Shutdown() }()

	cfg := models.ScheduleConfig{Enabled: true, EnableAt: "20:00", DisableAt: "07:00"}
	if err := s.Apply(cfg, nopActions{}); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got := s.Jobs(); got != 2 {
		t.Errorf("Jobs() = %d, want 2", got)
	}

	if err := s.Apply(models.ScheduleConfig{Enabled: false}, nopActions{}); err != nil {
		t.Fatalf("Apply(disabled) error: %v", err)
	}
	if got := s.Jobs(); got != 0 {
		t.Errorf("Jobs() after disable = %d, want 0", got)
	}
}

func TestApplyRejectsBadTimes(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer func() { _ = s.Shutdown() }()

	cfg := models.ScheduleConfig{Enabled: true, EnableAt: "25:00", DisableAt: "07:00"}
	if err := s.Apply(cfg, nopActions{}); err == nil {
		t.Fatal("Apply accepted an invalid enable_at")
	}
	if got := s.Jobs(); got != 0 {
		t.Errorf("Jobs() after failed Apply = %d, want 0", got)
	}
}
