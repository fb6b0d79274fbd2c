// Package sched drives the optional daily enable/disable schedule.
package sched

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/suntray-io/suntray/internal/models"
)

// Actions is what the schedule can do to the daemon.
type Actions interface {
	Start() bool
	Stop()
}

// Scheduler wraps a gocron scheduler holding at most two daily jobs.
type Scheduler struct {
	scheduler gocron.Scheduler
	jobIDs    []gocron.Job
}

// New creates an idle scheduler.
func New() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{scheduler: s}, nil
}

// Start begins executing scheduled jobs.
func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Shutdown stops the scheduler.
func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}

// Jobs returns the number of active schedule jobs.
func (s *Scheduler) Jobs() int {
	return len(s.jobIDs)
}

// Apply replaces the current jobs with the given schedule configuration.
// A disabled schedule clears all jobs.
func (s *Scheduler) Apply(cfg models.ScheduleConfig, actions Actions) error {
	for _, job := range s.jobIDs {
		if err := s.scheduler.RemoveJob(job.ID()); err != nil {
			log.Warn().Err(err).Msg("failed to remove schedule job")
		}
	}
	s.jobIDs = nil

	if !cfg.Enabled {
		return nil
	}

	enableJob, err := s.addDailyJob(cfg.EnableAt, "schedule-enable", func() {
		log.Info().Str("at", cfg.EnableAt).Msg("schedule: enabling daemon")
		if !actions.Start() {
			log.Error().Msg("schedule: daemon failed to start")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid enable_at: %w", err)
	}

	disableJob, err := s.addDailyJob(cfg.DisableAt, "schedule-disable", func() {
		log.Info().Str("at", cfg.DisableAt).Msg("schedule: disabling daemon")
		actions.Stop()
	})
	if err != nil {
		if rmErr := s.scheduler.RemoveJob(enableJob.ID()); rmErr != nil {
			log.Warn().Err(rmErr).Msg("failed to remove schedule job")
		}
		return fmt.Errorf("invalid disable_at: %w", err)
	}

	s.jobIDs = append(s.jobIDs, enableJob, disableJob)
	return nil
}

func (s *Scheduler) addDailyJob(clock, name string, task func()) (gocron.Job, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return nil, err
	}

	job, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(task),
		gocron.WithName(name),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create job %s: %w", name, err)
	}
	return job, nil
}

// ParseClock parses a local wall-clock time in "HH:MM" form.
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want HH:MM, got %q", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", clock)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", clock)
	}

	return hour, minute, nil
}
