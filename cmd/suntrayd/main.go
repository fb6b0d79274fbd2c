// Package main is the entry point for the suntrayd supervisor.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/suntray-io/suntray/internal/config"
	"github.com/suntray-io/suntray/internal/daemon/controller"
	"github.com/suntray-io/suntray/internal/daemon/sched"
	"github.com/suntray-io/suntray/internal/daemon/server"
	"github.com/suntray-io/suntray/internal/daemon/tray"
	"github.com/suntray-io/suntray/internal/daemon/watcher"
	"github.com/suntray-io/suntray/internal/models"
)

func main() {
	foreground := flag.Bool("foreground", false, "Run without the system tray (for development)")
	logLevel := flag.String("log-level", "", "Override the configured log level")
	flag.Parse()

	if err := config.EnsureGlobalDir(); err != nil {
		config.InitConsoleLogging("info")
		log.Fatal().Err(err).Msg("failed to create suntray directory")
	}

	store, err := config.OpenStore()
	if err != nil {
		config.InitConsoleLogging("info")
		log.Fatal().Err(err).Msg("failed to load settings")
	}

	level := store.Settings().LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	closeLog, err := config.InitLogging(level)
	if err != nil {
		config.InitConsoleLogging("info")
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	defer closeLog()

	// Single-instance guard
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check for a running instance")
	}
	if running {
		log.Warn().Int("pid", info.PID).Msg("another suntrayd instance is already running")
		return
	}

	a := &app{
		store: store,
		ctrl:  controller.New(store),
	}

	if *foreground {
		log.Info().Msg("running in foreground mode (no system tray)")
		a.runForeground()
	} else {
		log.Info().Msg("running with system tray")
		a.runWithTray()
	}
}

// app holds the supervisor's long-lived components.
type app struct {
	store   *config.Store
	ctrl    *controller.Controller
	srv     *server.Server
	sched   *sched.Scheduler
	watcher *watcher.Watcher
}

// start brings up the control server, event fan-out, settings watcher and
// schedule. withTray controls whether lifecycle events update the tray.
func (a *app) start(withTray bool) error {
	socketPath, err := config.GlobalSocketFile()
	if err != nil {
		return err
	}

	a.srv, err = server.New(socketPath, a.ctrl)
	if err != nil {
		return err
	}

	if err := config.SaveDaemonInfo(models.NewDaemonInfo(socketPath, os.Getpid())); err != nil {
		a.srv.Stop()
		return err
	}

	log.Info().Str("socket", socketPath).Int("pid", os.Getpid()).Msg("supervisor started")

	go func() {
		if err := a.srv.Serve(); err != nil {
			log.Error().Err(err).Msg("control server error")
		}
	}()

	// Lifecycle events: reflect confirmed state in the tray and persist the
	// enabled flag so a supervisor restart restores it.
	events := a.ctrl.Subscribe("app")
	go func() {
		for ev := range events {
			if withTray {
				tray.UpdateState(ev.Running, ev.Temperature)
			}
			if err := a.store.SetEnabled(ev.Running); err != nil {
				log.Error().Err(err).Msg("failed to persist enabled flag")
			}
		}
	}()

	a.watcher, err = watcher.New(a.store.Path())
	if err != nil {
		log.Warn().Err(err).Msg("settings watcher unavailable")
	} else {
		go a.watchSettings(withTray)
	}

	a.sched, err = sched.New()
	if err != nil {
		log.Warn().Err(err).Msg("scheduler unavailable")
	} else {
		if err := a.sched.Apply(a.store.Schedule(), a.ctrl); err != nil {
			log.Error().Err(err).Msg("invalid schedule in settings")
		}
		a.sched.Start()
	}

	// Restore the last observed state.
	if a.store.Enabled() {
		if !a.ctrl.Start() {
			log.Error().Msg("daemon autostart failed")
		}
	}

	return nil
}

// watchSettings applies external settings edits live.
func (a *app) watchSettings(withTray bool) {
	for range a.watcher.Events() {
		old := a.store.Settings()
		fresh, err := a.store.Reload()
		if err != nil {
			log.Warn().Err(err).Msg("failed to reload edited settings")
			continue
		}
		log.Info().Msg("settings file changed, applying")

		if fresh.Temperature != old.Temperature {
			a.ctrl.SetTemperature(fresh.Temperature)
		}

		if fresh.Enabled != a.ctrl.Running() {
			if fresh.Enabled {
				if !a.ctrl.Start() {
					log.Error().Msg("daemon start from edited settings failed")
				}
			} else {
				a.ctrl.Stop()
			}
		}

		if a.sched != nil && fresh.Schedule != old.Schedule {
			if err := a.sched.Apply(fresh.Schedule, a.ctrl); err != nil {
				log.Error().Err(err).Msg("invalid schedule in edited settings")
			}
		}

		if withTray {
			tray.UpdateState(a.ctrl.Running(), a.ctrl.Temperature())
		}
	}
}

// stop tears everything down in reverse order.
func (a *app) stop() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.sched != nil {
		if err := a.sched.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("scheduler shutdown failed")
		}
	}
	a.ctrl.Close()
	if a.srv != nil {
		a.srv.Stop()
	}
	if err := config.RemoveDaemonInfo(); err != nil {
		log.Warn().Err(err).Msg("failed to remove daemon info")
	}
	log.Info().Msg("supervisor stopped")
}

// runForeground runs without a system tray, blocking on signals.
func (a *app) runForeground() {
	if err := a.start(false); err != nil {
		log.Fatal().Err(err).Msg("failed to start supervisor")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case <-a.srv.ShutdownRequested():
		log.Info().Msg("shutdown requested via control socket")
	}

	a.stop()
}

// runWithTray runs with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func (a *app) runWithTray() {
	onStart := func() {
		if err := a.start(true); err != nil {
			log.Error().Err(err).Msg("failed to start supervisor")
			tray.Quit()
			return
		}

		// Quit the tray on OS signals or a control-socket shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				log.Info().Str("signal", sig.String()).Msg("shutting down")
			case <-a.srv.ShutdownRequested():
				log.Info().Msg("shutdown requested via control socket")
			}
			tray.Quit()
		}()
	}

	// Blocks the main goroutine until the tray exits.
	tray.Run(&trayState{app: a}, onStart, a.stop)
}

// trayState adapts the app to the tray's DaemonState interface. Actions run
// off the tray's click goroutine since start/stop block on bounded waits.
type trayState struct {
	app *app
}

func (s *trayState) Running() bool {
	return s.app.ctrl.Running()
}

func (s *trayState) Temperature() int {
	return s.app.ctrl.Temperature()
}

func (s *trayState) Toggle() {
	go func() {
		if s.app.ctrl.Running() {
			s.app.ctrl.Stop()
		} else if !s.app.ctrl.Start() {
			log.Error().Msg("daemon start from tray failed")
		}
	}()
}

func (s *trayState) SetTemperature(kelvin int) {
	go s.app.ctrl.SetTemperature(kelvin)
}

func (s *trayState) StepTemperature(delta int) {
	go s.app.ctrl.SetTemperature(s.app.ctrl.Temperature() + delta)
}

func (s *trayState) RequestShutdown() {
	tray.Quit()
}
