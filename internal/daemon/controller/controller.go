// Package controller supervises the single external color-temperature daemon
// process and owns its lifecycle state.
package controller

import (
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/suntray-io/suntray/internal/models"
)

const (
	// launchGrace is how long a spawned daemon must survive before the start
	// is confirmed. Processes that exit inside the window count as failed
	// starts and produce no events.
	launchGrace = 150 * time.Millisecond

	// stopTimeout bounds the graceful-terminate wait before escalating to
	// SIGKILL.
	stopTimeout = time.Second

	// restartSettle is the pause between a confirmed exit and the relaunch
	// when the temperature changes while running.
	restartSettle = 50 * time.Millisecond
)

// Event describes a confirmed lifecycle transition. Exactly one
// Running=true and one Running=false event are emitted per full lifecycle.
type Event struct {
	Running     bool
	Temperature int
	RunID       string
}

// SettingsStore is the persistence the controller needs: the target
// temperature is read at each launch and written on every mutation.
type SettingsStore interface {
	Temperature() int
	SetTemperature(kelvin int) error
	DaemonBinary() string
}

// CommandFunc builds the daemon invocation for a target temperature.
type CommandFunc func(binary string, kelvin int) *exec.Cmd

// Controller supervises zero-or-one daemon process.
type Controller struct {
	mu         sync.Mutex
	store      SettingsStore
	proc       *Process
	newCommand CommandFunc

	subMu sync.RWMutex
	subs  map[string]chan Event
}

// Option configures a Controller.
type Option func(*Controller)

// WithCommand overrides how the daemon invocation is built. Tests use this to
// supervise a stand-in process.
func WithCommand(fn CommandFunc) Option {
	return func(c *Controller) { c.newCommand = fn }
}

// New creates a controller backed by the given store. No process is started.
func New(store SettingsStore, opts ...Option) *Controller {
	c := &Controller{
		store:      store,
		newCommand: defaultCommand,
		subs:       make(map[string]chan Event),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultCommand(binary string, kelvin int) *exec.Cmd {
	return exec.Command(binary, "-t", strconv.Itoa(kelvin))
}

// Running reports whether the daemon process is currently alive. This is a
// definitive snapshot, never a cached value.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.proc != nil && c.proc.Alive()
}

// Temperature returns the persisted target temperature.
func (c *Controller) Temperature() int {
	return c.store.Temperature()
}

// Status returns a consistent running/temperature/run-ID snapshot.
func (c *Controller) Status() (running bool, temperature int, runID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.proc != nil && c.proc.Alive() {
		return true, c.store.Temperature(), c.proc.RunID()
	}
	return false, c.store.Temperature(), ""
}

// Start launches the daemon with the current temperature. Returns true if the
// daemon is running on return: a no-op when already running, false when the
// spawn fails or the process dies inside the launch grace window. Failures
// are logged, never fatal, and are not retried.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked()
}

func (c *Controller) startLocked() bool {
	if c.proc != nil && c.proc.Alive() {
		return true
	}

	temp := c.store.Temperature()
	binary := c.store.DaemonBinary()
	cmd := c.newCommand(binary, temp)

	log.Info().Str("binary", binary).Int("temperature_k", temp).Msg("starting daemon")

	proc, err := Launch(cmd)
	if err != nil {
		log.Error().Err(err).Str("binary", binary).Msg("failed to start daemon")
		return false
	}

	select {
	case <-proc.Done():
		log.Error().Err(proc.ExitErr()).Str("run_id", proc.RunID()).
			Msg("daemon exited during launch")
		return false
	case <-time.After(launchGrace):
	}

	c.proc = proc
	go c.watch(proc)

	c.emit(Event{Running: true, Temperature: temp, RunID: proc.RunID()})
	return true
}

// Stop terminates the daemon if running: graceful terminate, bounded wait,
// then force kill. The stopped event is emitted once the exit is observed.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	proc := c.proc
	if proc == nil || !proc.Alive() {
		return
	}

	log.Info().Str("run_id", proc.RunID()).Msg("stopping daemon")
	proc.Stop(stopTimeout)
	c.proc = nil
	c.reportExit(proc)
}

// SetTemperature clamps the input to the supported range, persists it, and
// restarts the daemon if it is running so the change takes effect. The
// relaunch is scheduled after the stop has confirmed the old process exited,
// so a slow shutdown can't race a duplicate daemon.
func (c *Controller) SetTemperature(kelvin int) {
	clamped := models.ClampTemperature(kelvin)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SetTemperature(clamped); err != nil {
		log.Error().Err(err).Msg("failed to persist temperature")
	}
	log.Info().Int("temperature_k", clamped).Msg("temperature updated")

	if c.proc == nil || !c.proc.Alive() {
		return
	}

	c.stopLocked()
	go func() {
		time.Sleep(restartSettle)
		c.Start()
	}()
}

// Close stops the daemon, if any. Called on supervisor shutdown.
func (c *Controller) Close() {
	c.Stop()
}

// watch observes a launched process and reports its exit. This is the path
// taken when the daemon crashes or is killed externally.
func (c *Controller) watch(proc *Process) {
	<-proc.Done()

	c.mu.Lock()
	if c.proc == proc {
		c.proc = nil
	}
	c.mu.Unlock()

	c.reportExit(proc)
}

// reportExit logs and emits the stopped event for a process exactly once.
func (c *Controller) reportExit(proc *Process) {
	proc.reportOnce.Do(func() {
		if err := proc.ExitErr(); err != nil {
			log.Warn().Err(err).Str("run_id", proc.RunID()).Msg("daemon terminated")
		} else {
			log.Info().Str("run_id", proc.RunID()).Msg("daemon exited")
		}
		c.emit(Event{Running: false, Temperature: c.store.Temperature(), RunID: proc.RunID()})
	})
}

// Subscribe creates an event subscription for the given subscriber ID.
func (c *Controller) Subscribe(id string) chan Event {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	ch := make(chan Event, 16)
	c.subs[id] = ch
	return ch
}

// Unsubscribe removes an event subscription.
func (c *Controller) Unsubscribe(id string) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	if ch, ok := c.subs[id]; ok {
		close(ch)
		delete(c.subs, id)
	}
}

// emit sends an event to all subscribers. Non-blocking: drops if full.
func (c *Controller) emit(ev Event) {
	c.subMu.RLock()
	defer c.subMu.RUnlock()

	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
			// Drop if subscriber can't keep up
		}
	}
}
