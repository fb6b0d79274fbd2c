package controller

import (
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/suntray-io/suntray/internal/models"
)

// fakeStore satisfies SettingsStore without touching disk.
type fakeStore struct {
	mu          sync.Mutex
	temperature int
}

func newFakeStore(temp int) *fakeStore {
	return &fakeStore{temperature: temp}
}

func (s *fakeStore) Temperature() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temperature
}

func (s *fakeStore) SetTemperature(kelvin int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature = kelvin
	return nil
}

func (s *fakeStore) DaemonBinary() string {
	return "sleep"
}

// recorder builds commands for a stand-in daemon and records each launch.
type recorder struct {
	mu      sync.Mutex
	temps   []int
	command func() *exec.Cmd
}

func (r *recorder) fn(binary string, kelvin int) *exec.Cmd {
	r.mu.Lock()
	r.temps = append(r.temps, kelvin)
	r.mu.Unlock()
	if r.command != nil {
		return r.command()
	}
	return exec.Command("sleep", "60")
}

func (r *recorder) launches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.temps)
}

func (r *recorder) lastTemp() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.temps) == 0 {
		return 0
	}
	return r.temps[len(r.temps)-1]
}

func waitEvent(t *testing.T, ch chan Event, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case ev := <-ch:
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

func assertNoEvent(t *testing.T, ch chan Event, window time.Duration) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(window):
	}
}

func TestStartIsIdempotent(t *testing.T) {
	rec := &recorder{}
	c := New(newFakeStore(4000), WithCommand(rec.fn))
	defer c.Close()

	if !c.Start() {
		t.Fatal("first Start() = false, want true")
	}
	if !c.Start() {
		t.Fatal("second Start() = false, want true")
	}
	if got := rec.launches(); got != 1 {
		t.Errorf("launches = %d, want 1 (no duplicate daemon)", got)
	}
	if !c.Running() {
		t.Error("Running() = false after Start")
	}
}

func TestStartFailureLeavesStopped(t *testing.T) {
	rec := &recorder{command: func() *exec.Cmd {
		return exec.Command("/nonexistent/suntray-test-binary")
	}}
	c := New(newFakeStore(4000), WithCommand(rec.fn))
	events := c.Subscribe("test")
	defer c.Unsubscribe("test")

	if c.Start() {
		t.Fatal("Start() = true for missing binary, want false")
	}
	if c.Running() {
		t.Error("Running() = true after failed start")
	}
	assertNoEvent(t, events, 100*time.Millisecond)
}

func TestImmediateExitCountsAsFailedStart(t *testing.T) {
	rec := &recorder{command: func() *exec.Cmd {
		return exec.Command("false")
	}}
	c := New(newFakeStore(4000), WithCommand(rec.fn))
	events := c.Subscribe("test")
	defer c.Unsubscribe("test")

	if c.Start() {
		t.Fatal("Start() = true for daemon that dies during launch, want false")
	}
	assertNoEvent(t, events, 100*time.Millisecond)
}

func TestLifecycleEmitsOneStartedOneStopped(t *testing.T) {
	rec := &recorder{}
	c := New(newFakeStore(4000), WithCommand(rec.fn))
	events := c.Subscribe("test")
	defer c.Unsubscribe("test")

	if !c.Start() {
		t.Fatal("Start() failed")
	}
	ev, ok := waitEvent(t, events, time.Second)
	if !ok || !ev.Running {
		t.Fatalf("want started event, got %+v (ok=%v)", ev, ok)
	}
	if ev.Temperature != 4000 {
		t.Errorf("started event temperature = %d, want 4000", ev.Temperature)
	}

	c.Stop()
	ev, ok = waitEvent(t, events, 2*time.Second)
	if !ok || ev.Running {
		t.Fatalf("want stopped event, got %+v (ok=%v)", ev, ok)
	}
	assertNoEvent(t, events, 100*time.Millisecond)
}

func TestStopWhenStoppedIsNoop(t *testing.T) {
	c := New(newFakeStore(4000), WithCommand((&recorder{}).fn))
	events := c.Subscribe("test")
	defer c.Unsubscribe("test")

	c.Stop()
	assertNoEvent(t, events, 100*time.Millisecond)
}

func TestExternalExitEmitsStopped(t *testing.T) {
	rec := &recorder{command: func() *exec.Cmd {
		return exec.Command("sleep", "0.5")
	}}
	c := New(newFakeStore(4000), WithCommand(rec.fn))
	events := c.Subscribe("test")
	defer c.Unsubscribe("test")

	if !c.Start() {
		t.Fatal("Start() failed")
	}
	if ev, ok := waitEvent(t, events, time.Second); !ok || !ev.Running {
		t.Fatalf("want started event, got %+v (ok=%v)", ev, ok)
	}

	// The stand-in daemon exits on its own; the watcher must report it.
	ev, ok := waitEvent(t, events, 3*time.Second)
	if !ok || ev.Running {
		t.Fatalf("want stopped event after external exit, got %+v (ok=%v)", ev, ok)
	}
	if c.Running() {
		t.Error("Running() = true after process exit")
	}
}

func TestSetTemperatureClamps(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{name: "below range", input: 1200, want: 2000},
		{name: "above range", input: 7500, want: 6000},
		{name: "in range", input: 3400, want: 3400},
		{name: "lower bound", input: 2000, want: 2000},
		{name: "upper bound", input: 6000, want: 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(4000)
			c := New(store, WithCommand((&recorder{}).fn))
			c.SetTemperature(tt.input)
			if got := store.Temperature(); got != tt.want {
				t.Errorf("stored temperature = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetTemperatureWhileStoppedTakesNoProcessAction(t *testing.T) {
	rec := &recorder{}
	store := newFakeStore(4000)
	c := New(store, WithCommand(rec.fn))
	events := c.Subscribe("test")
	defer c.Unsubscribe("test")

	c.SetTemperature(7500)

	if got := store.Temperature(); got != 6000 {
		t.Errorf("stored temperature = %d, want 6000 (clamped)", got)
	}
	if rec.launches() != 0 {
		t.Errorf("launches = %d, want 0", rec.launches())
	}
	assertNoEvent(t, events, 150*time.Millisecond)
}

func TestSetTemperatureWhileRunningRestartsDaemon(t *testing.T) {
	rec := &recorder{}
	store := newFakeStore(4000)
	c := New(store, WithCommand(rec.fn))
	defer c.Close()
	events := c.Subscribe("test")
	defer c.Unsubscribe("test")

	if !c.Start() {
		t.Fatal("Start() failed")
	}
	if ev, ok := waitEvent(t, events, time.Second); !ok || !ev.Running {
		t.Fatalf("want started event, got %+v (ok=%v)", ev, ok)
	}

	c.SetTemperature(3000)

	ev, ok := waitEvent(t, events, 3*time.Second)
	if !ok || ev.Running {
		t.Fatalf("want stopped event first, got %+v (ok=%v)", ev, ok)
	}

	ev, ok = waitEvent(t, events, 3*time.Second)
	if !ok || !ev.Running {
		t.Fatalf("want started event after restart, got %+v (ok=%v)", ev, ok)
	}
	if ev.Temperature != 3000 {
		t.Errorf("restart temperature = %d, want 3000", ev.Temperature)
	}
	if got := rec.lastTemp(); got != 3000 {
		t.Errorf("daemon relaunched with %d, want 3000", got)
	}
	if rec.launches() != 2 {
		t.Errorf("launches = %d, want 2", rec.launches())
	}
	if !c.Running() {
		t.Error("Running() = false after restart")
	}
}

func TestClampTemperatureBounds(t *testing.T) {
	if got := models.ClampTemperature(models.MinTemperature - 1); got != models.MinTemperature {
		t.Errorf("clamp below = %d, want %d", got, models.MinTemperature)
	}
	if got := models.ClampTemperature(models.MaxTemperature + 1); got != models.MaxTemperature {
		t.Errorf("clamp above = %d, want %d", got, models.MaxTemperature)
	}
}
