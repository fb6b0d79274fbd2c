package controller

import (
	"bytes"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Process wraps a single launched daemon process. At most one live Process is
// held by the Controller at any time.
type Process struct {
	cmd       *exec.Cmd
	runID     string
	startedAt time.Time
	done      chan struct{}
	exitErr   error

	// Ensures the exit of this process is reported exactly once, whether it
	// was observed by an explicit Stop or by the exit watcher.
	reportOnce sync.Once
}

// Launch starts the command and begins watching for exit. The daemon's stdout
// and stderr are drained line-by-line into the debug log.
func Launch(cmd *exec.Cmd) (*Process, error) {
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()

	cmd.Stdout = &lineWriter{logger: logger, stream: "stdout"}
	cmd.Stderr = &lineWriter{logger: logger, stream: "stderr"}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &Process{
		cmd:       cmd,
		runID:     runID,
		startedAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}

	go func() {
		p.exitErr = cmd.Wait()
		close(p.done)
	}()

	return p, nil
}

// Stop terminates the process. Sends SIGTERM, waits up to the given timeout
// for a graceful exit, then SIGKILLs. Returns once the process has exited.
func (p *Process) Stop(timeout time.Duration) {
	if p.cmd.Process == nil {
		return
	}

	_ = p.cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-p.done:
		return
	case <-time.After(timeout):
	}

	log.Warn().Str("run_id", p.runID).Msg("daemon did not exit in time, killing")
	_ = p.cmd.Process.Kill()
	<-p.done
}

// Done returns a channel that is closed when the process exits.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitErr returns the process exit error (nil if exited cleanly). Only valid
// after Done is closed.
func (p *Process) ExitErr() error {
	return p.exitErr
}

// Alive returns true if the process has not exited yet.
func (p *Process) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// PID returns the OS process ID.
func (p *Process) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// RunID returns the unique ID assigned to this launch.
func (p *Process) RunID() string {
	return p.runID
}

// StartedAt returns when the process was launched.
func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

// lineWriter logs complete lines written to it. Each exec.Cmd output stream
// gets its own instance, written from a single copier goroutine.
type lineWriter struct {
	logger zerolog.Logger
	stream string
	buf    bytes.Buffer
}

func (w *lineWriter) Write(data []byte) (int, error) {
	w.buf.Write(data)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		if trimmed := trimLine(line); trimmed != "" {
			w.logger.Debug().Str("stream", w.stream).Msg(trimmed)
		}
	}
	return len(data), nil
}

func trimLine(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
