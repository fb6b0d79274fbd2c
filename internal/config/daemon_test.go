package config

import (
	"os"
	"os/exec"
	"testing"

	"github.com/suntray-io/suntray/internal/models"
)

func TestIsDaemonRunningNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	running, info, err := IsDaemonRunning()
	if err != nil {
		t.Fatalf("IsDaemonRunning error: %v", err)
	}
	if running {
		t.Error("running = true with no daemon file")
	}
	if info != nil {
		t.Errorf("info = %+v, want nil", info)
	}
}

func TestIsDaemonRunningLivePID(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := EnsureGlobalDir(); err != nil {
		t.Fatal(err)
	}

	// Our own PID is guaranteed to be alive.
	if err := SaveDaemonInfo(models.NewDaemonInfo("/tmp/test.sock", os.Getpid())); err != nil {
		t.Fatalf("SaveDaemonInfo error: %v", err)
	}

	running, info, err := IsDaemonRunning()
	if err != nil {
		t.Fatalf("IsDaemonRunning error: %v", err)
	}
	if !running {
		t.Fatal("running = false for live PID")
	}
	if info.PID != os.Getpid() {
		t.Errorf("info.PID = %d, want %d", info.PID, os.Getpid())
	}
}

func TestIsDaemonRunningCleansStaleFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := EnsureGlobalDir(); err != nil {
		t.Fatal(err)
	}

	// A just-exited child gives us a PID that is known to be dead.
	cmd := exec.Command("true")
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if err := SaveDaemonInfo(models.NewDaemonInfo("/tmp/test.sock", cmd.Process.Pid)); err != nil {
		t.Fatalf("SaveDaemonInfo error: %v", err)
	}

	running, _, err := IsDaemonRunning()
	if err != nil {
		t.Fatalf("IsDaemonRunning error: %v", err)
	}
	if running {
		t.Fatal("running = true for dead PID")
	}

	path, err := GlobalDaemonFile()
	if err != nil {
		t.Fatal(err)
	}
	if FileExists(path) {
		t.Error("stale daemon file was not removed")
	}
}
