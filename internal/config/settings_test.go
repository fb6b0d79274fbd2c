package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suntray-io/suntray/internal/models"
)

func TestOpenStoreDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store, err := OpenStoreAt(path)
	if err != nil {
		t.Fatalf("OpenStoreAt error: %v", err)
	}

	if got := store.Temperature(); got != models.DefaultTemperature {
		t.Errorf("Temperature() = %d, want %d", got, models.DefaultTemperature)
	}
	if store.Enabled() {
		t.Error("Enabled() = true for fresh store, want false")
	}
	if got := store.DaemonBinary(); got != DefaultDaemonBinary {
		t.Errorf("DaemonBinary() = %q, want %q", got, DefaultDaemonBinary)
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store, err := OpenStoreAt(path)
	if err != nil {
		t.Fatalf("OpenStoreAt error: %v", err)
	}

	if err := store.SetTemperature(3400); err != nil {
		t.Fatalf("SetTemperature error: %v", err)
	}
	if err := store.SetEnabled(true); err != nil {
		t.Fatalf("SetEnabled error: %v", err)
	}

	// A second store must see the values from disk.
	reopened, err := OpenStoreAt(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	if got := reopened.Temperature(); got != 3400 {
		t.Errorf("reopened Temperature() = %d, want 3400", got)
	}
	if !reopened.Enabled() {
		t.Error("reopened Enabled() = false, want true")
	}
}

func TestSetEnabledSkipsRedundantWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store, err := OpenStoreAt(path)
	if err != nil {
		t.Fatalf("OpenStoreAt error: %v", err)
	}
	if err := store.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled error: %v", err)
	}
	if FileExists(path) {
		t.Error("redundant SetEnabled(false) wrote the settings file")
	}
}

func TestReloadPicksUpExternalEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store, err := OpenStoreAt(path)
	if err != nil {
		t.Fatalf("OpenStoreAt error: %v", err)
	}
	if err := store.SetTemperature(4000); err != nil {
		t.Fatalf("SetTemperature error: %v", err)
	}

	edited := []byte("version: 1\ntemperature: 2700\nenabled: true\n")
	if err := os.WriteFile(path, edited, 0600); err != nil {
		t.Fatal(err)
	}

	fresh, err := store.Reload()
	if err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	if fresh.Temperature != 2700 {
		t.Errorf("reloaded temperature = %d, want 2700", fresh.Temperature)
	}
	if !fresh.Enabled {
		t.Error("reloaded enabled = false, want true")
	}
	if got := store.Temperature(); got != 2700 {
		t.Errorf("store Temperature() after reload = %d, want 2700", got)
	}
}
