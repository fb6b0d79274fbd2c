// Package tray implements the system tray icon and menu for the supervisor.
package tray

// DaemonState provides the tray's view of the supervisor. The tray never
// talks to the controller directly; the daemon app wires this interface and
// pushes confirmed state back via UpdateState.
type DaemonState interface {
	Running() bool
	Temperature() int
	Toggle()
	SetTemperature(kelvin int)
	StepTemperature(delta int)
	RequestShutdown()
}
