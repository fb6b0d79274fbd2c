package tray

import (
	"fmt"

	"github.com/getlantern/systray"

	"github.com/suntray-io/suntray/internal/models"
)

// Temperature presets offered in the tray menu (tray menus have no sliders).
const (
	presetStart = models.MinTemperature
	presetStep  = 500
	presetCount = (models.MaxTemperature-models.MinTemperature)/presetStep + 1
)

var (
	state  DaemonState
	onExit func()

	statusItem *systray.MenuItem
	toggleItem *systray.MenuItem

	// Pre-allocated temperature preset slots
	tempMenu    *systray.MenuItem
	presetItems [presetCount]*systray.MenuItem
	warmerItem  *systray.MenuItem
	coolerItem  *systray.MenuItem
	quitItem    *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (launch the control server here).
// onExitFn is called when the tray exits (cleanup here).
func Run(s DaemonState, onStartFn, onExitFn func()) {
	state = s
	onExit = onExitFn
	systray.Run(func() { onReady(onStartFn) }, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady(onStart func()) {
	systray.SetIcon(iconIdle)
	systray.SetTooltip(formatTooltip(false, models.DefaultTemperature))

	// Header
	header := systray.AddMenuItem("Suntray", "")
	header.Disable()

	statusItem = systray.AddMenuItem("Starting...", "")
	statusItem.Disable()

	systray.AddSeparator()

	toggleItem = systray.AddMenuItem("Enable", "Toggle the color-temperature daemon")

	tempMenu = systray.AddMenuItem("Temperature", "")
	for i := 0; i < presetCount; i++ {
		kelvin := presetStart + i*presetStep
		presetItems[i] = tempMenu.AddSubMenuItemCheckbox(fmt.Sprintf("%dK", kelvin), "", false)
	}
	warmerItem = tempMenu.AddSubMenuItem(fmt.Sprintf("Warmer (-%d)", models.TemperatureStep), "")
	coolerItem = tempMenu.AddSubMenuItem(fmt.Sprintf("Cooler (+%d)", models.TemperatureStep), "")

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Shut down the Suntray supervisor")

	if onStart != nil {
		onStart()
	}

	if state != nil {
		UpdateState(state.Running(), state.Temperature())
	}

	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-toggleItem.ClickedCh:
			state.Toggle()

		case <-warmerItem.ClickedCh:
			state.StepTemperature(-models.TemperatureStep)
		case <-coolerItem.ClickedCh:
			state.StepTemperature(models.TemperatureStep)

		case <-quitItem.ClickedCh:
			state.RequestShutdown()

		// Preset slot clicks
		case <-presetItems[0].ClickedCh:
			applyPreset(0)
		case <-presetItems[1].ClickedCh:
			applyPreset(1)
		case <-presetItems[2].ClickedCh:
			applyPreset(2)
		case <-presetItems[3].ClickedCh:
			applyPreset(3)
		case <-presetItems[4].ClickedCh:
			applyPreset(4)
		case <-presetItems[5].ClickedCh:
			applyPreset(5)
		case <-presetItems[6].ClickedCh:
			applyPreset(6)
		case <-presetItems[7].ClickedCh:
			applyPreset(7)
		case <-presetItems[8].ClickedCh:
			applyPreset(8)
		}
	}
}

func applyPreset(slot int) {
	state.SetTemperature(presetStart + slot*presetStep)
}

// UpdateState refreshes the icon, menu titles and tooltip after a confirmed
// lifecycle transition or temperature change.
func UpdateState(running bool, temperature int) {
	if running {
		systray.SetIcon(iconActive)
		toggleItem.SetTitle("Disable")
		statusItem.SetTitle(fmt.Sprintf("Running at %dK", temperature))
	} else {
		systray.SetIcon(iconIdle)
		toggleItem.SetTitle("Enable")
		statusItem.SetTitle("Stopped")
	}

	for i := 0; i < presetCount; i++ {
		if presetStart+i*presetStep == temperature {
			presetItems[i].Check()
		} else {
			presetItems[i].Uncheck()
		}
	}

	systray.SetTooltip(formatTooltip(running, temperature))
}

func formatTooltip(running bool, temperature int) string {
	if running {
		return fmt.Sprintf("Suntray — %dK", temperature)
	}
	return "Suntray — off"
}
