// Package tui implements the interactive temperature adjuster used by
// `suntray temp` when no value is given.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suntray-io/suntray/internal/models"
)

const gaugeWidth = 40

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleKelvin = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "214"})
	styleFilled = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "214"})
	styleEmpty  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"})
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
)

// Model is the adjuster state. The chosen value is only applied by the caller
// when accepted is true, mirroring the original dialog that applies on close.
type Model struct {
	kelvin   int
	accepted bool
	keys     keyMap
	help     help.Model
}

func newModel(current int) Model {
	return Model{
		kelvin: models.ClampTemperature(current),
		keys:   keys,
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Warmer):
			m.kelvin = models.ClampTemperature(m.kelvin - models.TemperatureStep)
		case key.Matches(msg, m.keys.Cooler):
			m.kelvin = models.ClampTemperature(m.kelvin + models.TemperatureStep)
		case key.Matches(msg, m.keys.Apply):
			m.accepted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Color temperature"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", m.gauge(), styleKelvin.Render(fmt.Sprintf("%dK", m.kelvin))))
	b.WriteString(styleDim.Render(fmt.Sprintf("%dK", models.MinTemperature)))
	b.WriteString(strings.Repeat(" ", gaugeWidth-8))
	b.WriteString(styleDim.Render(fmt.Sprintf("%dK", models.MaxTemperature)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) gauge() string {
	span := models.MaxTemperature - models.MinTemperature
	filled := (m.kelvin - models.MinTemperature) * gaugeWidth / span
	if filled > gaugeWidth {
		filled = gaugeWidth
	}

	return styleFilled.Render(strings.Repeat("█", filled)) +
		styleEmpty.Render(strings.Repeat("░", gaugeWidth-filled))
}

// Run opens the adjuster starting at the current temperature. Returns the
// chosen value and whether the user accepted it.
func Run(current int) (kelvin int, accepted bool, err error) {
	final, err := tea.NewProgram(newModel(current)).Run()
	if err != nil {
		return 0, false, fmt.Errorf("temperature adjuster failed: %w", err)
	}

	m := final.(Model)
	return m.kelvin, m.accepted, nil
}
