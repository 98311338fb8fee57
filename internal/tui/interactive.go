// Package tui is an interactive terminal explorer for gas states: adjust
// temperature and pressure with the keyboard and watch every derived
// property update through the consistency engine.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gasthermo/internal/config"
	"github.com/san-kum/gasthermo/internal/thermo"
	"github.com/san-kum/gasthermo/internal/viz"
)

var (
	cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

const (
	tempStep     = 10.0  // K per keypress
	pressureStep = 1.125 // multiplicative per keypress
	minTemp      = 200.0
	maxTemp      = 6000.0
)

type model struct {
	reg     *thermo.Registry
	gas     *thermo.Gas
	presets []string
	preset  int
	status  string
	err     error

	width  int
	height int
}

// New builds the explorer on a registry, starting with default air.
func New(reg *thermo.Registry) (*model, error) {
	gas, err := thermo.NewGas(reg)
	if err != nil {
		return nil, err
	}
	presets := config.ListPresets()
	m := &model{
		reg:     reg,
		gas:     gas,
		presets: presets,
		width:   80,
		height:  24,
	}
	for i, name := range presets {
		if name == "air" {
			m.preset = i
		}
	}
	return m, nil
}

// Run starts the explorer and blocks until quit.
func Run(reg *thermo.Registry) error {
	m, err := New(reg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up":
		m.setT(m.gas.Temperature() + tempStep)
	case "down":
		m.setT(m.gas.Temperature() - tempStep)
	case "shift+up":
		m.setT(m.gas.Temperature() + 10*tempStep)
	case "shift+down":
		m.setT(m.gas.Temperature() - 10*tempStep)

	case "right":
		m.gas.SetP(m.gas.Pressure() * pressureStep)
	case "left":
		m.gas.SetP(m.gas.Pressure() / pressureStep)

	case "tab":
		m.cyclePreset(1)
	case "shift+tab":
		m.cyclePreset(-1)

	case "c":
		if _, err := thermo.Compress(m.gas, 2.0, 1.0); err != nil {
			m.err = err
		} else {
			m.status = "compressed, PR = 2"
		}
	case "e":
		if _, err := thermo.Expand(m.gas, 0.5, 1.0); err != nil {
			m.err = err
		} else {
			m.status = "expanded, PR = 0.5"
		}

	case "r":
		m.gas.SetTP(298.15, 101325)
		m.status = "reset to standard conditions"
	}

	return m, nil
}

func (m *model) setT(T float64) {
	if T < minTemp || T > maxTemp {
		m.status = fmt.Sprintf("temperature clamped to [%g, %g] K", minTemp, maxTemp)
		return
	}
	m.gas.SetT(T)
}

func (m *model) cyclePreset(dir int) {
	m.preset = (m.preset + dir + len(m.presets)) % len(m.presets)
	name := m.presets[m.preset]
	comp := config.GetPreset(name)
	if err := m.gas.SetXMap(comp); err != nil {
		m.err = err
		return
	}
	m.status = "composition: " + name
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("gasthermo") + dim.Render("  ideal-gas state explorer") + "\n\n")
	b.WriteString(dim.Render(fmt.Sprintf("gas preset: %s", m.presets[m.preset])) + "\n\n")

	b.WriteString(viz.PropertyTable(m.gas))
	b.WriteString("\n")
	b.WriteString(viz.CompositionTable(m.gas))

	if m.err != nil {
		b.WriteString("\n" + viz.WarnStyle.Render(m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + dim.Render(m.status) + "\n")
	}

	b.WriteString("\n" + dim.Render(
		"up/down T  left/right P  tab preset  c compress  e expand  r reset  q quit") + "\n")
	return b.String()
}
