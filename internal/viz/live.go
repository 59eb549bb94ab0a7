// Package viz renders a simulation live in the terminal. It is
// presentation glue over the core: once per frame it steps the
// simulation with a clamped time delta and reads positions back for
// drawing.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitlab/internal/nbody"
	"github.com/san-kum/orbitlab/internal/scenario"
)

const (
	canvasWidth  = 60
	canvasHeight = 24
	// MaxFrameDt caps the per-frame step so frame-rate hitches don't
	// blow up the numerical error.
	MaxFrameDt      = 0.03
	historyCapacity = 600
	trailCapacity   = 400
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(44)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0, 0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the simulation per frame and draws body positions on a
// braille canvas with a diagnostics side panel.
type Model struct {
	sim      *nbody.Simulation
	scn      *scenario.Scenario
	canvas   *Canvas
	lastTick time.Time

	trail         []struct{ x, y int }
	energyHistory []float64
	stepErr       string
}

func NewModel(scn *scenario.Scenario) (Model, error) {
	sim, err := scn.NewSimulation()
	if err != nil {
		return Model{}, err
	}
	return Model{
		sim:           sim,
		scn:           scn,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		trail:         make([]struct{ x, y int }, 0, trailCapacity),
		energyHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.advance(time.Time(msg))
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sim.SetRunning(!m.sim.Running())
		case "+", "=":
			m.sim.SetG(m.sim.G() + 0.1)
		case "-":
			if g := m.sim.G() - 0.1; g >= 0 {
				m.sim.SetG(g)
			}
		case "1":
			m.setMethod(nbody.Euler)
		case "2":
			m.setMethod(nbody.SemiImplicitEuler)
		case "3":
			m.setMethod(nbody.ModifiedEuler)
		case "4":
			m.setMethod(nbody.RK4)
		case "r":
			if sim, err := m.scn.NewSimulation(); err == nil {
				g, method := m.sim.G(), m.sim.Method()
				m.sim = sim
				m.sim.SetG(g)
				m.setMethod(method)
				m.trail = m.trail[:0]
				m.energyHistory = m.energyHistory[:0]
				m.stepErr = ""
			}
		}
	}
	return m, nil
}

func (m *Model) setMethod(method nbody.Method) {
	if err := m.sim.SetMethod(method); err != nil {
		m.stepErr = err.Error()
	}
}

func (m *Model) advance(now time.Time) {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return
	}
	dt := now.Sub(m.lastTick).Seconds()
	m.lastTick = now
	if dt > MaxFrameDt {
		dt = MaxFrameDt
	}

	if !m.sim.Running() || m.stepErr != "" {
		return
	}
	if err := m.sim.Step(dt); err != nil {
		// leave the last committed state on screen
		m.stepErr = err.Error()
		m.sim.SetRunning(false)
		return
	}

	m.energyHistory = append(m.energyHistory, m.sim.TotalEnergy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}

	xs, ys, _ := m.sim.PositionsByAxis()
	for i := range xs {
		px, py := m.project(xs[i], ys[i])
		m.trail = append(m.trail, struct{ x, y int }{px, py})
	}
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[len(m.trail)-trailCapacity:]
	}
}

// project maps world coordinates to canvas subpixels with the world
// scale height/3 centered on screen.
func (m *Model) project(x, y float64) (int, int) {
	h := float64(canvasHeight * 4)
	w := float64(canvasWidth * 2)
	return int(x*h/3 + w/2), int(y*h/3 + h/2)
}

func (m Model) View() string {
	m.canvas.Clear()
	for _, p := range m.trail {
		m.canvas.Set(p.x, p.y)
	}
	xs, ys, _ := m.sim.PositionsByAxis()
	for i := range xs {
		px, py := m.project(xs[i], ys[i])
		m.canvas.Dot(px, py)
	}

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsPanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := helpStyle.Render("space pause · +/- gravity · 1-4 method · r reset · q quit")
	return body + "\n" + help + "\n"
}

func (m Model) statsPanel() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(m.scn.Name) + "\n\n")

	status := "running"
	if m.stepErr != "" {
		status = errorStyle.Render(m.stepErr)
	} else if !m.sim.Running() {
		status = pausedStyle.Render("paused")
	}

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("status", status)
	row("t", fmt.Sprintf("%.2f", m.sim.Time()))
	row("G", fmt.Sprintf("%.2f", m.sim.G()))
	row("method", m.sim.Method().String())
	row("bodies", fmt.Sprintf("%d", m.sim.Len()))
	row("energy", fmt.Sprintf("%+.6f", m.sim.TotalEnergy()))
	row("|p|", fmt.Sprintf("%.6f", m.sim.LinearMomentum().Norm()))
	row("L", fmt.Sprintf("%+.6f", m.sim.AngularMomentum(nbody.ReferenceFrame{})))
	if com, err := m.sim.CenterOfMass(); err == nil {
		row("com", fmt.Sprintf("(%.3f, %.3f)", com[0], com[1]))
	}

	if len(m.energyHistory) > 2 {
		sb.WriteString(graphStyle.Render(asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6), asciigraph.Width(34), asciigraph.Precision(4))))
	}
	return sb.String()
}

// Run starts the live view and blocks until the user quits.
func Run(scn *scenario.Scenario) error {
	m, err := NewModel(scn)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
