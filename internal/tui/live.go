// Package tui provides a live terminal view of a running simulation
// built on Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"isinglab/internal/ising"
	"isinglab/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	pausedTag  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

const historyLen = 120

type tickMsg time.Time

type model struct {
	sim     *ising.Simulator
	bc      ising.Boundary
	initial *ising.Lattice

	sweep     int
	lastFlips int
	history   []float64
	paused    bool
	done      bool

	frameRate int
}

// Run starts the live view: one sweep per frame with the lattice, the
// running magnetization and a magnetization history graph.
func Run(sim *ising.Simulator, bc ising.Boundary, frameRate int) error {
	if frameRate < 1 {
		frameRate = 30
	}
	m := model{
		sim:       sim,
		bc:        bc,
		initial:   sim.Lattice().Clone(),
		history:   make([]float64, 0, historyLen),
		frameRate: frameRate,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			lat := m.sim.Lattice()
			copy(lat.Spins(), m.initial.Spins())
			m.sweep = 0
			m.lastFlips = 0
			m.history = m.history[:0]
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			flips, err := m.sim.Sweep(m.bc)
			if err != nil {
				m.done = true
				return m, tea.Quit
			}
			m.lastFlips = flips
			m.sweep++

			lat := m.sim.Lattice()
			m.history = append(m.history, lat.TotalSpin()/float64(lat.Size()))
			if len(m.history) > historyLen {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}

	lat := m.sim.Lattice()
	var b strings.Builder

	title := fmt.Sprintf("isinglab live  %dx%d  %s  T=%.3f", lat.Rows(), lat.Cols(), m.bc, m.sim.Temperature())
	b.WriteString(titleStyle.Render(title))
	if m.paused {
		b.WriteString("  " + pausedTag.Render("PAUSED"))
	}
	b.WriteString("\n\n")

	b.WriteString(render.Grid(lat))
	b.WriteByte('\n')

	accept := float64(m.lastFlips) / float64(lat.Size())
	b.WriteString(labelStyle.Render("sweep ") + statStyle.Render(fmt.Sprintf("%d", m.sweep)))
	b.WriteString(labelStyle.Render("   M/N ") + statStyle.Render(fmt.Sprintf("%+.4f", lat.TotalSpin()/float64(lat.Size()))))
	b.WriteString(labelStyle.Render("   accepted ") + statStyle.Render(fmt.Sprintf("%.1f%%", 100*accept)))
	b.WriteString("\n\n")

	if len(m.history) >= 2 {
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("magnetization per site"),
		))
		b.WriteByte('\n')
	}

	b.WriteString(hintStyle.Render("space pause  r reset  q quit"))
	b.WriteByte('\n')
	return b.String()
}
