package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

type TickMsg time.Time

// Model replays a precomputed density evolution row by row.
type Model struct {
	x     []float64
	t     []float64
	rows  [][]float64
	frame int
	fps   int

	playing bool
}

// NewModel builds a replay over the solved density table.
func NewModel(x, t []float64, rows [][]float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{x: x, t: t, rows: rows, fps: fps, playing: true}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "left", "h":
			m.playing = false
			if m.frame > 0 {
				m.frame--
			}
		case "right", "l":
			m.playing = false
			if m.frame < len(m.rows)-1 {
				m.frame++
			}
		case "r":
			m.frame = 0
			m.playing = true
		}
		return m, nil

	case TickMsg:
		if m.playing && m.frame < len(m.rows)-1 {
			m.frame++
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return "no data\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("forward equation replay"))
	b.WriteString("\n")

	graph := asciigraph.Plot(m.rows[m.frame],
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")

	status := "running"
	if !m.playing {
		status = "paused"
	}
	b.WriteString(Stat("t", fmt.Sprintf("%.4f", m.t[m.frame])))
	b.WriteString("\n")
	b.WriteString(Stat("frame", fmt.Sprintf("%d/%d", m.frame+1, len(m.rows))))
	b.WriteString("\n")
	b.WriteString(Stat("status", status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space pause · ←/→ scrub · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}
