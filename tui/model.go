// Package tui shows the scene in a terminal and turns key presses into input.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mogaika/aquarium_viewer/driver"
	"github.com/mogaika/aquarium_viewer/render"
)

type frameMsg time.Time

// Model is driven by bubbletea on a single goroutine, so it owns the loop
// without a driver.Runner.
type Model struct {
	loop     *driver.Loop
	interval time.Duration
	last     driver.Snapshot
	lastKey  string
	quitting bool
}

func NewModel(loop *driver.Loop, width, height, fps int) *Model {
	if fps <= 0 {
		fps = 1
	}
	if loop.Canvas == nil {
		loop.Canvas = render.NewCanvas(width, height)
	}
	return &Model{
		loop:     loop,
		interval: time.Second / time.Duration(fps),
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	m.last = m.loop.Frame()
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.last = m.loop.Frame()
		return m, m.tick()
	case tea.WindowSizeMsg:
		// keep one line for the status bar
		height := msg.Height - 1
		if height < 1 {
			height = 1
		}
		m.loop.Canvas.Resize(msg.Width, height)
		m.loop.SetAspect(float32(msg.Width) / float32(2*height))
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "w":
			m.loop.Canvas.CycleMode()
		default:
			m.loop.Input(key)
		}
		m.lastKey = key
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.loop.Canvas.String())
	b.WriteByte('\n')
	fmt.Fprintf(&b, "t=%7.2f yaw=%4.0f mode=%s key=%q  arrows turn, space resets, m model, w wireframe, q quit",
		m.last.Time, m.last.Yaw, m.loop.Canvas.Mode, m.lastKey)
	return b.String()
}

// Snapshot returns the latest drawn frame.
func (m *Model) Snapshot() driver.Snapshot { return m.last }
