package viz

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/wordrain/internal/rain"
	"github.com/san-kum/wordrain/internal/sim"
)

const (
	width      = 80
	height     = 24
	defaultFPS = 30
)

type TickMsg time.Time

// Model drives a rain.Field from a pausable clock and renders it to a
// character canvas.
type Model struct {
	params rain.Params
	seed   int64
	name   string

	field  *rain.Field
	clock  *sim.PausableClock
	canvas *Canvas

	fps           int
	width, height int
	help          help.Model
	showHelp      bool
	frames        int
}

// NewModel builds a live view over clock. A nil clock uses the wall clock.
func NewModel(p rain.Params, seed int64, fps int, clock sim.Clock) Model {
	if clock == nil {
		clock = sim.NewWallClock()
	}
	if fps <= 0 {
		fps = defaultFPS
	}
	m := Model{
		params: p,
		seed:   seed,
		name:   "wordrain",
		clock:  sim.NewPausableClock(clock),
		fps:    fps,
		help:   help.New(),
	}
	m.resize(width, height)
	m.reseed(seed)
	return m
}

// WithName sets the title shown in the status bar.
func (m Model) WithName(name string) Model {
	m.name = name
	return m
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.canvas = NewCanvas(max(1, w), max(1, h-m.chromeRows()))
	if m.field != nil {
		m.field.Resize(m.canvas.Viewport(m.params.LineHeight))
	}
}

// chromeRows is the status bar plus the help block below the rain.
func (m *Model) chromeRows() int {
	if !m.showHelp {
		return 2
	}
	rows := 0
	for _, group := range liveKeys.FullHelp() {
		rows = max(rows, len(group))
	}
	return 1 + rows
}

func (m *Model) reseed(seed int64) {
	m.seed = seed
	vp := m.canvas.Viewport(m.params.LineHeight)
	m.field = rain.New(m.params, vp, rain.NewSource(seed), m.clock.Now())
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
		switch {
		case key.Matches(msg, liveKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, liveKeys.Pause):
			if m.clock.Paused() {
				m.clock.Resume()
			} else {
				m.clock.Pause()
			}
		case key.Matches(msg, liveKeys.Reseed):
			m.reseed(m.seed + 1)
		case key.Matches(msg, liveKeys.Color):
			m.params.Palette.Mode = m.params.Palette.Mode.Next()
			m.field.SetPalette(m.params.Palette)
		case key.Matches(msg, liveKeys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			m.resize(m.width, m.height)
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if !m.clock.Paused() {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.field.Update(m.clock.Now())
	m.frames++
}

func (m Model) View() string {
	glyphs := m.field.Glyphs()
	m.canvas.Clear()
	m.canvas.Draw(glyphs, m.params.LineHeight, m.params.Columns)

	status := statusRunning.Render("RUNNING")
	if m.clock.Paused() {
		status = statusPaused.Render("PAUSED")
	}
	bar := statusBar(m.width,
		headerStyle.Render(m.name),
		status,
		statusField("mode", m.params.Palette.Mode),
		statusField("seed", m.seed),
		statusField("drops", len(glyphs)),
		statusField("t", fmt.Sprintf("%.1fs", m.field.Now().Seconds())),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.canvas.String(), bar, m.help.View(liveKeys))
}

// Field exposes the running field, mainly for tests.
func (m Model) Field() *rain.Field { return m.field }

// Run starts the full-screen live view.
func Run(p rain.Params, seed int64, fps int, name string) error {
	prog := tea.NewProgram(NewModel(p, seed, fps, nil).WithName(name), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
