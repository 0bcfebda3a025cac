package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/wordrain/internal/rain"
)

// Entry is one selectable configuration in the menu.
type Entry struct {
	Name    string
	Summary string
	Params  rain.Params
}

const (
	stateMenu = iota
	stateLive
)

type menu struct {
	state         int
	cursor        int
	entries       []Entry
	seed          int64
	fps           int
	width, height int
	help          help.Model
	live          Model
}

func NewMenu(entries []Entry, seed int64, fps int) *menu {
	return &menu{
		entries: entries,
		seed:    seed,
		fps:     fps,
		width:   width,
		height:  height,
		help:    help.New(),
	}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.menuKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m menu) menuKey(msg tea.KeyMsg) (menu, tea.Cmd) {
	switch {
	case key.Matches(msg, menuKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, menuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, menuKeys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, menuKeys.Select):
		if len(m.entries) == 0 {
			return m, nil
		}
		return m, m.start()
	}
	return m, nil
}

func (m *menu) start() tea.Cmd {
	e := m.entries[m.cursor]
	m.live = NewModel(e.Params, m.seed, m.fps, nil).WithName(e.Name)
	m.live.resize(m.width, m.height)
	m.state = stateLive
	return m.live.Init()
}

func (m menu) View() string {
	if m.state == stateLive {
		return m.live.View()
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("WORDRAIN") + "\n\n")
	for i, e := range m.entries {
		name := fmt.Sprintf("%-10s", e.Name)
		if i == m.cursor {
			s.WriteString(selectedStyle.Render("> " + name))
		} else {
			s.WriteString("  " + name)
		}
		s.WriteString(" " + subtleStyle.Render(e.Summary) + "\n")
	}
	s.WriteString("\n" + m.help.View(menuKeys))
	return s.String()
}

// RunMenu shows the preset picker and then the live view.
func RunMenu(entries []Entry, seed int64, fps int) error {
	prog := tea.NewProgram(NewMenu(entries, seed, fps), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
