// Package tui implements the interactive agent catalog browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/agusx1211/rulebook/internal/agentcat"
	"github.com/agusx1211/rulebook/internal/theme"
)

const listWidth = 28

// KeyMap defines the key bindings of the catalog browser.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key map.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous agent"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next agent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the catalog browser.
type Model struct {
	names    []string
	selected int

	vp     viewport.Model
	keys   KeyMap
	width  int
	height int
	ready  bool
}

// NewModel builds a catalog model over the full agent catalog.
func NewModel() Model {
	return Model{
		names: agentcat.Names(),
		keys:  DefaultKeyMap(),
	}
}

// RunCatalog starts the interactive browser and blocks until it exits.
func RunCatalog() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(m.docWidth(), m.docHeight())
			m.ready = true
		} else {
			m.vp.Width = m.docWidth()
			m.vp.Height = m.docHeight()
		}
		m.loadSelectedDoc()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// moveSelection moves the highlighted agent by delta positions with
// wraparound.
func (m *Model) moveSelection(delta int) {
	if len(m.names) == 0 {
		m.selected = 0
		return
	}
	sel := m.selected + delta
	for sel < 0 {
		sel += len(m.names)
	}
	m.selected = sel % len(m.names)
	m.loadSelectedDoc()
}

// loadSelectedDoc renders the selected agent's document into the viewport.
func (m *Model) loadSelectedDoc() {
	if !m.ready || len(m.names) == 0 {
		return
	}
	name := m.names[m.selected]
	doc, err := agentcat.Doc(name)
	if err != nil {
		m.vp.SetContent(lipgloss.NewStyle().Foreground(theme.ColorRed).
			Render(fmt.Sprintf("failed to load %s: %v", name, err)))
		return
	}
	m.vp.SetContent(m.renderMarkdown(doc))
	m.vp.GotoTop()
}

func (m *Model) renderMarkdown(doc string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.docWidth()-2),
	)
	if err != nil {
		return doc
	}
	out, err := r.Render(doc)
	if err != nil {
		return doc
	}
	return out
}

func (m Model) docWidth() int {
	w := m.width - listWidth - 3
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) docHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorLavender).
		Render("Agent Catalog")
	status := lipgloss.NewStyle().Foreground(theme.ColorOverlay0).
		Render("↑/↓ select · q quit")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(),
		lipgloss.NewStyle().Foreground(theme.ColorSurface1).Render(" │ "),
		m.vp.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, status)
}

// renderList renders the left-hand agent list with the selection highlighted.
func (m Model) renderList() string {
	core := make(map[string]bool)
	for _, name := range agentcat.Core() {
		core[name] = true
	}

	var lines []string
	for i, name := range m.names {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(theme.ColorSubtext0)
		if core[name] {
			style = lipgloss.NewStyle().Foreground(theme.ColorTeal)
		}
		if i == m.selected {
			marker = "> "
			style = style.Bold(true).Background(theme.ColorSurface0).
				Foreground(theme.ColorText)
		}
		lines = append(lines, ansi.Truncate(marker+style.Render(name), listWidth, "…"))
	}

	visible := m.docHeight()
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}
