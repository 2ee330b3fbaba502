package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	witabi "github.com/wippyai/wit-abi"
	"github.com/wippyai/wit-abi/abi"
	"github.com/wippyai/wit-abi/markdown"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err      error
	doc      *markdown.Document
	filename string
	variant  abi.Variant
	entries  []docEntry
	view     viewport.Model
	selected int
	width    int
	height   int
	state    browserState
}

// docEntry is one selectable section of the rendered document.
type docEntry struct {
	name string
	kind string
	line int
}

type browserState int

const (
	stateSelect browserState = iota
	stateRead
)

type renderedMsg struct {
	err     error
	doc     *markdown.Document
	entries []docEntry
}

func newBrowserModel(filename string, variant abi.Variant) *browserModel {
	return &browserModel{
		filename: filename,
		variant:  variant,
		state:    stateSelect,
		view:     viewport.New(80, 24),
	}
}

func (m *browserModel) Init() tea.Cmd {
	return m.renderDoc
}

func (m *browserModel) renderDoc() tea.Msg {
	doc, err := witabi.RenderFile(m.filename, m.variant)
	if err != nil {
		return renderedMsg{err: err}
	}
	return renderedMsg{doc: doc, entries: collectEntries(doc.Text)}
}

// collectEntries indexes the section headers of a rendered document so
// selecting an entry can scroll straight to it.
func collectEntries(text string) []docEntry {
	var entries []docEntry
	for i, line := range strings.Split(text, "\n") {
		var kind string
		switch {
		case strings.HasPrefix(line, "## "):
			kind = "type"
		case strings.HasPrefix(line, "#### "):
			kind = "func"
		default:
			continue
		}
		start := strings.Index(line, "`")
		if start < 0 {
			continue
		}
		end := strings.Index(line[start+1:], "`")
		if end < 0 {
			continue
		}
		entries = append(entries, docEntry{
			name: line[start+1 : start+1+end],
			kind: kind,
			line: i,
		})
	}
	return entries
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelect && len(m.entries) > 0 {
				m.view.SetYOffset(m.entries[m.selected].line)
				m.state = stateRead
			}

		case "esc":
			if m.state == stateRead {
				m.state = stateSelect
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 3

	case renderedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.doc = msg.doc
		m.entries = msg.entries
		m.view.SetContent(msg.doc.Text)
	}

	if m.state == stateRead {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.doc == nil {
		return "Rendering..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("WIT ABI Docs"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(" (")
	b.WriteString(m.variant.String())
	b.WriteString(")\n\n")

	switch m.state {
	case stateSelect:
		if len(m.entries) == 0 {
			b.WriteString("Document has no named types or functions.\n")
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select a section:\n\n")
		for i, e := range m.entries {
			label := entryStyle.Render(e.name) + " " + kindStyle.Render(e.kind)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + e.name + " " + e.kind))
			} else {
				b.WriteString("  " + label)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter read • q quit"))

	case stateRead:
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(filename string, variant abi.Variant) error {
	p := tea.NewProgram(newBrowserModel(filename, variant), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
