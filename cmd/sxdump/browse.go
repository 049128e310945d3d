package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/sxscript/script"
)

const sidebarWidth = 26

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse the decoded sections interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("browse needs a terminal; use dump instead")
			}
			m, err := loadModule(args[0], flags)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(args[0], m), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

type browseModel struct {
	err      error
	mod      *script.Module
	filename string
	viewport viewport.Model
	selected int
	ready    bool
}

func newBrowseModel(filename string, m *script.Module) *browseModel {
	return &browseModel{filename: filename, mod: m}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}
			return m, nil

		case "down", "j":
			if m.selected < len(sectionNames)-1 {
				m.selected++
				m.refresh()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		width := max(msg.Width-sidebarWidth-2, 10)
		height := max(msg.Height-4, 3)
		if !m.ready {
			m.viewport = viewport.New(width, height)
			m.ready = true
			m.refresh()
		} else {
			m.viewport.Width = width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh renders the selected section into the viewport.
func (m *browseModel) refresh() {
	v, err := section(m.mod, sectionNames[m.selected])
	if err == nil {
		var out string
		out, err = renderJSON(v)
		m.viewport.SetContent(out)
	}
	m.err = err
	m.viewport.GotoTop()
}

func (m *browseModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var side strings.Builder
	for i, name := range sectionNames {
		line := fmt.Sprintf("%-18s %6d", name, sectionLen(m.mod, name))
		if i == m.selected {
			side.WriteString(selectedStyle.Render("> " + line))
		} else {
			side.WriteString("  " + line)
		}
		side.WriteByte('\n')
	}

	body := m.viewport.View()
	if m.err != nil {
		body = warnStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("sxdump"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(sidebarWidth+2).Render(side.String()),
		body))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ section • pgup/pgdn scroll • q quit"))
	return b.String()
}
