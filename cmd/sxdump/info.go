package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wippyai/sxscript/script"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(26)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))
)

func newInfoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show the header and section summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args[0], flags)
			if err != nil {
				return err
			}
			writeInfo(cmd.OutOrStdout(), args[0], m)
			return nil
		},
	}
}

func writeInfo(w io.Writer, filename string, m *script.Module) {
	h := m.Header
	var b strings.Builder

	row := func(label string, value any) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprint(value)))
		b.WriteByte('\n')
	}
	hex := func(v uint32) string { return fmt.Sprintf("0x%08x", v) }

	b.WriteString(titleStyle.Render("sx module"))
	b.WriteString(" ")
	b.WriteString(filename)
	b.WriteString("\n\n")

	row("magic", hex(h.Magic))
	row("version", h.Version)
	row("status", h.Status)
	row("size", fmt.Sprintf("%d (%s)", h.Size, humanize.Bytes(uint64(h.Size))))
	row("compiled_file_name_offset", hex(h.CompiledFileNameOffset))
	row("source_file_name_offset", hex(h.SourceFileNameOffset))
	row("decoded", humanize.Bytes(uint64(m.End)))
	b.WriteByte('\n')

	row("opcode_count", fmt.Sprintf("%d words, %d instructions", h.OpcodeCount, len(m.Instructions)))
	b.WriteByte('\n')

	for _, s := range m.Layout() {
		value := fmt.Sprintf("%-8d @ 0x%06x  %s", s.Count, s.Offset, humanize.Bytes(uint64(s.Size)))
		if s.Count != 0 && int64(s.Declared) != s.Offset {
			value += warnStyle.Render(fmt.Sprintf("  declared 0x%06x", s.Declared))
		}
		row(s.Name, value)
	}

	if err := m.CheckLayout(); err != nil {
		b.WriteByte('\n')
		b.WriteString(warnStyle.Render(err.Error()))
		b.WriteByte('\n')
	}

	fmt.Fprint(w, b.String())
}
