package cli

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"qtexcirq"
)

var (
	viewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bb9af7"))
	viewStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// newViewCmd creates the view command: an interactive terminal viewer for a
// circuit diagram with switchable layout and markup modes.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a circuit diagram interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circ, err := LoadCircuit(args[0])
			if err != nil {
				return err
			}
			m := newViewModel(circ, args[0])
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type viewModel struct {
	circ  *qtexcirq.Circuit
	path  string
	mode  qtexcirq.LayoutMode
	latex bool
	vp    viewport.Model
	ready bool
	err   error
}

func newViewModel(c *qtexcirq.Circuit, path string) viewModel {
	return viewModel{circ: c, path: path, mode: qtexcirq.Packed}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "l":
			if m.mode == qtexcirq.Packed {
				m.mode = qtexcirq.Serial
			} else {
				m.mode = qtexcirq.Packed
			}
			m.refresh()
		case "x":
			m.latex = !m.latex
			m.refresh()
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
			m.refresh()
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 3
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *viewModel) refresh() {
	var out string
	if m.latex {
		out, m.err = qtexcirq.Render(m.circ, m.mode)
	} else {
		out, m.err = qtexcirq.RenderTerm(m.circ, m.mode)
	}
	if m.err != nil {
		out = m.err.Error()
	}
	m.vp.SetContent(out)
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	markup := "terminal"
	if m.latex {
		markup = "latex"
	}
	title := viewTitleStyle.Render("qtexcirq · " + m.path)
	status := viewStatusStyle.Render(
		"layout: " + m.mode.String() + "  markup: " + markup +
			"  [l] layout  [x] markup  [q] quit")
	return title + "\n" + m.vp.View() + "\n" + status
}
