package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/d0sboots/maze-project/pkg/maze"
	"github.com/d0sboots/maze-project/pkg/render/text"
)

// weaveStep is how much +/- nudges the weave fraction in the viewer.
const weaveStep = 0.05

// viewCommand creates the view command: an interactive terminal maze
// browser.
func (c *CLI) viewCommand() *cobra.Command {
	opts := generateOpts{
		width:  c.Config.Generate.Width,
		height: c.Config.Generate.Height,
		weave:  c.Config.Generate.Weave,
	}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse mazes interactively in the terminal",
		Long: `View mazes in an interactive terminal session.

Keys:
  n        generate a new maze
  + / -    raise or lower the weave fraction
  q        quit

Resizing the terminal resizes the maze to fit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := opts.seed
			if seed == "" {
				seed = newSeed()
			}
			m := newViewModel(opts.width, opts.height, opts.weave, seed)
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", opts.width, "maze width in cells")
	cmd.Flags().IntVarP(&opts.height, "height", "H", opts.height, "maze height in cells")
	cmd.Flags().Float64Var(&opts.weave, "weave", opts.weave, "weave fraction in [0, 1)")
	cmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "seed string (random if empty)")

	return cmd
}

// viewModel is the bubbletea model for the maze browser. Each state change
// regenerates the maze; generation is fast enough that no async command is
// needed.
type viewModel struct {
	width    int
	height   int
	weave    float64
	seed     string
	rendered string
	status   string
	err      error
}

func newViewModel(width, height int, weave float64, seed string) viewModel {
	m := viewModel{width: width, height: height, weave: weave, seed: seed}
	m.regenerate()
	return m
}

// regenerate rebuilds the maze from the model's current parameters.
func (m *viewModel) regenerate() {
	g, err := maze.Generate(maze.Config{
		Width:         m.width,
		Height:        m.height,
		WeaveFraction: m.weave,
		Seed:          m.seed,
	})
	if err != nil {
		m.err = err
		m.rendered = ""
		return
	}
	m.err = nil
	m.rendered = text.Render(g, text.Options{})
	m.status = fmt.Sprintf("%dx%d · weave %.2f · %d crossings · seed %s",
		g.Width, g.Height, m.weave, g.WeaveCount(), m.seed)
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
		case "n":
			m.seed = newSeed()
			m.regenerate()
		case "+", "=":
			if m.weave+weaveStep < 1 {
				m.weave += weaveStep
				m.regenerate()
			}
		case "-", "_":
			m.weave -= weaveStep
			if m.weave < 0 {
				m.weave = 0
			}
			m.regenerate()
		}
	case tea.WindowSizeMsg:
		// Each cell is 3 runes wide and 2 lines tall; leave room for the
		// header and status lines.
		w := (msg.Width - 1) / 3
		h := (msg.Height - 5) / 2
		if w < 2 {
			w = 2
		}
		if h < 2 {
			h = 2
		}
		if w != m.width || h != m.height {
			m.width, m.height = w, h
			m.regenerate()
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Maze"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("n new  +/- weave  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.rendered)
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.status))

	return b.String()
}
