package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
)

// Explorer styles
var (
	exploreCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreVertexStyle = lipgloss.NewStyle().Foreground(colorWhite)
	exploreDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	exploreBestStyle   = lipgloss.NewStyle().Foreground(colorGreen)
)

// newExploreCmd creates the explore command, an interactive arrangement editor.
func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [graph.json]",
		Short: "Interactively rearrange vertices and watch the crossing count",
		Long: `Open an interactive editor for the arrangement. Move a cursor along the
line, swap vertices, and watch the crossing count respond. Useful for
building intuition on small graphs before running the exact solvers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if g.NumVertices() == 0 {
				printInfo("Nothing to explore: the graph has no vertices")
				return nil
			}

			m := newExploreModel(g)
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return fmt.Errorf("run explorer: %w", err)
			}

			fm := final.(exploreModel)
			printSuccess("Best seen: %s crossings", StyleNumber.Render(fmt.Sprintf("%d", fm.best)))
			printDetail("order: %v", fm.bestOrder)
			return nil
		},
	}
}

// exploreModel is the bubbletea model for the arrangement editor.
type exploreModel struct {
	g         graph.Graph
	order     []int // vertex at each position
	cursor    int
	crossings uint64
	best      uint64
	bestOrder []int
}

func newExploreModel(g graph.Graph) exploreModel {
	arr := linarr.Identity(g.NumVertices())
	c := linarr.Count(g, arr)
	m := exploreModel{
		g:         g,
		order:     arr.Order(),
		crossings: c,
		best:      c,
		bestOrder: arr.Order(),
	}
	return m
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}
	case "shift+left", "H":
		if m.cursor > 0 {
			m.order[m.cursor-1], m.order[m.cursor] = m.order[m.cursor], m.order[m.cursor-1]
			m.cursor--
			m.recount()
		}
	case "shift+right", "L":
		if m.cursor < len(m.order)-1 {
			m.order[m.cursor], m.order[m.cursor+1] = m.order[m.cursor+1], m.order[m.cursor]
			m.cursor++
			m.recount()
		}
	case "r":
		for i, j := 0, len(m.order)-1; i < j; i, j = i+1, j-1 {
			m.order[i], m.order[j] = m.order[j], m.order[i]
		}
		m.cursor = len(m.order) - 1 - m.cursor
		m.recount()
	case "b":
		copy(m.order, m.bestOrder)
		m.recount()
	}
	return m, nil
}

// recount re-evaluates the current order and tracks the best seen.
func (m *exploreModel) recount() {
	arr, err := linarr.FromOrder(m.order)
	if err != nil {
		return
	}
	m.crossings = linarr.Count(m.g, arr)
	if m.crossings < m.best {
		m.best = m.crossings
		m.bestOrder = arr.Order()
	}
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Arrangement Explorer"))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("←/→ move cursor  shift+←/→ swap  r reverse  b best  q quit"))
	b.WriteString("\n\n  ")

	for i, v := range m.order {
		label := fmt.Sprintf("[%d]", v)
		if i == m.cursor {
			b.WriteString(exploreCursorStyle.Render(label))
		} else {
			b.WriteString(exploreVertexStyle.Render(label))
		}
		if i < len(m.order)-1 {
			b.WriteString(exploreDimStyle.Render("─"))
		}
	}

	b.WriteString("\n\n  ")
	b.WriteString(fmt.Sprintf("crossings: %s", StyleNumber.Render(fmt.Sprintf("%d", m.crossings))))
	b.WriteString(exploreDimStyle.Render("   best: "))
	b.WriteString(exploreBestStyle.Render(fmt.Sprintf("%d", m.best)))
	b.WriteString("\n")

	return b.String()
}
