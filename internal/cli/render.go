package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Renderer writes steps, results and tree outlines to w. Colors are only
// emitted when w is a terminal.
type Renderer struct {
	w io.Writer

	titleStyle lipgloss.Style
	nodeStyle  lipgloss.Style
	goalStyle  lipgloss.Style
	dimStyle   lipgloss.Style
	okStyle    lipgloss.Style
	failStyle  lipgloss.Style
	indexStyle lipgloss.Style
}

// NewRenderer returns a Renderer bound to w.
func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)

	return &Renderer{
		w: w,
		titleStyle: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		nodeStyle: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		goalStyle: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		dimStyle: lr.NewStyle().
			Foreground(lipgloss.Color("241")),
		okStyle: lr.NewStyle().
			Foreground(lipgloss.Color("42")),
		failStyle: lr.NewStyle().
			Foreground(lipgloss.Color("196")),
		indexStyle: lr.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(4).
			Align(lipgloss.Right),
	}
}

// Step prints one StepEvent; n is its 1-based position in the run.
func (r *Renderer) Step(n int, ev search.StepEvent) {
	var b strings.Builder

	b.WriteString(r.indexStyle.Render(strconv.Itoa(n)))
	b.WriteString("  ")
	if ev.Goal {
		b.WriteString(r.goalStyle.Render(ev.Node + " *goal*"))
	} else {
		b.WriteString(r.nodeStyle.Render(ev.Node))
	}
	if ev.HasParent {
		b.WriteString(r.dimStyle.Render(" <- " + ev.Parent))
	}

	meta := fmt.Sprintf("  depth=%d cost=%s", ev.Depth, num(ev.Cost))
	if ev.Priority != 0 {
		meta += " key=" + num(ev.Priority)
	}
	if ev.Iteration > 0 {
		meta += " round=" + strconv.Itoa(ev.Iteration)
	}
	b.WriteString(r.dimStyle.Render(meta))
	b.WriteString("  frontier=[" + strings.Join(ev.Frontier, " ") + "]")

	fmt.Fprintln(r.w, b.String())
}

// Result prints the terminal outcome.
func (r *Renderer) Result(res *search.Result) {
	status := r.failStyle.Render(res.Status.String())
	if res.Status == search.GoalFound {
		status = r.okStyle.Render(res.Status.String())
	}
	fmt.Fprintln(r.w, r.titleStyle.Render(res.Strategy)+" "+status)
	fmt.Fprintln(r.w, "order: "+strings.Join(res.Order, " "))

	for _, g := range res.Goals() {
		fmt.Fprintf(r.w, "path %s: %s  cost=%s  h=%s\n",
			r.goalStyle.Render(g),
			strings.Join(res.Paths[g], " -> "),
			num(res.Costs[g]),
			num(res.HeuristicSums[g]),
		)
	}

	if res.Limit > 0 {
		fmt.Fprintf(r.w, "limit: %d  cutoff: %t\n", res.Limit, res.Cutoff)
	}
	for i, it := range res.Iterations {
		fmt.Fprintln(r.w, r.dimStyle.Render(fmt.Sprintf("round %d limit=%d cutoff=%t: %s",
			i+1, it.Limit, it.Cutoff, strings.Join(it.Order, " "))))
	}
}

// Tree prints an indented outline of t, one node per line.
func (r *Renderer) Tree(t *tree.Tree) {
	if t.Empty() {
		fmt.Fprintln(r.w, r.dimStyle.Render("(empty tree)"))
		return
	}
	t.Walk(func(n *tree.Node, depth int) bool {
		fmt.Fprintf(r.w, "%s%s %s\n",
			strings.Repeat("  ", depth),
			r.nodeStyle.Render(n.Label),
			r.dimStyle.Render(fmt.Sprintf("(h=%s cost=%s)", num(n.Heuristic), num(n.PathCost))),
		)
		return true
	})
	fmt.Fprintln(r.w, r.dimStyle.Render(fmt.Sprintf("%d nodes, height %d", t.Len(), t.Height())))
}

// Strategies prints the registry.
func (r *Renderer) Strategies(list []Strategy) {
	width := 0
	for _, s := range list {
		width = max(width, len(s.Name))
	}
	name := r.nodeStyle.Width(width)
	for _, s := range list {
		fmt.Fprintln(r.w, name.Render(s.Name)+"  "+r.dimStyle.Render(s.Summary))
	}
}

// Comparisons prints one summary line per strategy.
func (r *Renderer) Comparisons(rows []Comparison) {
	width := 0
	for _, c := range rows {
		width = max(width, len(c.Strategy))
	}
	name := r.nodeStyle.Width(width)
	for _, c := range rows {
		line := name.Render(c.Strategy) + "  "
		switch {
		case c.Err != nil:
			line += r.failStyle.Render("error: " + c.Err.Error())
		case c.Goal == "":
			line += r.failStyle.Render(c.Status.String()) + fmt.Sprintf("  steps=%d", c.Steps)
		default:
			line += r.okStyle.Render(c.Status.String()) +
				fmt.Sprintf("  steps=%d  %s: %s  cost=%s", c.Steps, c.Goal, strings.Join(c.Path, " -> "), num(c.Cost))
		}
		fmt.Fprintln(r.w, line)
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
