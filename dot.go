package dfa

import (
	"fmt"
	"strings"
)

// DOT Converts an automaton into Graphviz DOT text for an external
// renderer. The conversion is one-way and stateless: callers rebuild the
// text from whichever immutable automaton they want displayed. Start state
// is drawn green, final states pink, the rest blue, with a legend matching.
// A state that is both start and final is drawn as final.
func DOT(a *Automaton, title string) string {
	var sb strings.Builder

	sb.WriteString("digraph DFA {\n")
	fmt.Fprintf(&sb, "  label=%q;\n", title)
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle, style=filled];\n")
	sb.WriteString("\n")

	for s := 0; s < a.NumStates(); s++ {
		fmt.Fprintf(&sb, "  %q [fillcolor=%q];\n", a.StateName(s), fillColor(a, s))
	}
	sb.WriteString("\n")

	sb.WriteString("  start [shape=point];\n")
	fmt.Fprintf(&sb, "  start -> %q;\n", a.StateName(a.start))
	sb.WriteString("\n")

	// One edge per (source, dest), labels joined.
	for s := 0; s < a.NumStates(); s++ {
		labels := make(map[int][]string)
		var order []int
		for x := 0; x < a.NumSymbols(); x++ {
			dest := a.Step(s, x)
			if _, ok := labels[dest]; !ok {
				order = append(order, dest)
			}
			labels[dest] = append(labels[dest], a.Symbol(x))
		}
		for _, dest := range order {
			fmt.Fprintf(&sb, "  %q -> %q [label=%q];\n",
				a.StateName(s), a.StateName(dest), strings.Join(labels[dest], ","))
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  subgraph cluster_legend {\n")
	sb.WriteString("    label=\"Legend\";\n")
	sb.WriteString("    node [shape=box];\n")
	sb.WriteString("    legend_start [label=\"Start State\", fillcolor=\"lightgreen\"];\n")
	sb.WriteString("    legend_final [label=\"Final State\", fillcolor=\"lightpink\"];\n")
	sb.WriteString("    legend_other [label=\"Other States\", fillcolor=\"lightblue\"];\n")
	sb.WriteString("  }\n")
	sb.WriteString("}\n")

	return sb.String()
}

func fillColor(a *Automaton, state int) string {
	switch {
	case a.IsAccept(state):
		return "lightpink"
	case state == a.start:
		return "lightgreen"
	default:
		return "lightblue"
	}
}
