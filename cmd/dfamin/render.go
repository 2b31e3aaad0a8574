package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geange/dfa"
)

// Which immutable automaton gets converted to DOT. The interactive toggle
// of a host UI is just this enum flipping; the conversion is rebuilt fresh
// per render and the core holds no display state.
type view string

const (
	viewOriginal  view = "original"
	viewMinimized view = "minimized"
)

func renderCmd() *cobra.Command {
	var (
		input    string
		selected string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Emit Graphviz DOT for the original or minimized DFA",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAutomaton(input)
			if err != nil {
				return err
			}

			switch view(selected) {
			case viewOriginal:
				fmt.Fprint(cmd.OutOrStdout(), dfa.DOT(a, "Original DFA"))
			case viewMinimized:
				minimized, err := dfa.Minimize(a)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), dfa.DOT(minimized, "Minimized DFA"))
			default:
				return fmt.Errorf("unknown view %q (want original or minimized)", selected)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "input.xml", "input automaton XML file")
	cmd.Flags().StringVar(&selected, "view", string(viewOriginal), "which automaton to render: original or minimized")

	return cmd
}
