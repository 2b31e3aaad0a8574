package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geange/dfa"
	"github.com/geange/dfa/dfaxml"
)

var errNotEquivalent = errors.New("automata are not language-equivalent")

func equivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equiv <a.xml> <b.xml>",
		Short: "Check whether two DFAs accept the same language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			b, err := loadAutomaton(args[1])
			if err != nil {
				return err
			}

			equal, err := dfa.LanguageEqual(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "equivalent: %t\n", equal)
			if !equal {
				return errNotEquivalent
			}
			return nil
		},
	}
}

func loadAutomaton(path string) (*dfa.Automaton, error) {
	rec, err := dfaxml.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dfa.FromRecord(rec)
}
