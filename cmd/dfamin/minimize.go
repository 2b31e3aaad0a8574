package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/geange/dfa"
	"github.com/geange/dfa/dfaxml"
)

func minimizeCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "Read a DFA from an XML file, minimize it and write the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := dfaxml.ReadFile(input)
			if err != nil {
				return err
			}
			a, err := dfa.FromRecord(rec)
			if err != nil {
				return err
			}

			minimized, err := dfa.Minimize(a)
			if err != nil {
				return err
			}
			log.Info().
				Int("states", a.NumStates()).
				Int("minimizedStates", minimized.NumStates()).
				Msg("minimized DFA")

			// Honest external check that the pipeline preserved the language.
			equal, err := dfa.LanguageEqual(a, minimized)
			if err != nil {
				return err
			}
			log.Debug().Bool("languagePreserved", equal).Msg("verified minimization")

			if err := dfaxml.WriteFile(output, minimized.Record()); err != nil {
				return err
			}
			log.Info().Str("path", output).Msg("minimized DFA saved")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "input.xml", "input automaton XML file")
	cmd.Flags().StringVarP(&output, "output", "o", "output.xml", "output automaton XML file")

	return cmd
}
