package main

import (
	"fmt"
	"os"

	"github.com/RozhanMk/Compiler-Project/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var verify bool
	var listProductions bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the language grammar in EBNF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verify {
				if err := grammar.Check(); err != nil {
					return err
				}
			}

			if listProductions {
				names, err := grammar.Productions()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Println(name)
				}
				return nil
			}

			_, err := os.Stdout.Write(grammar.EBNF())
			return err
		},
	}

	cmd.Flags().BoolVarP(&verify, "verify", "v", false, "verify the grammar before printing")
	cmd.Flags().BoolVarP(&listProductions, "productions", "p", false, "list production names instead of the grammar text")

	return cmd
}
