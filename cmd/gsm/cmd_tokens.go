package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RozhanMk/Compiler-Project/gsm/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a .gsm file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if ext := filepath.Ext(filename); ext != ".gsm" {
				return fmt.Errorf("unsupported file extension: %s (expected .gsm)", ext)
			}

			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			for _, tok := range parser.NewLexer(source, filename).Tokenize() {
				fmt.Printf("%s %s %q\n", tok.Span.Start, tok.Kind, tok.Literal)
			}
			return nil
		},
	}

	return cmd
}
