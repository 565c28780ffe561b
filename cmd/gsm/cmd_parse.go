package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RozhanMk/Compiler-Project/format"
	"github.com/RozhanMk/Compiler-Project/gsm/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .gsm file and dump the syntax tree",
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
			prog, err := parser.Parse(source, parser.WithFile(filename))
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewASTJSONEncoder(os.Stdout)
			case "yaml":
				encoder = format.NewASTYAMLEncoder(os.Stdout)
			case "tree":
				encoder = format.NewTreeEncoder(os.Stdout)
			case "source":
				encoder = format.NewSourceEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s (expected json, yaml, tree, or source)", outputFormat)
			}

			if err := encoder.Encode(prog); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml, tree, source)")

	return cmd
}
