package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RozhanMk/Compiler-Project/project"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var projectName string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new GSM project",
		Long: `Initialize a new GSM project.

If a directory is provided, creates it and initializes the project there.
Otherwise, initializes in the current directory.

The project name defaults to the directory basename. Use -p to override.

This command creates gsm.toml and a src/ directory with a starter
main.gsm.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory: %w", err)
				}
			}

			proj, err := project.Scaffold(dir, projectName)
			if err != nil {
				return err
			}

			fmt.Printf("Created %s\n", proj.ManifestPath())
			fmt.Printf("Created %s\n", filepath.Join(proj.SrcDir(), "main.gsm"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "project", "p", "", "project name (defaults to directory name)")

	return cmd
}
