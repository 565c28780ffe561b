package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/RozhanMk/Compiler-Project/gsm/parser"
	"github.com/RozhanMk/Compiler-Project/project"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Parse .gsm files and report syntax errors",
		Long: `Parse .gsm files and report syntax errors.

Arguments may be files or directories; directories are scanned
recursively. With no arguments, checks the source files of the
enclosing project (located via gsm.toml).

Each failure prints as file:line:col: message. The exit status is
non-zero if any file fails.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no .gsm files found")
			}

			failures := 0
			for _, filename := range files {
				source, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				if _, err := parser.Parse(source, parser.WithFile(filename)); err != nil {
					fmt.Println(err)
					failures++
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d files failed", failures, len(files))
			}
			return nil
		},
	}

	return cmd
}

// collectFiles resolves the check targets: explicit files stay as given,
// directories are walked for .gsm files, and an empty argument list means
// the enclosing project's source files.
func collectFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		proj, err := project.Load()
		if err != nil {
			return nil, err
		}
		return proj.SourceFiles()
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".gsm") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", arg, err)
		}
	}
	return files, nil
}
