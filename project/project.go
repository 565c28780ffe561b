// Package project locates and describes a source tree: a gsm.toml manifest
// at the root plus .gsm files under its source directory.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "gsm.toml"

// Manifest is the decoded gsm.toml.
type Manifest struct {
	Project Settings `toml:"project"`
}

// Settings is the [project] table. Src is relative to the project root and
// defaults to "src".
type Settings struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Src     string `toml:"src"`
}

// Project is a loaded project.
type Project struct {
	RootDir  string
	Manifest Manifest
}

// Load locates the project enclosing the working directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom walks up from dir looking for the manifest and loads the first
// one found.
func LoadFrom(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	for d := abs; ; d = filepath.Dir(d) {
		path := filepath.Join(d, ManifestName)
		if _, err := os.Stat(path); err == nil {
			return loadManifest(d, path)
		}
		if filepath.Dir(d) == d {
			break
		}
	}

	return nil, fmt.Errorf("no %s found in %s or any parent directory", ManifestName, abs)
}

func loadManifest(rootDir, path string) (*Project, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	p := &Project{RootDir: rootDir}
	if err := toml.Unmarshal(content, &p.Manifest); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if p.Manifest.Project.Name == "" {
		return nil, fmt.Errorf("%s: project name is empty", path)
	}
	if p.Manifest.Project.Src == "" {
		p.Manifest.Project.Src = "src"
	}
	return p, nil
}

// ManifestPath returns the absolute path of the manifest file.
func (p *Project) ManifestPath() string {
	return filepath.Join(p.RootDir, ManifestName)
}

// SrcDir returns the absolute source directory.
func (p *Project) SrcDir() string {
	return filepath.Join(p.RootDir, p.Manifest.Project.Src)
}

// SourceFiles returns all .gsm files under the source directory,
// recursively, in walk order.
func (p *Project) SourceFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(p.SrcDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".gsm") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan source files in %s: %w", p.SrcDir(), err)
	}

	return files, nil
}

// Scaffold writes a fresh manifest and a starter source file into dir,
// creating directories as needed. It refuses to overwrite an existing
// manifest. An empty name defaults to the directory name.
func Scaffold(dir, name string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	if name == "" {
		name = filepath.Base(abs)
	}

	path := filepath.Join(abs, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%s already exists", path)
	}

	p := &Project{
		RootDir: abs,
		Manifest: Manifest{
			Project: Settings{Name: name, Version: "0.1.0", Src: "src"},
		},
	}

	if err := os.MkdirAll(p.SrcDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", p.SrcDir(), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(p.Manifest); err != nil {
		f.Close()
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	starter := filepath.Join(p.SrcDir(), "main.gsm")
	if _, err := os.Stat(starter); err == nil {
		return p, nil
	}
	source := "// " + name + "\nint answer = 42;\nprint(answer);\n"
	if err := os.WriteFile(starter, []byte(source), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", starter, err)
	}

	return p, nil
}
