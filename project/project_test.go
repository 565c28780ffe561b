package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RozhanMk/Compiler-Project/gsm/parser"
)

func TestScaffoldAndLoad(t *testing.T) {
	dir := t.TempDir()

	p, err := Scaffold(dir, "calc")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if p.Manifest.Project.Name != "calc" {
		t.Errorf("name = %q, want %q", p.Manifest.Project.Name, "calc")
	}

	loaded, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Manifest.Project.Name != "calc" {
		t.Errorf("loaded name = %q, want %q", loaded.Manifest.Project.Name, "calc")
	}
	if loaded.Manifest.Project.Version != "0.1.0" {
		t.Errorf("loaded version = %q, want %q", loaded.Manifest.Project.Version, "0.1.0")
	}
	if loaded.Manifest.Project.Src != "src" {
		t.Errorf("loaded src = %q, want %q", loaded.Manifest.Project.Src, "src")
	}
	if loaded.RootDir != p.RootDir {
		t.Errorf("root = %q, want %q", loaded.RootDir, p.RootDir)
	}
}

func TestScaffoldStarterParses(t *testing.T) {
	dir := t.TempDir()

	p, err := Scaffold(dir, "starter")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}

	files, err := p.SourceFiles()
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("SourceFiles returned %d files, want 1", len(files))
	}

	source, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("read starter: %v", err)
	}
	prog, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("starter does not parse: %v", err)
	}
	if len(prog.Statements) == 0 {
		t.Error("starter parsed to an empty program")
	}
}

func TestScaffoldDefaultName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tracker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	p, err := Scaffold(dir, "")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if p.Manifest.Project.Name != "tracker" {
		t.Errorf("name = %q, want %q", p.Manifest.Project.Name, "tracker")
	}
}

func TestScaffoldRefusesExistingManifest(t *testing.T) {
	dir := t.TempDir()

	if _, err := Scaffold(dir, "first"); err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if _, err := Scaffold(dir, "second"); err == nil {
		t.Fatal("second Scaffold succeeded, want error")
	}
}

func TestLoadFromWalksUp(t *testing.T) {
	dir := t.TempDir()

	if _, err := Scaffold(dir, "walker"); err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	nested := filepath.Join(dir, "src", "deep", "deeper")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	p, err := LoadFrom(nested)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if p.Manifest.Project.Name != "walker" {
		t.Errorf("name = %q, want %q", p.Manifest.Project.Name, "walker")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	if p.RootDir != abs {
		t.Errorf("root = %q, want %q", p.RootDir, abs)
	}
}

func TestLoadFromMissingManifest(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	if err == nil {
		t.Fatal("LoadFrom succeeded, want error")
	}
	if !strings.Contains(err.Error(), ManifestName) {
		t.Errorf("error %q does not mention %s", err, ManifestName)
	}
}

func TestLoadFromManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	manifest := "[project]\nname = \"bare\"\n"
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	p, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if p.Manifest.Project.Src != "src" {
		t.Errorf("src = %q, want default %q", p.Manifest.Project.Src, "src")
	}
	if got, want := p.SrcDir(), filepath.Join(p.RootDir, "src"); got != want {
		t.Errorf("SrcDir = %q, want %q", got, want)
	}
}

func TestLoadFromRejectsEmptyName(t *testing.T) {
	dir := t.TempDir()
	manifest := "[project]\nversion = \"1.0.0\"\n"
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	_, err := LoadFrom(dir)
	if err == nil {
		t.Fatal("LoadFrom succeeded, want error")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error %q does not mention the name field", err)
	}
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()

	p, err := Scaffold(dir, "sources")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(p.SrcDir(), rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	write("extra.gsm", "int a = 1;\n")
	write("notes.txt", "not a source file\n")
	write(filepath.Join("nested", "inner.gsm"), "int b = 2;\n")

	files, err := p.SourceFiles()
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}

	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(p.SrcDir(), f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		names = append(names, filepath.ToSlash(rel))
	}
	want := []string{"extra.gsm", "main.gsm", "nested/inner.gsm"}
	if len(names) != len(want) {
		t.Fatalf("files = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
