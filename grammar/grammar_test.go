package grammar

import (
	"strings"
	"testing"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

func TestCheck(t *testing.T) {
	if err := Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestLoadStartProduction(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	prod, ok := g[Start]
	if !ok {
		t.Fatalf("grammar has no %q production", Start)
	}
	if prod.Expr == nil {
		t.Fatalf("%q production is empty", Start)
	}
}

func TestProductions(t *testing.T) {
	names, err := Productions()
	if err != nil {
		t.Fatalf("Productions: %v", err)
	}

	want := []string{
		"AddOp", "AssignStmt", "Assignment", "Block", "BoolDecl",
		"Comparison", "CompoundOp", "Condition", "Declaration",
		"Expression", "Factor", "Final", "ForStmt", "IdentList",
		"IfStmt", "IncDecStmt", "IntDecl", "LogicalOp", "LoopStmt",
		"MulOp", "PrintStmt", "Program", "RelOp", "Statement", "Term",
		"digit", "identifier", "letter", "number",
	}
	if len(names) != len(want) {
		t.Fatalf("Productions returned %d names, want %d:\n%v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestGrammarCoversKeywords(t *testing.T) {
	text := string(EBNF())
	for _, kw := range ast.Keywords() {
		if !strings.Contains(text, `"`+kw+`"`) {
			t.Errorf("grammar does not mention keyword %q", kw)
		}
	}
}
