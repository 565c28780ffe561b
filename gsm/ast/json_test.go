package ast

import (
	"encoding/json"
	"testing"
)

func TestMarshalAssignment(t *testing.T) {
	stmt := &Assignment{
		Pos:    Position{Line: 2, Column: 1},
		Target: &Final{Pos: Position{Line: 2, Column: 1}, Kind: FinalIdent, Text: "a"},
		Op:     AddAssign,
		Value:  &Final{Pos: Position{Line: 2, Column: 6}, Kind: FinalNumber, Text: "1"},
	}

	got, err := json.Marshal(stmt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"kind":"Assignment","pos":{"line":2,"column":1},"op":"+=",` +
		`"target":{"kind":"Final","pos":{"line":2,"column":1},"type":"ident","text":"a"},` +
		`"value":{"kind":"Final","pos":{"line":2,"column":6},"type":"number","text":"1"}}`
	if string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestMarshalComparisonAtom(t *testing.T) {
	// Atom comparisons serialize text only; relational ones serialize operands.
	got, err := json.Marshal(&Comparison{Op: IdentRef, Text: "flag"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"kind":"Comparison","op":"ident","text":"flag"}`
	if string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestMarshalProgramStructure(t *testing.T) {
	prog := &Program{Statements: []Statement{
		&Declaration{Type: TokenInt, Names: []string{"a", "b"}, Inits: []Expression{
			&Final{Kind: FinalNumber, Text: "1"},
			&SignedNumber{Sign: Minus, Text: "2"},
		}},
		&IfStmt{
			Cond: &Comparison{Op: Gt, Left: &Final{Kind: FinalIdent, Text: "a"}, Right: &Final{Kind: FinalIdent, Text: "b"}},
			Then: []*Assignment{
				{Target: &Final{Kind: FinalIdent, Text: "a"}, Op: Assign, Value: &Final{Kind: FinalNumber, Text: "1"}},
			},
		},
	}}

	data, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded struct {
		Kind       string `json:"kind"`
		Statements []struct {
			Kind  string   `json:"kind"`
			Type  string   `json:"type"`
			Names []string `json:"names"`
			Cond  *struct {
				Op string `json:"op"`
			} `json:"cond"`
		} `json:"statements"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Kind != "Program" || len(decoded.Statements) != 2 {
		t.Fatalf("decoded %s with %d statements, want Program with 2", decoded.Kind, len(decoded.Statements))
	}
	if decoded.Statements[0].Kind != "Declaration" || decoded.Statements[0].Type != "int" {
		t.Errorf("first statement = %s/%s, want Declaration/int", decoded.Statements[0].Kind, decoded.Statements[0].Type)
	}
	if decoded.Statements[1].Cond == nil || decoded.Statements[1].Cond.Op != ">" {
		t.Errorf("if condition op missing or wrong in %s", data)
	}
}
