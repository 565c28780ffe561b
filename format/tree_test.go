package format

import (
	"bytes"
	"testing"

	"github.com/RozhanMk/Compiler-Project/gsm/parser"
)

func TestTreeEncoder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "declaration if else print",
			input: "int a = 1;\nif 0 < a && flag: begin a = 2; end else: begin a = 3; end\nprint(a + 1);",
			expected: `Program
  Declaration int a
    Final number 1
  IfStmt
    LogicalExpr &&
      Comparison <
        Final number 0
        Final ident a
      Comparison flag
    then
      Assignment = a
        Final number 2
    else
      Assignment = a
        Final number 3
  PrintStmt
    BinaryOp +
      Final ident a
      Final number 1
`,
		},
		{
			name:  "for loop",
			input: "for i = 0; 3 > i; i += 1: begin sum += i; end",
			expected: `Program
  ForStmt
    Assignment = i
      Final number 0
    Comparison >
      Final number 3
      Final ident i
    Assignment += i
      Final number 1
    body
      Assignment += sum
        Final ident i
`,
		},
		{
			name:  "loop with embedded increment",
			input: "loopc true: begin x = (y++); end",
			expected: `Program
  WhileStmt
    Comparison true
    body
      Assignment = x
        UnaryOp y++
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			var buf bytes.Buffer
			if err := NewTreeEncoder(&buf).Encode(prog); err != nil {
				t.Fatalf("encode: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("tree = \n%s\nwant\n%s", buf.String(), tt.expected)
			}
		})
	}
}
