package format

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
	"github.com/RozhanMk/Compiler-Project/gsm/parser"
)

// formatExpr pretty-prints a lone arithmetic expression by wrapping it in a
// print statement and stripping the wrapper again.
func formatExpr(t *testing.T, input string) string {
	t.Helper()
	out, err := PrettyPrint([]byte("print(" + input + ");"))
	if err != nil {
		t.Fatalf("parse error for input %q: %v", input, err)
	}
	s := strings.TrimSuffix(string(out), ");\n")
	return strings.TrimPrefix(s, "print(")
}

func TestPrettyPrintExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a+b", "a + b"},
		{"8-3-2", "8 - 3 - 2"},
		{"8-(3-2)", "8 - (3 - 2)"},
		{"2^3^2", "2 ^ 3 ^ 2"},
		{"(2^3)^2", "(2 ^ 3) ^ 2"},
		{"(2+3)*4", "(2 + 3) * 4"},
		{"2*(3+4)", "2 * (3 + 4)"},
		{"((1))+(2*3)", "1 + 2 * 3"},
		{"a*b%c/d", "a * b % c / d"},
		{"a/(b*c)", "a / (b * c)"},
		{"2^(3*4)", "2 ^ (3 * 4)"},
		{"(1+2)^3", "(1 + 2) ^ 3"},
		{"-(a*2)+1", "-(a * 2) + 1"},
		{"x++", "x++"},
		{"y--", "y--"},
		{"-5", "-5"},
		{"+5", "+5"},
		{"2 - -5", "2 - -5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := formatExpr(t, tt.input)
			if got != tt.expected {
				t.Errorf("formatExpr(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrettyPrintStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "declaration",
			input:    "int   a,b=1 , 2;",
			expected: "int a, b = 1, 2;\n",
		},
		{
			name:     "bool declaration",
			input:    "bool f, g = true, 5 >= 2 || f;",
			expected: "bool f, g = true, 5 >= 2 || f;\n",
		},
		{
			name:     "boolean atom assignment",
			input:    "x=y;",
			expected: "x = y;\n",
		},
		{
			name:     "parenthesized arithmetic keeps outer pair",
			input:    "x = (y+1);",
			expected: "x = (y + 1);\n",
		},
		{
			name:     "relational assignment",
			input:    "x = 5>2;",
			expected: "x = 5 > 2;\n",
		},
		{
			name:     "compound with increment",
			input:    "x += y++;",
			expected: "x += y++;\n",
		},
		{
			name:     "standalone increment",
			input:    "n++;",
			expected: "n++;\n",
		},
		{
			name:     "print",
			input:    "print( a+b );",
			expected: "print(a + b);\n",
		},
		{
			name:     "negated group",
			input:    "x = -(a*2)+1;",
			expected: "x = -(a * 2) + 1;\n",
		},
		{
			name:  "if elif else",
			input: "if x: begin x = 1; end elif 1 > 2: begin y = 2; end else: begin z = 3; end",
			expected: "if x: begin\n" +
				"    x = 1;\n" +
				"end elif 1 > 2: begin\n" +
				"    y = 2;\n" +
				"end else: begin\n" +
				"    z = 3;\n" +
				"end\n",
		},
		{
			name:     "empty block",
			input:    "if x: begin end",
			expected: "if x: begin\nend\n",
		},
		{
			name:  "loop drops redundant condition parens",
			input: "loopc flag&&(1<2): begin x += 1; end",
			expected: "loopc flag && 1 < 2: begin\n" +
				"    x += 1;\n" +
				"end\n",
		},
		{
			name:  "for",
			input: "for i = 0; 10 > i; i += 1: begin sum += i; end",
			expected: "for i = 0; 10 > i; i += 1: begin\n" +
				"    sum += i;\n" +
				"end\n",
		},
		{
			name:     "mixed precedence",
			input:    "print((2+3)*4^2^2 - -5);",
			expected: "print((2 + 3) * 4 ^ 2 ^ 2 - -5);\n",
		},
		{
			name:     "statement sequence",
			input:    "int n = -3;\nn++;\nprint(n);",
			expected: "int n = -3;\nn++;\nprint(n);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyPrint([]byte(tt.input))
			if err != nil {
				t.Fatalf("PrettyPrint(%q): %v", tt.input, err)
			}
			if string(got) != tt.expected {
				t.Errorf("PrettyPrint(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func countKinds(prog *ast.Program) map[string]int {
	counts := make(map[string]int)
	for _, n := range ast.Collect(prog, func(ast.Node) bool { return true }) {
		counts[fmt.Sprintf("%T", n)]++
	}
	return counts
}

// TestPrettyPrintRoundTrip checks that formatted output parses back to the
// same tree and that formatting is idempotent.
func TestPrettyPrintRoundTrip(t *testing.T) {
	sources := []string{
		"int a, b = 1, 2;",
		"bool f, g = true, 5 >= 2 || f;",
		"x = y;",
		"x = (y+1);",
		"x = (y++);",
		"x = 5 > 2 && flag || false;",
		"x += y++;",
		"n++;",
		"print(((2+3))*4^2^2 - -5);",
		"x = -(a*2)+1;",
		"if x: begin x = 1; end elif 1 > 2: begin y = 2; end else: begin z = 3; end",
		"loopc flag && (1 < 2): begin x += 1; x = (x * 2); end",
		"for i = 0; 10 > i; i += 1: begin sum += i; end",
		"int n = -3; // counter\nn++;\nif 0 < n && ready: begin n = 0; end\nprint(n);",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			orig, err := parser.Parse([]byte(src))
			if err != nil {
				t.Fatalf("parse original: %v", err)
			}

			formatted, err := PrettyPrint([]byte(src))
			if err != nil {
				t.Fatalf("format: %v", err)
			}

			again, err := parser.Parse(formatted)
			if err != nil {
				t.Fatalf("formatted output does not parse: %v\noutput:\n%s", err, formatted)
			}

			if orig.String() != again.String() {
				t.Errorf("tree changed after round trip\nbefore: %s\nafter:  %s", orig, again)
			}
			if got, want := countKinds(again), countKinds(orig); !reflect.DeepEqual(got, want) {
				t.Errorf("node counts changed after round trip: got %v, want %v", got, want)
			}

			stable, err := PrettyPrint(formatted)
			if err != nil {
				t.Fatalf("reformat: %v", err)
			}
			if string(stable) != string(formatted) {
				t.Errorf("formatting is not idempotent\nfirst:\n%s\nsecond:\n%s", formatted, stable)
			}
		})
	}
}

func TestPrettyPrintSyntaxError(t *testing.T) {
	out, err := PrettyPrint([]byte("int 5;"))
	if err == nil {
		t.Fatalf("expected error, got output %q", out)
	}
	var synErr *parser.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("error = %v, want *parser.SyntaxError", err)
	}
	if out != nil {
		t.Errorf("output = %q, want nil on parse error", out)
	}
}
