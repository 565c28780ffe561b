package format

import (
	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

// Encoder renders a parsed program into one output form.
type Encoder interface {
	Encode(prog *ast.Program) error
}

var (
	_ Encoder = (*ASTJSONEncoder)(nil)
	_ Encoder = (*ASTYAMLEncoder)(nil)
	_ Encoder = (*SourceEncoder)(nil)
	_ Encoder = (*TreeEncoder)(nil)
)
