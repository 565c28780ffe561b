package format

import (
	"encoding/json"
	"io"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

// ASTJSONEncoder writes the tree as indented JSON, using the wire form the
// ast package defines.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(prog *ast.Program) error {
	text, err := e.MarshalText(prog)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(prog *ast.Program) ([]byte, error) {
	return json.MarshalIndent(prog, "", "  ")
}
