package format

import (
	"bytes"
	"testing"

	"github.com/RozhanMk/Compiler-Project/gsm/parser"
)

func TestASTJSONEncoder(t *testing.T) {
	prog, err := parser.Parse([]byte("print(1);"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := NewASTJSONEncoder(&buf).Encode(prog); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `{
  "kind": "Program",
  "statements": [
    {
      "kind": "PrintStmt",
      "pos": {
        "line": 1,
        "column": 1
      },
      "expr": {
        "kind": "Final",
        "pos": {
          "line": 1,
          "column": 7
        },
        "type": "number",
        "text": "1"
      }
    }
  ]
}
`
	if buf.String() != want {
		t.Errorf("encoded JSON = %s, want %s", buf.String(), want)
	}
}
