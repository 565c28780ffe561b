package format

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

// ASTYAMLEncoder writes the tree as YAML, mirroring the JSON wire form.
type ASTYAMLEncoder struct {
	w io.Writer
}

func NewASTYAMLEncoder(w io.Writer) *ASTYAMLEncoder {
	return &ASTYAMLEncoder{w: w}
}

func (e *ASTYAMLEncoder) Encode(prog *ast.Program) error {
	text, err := e.MarshalText(prog)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTYAMLEncoder) MarshalText(prog *ast.Program) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(nodeToYAML(prog)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type yamlNode struct {
	Kind       string        `yaml:"kind"`
	Pos        *yamlPosition `yaml:"pos,omitempty"`
	Type       string        `yaml:"type,omitempty"`
	Op         string        `yaml:"op,omitempty"`
	Sign       string        `yaml:"sign,omitempty"`
	Text       string        `yaml:"text,omitempty"`
	Name       string        `yaml:"name,omitempty"`
	Names      []string      `yaml:"names,omitempty"`
	Inits      []*yamlNode   `yaml:"inits,omitempty"`
	Left       *yamlNode     `yaml:"left,omitempty"`
	Right      *yamlNode     `yaml:"right,omitempty"`
	X          *yamlNode     `yaml:"x,omitempty"`
	Target     *yamlNode     `yaml:"target,omitempty"`
	Value      *yamlNode     `yaml:"value,omitempty"`
	Cond       *yamlNode     `yaml:"cond,omitempty"`
	Init       *yamlNode     `yaml:"init,omitempty"`
	Step       *yamlNode     `yaml:"step,omitempty"`
	Expr       *yamlNode     `yaml:"expr,omitempty"`
	Then       []*yamlNode   `yaml:"then,omitempty"`
	Elifs      []*yamlNode   `yaml:"elifs,omitempty"`
	Else       []*yamlNode   `yaml:"else,omitempty"`
	Body       []*yamlNode   `yaml:"body,omitempty"`
	Statements []*yamlNode   `yaml:"statements,omitempty"`
}

type yamlPosition struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

func yamlPos(pos ast.Position) *yamlPosition {
	if pos.Line == 0 && pos.Column == 0 {
		return nil
	}
	return &yamlPosition{Line: pos.Line, Column: pos.Column}
}

func yamlAssignments(body []*ast.Assignment) []*yamlNode {
	var out []*yamlNode
	for _, a := range body {
		out = append(out, nodeToYAML(a))
	}
	return out
}

func nodeToYAML(n ast.Node) *yamlNode {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *ast.Program:
		yn := &yamlNode{Kind: "Program"}
		for _, s := range n.Statements {
			yn.Statements = append(yn.Statements, nodeToYAML(s))
		}
		return yn
	case *ast.Declaration:
		yn := &yamlNode{
			Kind:  "Declaration",
			Pos:   yamlPos(n.Pos),
			Type:  n.Type.String(),
			Names: n.Names,
		}
		for _, e := range n.Inits {
			yn.Inits = append(yn.Inits, nodeToYAML(e))
		}
		return yn
	case *ast.Final:
		return &yamlNode{Kind: "Final", Pos: yamlPos(n.Pos), Type: n.Kind.String(), Text: n.Text}
	case *ast.SignedNumber:
		return &yamlNode{Kind: "SignedNumber", Pos: yamlPos(n.Pos), Sign: n.Sign.String(), Text: n.Text}
	case *ast.NegExpr:
		return &yamlNode{Kind: "NegExpr", Pos: yamlPos(n.Pos), X: nodeToYAML(n.X)}
	case *ast.UnaryOp:
		return &yamlNode{Kind: "UnaryOp", Pos: yamlPos(n.Pos), Op: n.Op.String(), Name: n.Name}
	case *ast.BinaryOp:
		return &yamlNode{Kind: "BinaryOp", Pos: yamlPos(n.Pos), Op: n.Op.String(), Left: nodeToYAML(n.Left), Right: nodeToYAML(n.Right)}
	case *ast.Comparison:
		yn := &yamlNode{Kind: "Comparison", Pos: yamlPos(n.Pos), Op: n.Op.String()}
		if n.Op.Relational() {
			yn.Left = nodeToYAML(n.Left)
			yn.Right = nodeToYAML(n.Right)
		} else {
			yn.Text = n.Text
		}
		return yn
	case *ast.LogicalExpr:
		return &yamlNode{Kind: "LogicalExpr", Pos: yamlPos(n.Pos), Op: n.Op.String(), Left: nodeToYAML(n.Left), Right: nodeToYAML(n.Right)}
	case *ast.Assignment:
		yn := &yamlNode{
			Kind:   "Assignment",
			Pos:    yamlPos(n.Pos),
			Op:     n.Op.String(),
			Target: nodeToYAML(n.Target),
		}
		if n.Value != nil {
			yn.Value = nodeToYAML(n.Value)
		}
		if n.Cond != nil {
			yn.Cond = nodeToYAML(n.Cond)
		}
		return yn
	case *ast.ElifClause:
		return &yamlNode{Kind: "ElifClause", Pos: yamlPos(n.Pos), Cond: nodeToYAML(n.Cond), Body: yamlAssignments(n.Body)}
	case *ast.IfStmt:
		yn := &yamlNode{Kind: "IfStmt", Pos: yamlPos(n.Pos), Cond: nodeToYAML(n.Cond)}
		yn.Then = yamlAssignments(n.Then)
		for _, e := range n.Elifs {
			yn.Elifs = append(yn.Elifs, nodeToYAML(e))
		}
		yn.Else = yamlAssignments(n.Else)
		return yn
	case *ast.WhileStmt:
		return &yamlNode{Kind: "WhileStmt", Pos: yamlPos(n.Pos), Cond: nodeToYAML(n.Cond), Body: yamlAssignments(n.Body)}
	case *ast.ForStmt:
		return &yamlNode{
			Kind: "ForStmt",
			Pos:  yamlPos(n.Pos),
			Init: nodeToYAML(n.Init),
			Cond: nodeToYAML(n.Cond),
			Step: nodeToYAML(n.Step),
			Body: yamlAssignments(n.Body),
		}
	case *ast.PrintStmt:
		return &yamlNode{Kind: "PrintStmt", Pos: yamlPos(n.Pos), Expr: nodeToYAML(n.Expr)}
	}
	return nil
}
