package format

import (
	"io"
	"strings"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

// TreeEncoder writes one node per line, indented two spaces per level, for
// quick inspection of parse results. Node labels carry the operator or
// literal so most shapes read without drilling into children.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(prog *ast.Program) error {
	text, err := e.MarshalText(prog)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(prog *ast.Program) ([]byte, error) {
	var sb strings.Builder
	writeTree(&sb, prog, 0)
	return []byte(sb.String()), nil
}

func writeTree(sb *strings.Builder, n ast.Node, depth int) {
	if n == nil {
		return
	}
	treeLine(sb, depth, treeLabel(n))
	switch n := n.(type) {
	case *ast.Program:
		for _, s := range n.Statements {
			writeTree(sb, s, depth+1)
		}
	case *ast.Declaration:
		for _, e := range n.Inits {
			writeTree(sb, e, depth+1)
		}
	case *ast.NegExpr:
		writeTree(sb, n.X, depth+1)
	case *ast.BinaryOp:
		writeTree(sb, n.Left, depth+1)
		writeTree(sb, n.Right, depth+1)
	case *ast.Comparison:
		if n.Op.Relational() {
			writeTree(sb, n.Left, depth+1)
			writeTree(sb, n.Right, depth+1)
		}
	case *ast.LogicalExpr:
		writeTree(sb, n.Left, depth+1)
		writeTree(sb, n.Right, depth+1)
	case *ast.Assignment:
		if n.Value != nil {
			writeTree(sb, n.Value, depth+1)
		}
		if n.Cond != nil {
			writeTree(sb, n.Cond, depth+1)
		}
	case *ast.ElifClause:
		writeTree(sb, n.Cond, depth+1)
		treeBody(sb, "body", n.Body, depth+1)
	case *ast.IfStmt:
		writeTree(sb, n.Cond, depth+1)
		treeBody(sb, "then", n.Then, depth+1)
		for _, e := range n.Elifs {
			writeTree(sb, e, depth+1)
		}
		treeBody(sb, "else", n.Else, depth+1)
	case *ast.WhileStmt:
		writeTree(sb, n.Cond, depth+1)
		treeBody(sb, "body", n.Body, depth+1)
	case *ast.ForStmt:
		writeTree(sb, n.Init, depth+1)
		writeTree(sb, n.Cond, depth+1)
		writeTree(sb, n.Step, depth+1)
		treeBody(sb, "body", n.Body, depth+1)
	case *ast.PrintStmt:
		writeTree(sb, n.Expr, depth+1)
	}
}

func treeBody(sb *strings.Builder, label string, body []*ast.Assignment, depth int) {
	if len(body) == 0 {
		return
	}
	treeLine(sb, depth, label)
	for _, a := range body {
		writeTree(sb, a, depth+1)
	}
}

func treeLine(sb *strings.Builder, depth int, s string) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(s)
	sb.WriteString("\n")
}

func treeLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Program:
		return "Program"
	case *ast.Declaration:
		return "Declaration " + n.Type.String() + " " + strings.Join(n.Names, ", ")
	case *ast.Final:
		return "Final " + n.Kind.String() + " " + n.Text
	case *ast.SignedNumber:
		return "SignedNumber " + n.Sign.String() + n.Text
	case *ast.NegExpr:
		return "NegExpr"
	case *ast.UnaryOp:
		return "UnaryOp " + n.Name + n.Op.String()
	case *ast.BinaryOp:
		return "BinaryOp " + n.Op.String()
	case *ast.Comparison:
		if n.Op.Relational() {
			return "Comparison " + n.Op.String()
		}
		return "Comparison " + n.Text
	case *ast.LogicalExpr:
		return "LogicalExpr " + n.Op.String()
	case *ast.Assignment:
		return "Assignment " + n.Op.String() + " " + n.Target.Text
	case *ast.ElifClause:
		return "ElifClause"
	case *ast.IfStmt:
		return "IfStmt"
	case *ast.WhileStmt:
		return "WhileStmt"
	case *ast.ForStmt:
		return "ForStmt"
	case *ast.PrintStmt:
		return "PrintStmt"
	}
	return "Unknown"
}
