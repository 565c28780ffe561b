package format

import (
	"bytes"
	"io"
	"strings"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
	"github.com/RozhanMk/Compiler-Project/gsm/parser"
)

// SourceEncoder renders a tree back to source text in a canonical layout:
// one statement per line, block bodies indented by four spaces, arithmetic
// with minimal parentheses. Output produced from a parsed program parses
// back to the same tree; the printer re-parenthesizes the plain '='
// right-hand sides that the boolean-first grammar would otherwise misread.
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(prog *ast.Program) error {
	text, err := e.MarshalText(prog)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SourceEncoder) MarshalText(prog *ast.Program) ([]byte, error) {
	var buf bytes.Buffer
	p := &sourcePrinter{w: &buf, indentStr: "    ", atLineStart: true}
	p.VisitProgram(prog)
	return buf.Bytes(), nil
}

// PrettyPrint parses source and renders it in the canonical layout.
func PrettyPrint(source []byte, opts ...parser.Option) ([]byte, error) {
	prog, err := parser.Parse(source, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewSourceEncoder(&buf).Encode(prog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sourcePrinter walks the tree through Accept. Statement visits write whole
// lines; expression visits return the rendered string for the parent to
// assemble.
type sourcePrinter struct {
	w           io.Writer
	indent      int
	indentStr   string
	atLineStart bool
}

var _ ast.Visitor = (*sourcePrinter)(nil)

func (p *sourcePrinter) write(s string) {
	p.w.Write([]byte(s))
}

func (p *sourcePrinter) writeIndent() {
	if !p.atLineStart {
		return
	}
	for i := 0; i < p.indent; i++ {
		p.write(p.indentStr)
	}
	p.atLineStart = false
}

func (p *sourcePrinter) newline() {
	p.write("\n")
	p.atLineStart = true
}

func (p *sourcePrinter) VisitProgram(n *ast.Program) any {
	for _, s := range n.Statements {
		// x++; at the top level shares the expression node, so it does
		// not write its own line.
		if u, ok := s.(*ast.UnaryOp); ok {
			p.writeIndent()
			p.write(u.Name + u.Op.String() + ";")
			p.newline()
			continue
		}
		s.Accept(p)
	}
	return nil
}

func (p *sourcePrinter) VisitDeclaration(n *ast.Declaration) any {
	p.writeIndent()
	p.write(n.Type.String())
	p.write(" ")
	p.write(strings.Join(n.Names, ", "))
	if len(n.Inits) > 0 {
		parts := make([]string, len(n.Inits))
		for i, e := range n.Inits {
			parts[i] = p.exprString(e)
		}
		p.write(" = ")
		p.write(strings.Join(parts, ", "))
	}
	p.write(";")
	p.newline()
	return nil
}

func (p *sourcePrinter) VisitAssignment(n *ast.Assignment) any {
	p.writeIndent()
	p.write(p.assignString(n))
	p.write(";")
	p.newline()
	return nil
}

// assignString renders an assignment without the trailing semicolon, as it
// appears inside a for header.
func (p *sourcePrinter) assignString(n *ast.Assignment) string {
	rhs := ""
	switch {
	case n.Cond != nil:
		rhs = p.boolString(n.Cond)
	case n.Op == ast.Assign && leftmostIsIdent(n.Value):
		// A bare identifier opening the right-hand side of '=' would be
		// taken as a boolean atom on re-parse, so keep an outer pair.
		rhs = "(" + p.exprString(n.Value) + ")"
	default:
		rhs = p.exprString(n.Value)
	}
	return n.Target.Text + " " + n.Op.String() + " " + rhs
}

// leftmostIsIdent reports whether the first token of the rendered expression
// is an identifier.
func leftmostIsIdent(e ast.Expression) bool {
	switch e := e.(type) {
	case *ast.Final:
		return e.Kind == ast.FinalIdent
	case *ast.UnaryOp:
		return true
	case *ast.BinaryOp:
		return leftmostIsIdent(e.Left)
	}
	return false
}

func (p *sourcePrinter) VisitIfStmt(n *ast.IfStmt) any {
	p.writeIndent()
	p.write("if " + p.boolString(n.Cond) + ": begin")
	p.newline()
	p.printBody(n.Then)
	for _, e := range n.Elifs {
		e.Accept(p)
	}
	if len(n.Else) > 0 {
		p.writeIndent()
		p.write("end else: begin")
		p.newline()
		p.printBody(n.Else)
	}
	p.writeIndent()
	p.write("end")
	p.newline()
	return nil
}

func (p *sourcePrinter) VisitElifClause(n *ast.ElifClause) any {
	p.writeIndent()
	p.write("end elif " + p.boolString(n.Cond) + ": begin")
	p.newline()
	p.printBody(n.Body)
	return nil
}

func (p *sourcePrinter) VisitWhileStmt(n *ast.WhileStmt) any {
	p.writeIndent()
	p.write("loopc " + p.boolString(n.Cond) + ": begin")
	p.newline()
	p.printBody(n.Body)
	p.writeIndent()
	p.write("end")
	p.newline()
	return nil
}

func (p *sourcePrinter) VisitForStmt(n *ast.ForStmt) any {
	p.writeIndent()
	p.write("for " + p.assignString(n.Init) + "; " + p.boolString(n.Cond) + "; " + p.assignString(n.Step) + ": begin")
	p.newline()
	p.printBody(n.Body)
	p.writeIndent()
	p.write("end")
	p.newline()
	return nil
}

func (p *sourcePrinter) VisitPrintStmt(n *ast.PrintStmt) any {
	p.writeIndent()
	p.write("print(" + p.exprString(n.Expr) + ");")
	p.newline()
	return nil
}

func (p *sourcePrinter) printBody(body []*ast.Assignment) {
	p.indent++
	for _, a := range body {
		a.Accept(p)
	}
	p.indent--
}

func (p *sourcePrinter) exprString(e ast.Expression) string {
	s, _ := e.Accept(p).(string)
	return s
}

func (p *sourcePrinter) boolString(b ast.BoolExpr) string {
	s, _ := b.Accept(p).(string)
	return s
}

func (p *sourcePrinter) VisitFinal(n *ast.Final) any {
	return n.Text
}

func (p *sourcePrinter) VisitSignedNumber(n *ast.SignedNumber) any {
	return n.Sign.String() + n.Text
}

func (p *sourcePrinter) VisitNegExpr(n *ast.NegExpr) any {
	return "-(" + p.exprString(n.X) + ")"
}

func (p *sourcePrinter) VisitUnaryOp(n *ast.UnaryOp) any {
	return n.Name + n.Op.String()
}

func (p *sourcePrinter) VisitBinaryOp(n *ast.BinaryOp) any {
	return p.operand(n.Left, n.Op, false) + " " + n.Op.String() + " " + p.operand(n.Right, n.Op, true)
}

// operand renders one side of a binary operator, parenthesized when the
// child binds looser than the parent or when associativity requires it:
// '^' groups to the right, everything else to the left.
func (p *sourcePrinter) operand(e ast.Expression, parent ast.BinOp, right bool) string {
	s := p.exprString(e)
	child, ok := e.(*ast.BinaryOp)
	if !ok {
		return s
	}
	cp, pp := binPrec(child.Op), binPrec(parent)
	if cp < pp {
		return "(" + s + ")"
	}
	if cp == pp {
		if parent == ast.Pow && !right {
			return "(" + s + ")"
		}
		if parent != ast.Pow && right {
			return "(" + s + ")"
		}
	}
	return s
}

func binPrec(op ast.BinOp) int {
	switch op {
	case ast.Pow:
		return 3
	case ast.Mul, ast.Div, ast.Mod:
		return 2
	}
	return 1
}

func (p *sourcePrinter) VisitComparison(n *ast.Comparison) any {
	if n.Op.Relational() {
		return p.exprString(n.Left) + " " + n.Op.String() + " " + p.exprString(n.Right)
	}
	return n.Text
}

func (p *sourcePrinter) VisitLogicalExpr(n *ast.LogicalExpr) any {
	left := p.boolString(n.Left)
	right := p.boolString(n.Right)
	// && and || share one left-associative tier, so only a logical
	// expression on the right needs grouping.
	if _, ok := n.Right.(*ast.LogicalExpr); ok {
		right = "(" + right + ")"
	}
	return left + " " + n.Op.String() + " " + right
}
