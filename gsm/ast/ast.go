// Package ast defines the GSM syntax tree: a closed set of node types
// produced by the parser and consumed by later stages through the visitor
// contract in visitor.go.
//
// The hierarchy is:
//
//	Node (interface)
//	  Statement (interface)
//	    Declaration, Assignment, UnaryOp
//	    IfStmt, WhileStmt, ForStmt, PrintStmt
//	  Expression (interface)
//	    Final, SignedNumber, NegExpr, UnaryOp, BinaryOp
//	    BoolExpr (interface)
//	      Comparison, LogicalExpr
//
// ElifClause is a plain Node: it only ever appears inside an IfStmt.
// UnaryOp is both a Statement (x++;) and an Expression (y += x++ + 1),
// mirroring the grammar's double use of the form.
//
// Ownership is a strict tree: every node owns its children exclusively and
// nodes are not mutated after construction.
package ast

import (
	"fmt"
	"strings"
)

// Node is the root interface for every element of the tree.
type Node interface {
	// Position returns the source position of the node's first token.
	Position() Position
	// String returns a compact single-line rendering, used by tests and
	// debug output. The format package produces the real pretty-printed form.
	String() string
	// Accept dispatches to the Visitor method for the node's concrete type.
	Accept(v Visitor) any
}

// Statement is a node that may appear in the top-level statement sequence.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that denotes a value.
type Expression interface {
	Node
	expressionNode()
}

// BoolExpr is an Expression restricted to the boolean grammar: a Comparison
// or a LogicalExpr. Conditions and boolean assignment sides carry this type.
type BoolExpr interface {
	Expression
	boolExprNode()
}

// FinalKind tags the atomic operand variants.
type FinalKind int

const (
	FinalIdent FinalKind = iota
	FinalNumber
	FinalTrue
	FinalFalse
)

func (k FinalKind) String() string {
	switch k {
	case FinalIdent:
		return "ident"
	case FinalNumber:
		return "number"
	case FinalTrue:
		return "true"
	case FinalFalse:
		return "false"
	}
	return "unknown"
}

// Sign is the explicit sign on a SignedNumber literal.
type Sign int

const (
	Plus Sign = iota
	Minus
)

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// IncDecOp distinguishes post-increment from post-decrement.
type IncDecOp int

const (
	Increment IncDecOp = iota
	Decrement
)

func (op IncDecOp) String() string {
	if op == Decrement {
		return "--"
	}
	return "++"
}

// BinOp is an arithmetic binary operator.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Pow
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Pow:
		return "^"
	}
	return "unknown"
}

// CmpOp is the operator (or atom variant) of a Comparison node. The three
// atom variants carry no operands; the node's Text field holds the literal
// or identifier instead.
type CmpOp int

const (
	Equal CmpOp = iota
	NotEqual
	Gt
	Lt
	Ge
	Le
	LiteralTrue
	LiteralFalse
	IdentRef
)

func (op CmpOp) String() string {
	switch op {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Gt:
		return ">"
	case Lt:
		return "<"
	case Ge:
		return ">="
	case Le:
		return "<="
	case LiteralTrue:
		return "true"
	case LiteralFalse:
		return "false"
	case IdentRef:
		return "ident"
	}
	return "unknown"
}

// Relational reports whether the operator is a two-operand comparison, as
// opposed to one of the atom variants.
func (op CmpOp) Relational() bool {
	return op <= Le
}

// LogicOp is a boolean connective.
type LogicOp int

const (
	And LogicOp = iota
	Or
)

func (op LogicOp) String() string {
	if op == Or {
		return "||"
	}
	return "&&"
}

// AssignOp is the operator of an Assignment statement.
type AssignOp int

const (
	Assign AssignOp = iota
	AddAssign
	SubAssign
	MulAssign
	DivAssign
)

func (op AssignOp) String() string {
	switch op {
	case Assign:
		return "="
	case AddAssign:
		return "+="
	case SubAssign:
		return "-="
	case MulAssign:
		return "*="
	case DivAssign:
		return "/="
	}
	return "unknown"
}

// Program is the root node: the ordered top-level statement sequence.
// Statement order equals source order.
type Program struct {
	Statements []Statement
}

func (p *Program) Position() Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Position()
	}
	return Position{}
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Declaration is an int or bool variable declaration. Names holds at least
// one identifier; Inits is either empty or exactly as long as Names, in
// matching order. Type is TokenInt or TokenBool.
type Declaration struct {
	Pos   Position
	Type  TokenKind
	Names []string
	Inits []Expression
}

func (d *Declaration) statementNode()     {}
func (d *Declaration) Position() Position { return d.Pos }

func (d *Declaration) String() string {
	var out strings.Builder
	out.WriteString(d.Type.String())
	out.WriteString(" ")
	out.WriteString(strings.Join(d.Names, ", "))
	if len(d.Inits) > 0 {
		out.WriteString(" = ")
		for i, e := range d.Inits {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(e.String())
		}
	}
	out.WriteString(";")
	return out.String()
}

// Final is an atomic operand: an identifier, a number literal, or a boolean
// literal. It is always a leaf.
type Final struct {
	Pos  Position
	Kind FinalKind
	Text string
}

func (f *Final) expressionNode()    {}
func (f *Final) Position() Position { return f.Pos }
func (f *Final) String() string     { return f.Text }

// SignedNumber is a number literal with an explicit leading sign. It is
// distinct from NegExpr, which negates a general parenthesized expression.
type SignedNumber struct {
	Pos  Position
	Sign Sign
	Text string
}

func (s *SignedNumber) expressionNode()    {}
func (s *SignedNumber) Position() Position { return s.Pos }
func (s *SignedNumber) String() string     { return s.Sign.String() + s.Text }

// NegExpr is the arithmetic negation of a parenthesized sub-expression.
type NegExpr struct {
	Pos Position
	X   Expression
}

func (n *NegExpr) expressionNode()    {}
func (n *NegExpr) Position() Position { return n.Pos }
func (n *NegExpr) String() string     { return fmt.Sprintf("-(%s)", n.X.String()) }

// UnaryOp is a post-increment or post-decrement of a named variable. It is
// valid both as a standalone statement (x++;) and nested in an expression.
type UnaryOp struct {
	Pos  Position
	Op   IncDecOp
	Name string
}

func (u *UnaryOp) statementNode()     {}
func (u *UnaryOp) expressionNode()    {}
func (u *UnaryOp) Position() Position { return u.Pos }
func (u *UnaryOp) String() string     { return u.Name + u.Op.String() }

// BinaryOp is an arithmetic binary operation. Left and Right are never nil.
type BinaryOp struct {
	Pos         Position
	Op          BinOp
	Left, Right Expression
}

func (b *BinaryOp) expressionNode()    {}
func (b *BinaryOp) Position() Position { return b.Pos }

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

// Comparison is a boolean-producing node: either a relational test over two
// arithmetic expressions, or a bare boolean/identifier atom. Left and Right
// are non-nil exactly when Op is relational; for the atom variants both are
// nil and Text carries the literal or identifier.
type Comparison struct {
	Pos         Position
	Op          CmpOp
	Left, Right Expression
	Text        string
}

func (c *Comparison) expressionNode()    {}
func (c *Comparison) boolExprNode()      {}
func (c *Comparison) Position() Position { return c.Pos }

func (c *Comparison) String() string {
	if c.Op.Relational() {
		return fmt.Sprintf("(%s %s %s)", c.Left.String(), c.Op, c.Right.String())
	}
	return c.Text
}

// LogicalExpr is a conjunction or disjunction. Operands are Comparison or
// LogicalExpr nodes; && and || share one left-associative precedence tier.
type LogicalExpr struct {
	Pos         Position
	Op          LogicOp
	Left, Right BoolExpr
}

func (l *LogicalExpr) expressionNode()    {}
func (l *LogicalExpr) boolExprNode()      {}
func (l *LogicalExpr) Position() Position { return l.Pos }

func (l *LogicalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left.String(), l.Op, l.Right.String())
}

// Assignment is one assignment statement. Target is always an identifier
// Final. Exactly one of Value (arithmetic side) and Cond (boolean side) is
// non-nil; compound operators only ever carry Value.
type Assignment struct {
	Pos    Position
	Target *Final
	Op     AssignOp
	Value  Expression
	Cond   BoolExpr
}

func (a *Assignment) statementNode()     {}
func (a *Assignment) Position() Position { return a.Pos }

func (a *Assignment) String() string {
	rhs := ""
	if a.Cond != nil {
		rhs = a.Cond.String()
	} else if a.Value != nil {
		rhs = a.Value.String()
	}
	return fmt.Sprintf("%s %s %s;", a.Target.String(), a.Op, rhs)
}

// ElifClause is one elif arm of an IfStmt. Body may be empty.
type ElifClause struct {
	Pos  Position
	Cond BoolExpr
	Body []*Assignment
}

func (e *ElifClause) Position() Position { return e.Pos }

func (e *ElifClause) String() string {
	return fmt.Sprintf("elif %s: %s", e.Cond.String(), blockString(e.Body))
}

// IfStmt is a full if/elif*/else chain. Else is empty when there is no else
// block. Branch bodies hold assignment statements only.
type IfStmt struct {
	Pos   Position
	Cond  BoolExpr
	Then  []*Assignment
	Elifs []*ElifClause
	Else  []*Assignment
}

func (i *IfStmt) statementNode()     {}
func (i *IfStmt) Position() Position { return i.Pos }

func (i *IfStmt) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "if %s: %s", i.Cond.String(), blockString(i.Then))
	for _, e := range i.Elifs {
		out.WriteString(" ")
		out.WriteString(e.String())
	}
	if len(i.Else) > 0 {
		fmt.Fprintf(&out, " else: %s", blockString(i.Else))
	}
	return out.String()
}

// WhileStmt is the pre-test loop (keyword loopc).
type WhileStmt struct {
	Pos  Position
	Cond BoolExpr
	Body []*Assignment
}

func (w *WhileStmt) statementNode()     {}
func (w *WhileStmt) Position() Position { return w.Pos }

func (w *WhileStmt) String() string {
	return fmt.Sprintf("loopc %s: %s", w.Cond.String(), blockString(w.Body))
}

// ForStmt is the counted loop: an init assignment, a loop condition, a step
// assignment, and a body of assignments.
type ForStmt struct {
	Pos  Position
	Init *Assignment
	Cond BoolExpr
	Step *Assignment
	Body []*Assignment
}

func (f *ForStmt) statementNode()     {}
func (f *ForStmt) Position() Position { return f.Pos }

func (f *ForStmt) String() string {
	init := strings.TrimSuffix(f.Init.String(), ";")
	step := strings.TrimSuffix(f.Step.String(), ";")
	return fmt.Sprintf("for %s; %s; %s: %s", init, f.Cond.String(), step, blockString(f.Body))
}

// PrintStmt is the output statement: print(expr);
type PrintStmt struct {
	Pos  Position
	Expr Expression
}

func (p *PrintStmt) statementNode()     {}
func (p *PrintStmt) Position() Position { return p.Pos }
func (p *PrintStmt) String() string     { return fmt.Sprintf("print(%s);", p.Expr.String()) }

func blockString(body []*Assignment) string {
	var out strings.Builder
	out.WriteString("begin")
	for _, a := range body {
		out.WriteString(" ")
		out.WriteString(a.String())
	}
	out.WriteString(" end")
	return out.String()
}
