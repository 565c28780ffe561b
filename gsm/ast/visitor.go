package ast

import "fmt"

// Visitor is the double-dispatch contract for tree traversal: one method per
// concrete node kind. Downstream stages (printing, validation, analysis)
// implement Visitor instead of switching on node types. Embed BaseVisitor to
// implement only the methods a stage cares about.
type Visitor interface {
	VisitProgram(n *Program) any
	VisitDeclaration(n *Declaration) any
	VisitFinal(n *Final) any
	VisitSignedNumber(n *SignedNumber) any
	VisitNegExpr(n *NegExpr) any
	VisitUnaryOp(n *UnaryOp) any
	VisitBinaryOp(n *BinaryOp) any
	VisitComparison(n *Comparison) any
	VisitLogicalExpr(n *LogicalExpr) any
	VisitAssignment(n *Assignment) any
	VisitElifClause(n *ElifClause) any
	VisitIfStmt(n *IfStmt) any
	VisitWhileStmt(n *WhileStmt) any
	VisitForStmt(n *ForStmt) any
	VisitPrintStmt(n *PrintStmt) any
}

func (p *Program) Accept(v Visitor) any      { return v.VisitProgram(p) }
func (d *Declaration) Accept(v Visitor) any  { return v.VisitDeclaration(d) }
func (f *Final) Accept(v Visitor) any        { return v.VisitFinal(f) }
func (s *SignedNumber) Accept(v Visitor) any { return v.VisitSignedNumber(s) }
func (n *NegExpr) Accept(v Visitor) any      { return v.VisitNegExpr(n) }
func (u *UnaryOp) Accept(v Visitor) any      { return v.VisitUnaryOp(u) }
func (b *BinaryOp) Accept(v Visitor) any     { return v.VisitBinaryOp(b) }
func (c *Comparison) Accept(v Visitor) any   { return v.VisitComparison(c) }
func (l *LogicalExpr) Accept(v Visitor) any  { return v.VisitLogicalExpr(l) }
func (a *Assignment) Accept(v Visitor) any   { return v.VisitAssignment(a) }
func (e *ElifClause) Accept(v Visitor) any   { return v.VisitElifClause(e) }
func (i *IfStmt) Accept(v Visitor) any       { return v.VisitIfStmt(i) }
func (w *WhileStmt) Accept(v Visitor) any    { return v.VisitWhileStmt(w) }
func (f *ForStmt) Accept(v Visitor) any      { return v.VisitForStmt(f) }
func (p *PrintStmt) Accept(v Visitor) any    { return v.VisitPrintStmt(p) }

// BaseVisitor is a no-op implementation of Visitor. Concrete visitors embed
// it and override the methods for the kinds they handle; combined with Walk
// this gives whole-tree traversal without per-visitor recursion code.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program) any           { return nil }
func (BaseVisitor) VisitDeclaration(*Declaration) any   { return nil }
func (BaseVisitor) VisitFinal(*Final) any               { return nil }
func (BaseVisitor) VisitSignedNumber(*SignedNumber) any { return nil }
func (BaseVisitor) VisitNegExpr(*NegExpr) any           { return nil }
func (BaseVisitor) VisitUnaryOp(*UnaryOp) any           { return nil }
func (BaseVisitor) VisitBinaryOp(*BinaryOp) any         { return nil }
func (BaseVisitor) VisitComparison(*Comparison) any     { return nil }
func (BaseVisitor) VisitLogicalExpr(*LogicalExpr) any   { return nil }
func (BaseVisitor) VisitAssignment(*Assignment) any     { return nil }
func (BaseVisitor) VisitElifClause(*ElifClause) any     { return nil }
func (BaseVisitor) VisitIfStmt(*IfStmt) any             { return nil }
func (BaseVisitor) VisitWhileStmt(*WhileStmt) any       { return nil }
func (BaseVisitor) VisitForStmt(*ForStmt) any           { return nil }
func (BaseVisitor) VisitPrintStmt(*PrintStmt) any       { return nil }

// Walk traverses the tree rooted at n in pre-order, dispatching every node
// to v through Accept. Visitors that need to control recursion themselves
// (such as printers) call Accept directly instead.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	n.Accept(v)
	for _, child := range children(n) {
		Walk(v, child)
	}
}

// children lists the direct child nodes in source order. Nil fields are
// skipped so Walk stays safe on partially built trees; concrete pointer
// fields need their own nil checks here because a nil pointer wrapped in
// the Node interface would slip past Walk's guard.
func children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		out := make([]Node, 0, len(n.Statements))
		for _, s := range n.Statements {
			if s != nil {
				out = append(out, s)
			}
		}
		return out
	case *Declaration:
		out := make([]Node, 0, len(n.Inits))
		for _, e := range n.Inits {
			if e != nil {
				out = append(out, e)
			}
		}
		return out
	case *NegExpr:
		return exprNodes(n.X)
	case *BinaryOp:
		return exprNodes(n.Left, n.Right)
	case *Comparison:
		if n.Op.Relational() {
			return exprNodes(n.Left, n.Right)
		}
		return nil
	case *LogicalExpr:
		return exprNodes(n.Left, n.Right)
	case *Assignment:
		var out []Node
		if n.Target != nil {
			out = append(out, n.Target)
		}
		return append(out, exprNodes(n.Value, n.Cond)...)
	case *ElifClause:
		return append(exprNodes(n.Cond), assignmentNodes(n.Body)...)
	case *IfStmt:
		out := append(exprNodes(n.Cond), assignmentNodes(n.Then)...)
		for _, e := range n.Elifs {
			if e != nil {
				out = append(out, e)
			}
		}
		return append(out, assignmentNodes(n.Else)...)
	case *WhileStmt:
		return append(exprNodes(n.Cond), assignmentNodes(n.Body)...)
	case *ForStmt:
		var out []Node
		if n.Init != nil {
			out = append(out, n.Init)
		}
		out = append(out, exprNodes(n.Cond)...)
		if n.Step != nil {
			out = append(out, n.Step)
		}
		return append(out, assignmentNodes(n.Body)...)
	case *PrintStmt:
		return exprNodes(n.Expr)
	}
	return nil
}

func exprNodes(exprs ...Expression) []Node {
	var out []Node
	for _, e := range exprs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func assignmentNodes(body []*Assignment) []Node {
	out := make([]Node, 0, len(body))
	for _, a := range body {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

type collector struct {
	match func(Node) bool
	nodes []Node
}

func (c *collector) visit(n Node) any {
	if c.match(n) {
		c.nodes = append(c.nodes, n)
	}
	return nil
}

func (c *collector) VisitProgram(n *Program) any           { return c.visit(n) }
func (c *collector) VisitDeclaration(n *Declaration) any   { return c.visit(n) }
func (c *collector) VisitFinal(n *Final) any               { return c.visit(n) }
func (c *collector) VisitSignedNumber(n *SignedNumber) any { return c.visit(n) }
func (c *collector) VisitNegExpr(n *NegExpr) any           { return c.visit(n) }
func (c *collector) VisitUnaryOp(n *UnaryOp) any           { return c.visit(n) }
func (c *collector) VisitBinaryOp(n *BinaryOp) any         { return c.visit(n) }
func (c *collector) VisitComparison(n *Comparison) any     { return c.visit(n) }
func (c *collector) VisitLogicalExpr(n *LogicalExpr) any   { return c.visit(n) }
func (c *collector) VisitAssignment(n *Assignment) any     { return c.visit(n) }
func (c *collector) VisitElifClause(n *ElifClause) any     { return c.visit(n) }
func (c *collector) VisitIfStmt(n *IfStmt) any             { return c.visit(n) }
func (c *collector) VisitWhileStmt(n *WhileStmt) any       { return c.visit(n) }
func (c *collector) VisitForStmt(n *ForStmt) any           { return c.visit(n) }
func (c *collector) VisitPrintStmt(n *PrintStmt) any       { return c.visit(n) }

// Collect returns every node under root (root included) for which match
// returns true, in pre-order.
func Collect(root Node, match func(Node) bool) []Node {
	c := &collector{match: match}
	Walk(c, root)
	return c.nodes
}

// Validator checks the structural invariants of an already-built tree:
// declaration name/initializer counts, operand presence on comparisons, the
// exactly-one-side rule on assignments. The parser never produces trees that
// fail validation; the check exists for trees built or rewritten by hand.
type Validator struct {
	BaseVisitor
	errs []error
}

func (v *Validator) errorf(pos Position, format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%s: %s", pos, fmt.Sprintf(format, args...)))
}

func (v *Validator) VisitDeclaration(d *Declaration) any {
	if len(d.Names) == 0 {
		v.errorf(d.Pos, "declaration has no names")
	}
	if d.Type != TokenInt && d.Type != TokenBool {
		v.errorf(d.Pos, "declaration type must be int or bool, have %s", d.Type)
	}
	seen := make(map[string]bool, len(d.Names))
	for _, name := range d.Names {
		if seen[name] {
			v.errorf(d.Pos, "duplicate name %q in declaration", name)
		}
		seen[name] = true
	}
	if len(d.Inits) != 0 && len(d.Inits) != len(d.Names) {
		v.errorf(d.Pos, "declaration has %d names but %d initializers", len(d.Names), len(d.Inits))
	}
	return nil
}

func (v *Validator) VisitNegExpr(n *NegExpr) any {
	if n.X == nil {
		v.errorf(n.Pos, "negation has no operand")
	}
	return nil
}

func (v *Validator) VisitBinaryOp(b *BinaryOp) any {
	if b.Left == nil || b.Right == nil {
		v.errorf(b.Pos, "binary %s has a missing operand", b.Op)
	}
	return nil
}

func (v *Validator) VisitComparison(c *Comparison) any {
	if c.Op.Relational() {
		if c.Left == nil || c.Right == nil {
			v.errorf(c.Pos, "comparison %s has a missing operand", c.Op)
		}
	} else {
		if c.Left != nil || c.Right != nil {
			v.errorf(c.Pos, "comparison atom %q must not have operands", c.Text)
		}
		if c.Text == "" {
			v.errorf(c.Pos, "comparison atom has no text")
		}
	}
	return nil
}

func (v *Validator) VisitLogicalExpr(l *LogicalExpr) any {
	if l.Left == nil || l.Right == nil {
		v.errorf(l.Pos, "logical %s has a missing operand", l.Op)
	}
	return nil
}

func (v *Validator) VisitAssignment(a *Assignment) any {
	if a.Target == nil {
		v.errorf(a.Pos, "assignment has no target")
	} else if a.Target.Kind != FinalIdent {
		v.errorf(a.Pos, "assignment target must be an identifier, have %s", a.Target.Kind)
	}
	if (a.Value == nil) == (a.Cond == nil) {
		v.errorf(a.Pos, "assignment must have exactly one right-hand side")
	}
	if a.Op != Assign && a.Cond != nil {
		v.errorf(a.Pos, "compound assignment %s cannot carry a boolean side", a.Op)
	}
	return nil
}

func (v *Validator) VisitElifClause(e *ElifClause) any {
	if e.Cond == nil {
		v.errorf(e.Pos, "elif clause has no condition")
	}
	return nil
}

func (v *Validator) VisitIfStmt(i *IfStmt) any {
	if i.Cond == nil {
		v.errorf(i.Pos, "if statement has no condition")
	}
	return nil
}

func (v *Validator) VisitWhileStmt(w *WhileStmt) any {
	if w.Cond == nil {
		v.errorf(w.Pos, "loop has no condition")
	}
	return nil
}

func (v *Validator) VisitForStmt(f *ForStmt) any {
	if f.Init == nil || f.Cond == nil || f.Step == nil {
		v.errorf(f.Pos, "for statement must have init, condition, and step")
	}
	return nil
}

func (v *Validator) VisitPrintStmt(p *PrintStmt) any {
	if p.Expr == nil {
		v.errorf(p.Pos, "print statement has no expression")
	}
	return nil
}

// Validate walks the tree rooted at root and returns all invariant
// violations found, or nil for a well-formed tree.
func Validate(root Node) []error {
	v := &Validator{}
	Walk(v, root)
	return v.errs
}
