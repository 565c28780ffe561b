package ast

import "encoding/json"

// jsonNode is the wire form shared by every node kind. Fields that a kind
// does not use stay empty and are omitted, so each node serializes to just
// its own shape.
type jsonNode struct {
	Kind       string        `json:"kind"`
	Pos        *jsonPosition `json:"pos,omitempty"`
	Type       string        `json:"type,omitempty"`
	Op         string        `json:"op,omitempty"`
	Sign       string        `json:"sign,omitempty"`
	Text       string        `json:"text,omitempty"`
	Name       string        `json:"name,omitempty"`
	Names      []string      `json:"names,omitempty"`
	Inits      []*jsonNode   `json:"inits,omitempty"`
	Left       *jsonNode     `json:"left,omitempty"`
	Right      *jsonNode     `json:"right,omitempty"`
	X          *jsonNode     `json:"x,omitempty"`
	Target     *jsonNode     `json:"target,omitempty"`
	Value      *jsonNode     `json:"value,omitempty"`
	Cond       *jsonNode     `json:"cond,omitempty"`
	Init       *jsonNode     `json:"init,omitempty"`
	Step       *jsonNode     `json:"step,omitempty"`
	Expr       *jsonNode     `json:"expr,omitempty"`
	Then       []*jsonNode   `json:"then,omitempty"`
	Elifs      []*jsonNode   `json:"elifs,omitempty"`
	Else       []*jsonNode   `json:"else,omitempty"`
	Body       []*jsonNode   `json:"body,omitempty"`
	Statements []*jsonNode   `json:"statements,omitempty"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func toJSONPos(pos Position) *jsonPosition {
	if pos.Line == 0 && pos.Column == 0 {
		return nil
	}
	return &jsonPosition{Line: pos.Line, Column: pos.Column}
}

func toJSON(n Node) *jsonNode {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *Program:
		jn := &jsonNode{Kind: "Program"}
		for _, s := range n.Statements {
			jn.Statements = append(jn.Statements, toJSON(s))
		}
		return jn
	case *Declaration:
		jn := &jsonNode{
			Kind:  "Declaration",
			Pos:   toJSONPos(n.Pos),
			Type:  n.Type.String(),
			Names: n.Names,
		}
		for _, e := range n.Inits {
			jn.Inits = append(jn.Inits, toJSON(e))
		}
		return jn
	case *Final:
		return &jsonNode{Kind: "Final", Pos: toJSONPos(n.Pos), Type: n.Kind.String(), Text: n.Text}
	case *SignedNumber:
		return &jsonNode{Kind: "SignedNumber", Pos: toJSONPos(n.Pos), Sign: n.Sign.String(), Text: n.Text}
	case *NegExpr:
		return &jsonNode{Kind: "NegExpr", Pos: toJSONPos(n.Pos), X: toJSON(n.X)}
	case *UnaryOp:
		return &jsonNode{Kind: "UnaryOp", Pos: toJSONPos(n.Pos), Op: n.Op.String(), Name: n.Name}
	case *BinaryOp:
		return &jsonNode{Kind: "BinaryOp", Pos: toJSONPos(n.Pos), Op: n.Op.String(), Left: toJSON(n.Left), Right: toJSON(n.Right)}
	case *Comparison:
		jn := &jsonNode{Kind: "Comparison", Pos: toJSONPos(n.Pos), Op: n.Op.String()}
		if n.Op.Relational() {
			jn.Left = toJSON(n.Left)
			jn.Right = toJSON(n.Right)
		} else {
			jn.Text = n.Text
		}
		return jn
	case *LogicalExpr:
		return &jsonNode{Kind: "LogicalExpr", Pos: toJSONPos(n.Pos), Op: n.Op.String(), Left: toJSON(n.Left), Right: toJSON(n.Right)}
	case *Assignment:
		jn := &jsonNode{
			Kind:   "Assignment",
			Pos:    toJSONPos(n.Pos),
			Op:     n.Op.String(),
			Target: toJSON(n.Target),
		}
		if n.Value != nil {
			jn.Value = toJSON(n.Value)
		}
		if n.Cond != nil {
			jn.Cond = toJSON(n.Cond)
		}
		return jn
	case *ElifClause:
		jn := &jsonNode{Kind: "ElifClause", Pos: toJSONPos(n.Pos), Cond: toJSON(n.Cond)}
		for _, a := range n.Body {
			jn.Body = append(jn.Body, toJSON(a))
		}
		return jn
	case *IfStmt:
		jn := &jsonNode{Kind: "IfStmt", Pos: toJSONPos(n.Pos), Cond: toJSON(n.Cond)}
		for _, a := range n.Then {
			jn.Then = append(jn.Then, toJSON(a))
		}
		for _, e := range n.Elifs {
			jn.Elifs = append(jn.Elifs, toJSON(e))
		}
		for _, a := range n.Else {
			jn.Else = append(jn.Else, toJSON(a))
		}
		return jn
	case *WhileStmt:
		jn := &jsonNode{Kind: "WhileStmt", Pos: toJSONPos(n.Pos), Cond: toJSON(n.Cond)}
		for _, a := range n.Body {
			jn.Body = append(jn.Body, toJSON(a))
		}
		return jn
	case *ForStmt:
		jn := &jsonNode{
			Kind: "ForStmt",
			Pos:  toJSONPos(n.Pos),
			Init: toJSON(n.Init),
			Cond: toJSON(n.Cond),
			Step: toJSON(n.Step),
		}
		for _, a := range n.Body {
			jn.Body = append(jn.Body, toJSON(a))
		}
		return jn
	case *PrintStmt:
		return &jsonNode{Kind: "PrintStmt", Pos: toJSONPos(n.Pos), Expr: toJSON(n.Expr)}
	}
	return nil
}

// MarshalNode serializes any node to its JSON wire form. The per-kind
// MarshalJSON methods delegate here so json.Marshal works on whole programs
// and on subtrees alike.
func MarshalNode(n Node) ([]byte, error) {
	return json.Marshal(toJSON(n))
}

func (p *Program) MarshalJSON() ([]byte, error)      { return MarshalNode(p) }
func (d *Declaration) MarshalJSON() ([]byte, error)  { return MarshalNode(d) }
func (f *Final) MarshalJSON() ([]byte, error)        { return MarshalNode(f) }
func (s *SignedNumber) MarshalJSON() ([]byte, error) { return MarshalNode(s) }
func (n *NegExpr) MarshalJSON() ([]byte, error)      { return MarshalNode(n) }
func (u *UnaryOp) MarshalJSON() ([]byte, error)      { return MarshalNode(u) }
func (b *BinaryOp) MarshalJSON() ([]byte, error)     { return MarshalNode(b) }
func (c *Comparison) MarshalJSON() ([]byte, error)   { return MarshalNode(c) }
func (l *LogicalExpr) MarshalJSON() ([]byte, error)  { return MarshalNode(l) }
func (a *Assignment) MarshalJSON() ([]byte, error)   { return MarshalNode(a) }
func (e *ElifClause) MarshalJSON() ([]byte, error)   { return MarshalNode(e) }
func (i *IfStmt) MarshalJSON() ([]byte, error)       { return MarshalNode(i) }
func (w *WhileStmt) MarshalJSON() ([]byte, error)    { return MarshalNode(w) }
func (f *ForStmt) MarshalJSON() ([]byte, error)      { return MarshalNode(f) }
func (p *PrintStmt) MarshalJSON() ([]byte, error)    { return MarshalNode(p) }
