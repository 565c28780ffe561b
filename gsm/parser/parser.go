package parser

import (
	"fmt"
	"strings"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

type Option func(*Parser)

// WithFile sets the file name recorded in token positions and errors.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// SyntaxError is the single error kind the parser produces: the token found
// at the point of mismatch plus what would have been accepted there. Message
// is set instead of Expected for constraint violations that are not a plain
// token mismatch, such as a duplicate name in a declaration.
type SyntaxError struct {
	Message  string
	Expected []ast.TokenKind
	Got      ast.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Got.Span.Start, e.Description())
}

// Description returns the message without the position prefix, for callers
// that report the position separately.
func (e *SyntaxError) Description() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("expected %s, found %s", expectedList(e.Expected), foundDesc(e.Got))
}

// Position returns the source position of the offending token.
func (e *SyntaxError) Position() ast.Position {
	return e.Got.Span.Start
}

func expectedList(kinds []ast.TokenKind) string {
	var b strings.Builder
	for i, k := range kinds {
		switch {
		case i == 0:
		case i == len(kinds)-1:
			b.WriteString(" or ")
		default:
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s'", k)
	}
	return b.String()
}

func foundDesc(tok ast.Token) string {
	if tok.Kind == ast.TokenEOF {
		return "end of input"
	}
	if tok.Literal != "" {
		return fmt.Sprintf("'%s'", tok.Literal)
	}
	return fmt.Sprintf("'%s'", tok.Kind)
}

// Parser is a recursive-descent parser over a fixed token slice. Failure
// handling is panic-mode and global: the first mismatch anywhere aborts the
// whole parse, and the top level sweeps the cursor to EOF before returning,
// so at most one SyntaxError is reported per run and no partial Program is
// ever handed out.
type Parser struct {
	file   string
	tokens []ast.Token
	pos    int
}

// New wraps an already-lexed token stream. The stream must end in an EOF
// token; NewLexer.Tokenize produces streams in this form.
func New(tokens []ast.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse lexes and parses a whole source text.
func Parse(input []byte, opts ...Option) (*ast.Program, error) {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.tokens = NewLexer(input, p.file).Tokenize()
	return p.Parse()
}

// Parse consumes the token stream until EOF and returns the program. On the
// first syntax error the remaining input is discarded, the cursor is left on
// the EOF token, and only the error is returned.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.isKind(ast.TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.recover()
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// recover is the single panic-mode sweep: advance to end of input so the
// caller finds the cursor in a defined state regardless of where the
// mismatch happened.
func (p *Parser) recover() {
	for !p.isKind(ast.TokenEOF) {
		p.advance()
	}
}

func (p *Parser) current() ast.Token {
	if p.pos >= len(p.tokens) {
		return ast.Token{Kind: ast.TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) isKind(kind ast.TokenKind) bool {
	return p.current().Kind == kind
}

func (p *Parser) isOneOf(kinds ...ast.TokenKind) bool {
	cur := p.current().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// checkpoint and rewind are the bounded-backtracking primitives. They are
// used in exactly two places: deciding between a unary statement and an
// assignment, and deciding between the boolean and arithmetic right-hand
// side of a plain '=' assignment.
func (p *Parser) checkpoint() int {
	return p.pos
}

func (p *Parser) rewind(mark int) {
	p.pos = mark
}

func (p *Parser) expect(kind ast.TokenKind) (ast.Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return tok, &SyntaxError{Expected: []ast.TokenKind{kind}, Got: tok}
	}
	p.advance()
	return tok, nil
}

func (p *Parser) errExpected(kinds ...ast.TokenKind) error {
	return &SyntaxError{Expected: kinds, Got: p.current()}
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Kind {
	case ast.TokenInt, ast.TokenBool:
		return p.parseDeclaration()
	case ast.TokenIdent:
		return p.parseIdentStatement()
	case ast.TokenIf:
		return p.parseIf()
	case ast.TokenLoopc:
		return p.parseWhile()
	case ast.TokenFor:
		return p.parseFor()
	case ast.TokenPrint:
		return p.parsePrint()
	}
	return nil, p.errExpected(
		ast.TokenInt, ast.TokenBool, ast.TokenIdent,
		ast.TokenIf, ast.TokenLoopc, ast.TokenFor, ast.TokenPrint,
	)
}

// parseDeclaration parses `int a, b = 1, 2;` and the bool form. Initializer
// expressions follow the declared type: int uses the arithmetic parser, bool
// the boolean one. Count mismatches surface at the token where they become
// apparent: an extra initializer errors at its leading comma, a missing one
// at the terminator.
func (p *Parser) parseDeclaration() (*ast.Declaration, error) {
	typeTok := p.current()
	p.advance()
	decl := &ast.Declaration{Pos: typeTok.Span.Start, Type: typeTok.Kind}

	nameTok, err := p.expect(ast.TokenIdent)
	if err != nil {
		return nil, err
	}
	decl.Names = append(decl.Names, nameTok.Literal)
	seen := map[string]bool{nameTok.Literal: true}

	for p.isKind(ast.TokenComma) {
		p.advance()
		nameTok, err := p.expect(ast.TokenIdent)
		if err != nil {
			return nil, err
		}
		if seen[nameTok.Literal] {
			return nil, &SyntaxError{
				Message: fmt.Sprintf("duplicate name '%s' in declaration", nameTok.Literal),
				Got:     nameTok,
			}
		}
		seen[nameTok.Literal] = true
		decl.Names = append(decl.Names, nameTok.Literal)
	}

	if p.isKind(ast.TokenAssign) {
		p.advance()
		init, err := p.parseInitializer(decl.Type)
		if err != nil {
			return nil, err
		}
		decl.Inits = append(decl.Inits, init)

		for p.isKind(ast.TokenComma) {
			if len(decl.Inits) == len(decl.Names) {
				return nil, p.errExpected(ast.TokenSemicolon)
			}
			p.advance()
			init, err := p.parseInitializer(decl.Type)
			if err != nil {
				return nil, err
			}
			decl.Inits = append(decl.Inits, init)
		}
		if len(decl.Inits) < len(decl.Names) {
			return nil, p.errExpected(ast.TokenComma)
		}
	}

	if _, err := p.expect(ast.TokenSemicolon); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseInitializer(declType ast.TokenKind) (ast.Expression, error) {
	if declType == ast.TokenBool {
		cond, err := p.parseLogic()
		if err != nil {
			return nil, err
		}
		return cond, nil
	}
	return p.parseExpr()
}

// parseIdentStatement disambiguates `x++;` from `x = ...;` with bounded
// lookahead: try the unary form, commit only if the terminator follows,
// otherwise rewind and parse a full assignment.
func (p *Parser) parseIdentStatement() (ast.Statement, error) {
	mark := p.checkpoint()
	if unary, err := p.parseUnaryOp(); err == nil {
		if p.isKind(ast.TokenSemicolon) {
			p.advance()
			return unary, nil
		}
	}
	p.rewind(mark)

	assign, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokenSemicolon); err != nil {
		return nil, err
	}
	return assign, nil
}

func (p *Parser) parseUnaryOp() (*ast.UnaryOp, error) {
	nameTok, err := p.expect(ast.TokenIdent)
	if err != nil {
		return nil, err
	}
	opTok := p.current()
	if !p.isOneOf(ast.TokenIncrement, ast.TokenDecrement) {
		return nil, p.errExpected(ast.TokenIncrement, ast.TokenDecrement)
	}
	p.advance()
	op := ast.Increment
	if opTok.Kind == ast.TokenDecrement {
		op = ast.Decrement
	}
	return &ast.UnaryOp{Pos: nameTok.Span.Start, Op: op, Name: nameTok.Literal}, nil
}

// parseAssignment parses `name op rhs` without the trailing semicolon; the
// caller owns the terminator. A plain '=' tries the boolean parser first and
// falls back to the arithmetic one on failure; compound operators are always
// arithmetic.
func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	nameTok, err := p.expect(ast.TokenIdent)
	if err != nil {
		return nil, err
	}
	assign := &ast.Assignment{
		Pos: nameTok.Span.Start,
		Target: &ast.Final{
			Pos:  nameTok.Span.Start,
			Kind: ast.FinalIdent,
			Text: nameTok.Literal,
		},
	}

	opTok := p.current()
	switch opTok.Kind {
	case ast.TokenAssign:
		p.advance()
		assign.Op = ast.Assign

		mark := p.checkpoint()
		if cond, err := p.parseLogic(); err == nil {
			assign.Cond = cond
			return assign, nil
		}
		p.rewind(mark)

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		assign.Value = value
		return assign, nil

	case ast.TokenPlusAssign, ast.TokenMinusAssign, ast.TokenStarAssign, ast.TokenSlashAssign:
		p.advance()
		assign.Op = assignOpFor(opTok.Kind)
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		assign.Value = value
		return assign, nil
	}

	return nil, p.errExpected(
		ast.TokenAssign, ast.TokenPlusAssign, ast.TokenMinusAssign,
		ast.TokenStarAssign, ast.TokenSlashAssign,
	)
}

func assignOpFor(kind ast.TokenKind) ast.AssignOp {
	switch kind {
	case ast.TokenPlusAssign:
		return ast.AddAssign
	case ast.TokenMinusAssign:
		return ast.SubAssign
	case ast.TokenStarAssign:
		return ast.MulAssign
	case ast.TokenSlashAssign:
		return ast.DivAssign
	}
	return ast.Assign
}

// parseBlock parses `: begin assignment* end` and consumes the closing end.
// Bodies hold assignment statements only.
func (p *Parser) parseBlock() ([]*ast.Assignment, error) {
	if _, err := p.expect(ast.TokenColon); err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokenBegin); err != nil {
		return nil, err
	}
	var body []*ast.Assignment
	for !p.isKind(ast.TokenEnd) {
		if p.isKind(ast.TokenEOF) {
			return nil, p.errExpected(ast.TokenEnd)
		}
		assign, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ast.TokenSemicolon); err != nil {
			return nil, err
		}
		body = append(body, assign)
	}
	p.advance()
	return body, nil
}

func (p *Parser) parseIf() (*ast.IfStmt, error) {
	ifTok := p.current()
	p.advance()
	stmt := &ast.IfStmt{Pos: ifTok.Span.Start}

	cond, err := p.parseLogic()
	if err != nil {
		return nil, err
	}
	stmt.Cond = cond

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Then = then

	for p.isKind(ast.TokenElif) {
		elifTok := p.current()
		p.advance()
		clause := &ast.ElifClause{Pos: elifTok.Span.Start}
		cond, err := p.parseLogic()
		if err != nil {
			return nil, err
		}
		clause.Cond = cond
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		clause.Body = body
		stmt.Elifs = append(stmt.Elifs, clause)
	}

	if p.isKind(ast.TokenElse) {
		p.advance()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = body
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (*ast.WhileStmt, error) {
	loopTok := p.current()
	p.advance()
	cond, err := p.parseLogic()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Pos: loopTok.Span.Start, Cond: cond, Body: body}, nil
}

// parseFor parses `for init; cond; step: begin assignment* end` where init
// and step are assignments.
func (p *Parser) parseFor() (*ast.ForStmt, error) {
	forTok := p.current()
	p.advance()
	stmt := &ast.ForStmt{Pos: forTok.Span.Start}

	init, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	stmt.Init = init
	if _, err := p.expect(ast.TokenSemicolon); err != nil {
		return nil, err
	}

	cond, err := p.parseLogic()
	if err != nil {
		return nil, err
	}
	stmt.Cond = cond
	if _, err := p.expect(ast.TokenSemicolon); err != nil {
		return nil, err
	}

	step, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	stmt.Step = step

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

func (p *Parser) parsePrint() (*ast.PrintStmt, error) {
	printTok := p.current()
	p.advance()
	if _, err := p.expect(ast.TokenLParen); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokenRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokenSemicolon); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Pos: printTok.Span.Start, Expr: expr}, nil
}

// parseExpr, parseTerm and parseFactor are the arithmetic precedence tiers:
// additive below multiplicative below exponentiation, all left-associative
// except '^' which associates to the right through recursion.
func (p *Parser) parseExpr() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isOneOf(ast.TokenPlus, ast.TokenMinus) {
		opTok := p.current()
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op := ast.Add
		if opTok.Kind == ast.TokenMinus {
			op = ast.Sub
		}
		left = &ast.BinaryOp{Pos: left.Position(), Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.isOneOf(ast.TokenStar, ast.TokenSlash, ast.TokenPercent) {
		opTok := p.current()
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		var op ast.BinOp
		switch opTok.Kind {
		case ast.TokenStar:
			op = ast.Mul
		case ast.TokenSlash:
			op = ast.Div
		case ast.TokenPercent:
			op = ast.Mod
		}
		left = &ast.BinaryOp{Pos: left.Position(), Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	left, err := p.parseFinal()
	if err != nil {
		return nil, err
	}
	for p.isKind(ast.TokenCaret) {
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Pos: left.Position(), Op: ast.Pow, Left: left, Right: right}
	}
	return left, nil
}

// parseFinal parses the atomic operands: numbers, identifiers (folding a
// trailing ++/-- into a UnaryOp leaf), explicitly signed numbers, negated
// parenthesized expressions, and parenthesized sub-expressions.
func (p *Parser) parseFinal() (ast.Expression, error) {
	tok := p.current()
	switch tok.Kind {
	case ast.TokenNumber:
		p.advance()
		return &ast.Final{Pos: tok.Span.Start, Kind: ast.FinalNumber, Text: tok.Literal}, nil

	case ast.TokenIdent:
		p.advance()
		if p.isOneOf(ast.TokenIncrement, ast.TokenDecrement) {
			op := ast.Increment
			if p.isKind(ast.TokenDecrement) {
				op = ast.Decrement
			}
			p.advance()
			return &ast.UnaryOp{Pos: tok.Span.Start, Op: op, Name: tok.Literal}, nil
		}
		return &ast.Final{Pos: tok.Span.Start, Kind: ast.FinalIdent, Text: tok.Literal}, nil

	case ast.TokenPlus:
		p.advance()
		numTok, err := p.expect(ast.TokenNumber)
		if err != nil {
			return nil, err
		}
		return &ast.SignedNumber{Pos: tok.Span.Start, Sign: ast.Plus, Text: numTok.Literal}, nil

	case ast.TokenMinus:
		p.advance()
		if p.isKind(ast.TokenLParen) {
			p.advance()
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(ast.TokenRParen); err != nil {
				return nil, err
			}
			return &ast.NegExpr{Pos: tok.Span.Start, X: inner}, nil
		}
		numTok, err := p.expect(ast.TokenNumber)
		if err != nil {
			return nil, err
		}
		return &ast.SignedNumber{Pos: tok.Span.Start, Sign: ast.Minus, Text: numTok.Literal}, nil

	case ast.TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ast.TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, p.errExpected(
		ast.TokenNumber, ast.TokenIdent, ast.TokenPlus, ast.TokenMinus, ast.TokenLParen,
	)
}

// parseLogic is the boolean chain: comparisons joined by '&&'/'||' in one
// shared left-associative tier. The two connectives deliberately have equal
// precedence.
func (p *Parser) parseLogic() (ast.BoolExpr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.isOneOf(ast.TokenAnd, ast.TokenOr) {
		opTok := p.current()
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		op := ast.And
		if opTok.Kind == ast.TokenOr {
			op = ast.Or
		}
		left = &ast.LogicalExpr{Pos: left.Position(), Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseComparison parses one boolean operand: a parenthesized boolean chain,
// a bare true/false/identifier atom, or a relational test over two
// arithmetic expressions. The atom alternatives win unconditionally when
// their token starts the comparison, so a relational test cannot begin with
// a bare identifier or an opening parenthesis.
func (p *Parser) parseComparison() (ast.BoolExpr, error) {
	tok := p.current()
	switch tok.Kind {
	case ast.TokenLParen:
		p.advance()
		inner, err := p.parseLogic()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ast.TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil

	case ast.TokenTrue:
		p.advance()
		return &ast.Comparison{Pos: tok.Span.Start, Op: ast.LiteralTrue, Text: tok.Literal}, nil

	case ast.TokenFalse:
		p.advance()
		return &ast.Comparison{Pos: tok.Span.Start, Op: ast.LiteralFalse, Text: tok.Literal}, nil

	case ast.TokenIdent:
		p.advance()
		return &ast.Comparison{Pos: tok.Span.Start, Op: ast.IdentRef, Text: tok.Literal}, nil
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	opTok := p.current()
	if !p.isOneOf(ast.TokenEQ, ast.TokenNE, ast.TokenGT, ast.TokenLT, ast.TokenGE, ast.TokenLE) {
		return nil, p.errExpected(
			ast.TokenEQ, ast.TokenNE, ast.TokenGT, ast.TokenLT, ast.TokenGE, ast.TokenLE,
		)
	}
	p.advance()
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{
		Pos:   left.Position(),
		Op:    cmpOpFor(opTok.Kind),
		Left:  left,
		Right: right,
	}, nil
}

func cmpOpFor(kind ast.TokenKind) ast.CmpOp {
	switch kind {
	case ast.TokenEQ:
		return ast.Equal
	case ast.TokenNE:
		return ast.NotEqual
	case ast.TokenGT:
		return ast.Gt
	case ast.TokenLT:
		return ast.Lt
	case ast.TokenGE:
		return ast.Ge
	case ast.TokenLE:
		return ast.Le
	}
	return ast.Equal
}
