package parser

import (
	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

// Lexer scans GSM source into tokens. Whitespace and line comments are
// consumed silently; the token stream the parser sees contains code tokens
// and a final EOF only. Unrecognized characters come out as TokenError
// tokens carrying the offending text.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() ast.Position {
	return ast.Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) skipTrivia() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		if ch == '/' && l.peekN(1) == '/' {
			for l.peek() != 0 && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		return
	}
}

func (l *Lexer) NextToken() ast.Token {
	l.skipTrivia()
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return ast.Token{Kind: ast.TokenEOF, Span: ast.Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if isLetter(ch) {
		return l.scanIdentOrKeyword(startPos)
	}
	if isDigit(ch) {
		return l.scanNumber(startPos)
	}
	return l.scanOperator(startPos)
}

// Tokenize scans the whole input and returns the token stream, including
// the trailing EOF token.
func (l *Lexer) Tokenize() []ast.Token {
	var tokens []ast.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == ast.TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) scanIdentOrKeyword(start ast.Position) ast.Token {
	for isLetterOrDigit(l.peek()) {
		l.advance()
	}
	end := l.Position()
	literal := string(l.input[start.Offset:end.Offset])
	return ast.Token{
		Kind:    ast.LookupKeyword(literal),
		Span:    ast.Span{Start: start, End: end},
		Literal: literal,
	}
}

func (l *Lexer) scanNumber(start ast.Position) ast.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	return l.token(ast.TokenNumber, start)
}

func (l *Lexer) scanOperator(start ast.Position) ast.Token {
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return l.token(ast.TokenLParen, start)
	case ')':
		l.advance()
		return l.token(ast.TokenRParen, start)
	case ',':
		l.advance()
		return l.token(ast.TokenComma, start)
	case ';':
		l.advance()
		return l.token(ast.TokenSemicolon, start)
	case ':':
		l.advance()
		return l.token(ast.TokenColon, start)

	case '=':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenEQ, start)
		}
		l.advance()
		return l.token(ast.TokenAssign, start)

	case '!':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenNE, start)
		}

	case '<':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenLE, start)
		}
		l.advance()
		return l.token(ast.TokenLT, start)

	case '>':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenGE, start)
		}
		l.advance()
		return l.token(ast.TokenGT, start)

	case '&':
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.token(ast.TokenAnd, start)
		}

	case '|':
		if l.peekN(1) == '|' {
			l.advanceN(2)
			return l.token(ast.TokenOr, start)
		}

	case '+':
		if l.peekN(1) == '+' {
			l.advanceN(2)
			return l.token(ast.TokenIncrement, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenPlusAssign, start)
		}
		l.advance()
		return l.token(ast.TokenPlus, start)

	case '-':
		if l.peekN(1) == '-' {
			l.advanceN(2)
			return l.token(ast.TokenDecrement, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenMinusAssign, start)
		}
		l.advance()
		return l.token(ast.TokenMinus, start)

	case '*':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenStarAssign, start)
		}
		l.advance()
		return l.token(ast.TokenStar, start)

	case '/':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(ast.TokenSlashAssign, start)
		}
		l.advance()
		return l.token(ast.TokenSlash, start)

	case '%':
		l.advance()
		return l.token(ast.TokenPercent, start)
	case '^':
		l.advance()
		return l.token(ast.TokenCaret, start)
	}

	l.advance()
	return l.token(ast.TokenError, start)
}

func (l *Lexer) token(kind ast.TokenKind, start ast.Position) ast.Token {
	end := l.Position()
	return ast.Token{
		Kind:    kind,
		Span:    ast.Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
