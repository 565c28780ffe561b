package ast

import (
	"reflect"
	"testing"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenError, "Error"},
		{TokenIdent, "Identifier"},
		{TokenNumber, "Number"},
		{TokenTrue, "true"},
		{TokenFalse, "false"},
		{TokenInt, "int"},
		{TokenBool, "bool"},
		{TokenIf, "if"},
		{TokenElif, "elif"},
		{TokenElse, "else"},
		{TokenBegin, "begin"},
		{TokenEnd, "end"},
		{TokenLoopc, "loopc"},
		{TokenFor, "for"},
		{TokenPrint, "print"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenComma, ","},
		{TokenSemicolon, ";"},
		{TokenColon, ":"},
		{TokenAssign, "="},
		{TokenPlusAssign, "+="},
		{TokenMinusAssign, "-="},
		{TokenStarAssign, "*="},
		{TokenSlashAssign, "/="},
		{TokenEQ, "=="},
		{TokenNE, "!="},
		{TokenGT, ">"},
		{TokenLT, "<"},
		{TokenGE, ">="},
		{TokenLE, "<="},
		{TokenAnd, "&&"},
		{TokenOr, "||"},
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenPercent, "%"},
		{TokenCaret, "^"},
		{TokenIncrement, "++"},
		{TokenDecrement, "--"},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenKind
	}{
		{"int", TokenInt},
		{"bool", TokenBool},
		{"if", TokenIf},
		{"elif", TokenElif},
		{"else", TokenElse},
		{"begin", TokenBegin},
		{"end", TokenEnd},
		{"loopc", TokenLoopc},
		{"for", TokenFor},
		{"print", TokenPrint},
		{"true", TokenTrue},
		{"false", TokenFalse},
		{"counter", TokenIdent},
		{"Loopc", TokenIdent},
		{"INT", TokenIdent},
		{"", TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"with file", Position{File: "main.gsm", Line: 5, Column: 10}, "main.gsm:5:10"},
		{"without file", Position{Line: 3, Column: 1}, "3:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("Position.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToken(t *testing.T) {
	tok := Token{
		Kind:    TokenLoopc,
		Literal: "loopc",
		Span: Span{
			Start: Position{File: "main.gsm", Line: 1, Column: 1, Offset: 0},
			End:   Position{File: "main.gsm", Line: 1, Column: 6, Offset: 5},
		},
	}

	if tok.Kind != TokenLoopc {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenLoopc)
	}
	if tok.Literal != "loopc" {
		t.Errorf("Literal = %q, want %q", tok.Literal, "loopc")
	}
	if tok.Span.End.Column != 6 {
		t.Errorf("End.Column = %d, want 6", tok.Span.End.Column)
	}
}

func TestKeywords(t *testing.T) {
	want := []string{
		"begin", "bool", "elif", "else", "end", "false",
		"for", "if", "int", "loopc", "print", "true",
	}
	got := Keywords()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}
	for _, name := range got {
		if LookupKeyword(name) == TokenIdent {
			t.Errorf("LookupKeyword(%q) = TokenIdent, want a keyword kind", name)
		}
	}
}
