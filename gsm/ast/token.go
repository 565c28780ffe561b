package ast

import (
	"fmt"
	"sort"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenNumber
	TokenTrue
	TokenFalse

	// Keywords
	TokenInt
	TokenBool
	TokenIf
	TokenElif
	TokenElse
	TokenBegin
	TokenEnd
	TokenLoopc
	TokenFor
	TokenPrint

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenComma
	TokenSemicolon
	TokenColon

	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenEQ
	TokenNE
	TokenGT
	TokenLT
	TokenGE
	TokenLE
	TokenAnd
	TokenOr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenCaret
	TokenIncrement
	TokenDecrement
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenError:       "Error",
	TokenIdent:       "Identifier",
	TokenNumber:      "Number",
	TokenTrue:        "true",
	TokenFalse:       "false",
	TokenInt:         "int",
	TokenBool:        "bool",
	TokenIf:          "if",
	TokenElif:        "elif",
	TokenElse:        "else",
	TokenBegin:       "begin",
	TokenEnd:         "end",
	TokenLoopc:       "loopc",
	TokenFor:         "for",
	TokenPrint:       "print",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenComma:       ",",
	TokenSemicolon:   ";",
	TokenColon:       ":",
	TokenAssign:      "=",
	TokenPlusAssign:  "+=",
	TokenMinusAssign: "-=",
	TokenStarAssign:  "*=",
	TokenSlashAssign: "/=",
	TokenEQ:          "==",
	TokenNE:          "!=",
	TokenGT:          ">",
	TokenLT:          "<",
	TokenGE:          ">=",
	TokenLE:          "<=",
	TokenAnd:         "&&",
	TokenOr:          "||",
	TokenPlus:        "+",
	TokenMinus:       "-",
	TokenStar:        "*",
	TokenSlash:       "/",
	TokenPercent:     "%",
	TokenCaret:       "^",
	TokenIncrement:   "++",
	TokenDecrement:   "--",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"int":   TokenInt,
	"bool":  TokenBool,
	"if":    TokenIf,
	"elif":  TokenElif,
	"else":  TokenElse,
	"begin": TokenBegin,
	"end":   TokenEnd,
	"loopc": TokenLoopc,
	"for":   TokenFor,
	"print": TokenPrint,
	"true":  TokenTrue,
	"false": TokenFalse,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// Keywords returns every reserved word, sorted.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for name := range keywords {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
