// Package parser turns GSM source text into the syntax tree defined in the
// ast package.
//
// # Overview
//
// Parsing is plain recursive descent over a fully lexed token slice:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// The lexer discards whitespace and // comments, so the parser sees code
// tokens followed by one EOF token. Parse is the usual entry point; New
// accepts a pre-lexed stream.
//
// # Grammar
//
// Statements:
//
//	program    → statement*
//	statement  → declaration | assignment ';' | unary ';'
//	           | if | loop | for | print
//	declaration→ ('int'|'bool') IDENT (',' IDENT)* ('=' init (',' init)*)? ';'
//	assignment → IDENT ('='|'+='|'-='|'*='|'/=') rhs
//	unary      → IDENT ('++'|'--')
//	if         → 'if' logic block ('elif' logic block)* ('else' block)?
//	loop       → 'loopc' logic block
//	for        → 'for' assignment ';' logic ';' assignment block
//	print      → 'print' '(' expr ')' ';'
//	block      → ':' 'begin' (assignment ';')* 'end'
//
// Expressions, two independent chains. Arithmetic:
//
//	expr       → term (('+'|'-') term)*
//	term       → factor (('*'|'/'|'%') factor)*
//	factor     → final ('^' factor)?            right-associative
//	final      → NUMBER | IDENT ('++'|'--')? | ('+'|'-') NUMBER
//	           | '-' '(' expr ')' | '(' expr ')'
//
// Boolean:
//
//	logic      → comparison (('&&'|'||') comparison)*
//	comparison → '(' logic ')' | 'true' | 'false' | IDENT
//	           | expr ('=='|'!='|'>'|'<'|'>='|'<=') expr
//
// '&&' and '||' share one left-associative tier. The comparison alternatives
// apply in order, so a bare identifier or opening parenthesis always commits
// to the atom or parenthesized-boolean form; a relational test must start
// with a number, a sign, or a negation.
//
// A plain '=' assignment tries the boolean chain first and rewinds to the
// arithmetic chain when it fails. This is one of the two bounded-lookahead
// points in the grammar; the other distinguishes `x++;` from an assignment
// beginning with the same identifier.
//
// # Error Handling
//
// The first mismatch anywhere fails the whole parse: sub-parsers propagate
// the SyntaxError up unchanged, the top level sweeps the cursor to EOF, and
// the caller gets either a complete Program or a single error. There is no
// statement-level resynchronization.
package parser
