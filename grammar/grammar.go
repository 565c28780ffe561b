// Package grammar carries the EBNF description of the language as a checked
// artifact. The file follows the Go spec's convention: lexical productions
// are lowercase, syntactic productions uppercase.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"golang.org/x/exp/ebnf"
)

//go:embed gsm.ebnf
var source []byte

// Start is the root production.
const Start = "Program"

// EBNF returns the grammar text.
func EBNF() []byte {
	return append([]byte(nil), source...)
}

// Load parses the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("gsm.ebnf", bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Check parses the grammar and verifies it starting from Start: every name
// must be defined, every production reachable, and lexical productions may
// reference only other lexical productions.
func Check() error {
	g, err := Load()
	if err != nil {
		return err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Productions returns all production names, sorted.
func Productions() ([]string, error) {
	g, err := Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
