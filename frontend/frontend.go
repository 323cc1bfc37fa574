// Package frontend adapts a lexer.Definition to participle's lexer
// interfaces so a participle grammar can parse its token stream.
//
// Token types are named after categories with the dots removed, so
// Comment.PreprocFile is referenced in grammars as CommentPreprocFile.
package frontend

import (
	"fmt"
	"io"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/mgomes/sclex/lexer"
)

// Definition implements participle's lexer.Definition and
// lexer.StringDefinition.
type Definition struct {
	def     *lexer.Definition
	elide   []lexer.Category
	symbols map[string]plexer.TokenType
	types   map[lexer.Category]plexer.TokenType
}

var (
	_ plexer.Definition       = (*Definition)(nil)
	_ plexer.StringDefinition = (*Definition)(nil)
)

// New wraps def. Tokens whose category is one of elide, or a descendant of
// one, are dropped from the stream.
func New(def *lexer.Definition, elide ...lexer.Category) *Definition {
	d := &Definition{
		def:     def,
		elide:   elide,
		symbols: map[string]plexer.TokenType{"EOF": plexer.EOF},
		types:   make(map[lexer.Category]plexer.TokenType, len(lexer.Categories)),
	}
	for idx, category := range lexer.Categories {
		tt := plexer.TokenType(idx + 1)
		d.types[category] = tt
		d.symbols[SymbolName(category)] = tt
	}
	return d
}

// SymbolName returns the participle symbol for category.
func SymbolName(category lexer.Category) string {
	return strings.ReplaceAll(string(category), ".", "")
}

// Symbols implements participle's lexer.Definition.
func (d *Definition) Symbols() map[string]plexer.TokenType {
	return d.symbols
}

// TokenType returns the participle token type of category.
func (d *Definition) TokenType(category lexer.Category) (plexer.TokenType, bool) {
	tt, ok := d.types[category]
	return tt, ok
}

// Lex implements participle's lexer.Definition.
func (d *Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("frontend: read %s: %w", filename, err)
	}
	return d.LexString(filename, string(data))
}

// LexString implements participle's lexer.StringDefinition.
func (d *Definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return &tokenLexer{
		def:     d,
		scanner: d.def.Scanner(input),
		pos:     plexer.Position{Filename: filename, Line: 1, Column: 1},
	}, nil
}

func (d *Definition) elided(category lexer.Category) bool {
	for _, e := range d.elide {
		if category.In(e) {
			return true
		}
	}
	return false
}

type tokenLexer struct {
	def     *Definition
	scanner *lexer.Scanner
	// pos is the position just past the last token read.
	pos plexer.Position
}

// Next implements participle's lexer.Lexer. Once the input is exhausted
// it keeps returning EOF.
func (l *tokenLexer) Next() (plexer.Token, error) {
	for {
		tok, ok := l.scanner.Next()
		if !ok {
			return plexer.EOFToken(l.pos), nil
		}

		start := plexer.Position{
			Filename: l.pos.Filename,
			Offset:   tok.Span.Offset,
			Line:     tok.Pos.Line,
			Column:   tok.Pos.Column,
		}
		l.pos = start
		l.pos.Advance(tok.Value)

		if l.def.elided(tok.Category) {
			continue
		}
		tt, ok := l.def.types[tok.Category]
		if !ok {
			return plexer.Token{}, fmt.Errorf("%s: unknown token category %q", start, tok.Category)
		}
		return plexer.Token{Type: tt, Value: tok.Value, Pos: start}, nil
	}
}
