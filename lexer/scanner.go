package lexer

import (
	"fmt"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"

	"github.com/mgomes/sclex/internal/logging/logfields"
)

// maxZeroWidthSteps bounds consecutive empty matches at one offset. Past
// it, zero-width rules are skipped so the cursor is forced forward.
const maxZeroWidthSteps = 32

// Scanner walks one input. It owns the cursor and the state stack and is
// not safe for concurrent use; create one per input.
type Scanner struct {
	def     *Definition
	src     string
	input   []rune
	offsets []int // byte offset of each rune, plus len(src)

	pos    int // rune offset
	line   int
	column int

	stack   []string
	pending []Token
	stalled int
}

// Scanner starts a scan of input from the definition's start stack.
func (d *Definition) Scanner(input string) *Scanner {
	return d.newScanner(input, d.start)
}

// ScannerFrom starts a scan of input with an explicit initial stack,
// bottom first.
func (d *Definition) ScannerFrom(input string, stack ...string) (*Scanner, error) {
	if len(stack) == 0 {
		return nil, fmt.Errorf("lexer %s: initial stack is empty", d.name)
	}
	for _, name := range stack {
		if !d.HasState(name) {
			return nil, fmt.Errorf("lexer %s: %w %q", d.name, ErrUnknownState, name)
		}
	}
	return d.newScanner(input, stack), nil
}

func (d *Definition) newScanner(input string, stack []string) *Scanner {
	runes := make([]rune, 0, len(input))
	offsets := make([]int, 0, len(input)+1)
	for idx, r := range input {
		runes = append(runes, r)
		offsets = append(offsets, idx)
	}
	offsets = append(offsets, len(input))

	return &Scanner{
		def:     d,
		src:     input,
		input:   runes,
		offsets: offsets,
		line:    1,
		column:  1,
		stack:   slices.Clone(stack),
	}
}

// Tokens scans input to the end and returns every token.
func (d *Definition) Tokens(input string) []Token {
	return slices.Collect(d.Scanner(input).All())
}

// All returns a lazy token stream over input.
func (d *Definition) All(input string) iter.Seq[Token] {
	return d.Scanner(input).All()
}

// Next returns the next token, or false once the input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	for len(s.pending) == 0 {
		if s.pos >= len(s.input) {
			return Token{}, false
		}
		s.step()
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, true
}

// All returns the remaining tokens as an iterator. Stopping the iteration
// early leaves the scanner where it was.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Stack returns a copy of the state stack, bottom first.
func (s *Scanner) Stack() []string {
	return slices.Clone(s.stack)
}

// State returns the active state.
func (s *Scanner) State() string {
	return s.stack[len(s.stack)-1]
}

// Offset returns the byte offset of the cursor.
func (s *Scanner) Offset() int {
	return s.offsets[s.pos]
}

func (s *Scanner) step() {
	for _, rule := range s.def.states[s.State()] {
		m, err := rule.re.FindRunesMatchStartingAt(s.input, s.pos)
		if err != nil || m == nil {
			continue
		}
		if m.Length == 0 {
			if rule.Transition.Kind == Stay || s.stalled >= maxZeroWidthSteps {
				continue
			}
			s.stalled++
		} else {
			s.stalled = 0
		}

		s.emit(rule, m.Length, matchGroups(m.Groups()))
		s.transition(rule.Transition)
		return
	}
	s.skipRune()
}

// emit queues the tokens for a match of length runes.
func (s *Scanner) emit(rule compiledRule, length int, m Match) {
	if rule.Action == nil {
		s.push(rule.Category, length)
		return
	}

	pieces := rule.Action(m)
	counts := make([]int, len(pieces))
	total := 0
	for idx, piece := range pieces {
		counts[idx] = utf8.RuneCountInString(piece.Value)
		total += counts[idx]
	}
	if total != length {
		panic(fmt.Sprintf("lexer %s: state %q rule %d emitted %d runes for a %d-rune match %q",
			s.def.name, rule.state, rule.index, total, length, m.Text))
	}
	for idx, piece := range pieces {
		s.push(piece.Category, counts[idx])
	}
}

// push queues a token covering the next n runes and advances the cursor.
// The token text is sliced from the original input so invalid UTF-8 is
// preserved byte for byte.
func (s *Scanner) push(category Category, n int) {
	if n == 0 {
		return
	}
	start, end := s.offsets[s.pos], s.offsets[s.pos+n]
	s.pending = append(s.pending, Token{
		Category: category,
		Value:    s.src[start:end],
		Span:     Span{Offset: start, Length: end - start},
		Pos:      Position{Line: s.line, Column: s.column},
	})
	for _, r := range s.input[s.pos : s.pos+n] {
		if r == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
	s.pos += n
}

func (s *Scanner) transition(t Transition) {
	switch t.Kind {
	case PushState:
		s.stack = append(s.stack, t.State)
	case PopState:
		if len(s.stack) <= 1 {
			panic(fmt.Sprintf("lexer %s: stack underflow popping %q", s.def.name, s.State()))
		}
		s.stack = s.stack[:len(s.stack)-1]
	case GotoState:
		s.stack[len(s.stack)-1] = t.State
	}
}

// skipRune emits the rune at the cursor as an Error token.
func (s *Scanner) skipRune() {
	s.stalled = 0
	if s.def.debugEnabled() {
		log.WithFields(logrus.Fields{
			logfields.Lexer:  s.def.name,
			logfields.State:  s.State(),
			logfields.Offset: s.Offset(),
			logfields.Line:   s.line,
			logfields.Value:  string(s.input[s.pos]),
		}).Debug("No rule matched, emitting error token")
	}
	s.push(Error, 1)
}

func (d *Definition) debugEnabled() bool {
	return log.Logger.IsLevelEnabled(logrus.DebugLevel)
}

func matchGroups(groups []regexp2.Group) Match {
	out := make([]string, len(groups))
	for idx, group := range groups {
		if len(group.Captures) > 0 {
			out[idx] = group.String()
		}
	}
	return Match{Text: out[0], Groups: out}
}
