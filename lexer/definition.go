// Package lexer implements a regex-driven, stack-based tokenizer engine.
//
// A lexer is described by named states, each an ordered list of rules. A
// rule pairs a pattern with a token category (or an Action producing
// several tokens) and an optional stack transition. States may Include
// other states; inclusions are expanded once by New into flat rule lists,
// so scanning never resolves them again.
//
// Within a state the first rule whose pattern matches at the cursor wins.
// Patterns use regexp2 syntax and are anchored at the cursor with \G in
// multiline mode, so ^ and $ are line anchors, (?s) makes . match newlines
// and lookaround assertions can inspect text before the cursor.
package lexer

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"

	"github.com/mgomes/sclex/internal/logging"
	"github.com/mgomes/sclex/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "lexer")

var (
	ErrUnknownState    = errors.New("unknown state")
	ErrIncludeCycle    = errors.New("include cycle")
	ErrBadPattern      = errors.New("invalid pattern")
	ErrEmptyState      = errors.New("state has no rules")
	ErrUnreachableRule = errors.New("rule is unreachable after a rule matching the empty string")
)

// DefinitionError reports a malformed rule table. Rule is the index in the
// state's flattened list, or -1 when the error concerns the whole state.
type DefinitionError struct {
	Lexer string
	State string
	Rule  int
	Err   error
}

func (e *DefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("lexer")
	if e.Lexer != "" {
		b.WriteString(" ")
		b.WriteString(e.Lexer)
	}
	if e.State != "" {
		fmt.Fprintf(&b, ": state %q", e.State)
	}
	if e.Rule >= 0 {
		fmt.Fprintf(&b, " rule %d", e.Rule)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// Config names a lexer and its initial stack.
type Config struct {
	Name string
	// Start lists the initial stack, bottom first. Defaults to ["root"].
	Start []string
}

// Definition is a compiled, immutable set of states. It is safe to scan
// many inputs concurrently with one Definition.
type Definition struct {
	name   string
	start  []string
	states map[string][]compiledRule
}

type compiledRule struct {
	Rule
	re        *regexp2.Regexp
	state     string
	index     int
	zeroWidth bool
}

type ruleKey struct {
	state string
	index int
}

type builder struct {
	name     string
	rules    Rules
	compiled map[ruleKey]compiledRule
	flat     map[string][]compiledRule
}

// New compiles rules into a Definition.
func New(cfg Config, rules Rules) (*Definition, error) {
	if len(cfg.Start) == 0 {
		cfg.Start = []string{"root"}
	}

	b := &builder{
		name:     cfg.Name,
		rules:    rules,
		compiled: make(map[ruleKey]compiledRule),
		flat:     make(map[string][]compiledRule, len(rules)),
	}

	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for idx, rule := range rules[name] {
			if err := b.compile(name, idx, rule); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range names {
		if _, err := b.flatten(name, nil); err != nil {
			return nil, err
		}
	}
	for _, name := range names {
		if err := b.validate(name); err != nil {
			return nil, err
		}
	}
	for _, name := range cfg.Start {
		if _, ok := rules[name]; !ok {
			return nil, &DefinitionError{Lexer: cfg.Name, Rule: -1, Err: fmt.Errorf("%w: start state %q", ErrUnknownState, name)}
		}
	}

	def := &Definition{
		name:   cfg.Name,
		start:  slices.Clone(cfg.Start),
		states: b.flat,
	}

	total := 0
	for _, flat := range b.flat {
		total += len(flat)
	}
	log.WithFields(logrus.Fields{
		logfields.Lexer:  cfg.Name,
		logfields.States: len(b.flat),
		logfields.Rules:  total,
	}).Debug("Built lexer definition")

	return def, nil
}

// MustNew is like New but panics on a malformed rule table.
func MustNew(cfg Config, rules Rules) *Definition {
	def, err := New(cfg, rules)
	if err != nil {
		panic(err)
	}
	return def
}

func (b *builder) fail(state string, rule int, err error) error {
	return &DefinitionError{Lexer: b.name, State: state, Rule: rule, Err: err}
}

func (b *builder) compile(state string, idx int, rule Rule) error {
	if target, ok := rule.IsInclude(); ok {
		if _, exists := b.rules[target]; !exists {
			return b.fail(state, idx, fmt.Errorf("%w: include %q", ErrUnknownState, target))
		}
		return nil
	}

	switch rule.Transition.Kind {
	case PushState, GotoState:
		if _, exists := b.rules[rule.Transition.State]; !exists {
			return b.fail(state, idx, fmt.Errorf("%w: %s", ErrUnknownState, rule.Transition))
		}
	}

	re, err := regexp2.Compile(`\G(?:`+rule.Pattern+`)`, regexp2.Multiline)
	if err != nil {
		return b.fail(state, idx, fmt.Errorf("%w %q: %v", ErrBadPattern, rule.Pattern, err))
	}
	empty, err := re.MatchString("")
	if err != nil {
		return b.fail(state, idx, fmt.Errorf("%w %q: %v", ErrBadPattern, rule.Pattern, err))
	}

	b.compiled[ruleKey{state: state, index: idx}] = compiledRule{
		Rule:      rule,
		re:        re,
		state:     state,
		index:     idx,
		zeroWidth: empty,
	}
	return nil
}

func (b *builder) flatten(name string, stack []string) ([]compiledRule, error) {
	if flat, ok := b.flat[name]; ok {
		return flat, nil
	}
	if cycle, ok := includeCycle(stack, name); ok {
		return nil, b.fail(cycle[0], -1, fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(cycle, " -> ")))
	}
	stack = append(slices.Clone(stack), name)

	var out []compiledRule
	for idx, rule := range b.rules[name] {
		if target, ok := rule.IsInclude(); ok {
			included, err := b.flatten(target, stack)
			if err != nil {
				return nil, err
			}
			out = append(out, included...)
			continue
		}
		out = append(out, b.compiled[ruleKey{state: name, index: idx}])
	}
	b.flat[name] = out
	return out, nil
}

func includeCycle(stack []string, next string) ([]string, bool) {
	for idx, name := range stack {
		if name == next {
			cycle := append(append([]string(nil), stack[idx:]...), next)
			return cycle, true
		}
	}
	return nil, false
}

func (b *builder) validate(name string) error {
	flat := b.flat[name]
	if len(flat) == 0 {
		return b.fail(name, -1, ErrEmptyState)
	}
	for idx, rule := range flat[:len(flat)-1] {
		if rule.zeroWidth {
			return b.fail(name, idx+1, fmt.Errorf("%w: %s", ErrUnreachableRule, flat[idx+1].Rule))
		}
	}
	return nil
}

// Name returns the lexer name from Config.
func (d *Definition) Name() string {
	return d.name
}

// Start returns the initial stack, bottom first.
func (d *Definition) Start() []string {
	return slices.Clone(d.start)
}

// States returns the state names in sorted order.
func (d *Definition) States() []string {
	out := make([]string, 0, len(d.states))
	for name := range d.states {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasState reports whether name is a defined state.
func (d *Definition) HasState(name string) bool {
	_, ok := d.states[name]
	return ok
}

// RuleRef describes one rule of a flattened state.
type RuleRef struct {
	// Position in the flattened list.
	Position int
	// State and Index locate the rule where it was declared.
	State      string
	Index      int
	Pattern    string
	Category   Category
	Transition Transition
	HasAction  bool
}

// Rules returns the flattened rule list of state.
func (d *Definition) Rules(state string) ([]RuleRef, error) {
	flat, ok := d.states[state]
	if !ok {
		return nil, fmt.Errorf("lexer %s: %w %q", d.name, ErrUnknownState, state)
	}
	out := make([]RuleRef, len(flat))
	for idx, rule := range flat {
		out[idx] = rule.ref(idx)
	}
	return out, nil
}

// MatchingRules returns every rule of state whose pattern matches all of
// text, in the order the scanner would try them.
func (d *Definition) MatchingRules(state, text string) ([]RuleRef, error) {
	flat, ok := d.states[state]
	if !ok {
		return nil, fmt.Errorf("lexer %s: %w %q", d.name, ErrUnknownState, state)
	}
	runes := []rune(text)
	var out []RuleRef
	for idx, rule := range flat {
		m, err := rule.re.FindRunesMatchStartingAt(runes, 0)
		if err != nil || m == nil || m.Length != len(runes) {
			continue
		}
		out = append(out, rule.ref(idx))
	}
	return out, nil
}

func (r compiledRule) ref(position int) RuleRef {
	return RuleRef{
		Position:   position,
		State:      r.state,
		Index:      r.index,
		Pattern:    r.Pattern,
		Category:   r.Category,
		Transition: r.Transition,
		HasAction:  r.Action != nil,
	}
}
