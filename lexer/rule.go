package lexer

import "fmt"

// TransitionKind selects how a matched rule changes the state stack.
type TransitionKind uint8

const (
	// Stay leaves the stack untouched.
	Stay TransitionKind = iota
	// PushState enters a nested state.
	PushState
	// PopState returns to the state below the top.
	PopState
	// GotoState replaces the top state without growing the stack.
	GotoState
)

// Transition is the stack directive attached to a rule.
type Transition struct {
	Kind  TransitionKind
	State string
}

// Push returns a transition entering state.
func Push(state string) Transition {
	return Transition{Kind: PushState, State: state}
}

// Pop returns a transition leaving the current state.
func Pop() Transition {
	return Transition{Kind: PopState}
}

// Goto returns a transition replacing the current state with state.
func Goto(state string) Transition {
	return Transition{Kind: GotoState, State: state}
}

func (t Transition) String() string {
	switch t.Kind {
	case PushState:
		return "push(" + t.State + ")"
	case PopState:
		return "pop"
	case GotoState:
		return "goto(" + t.State + ")"
	default:
		return "none"
	}
}

// Match is the text consumed by a rule. Groups[0] is the whole match and
// the remaining entries are the pattern's capture groups; a group that did
// not participate is "".
type Match struct {
	Text   string
	Groups []string
}

// Piece is one sub-token produced by an Action.
type Piece struct {
	Category Category
	Value    string
}

// Action turns a match into tokens. The pieces must concatenate to exactly
// m.Text; empty pieces are dropped.
type Action func(m Match) []Piece

// Rule pairs a pattern with what to emit and where to go next. When Action
// is nil a single token of Category covering the whole match is emitted.
type Rule struct {
	Pattern    string
	Category   Category
	Action     Action
	Transition Transition

	include string
}

// Rules maps state names to their ordered rule lists.
type Rules map[string][]Rule

// Include splices the rules of state into the enclosing list at this
// position.
func Include(state string) Rule {
	return Rule{include: state}
}

// IsInclude reports whether r is an Include placeholder, returning the
// included state.
func (r Rule) IsInclude() (string, bool) {
	return r.include, r.include != ""
}

func (r Rule) String() string {
	if r.include != "" {
		return "include(" + r.include + ")"
	}
	return fmt.Sprintf("%q -> %s %s", r.Pattern, r.Category, r.Transition)
}

// ByGroups emits one token per capture group, in group order. The groups
// must cover the whole match.
func ByGroups(categories ...Category) Action {
	return func(m Match) []Piece {
		pieces := make([]Piece, 0, len(categories))
		for idx, category := range categories {
			if idx+1 >= len(m.Groups) {
				break
			}
			pieces = append(pieces, Piece{Category: category, Value: m.Groups[idx+1]})
		}
		return pieces
	}
}

// SplitTail emits the final n bytes of the match as tail and the rest as
// head.
func SplitTail(head Category, tail Category, n int) Action {
	return func(m Match) []Piece {
		cut := len(m.Text) - n
		if cut < 0 {
			cut = 0
		}
		return []Piece{
			{Category: head, Value: m.Text[:cut]},
			{Category: tail, Value: m.Text[cut:]},
		}
	}
}
