package route

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	servicePrefix  = "service:"
	locationPrefix = "location:"
)

// An ActionKind is what a Rule does with a request path it matches.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionRewrite
	ActionDelegate
	ActionRedirect
)

func (k ActionKind) String() string {
	switch k {
	case ActionRewrite:
		return "rewrite"
	case ActionDelegate:
		return "delegate"
	case ActionRedirect:
		return "redirect"
	default:
		return "none"
	}
}

// An Action is the parsed form of a configured action value.
type Action struct {
	Kind ActionKind
	Expr Expr
}

// ParseAction splits the "service:" or "location:" prefix off raw.
// Values without either prefix rewrite the path.
func ParseAction(raw string) Action {
	switch {
	case strings.HasPrefix(raw, servicePrefix):
		return Action{Kind: ActionDelegate, Expr: ParseExpr(strings.TrimPrefix(raw, servicePrefix))}
	case strings.HasPrefix(raw, locationPrefix):
		return Action{Kind: ActionRedirect, Expr: ParseExpr(strings.TrimPrefix(raw, locationPrefix))}
	default:
		return Action{Kind: ActionRewrite, Expr: ParseExpr(raw)}
	}
}

// An Entry is a rule as it appears in configuration.
type Entry struct {
	Pattern string
	Action  string
}

// A Rule matches request paths by prefix and acts on them.
type Rule struct {
	Pattern string
	Action  Action
	re      *regexp.Regexp
}

// NewRule compiles the pattern, anchored at the start of a path, and parses the action.
func NewRule(pattern, action string) (Rule, error) {
	if pattern == "" {
		return Rule{}, fmt.Errorf("%w: empty pattern", ErrNotValid)
	}

	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return Rule{}, fmt.Errorf("%w: pattern %q: %s", ErrNotValid, pattern, err)
	}

	return Rule{Pattern: pattern, Action: ParseAction(action), re: re}, nil
}

// A Table is an ordered, read-only list of Rules.
type Table struct {
	rules []Rule
}

// NewTable compiles every Entry, keeping their order.
func NewTable(entries []Entry) (Table, error) {
	rules := make([]Rule, 0, len(entries))
	for _, e := range entries {
		r, err := NewRule(e.Pattern, e.Action)
		if err != nil {
			return Table{}, err
		}

		rules = append(rules, r)
	}

	return Table{rules: rules}, nil
}

// Len returns the number of Rules in t.
func (t Table) Len() int { return len(t.rules) }

// Rules returns a copy of the Rules in t.
func (t Table) Rules() []Rule { return append([]Rule(nil), t.rules...) }
