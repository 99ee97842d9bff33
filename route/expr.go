package route

import (
	"regexp"
	"strconv"
	"strings"
)

var refRegexp = regexp.MustCompile(`\{(\w+)\}`)

// An Expr is an action expression compiled into literal text and references
// to the remainder of the path, positional capture groups, or named capture groups.
type Expr struct {
	raw   string
	parts []exprPart
}

type exprPart struct {
	lit   string
	index int
	name  string
}

// isRef reports whether the part refers to a match value instead of being literal text.
func (p exprPart) isRef() bool { return p.index >= 0 || p.name != "" }

// ParseExpr compiles raw into an Expr.
// Braces that do not enclose a reference are kept as literal text.
func ParseExpr(raw string) Expr {
	e := Expr{raw: raw}
	last := 0
	for _, loc := range refRegexp.FindAllStringSubmatchIndex(raw, -1) {
		if loc[0] > last {
			e.parts = append(e.parts, exprPart{lit: raw[last:loc[0]], index: -1})
		}

		ref := raw[loc[2]:loc[3]]
		if i, err := strconv.Atoi(ref); err == nil {
			e.parts = append(e.parts, exprPart{index: i})
		} else {
			e.parts = append(e.parts, exprPart{name: ref, index: -1})
		}

		last = loc[1]
	}

	if last < len(raw) {
		e.parts = append(e.parts, exprPart{lit: raw[last:], index: -1})
	}

	return e
}

// Eval expands e against the match and the remainder of the path following it.
// References to capture groups that do not exist expand to the empty string.
func (e Expr) Eval(m Match, remainder string) string {
	var b strings.Builder
	for _, p := range e.parts {
		switch {
		case !p.isRef():
			b.WriteString(p.lit)
		case p.name != "":
			b.WriteString(m.Named[p.name])
		case p.index == 0:
			b.WriteString(remainder)
		case p.index <= len(m.Groups):
			b.WriteString(m.Groups[p.index-1])
		}
	}

	return b.String()
}

// UsesRemainder reports whether e expands {0}.
func (e Expr) UsesRemainder() bool {
	for _, p := range e.parts {
		if p.index == 0 {
			return true
		}
	}

	return false
}

func (e Expr) String() string { return e.raw }
