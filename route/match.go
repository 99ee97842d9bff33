package route

// A Match is the result of a Rule matching a path.
type Match struct {
	// Prefix is the full text the pattern matched.
	Prefix string

	// Groups holds the capture groups of the pattern, in order.
	Groups []string

	// Named holds the named capture groups of the pattern.
	Named map[string]string
}

// Match reports whether r matches the start of path.
func (r Rule) Match(path string) (Match, bool) {
	if r.re == nil {
		return Match{}, false
	}

	sub := r.re.FindStringSubmatch(path)
	if sub == nil {
		return Match{}, false
	}

	m := Match{Prefix: sub[0], Groups: append([]string(nil), sub[1:]...)}
	for i, name := range r.re.SubexpNames() {
		if name == "" {
			continue
		}

		if m.Named == nil {
			m.Named = make(map[string]string)
		}
		m.Named[name] = sub[i]
	}

	return m, true
}

// Match returns the first Rule in t matching path.
func (t Table) Match(path string) (Rule, Match, bool) {
	for _, r := range t.rules {
		if m, ok := r.Match(path); ok {
			return r, m, true
		}
	}

	return Rule{}, Match{}, false
}
