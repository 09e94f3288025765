package nbe

import "github.com/samber/lo"

// Env maps variable names to closed terms. It is an immutable stack:
// Bind returns a new environment and never touches the receiver.
// The nil *Env is the empty environment.
type Env struct {
	name   string
	term   Term
	parent *Env
}

// Bind extends e with name bound to t. The new binding shadows any
// earlier binding of the same name.
func (e *Env) Bind(name string, t Term) *Env {
	return &Env{name: name, term: t, parent: e}
}

// Lookup finds the innermost binding of name.
func (e *Env) Lookup(name string) (Term, bool) {
	for s := e; s != nil; s = s.parent {
		if s.name == name {
			return s.term, true
		}
	}
	return nil, false
}

// Names lists the visible names, innermost first.
func (e *Env) Names() []string {
	var names []string
	for s := e; s != nil; s = s.parent {
		names = append(names, s.name)
	}
	return lo.Uniq(names)
}
