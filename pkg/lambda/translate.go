package lambda

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/vic/lamnbe/pkg/nbe"
)

// Compile converts a parsed term into an open term for the nbe engine.
// Nothing is evaluated until the result is given an environment.
func Compile(term Term) nbe.Open {
	switch t := term.(type) {
	case Var:
		return nbe.Variable(t.Name)
	case Abs:
		return nbe.Lambda(t.Arg, Compile(t.Body))
	case App:
		return nbe.Application(Compile(t.Fun), Compile(t.Arg))
	default:
		return func(*nbe.Machine, *nbe.Env) (nbe.Term, error) {
			return nil, fmt.Errorf("cannot compile %T", term)
		}
	}
}

// ParseOpen parses input straight into an open term.
func ParseOpen(input string) (nbe.Open, error) {
	term, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Compile(term), nil
}

// FreeVars lists the names term uses without binding them, in order of
// first occurrence.
func FreeVars(term Term) []string {
	var names []string
	var walk func(Term, map[string]int)
	walk = func(t Term, bound map[string]int) {
		switch v := t.(type) {
		case Var:
			if bound[v.Name] == 0 {
				names = append(names, v.Name)
			}
		case Abs:
			bound[v.Arg]++
			walk(v.Body, bound)
			bound[v.Arg]--
		case App:
			walk(v.Fun, bound)
			walk(v.Arg, bound)
		}
	}
	walk(term, make(map[string]int))
	return lo.Uniq(names)
}

type renaming struct {
	from, to string
	parent   *renaming
}

func (r *renaming) lookup(name string) (string, bool) {
	for s := r; s != nil; s = s.parent {
		if s.from == name {
			return s.to, true
		}
	}
	return "", false
}

// AlphaCanonical renames every bound variable the way the engine names
// binders when it prints: x at the outermost abstraction, one x longer
// per nesting level, skipping names that occur free. Alpha-equivalent
// terms have equal canonical forms, and a normal form printed by the
// engine is its own canonical form.
func AlphaCanonical(term Term) Term {
	free := lo.SliceToMap(FreeVars(term), func(n string) (string, bool) {
		return n, true
	})
	var walk func(Term, *renaming, nbe.Fresh) Term
	walk = func(t Term, r *renaming, fresh nbe.Fresh) Term {
		switch v := t.(type) {
		case Var:
			if to, ok := r.lookup(v.Name); ok {
				return Var{Name: to}
			}
			return v
		case Abs:
			for free[string(fresh)] {
				fresh = fresh.Next()
			}
			name := string(fresh)
			body := walk(v.Body, &renaming{from: v.Arg, to: name, parent: r}, fresh.Next())
			return Abs{Arg: name, Body: body}
		case App:
			return App{Fun: walk(v.Fun, r, fresh), Arg: walk(v.Arg, r, fresh)}
		default:
			return t
		}
	}
	return walk(term, nil, nbe.FirstFresh)
}
