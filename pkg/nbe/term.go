package nbe

import "strings"

// Term is a closed lambda term, reduced as far as its representation
// allows. There are exactly two kinds: *Atom and *Closure.
type Term interface {
	// Apply returns this term applied to arg. Applying a *Closure is a
	// beta-reduction; applying an *Atom only builds a bigger atom.
	Apply(arg Term) (Term, error)

	// Display renders the term, naming the first binder it prints
	// fresh and every nested binder with a strictly longer name.
	Display(fresh Fresh) (string, error)

	render(b *strings.Builder, fresh Fresh) error
}

// Atom is an irreducible term: a free variable, a placeholder for a
// binder under display, or an application with an irreducible head.
type Atom struct {
	m    *Machine
	show func(b *strings.Builder, fresh Fresh) error
}

// Closure is an abstraction together with the environment it was built in.
type Closure struct {
	m     *Machine
	param string
	body  Open
	env   *Env
}

// NewAtom wraps a display function into an irreducible term.
func (m *Machine) NewAtom(show func(Fresh) (string, error)) *Atom {
	return &Atom{m: m, show: func(b *strings.Builder, fresh Fresh) error {
		s, err := show(fresh)
		if err != nil {
			return err
		}
		b.WriteString(s)
		return nil
	}}
}

// Placeholder returns an atom that always prints name.
func (m *Machine) Placeholder(name string) *Atom {
	return &Atom{m: m, show: func(b *strings.Builder, _ Fresh) error {
		b.WriteString(name)
		return nil
	}}
}

func display(t Term, fresh Fresh) (string, error) {
	var b strings.Builder
	if err := t.render(&b, fresh); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (a *Atom) Apply(arg Term) (Term, error) {
	if err := a.m.enter(); err != nil {
		return nil, err
	}
	defer a.m.leave()

	a.m.stats.Stuck++
	a.m.record(EventStuck, "")
	return &Atom{m: a.m, show: func(b *strings.Builder, fresh Fresh) error {
		b.WriteByte('(')
		if err := a.render(b, fresh); err != nil {
			return err
		}
		b.WriteByte(' ')
		if err := arg.render(b, fresh); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil
	}}, nil
}

func (a *Atom) Display(fresh Fresh) (string, error) {
	return display(a, fresh)
}

func (a *Atom) render(b *strings.Builder, fresh Fresh) error {
	if err := a.m.enter(); err != nil {
		return err
	}
	defer a.m.leave()
	return a.show(b, fresh)
}

func (c *Closure) Apply(arg Term) (Term, error) {
	if err := c.m.enter(); err != nil {
		return nil, err
	}
	defer c.m.leave()

	c.m.stats.Beta++
	c.m.record(EventBeta, c.param)
	return c.body(c.m, c.env.Bind(c.param, arg))
}

// Display normalizes under the binder by applying the closure to a
// placeholder printed as the fresh name, then displays the result with
// the next fresh name.
func (c *Closure) Display(fresh Fresh) (string, error) {
	return display(c, fresh)
}

func (c *Closure) render(b *strings.Builder, fresh Fresh) error {
	if err := c.m.enter(); err != nil {
		return err
	}
	defer c.m.leave()

	name := c.m.avoidFree(fresh)
	c.m.stats.Binders++
	c.m.record(EventBinder, string(name))

	body, err := c.Apply(c.m.Placeholder(string(name)))
	if err != nil {
		return err
	}
	b.WriteString("(λ ")
	b.WriteString(string(name))
	b.WriteString(". ")
	if err := body.render(b, name.Next()); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}
