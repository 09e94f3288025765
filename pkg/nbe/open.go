package nbe

// Open is a term that may mention variables bound outside it. It
// becomes a closed Term once it is given an environment.
type Open func(m *Machine, env *Env) (Term, error)

// Variable resolves name in the environment. Names declared free on the
// machine resolve to atoms printing themselves; anything else fails
// with *UnboundVariableError.
func Variable(name string) Open {
	return func(m *Machine, env *Env) (Term, error) {
		m.stats.Lookups++
		m.record(EventLookup, name)
		if t, ok := env.Lookup(name); ok {
			return t, nil
		}
		if m.IsFree(name) {
			return m.Placeholder(name), nil
		}
		return nil, &UnboundVariableError{Name: name, Scope: env.Names()}
	}
}

// Lambda abstracts name over body. No evaluation happens until the
// resulting closure is applied.
func Lambda(name string, body Open) Open {
	return func(m *Machine, env *Env) (Term, error) {
		return &Closure{m: m, param: name, body: body, env: env}, nil
	}
}

// Application evaluates fun and arg in the same environment and applies one to the other.
func Application(fun, arg Open) Open {
	return func(m *Machine, env *Env) (Term, error) {
		f, err := fun(m, env)
		if err != nil {
			return nil, err
		}
		a, err := arg(m, env)
		if err != nil {
			return nil, err
		}
		return f.Apply(a)
	}
}
