package affine

// Params binds loop-nest parameters such as N in 0 <= i < N. A nil value
// declares a parameter whose value is not known yet; anything built from it
// stays symbolic.
type Params map[string]*int

// Bind returns a copy of p with name bound to v.
func (p Params) Bind(name string, v int) Params {
	out := p.Clone()
	out[name] = &v

	return out
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if v == nil {
			out[k] = nil
			continue
		}
		val := *v
		out[k] = &val
	}

	return out
}

// Env returns the bound parameters as an environment.
func (p Params) Env() Env {
	env := make(Env, len(p))
	for k, v := range p {
		if v != nil {
			env[k] = *v
		}
	}

	return env
}

// classify splits free identifiers into unresolved parameters and unknown
// names.
func (p Params) classify(names []string, bound map[string]bool) (unresolved, unknown []string) {
	for _, n := range names {
		if bound[n] {
			continue
		}

		v, declared := p[n]
		switch {
		case !declared:
			unknown = append(unknown, n)
		case v == nil:
			unresolved = append(unresolved, n)
		}
	}

	return unresolved, unknown
}
