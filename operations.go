package redfa

import "fmt"

type powersetOption struct {
	workLimit int
}

type PowersetOption func(*powersetOption)

// WithWorkLimit Maximum number of DFA states the powerset construction may discover before failing
// with ErrTooComplex. Zero or a negative value means no limit.
func WithWorkLimit(limit int) PowersetOption {
	return func(o *powersetOption) {
		o.workLimit = limit
	}
}

// Powerset Determinizes the given NFA with the subset construction. Each DFA state stands for
// the set of NFA states the NFA may be in; the DFA is complete over the NFA's alphabet, the empty
// set acting as dead state when it is reachable.
// Worst case complexity: exponential in number of states.
func Powerset(n *NFA, options ...PowersetOption) (*DFA, error) {
	opts := &powersetOption{}
	for _, fn := range options {
		fn(opts)
	}

	alphabet := n.Alphabet()
	closure := NewEpsilonClosure(n)
	builder := NewDFABuilder[SetKey]()

	start, err := closure.Closure(n.InitialState())
	if err != nil {
		return nil, err
	}
	builder.SetInitialStateLabel(start.Key())

	discovered := make(map[SetKey]struct{})
	discovered[start.Key()] = struct{}{}
	order := []*StateSet{start}

	workList := make([]*StateSet, 0)
	workList = append(workList, start)
	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]

		for _, sym := range alphabet {
			moved, err := move(n, current, sym)
			if err != nil {
				return nil, err
			}
			next, err := closure.ClosureOf(moved)
			if err != nil {
				return nil, err
			}

			key := next.Key()
			if _, ok := discovered[key]; !ok {
				if opts.workLimit > 0 && len(discovered) >= opts.workLimit {
					return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, opts.workLimit)
				}
				discovered[key] = struct{}{}
				order = append(order, next)
				workList = append(workList, next)
			}
			if err := builder.AddTransition(current.Key(), sym, key); err != nil {
				return nil, err
			}
		}
	}

	for _, states := range order {
		if n.reachesFinal(states) {
			builder.AddFinalStateLabel(states.Key())
		}
	}

	return builder.Build()
}

// move Returns the union of the targets of every state in states on sym, without closure.
func move(n *NFA, states *StateSet, sym Symbol) (*StateSet, error) {
	targets := NewStateSet()
	for s := range states.All() {
		t, err := n.Move(s, sym)
		if err != nil {
			return nil, err
		}
		targets.Union(t)
	}
	return targets, nil
}
