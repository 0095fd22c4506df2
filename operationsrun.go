package redfa

// NFARunner tests strings against an NFA directly, tracking the set of states the automaton
// may be in.
type NFARunner struct {
	nfa     *NFA
	closure *EpsilonClosure
}

func NewNFARunner(n *NFA) *NFARunner {
	return &NFARunner{
		nfa:     n,
		closure: NewEpsilonClosure(n),
	}
}

// Run Returns true if the NFA accepts input. Each rune is one symbol; a rune that is not a
// symbol of the automaton rejects the input.
func (r *NFARunner) Run(input string) bool {
	current, _ := r.closure.Closure(r.nfa.InitialState())

	for _, c := range input {
		sym := Symbol(c)
		if sym == Epsilon {
			return false
		}
		next := NewStateSet()
		for state := range current.All() {
			targets, err := r.nfa.Move(state, sym)
			if err != nil {
				return false
			}
			reached, err := r.closure.ClosureOf(targets)
			if err != nil {
				return false
			}
			next.Union(reached)
		}
		current = next
	}

	return r.nfa.reachesFinal(current)
}

// DFARunner tests strings against a DFA by following one transition per symbol.
type DFARunner struct {
	dfa *DFA
}

func NewDFARunner(d *DFA) *DFARunner {
	return &DFARunner{dfa: d}
}

// Run Returns true if the DFA accepts input. A symbol with no transition from the current
// state rejects the input.
func (r *DFARunner) Run(input string) bool {
	state := r.dfa.InitialState()
	for _, c := range input {
		next, err := r.dfa.Move(state, Symbol(c))
		if err != nil {
			return false
		}
		state = next
	}
	return r.dfa.IsFinal(state)
}
