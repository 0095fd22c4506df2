package redfa

import (
	"fmt"
	"iter"
)

// DFA is an NFA used under a determinism contract: no epsilon transitions and, for every state
// and symbol, at most one target. DFAs come from DFABuilder, Powerset, Hopcroft or AsDFA, which
// all check the contract.
type DFA struct {
	nfa *NFA
}

// AsDFA Returns n as a DFA, or ErrNondeterministic if some (state, symbol) has more than one
// target or some state has an epsilon transition.
func AsDFA(n *NFA) (*DFA, error) {
	for s := range n.States() {
		row := n.table.rows[s]
		if !row[0].IsEmpty() {
			return nil, fmt.Errorf("%w: state %d has epsilon transitions", ErrNondeterministic, s)
		}
		for _, cell := range row[1:] {
			if cell.Len() > 1 {
				return nil, fmt.Errorf("%w: state %d goes to %s", ErrNondeterministic, s, cell)
			}
		}
	}
	return &DFA{nfa: n}, nil
}

// NFA Returns the underlying automaton.
func (d *DFA) NFA() *NFA {
	return d.nfa
}

func (d *DFA) InitialState() State {
	return d.nfa.InitialState()
}

func (d *DFA) FinalStates() *StateSet {
	return d.nfa.FinalStates()
}

func (d *DFA) IsFinal(state State) bool {
	return d.nfa.IsFinal(state)
}

func (d *DFA) NumStates() int {
	return d.nfa.NumStates()
}

func (d *DFA) States() iter.Seq[State] {
	return d.nfa.States()
}

// Alphabet Returns the symbols of the DFA, which never include Epsilon.
func (d *DFA) Alphabet() []Symbol {
	return d.nfa.Alphabet()
}

func (d *DFA) Transitions(state State) (iter.Seq2[Symbol, *StateSet], error) {
	return d.nfa.Transitions(state)
}

// Move Returns the single state reached from state on sym. It fails with ErrNoTransition when
// there is none, and with ErrNondeterministic when there is more than one.
func (d *DFA) Move(state State, sym Symbol) (State, error) {
	targets, err := d.nfa.table.cell(state, sym)
	if err != nil {
		return 0, err
	}
	switch targets.Len() {
	case 0:
		return 0, fmt.Errorf("%w: from %d with symbol %q", ErrNoTransition, state, sym)
	case 1:
		s, _ := targets.Min()
		return s, nil
	default:
		return 0, fmt.Errorf("%w: from %d with symbol %q to %s", ErrNondeterministic, state, sym, targets)
	}
}
