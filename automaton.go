package redfa

import (
	"fmt"
	"iter"
	"slices"
)

// NFA Represents a nondeterministic finite automaton: an initial state, a set of final states and a
// transition table which may contain epsilon transitions and several targets per (state, symbol).
// An NFA is immutable once created; every accessor returns copies, so values can be shared freely.
type NFA struct {
	initial State
	final   *StateSet
	table   *TransitionTable
}

// NewNFA Creates an NFA from a copy of table. The initial state and every final state must be
// states of the table.
func NewNFA(table *TransitionTable, initial State, final *StateSet) (*NFA, error) {
	if !table.IsValidState(initial) {
		return nil, fmt.Errorf("%w: initial state %d", ErrInvalidState, initial)
	}
	if final == nil {
		final = NewStateSet()
	}
	for s := range final.All() {
		if !table.IsValidState(s) {
			return nil, fmt.Errorf("%w: final state %d", ErrInvalidState, s)
		}
	}
	return newNFA(table.Clone(), initial, final.Clone()), nil
}

// newNFA takes ownership of table and final without validating them.
func newNFA(table *TransitionTable, initial State, final *StateSet) *NFA {
	return &NFA{
		initial: initial,
		final:   final,
		table:   table,
	}
}

func (n *NFA) InitialState() State {
	return n.initial
}

// FinalStates Returns a copy of the final states.
func (n *NFA) FinalStates() *StateSet {
	return n.final.Clone()
}

// IsFinal Returns true if this state is a final state.
func (n *NFA) IsFinal(state State) bool {
	return n.final.Contains(state)
}

// reachesFinal Returns true if states contains at least one final state.
func (n *NFA) reachesFinal(states *StateSet) bool {
	return states.Intersects(n.final)
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return n.table.NumStates()
}

func (n *NFA) States() iter.Seq[State] {
	return n.table.States()
}

// Symbols Returns every registered symbol in ascending order, Epsilon included.
func (n *NFA) Symbols() []Symbol {
	return n.table.Symbols()
}

// Alphabet Returns the registered symbols without Epsilon, in ascending order.
func (n *NFA) Alphabet() []Symbol {
	return slices.DeleteFunc(n.table.Symbols(), func(sym Symbol) bool {
		return sym == Epsilon
	})
}

// Move Returns the states reached from state by one transition labelled sym.
func (n *NFA) Move(state State, sym Symbol) (*StateSet, error) {
	return n.table.Transition(state, sym)
}

// Transitions Returns the (symbol, targets) pairs leaving state, ordered as Symbols.
func (n *NFA) Transitions(state State) (iter.Seq2[Symbol, *StateSet], error) {
	return n.table.Transitions(state)
}

// finalState Returns the single final state of a Thompson operand.
func (n *NFA) finalState() (State, error) {
	if n.final.Len() != 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidOperand, n.final.Len())
	}
	s, _ := n.final.Min()
	return s, nil
}
