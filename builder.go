package redfa

import (
	"fmt"
	"slices"
)

type labelTransition[L comparable] struct {
	from L
	sym  Symbol
	to   L
}

// Builder records transitions between caller-chosen labels and turns them into an NFA with
// dense states. Labels can be any comparable value; Thompson's construction labels states by
// operand, the powerset construction by SetKey, Hopcroft by group id.
type Builder[L comparable] struct {
	transitions []labelTransition[L]
	seen        map[labelTransition[L]]struct{}

	initial    L
	initialSet bool

	final     []L
	finalSeen map[L]struct{}
}

func NewBuilder[L comparable]() *Builder[L] {
	return &Builder[L]{
		seen:      make(map[labelTransition[L]]struct{}),
		finalSeen: make(map[L]struct{}),
	}
}

// SetInitialStateLabel Set the label of the initial state. Must be called before Build.
func (b *Builder[L]) SetInitialStateLabel(label L) {
	b.initial = label
	b.initialSet = true
}

func (b *Builder[L]) AddFinalStateLabel(label L) {
	if _, ok := b.finalSeen[label]; ok {
		return
	}
	b.finalSeen[label] = struct{}{}
	b.final = append(b.final, label)
}

// AddTransition records from --sym--> to. Recording the same triple twice is a no-op.
func (b *Builder[L]) AddTransition(from L, sym Symbol, to L) {
	t := labelTransition[L]{from: from, sym: sym, to: to}
	if _, ok := b.seen[t]; ok {
		return
	}
	b.seen[t] = struct{}{}
	b.transitions = append(b.transitions, t)
}

// Build assigns states and emits the NFA. The initial label gets state 0, then each new label
// gets the next state in the order transitions were recorded, source before destination.
//
// A final label that is neither the initial label nor used by any transition has no state and
// is left out of the final states.
func (b *Builder[L]) Build() (*NFA, error) {
	if !b.initialSet {
		return nil, ErrMissingInitialState
	}

	table := NewTransitionTable()
	for _, sym := range b.alphabet() {
		if err := table.AddSymbol(sym); err != nil {
			return nil, err
		}
	}

	mapping := b.mapping(table)
	for _, t := range b.transitions {
		if err := table.AddTransition(mapping[t.from], t.sym, mapping[t.to]); err != nil {
			return nil, err
		}
	}

	final := NewStateSet()
	for _, label := range b.final {
		if s, ok := mapping[label]; ok {
			final.Add(s)
		}
	}

	return newNFA(table, mapping[b.initial], final), nil
}

func (b *Builder[L]) alphabet() []Symbol {
	alphabet := make([]Symbol, 0)
	seen := make(map[Symbol]struct{})
	for _, t := range b.transitions {
		if _, ok := seen[t.sym]; ok || t.sym == Epsilon {
			continue
		}
		seen[t.sym] = struct{}{}
		alphabet = append(alphabet, t.sym)
	}
	slices.Sort(alphabet)
	return alphabet
}

func (b *Builder[L]) mapping(table *TransitionTable) map[L]State {
	mapping := make(map[L]State)
	mapping[b.initial] = table.AddState()

	assign := func(label L) {
		if _, ok := mapping[label]; !ok {
			mapping[label] = table.AddState()
		}
	}
	for _, t := range b.transitions {
		assign(t.from)
		assign(t.to)
	}
	return mapping
}

type stateSymbol[L comparable] struct {
	from L
	sym  Symbol
}

// DFABuilder is a Builder that refuses transitions breaking determinism while they are
// recorded.
type DFABuilder[L comparable] struct {
	builder *Builder[L]
	targets map[stateSymbol[L]]L
}

func NewDFABuilder[L comparable]() *DFABuilder[L] {
	return &DFABuilder[L]{
		builder: NewBuilder[L](),
		targets: make(map[stateSymbol[L]]L),
	}
}

func (b *DFABuilder[L]) SetInitialStateLabel(label L) {
	b.builder.SetInitialStateLabel(label)
}

func (b *DFABuilder[L]) AddFinalStateLabel(label L) {
	b.builder.AddFinalStateLabel(label)
}

// AddTransition records from --sym--> to. Epsilon transitions fail with ErrInvalidSymbol, and a
// second target for the same (from, sym) fails with ErrNondeterministic.
func (b *DFABuilder[L]) AddTransition(from L, sym Symbol, to L) error {
	if sym == Epsilon {
		return fmt.Errorf("%w: epsilon can not label a DFA transition", ErrInvalidSymbol)
	}
	key := stateSymbol[L]{from: from, sym: sym}
	if target, ok := b.targets[key]; ok {
		if target != to {
			return fmt.Errorf("%w: %v on %q goes to both %v and %v", ErrNondeterministic, from, sym, target, to)
		}
		return nil
	}
	b.targets[key] = to
	b.builder.AddTransition(from, sym, to)
	return nil
}

func (b *DFABuilder[L]) Build() (*DFA, error) {
	n, err := b.builder.Build()
	if err != nil {
		return nil, err
	}
	return &DFA{nfa: n}, nil
}
