package redfa

// operand says which automaton a Thompson label belongs to. States of both operands keep their
// own ids, so the labels stay disjoint without renumbering by hand.
type operand uint8

const (
	outer operand = iota
	left
	right
)

type thompsonLabel struct {
	operand operand
	state   State
}

var (
	outerStart = thompsonLabel{operand: outer, state: 0}
	outerFinal = thompsonLabel{operand: outer, state: 1}
)

// Trivial Returns a two state automaton accepting only sym; Trivial(Epsilon) accepts only the
// empty string.
func Trivial(sym Symbol) (*NFA, error) {
	b := NewBuilder[int]()
	b.AddTransition(0, sym, 1)
	b.SetInitialStateLabel(0)
	b.AddFinalStateLabel(1)
	return b.Build()
}

// Concatenation Returns an automaton accepting the strings of a followed by the strings of b.
func Concatenation(a, b *NFA) (*NFA, error) {
	aFinal, err := a.finalState()
	if err != nil {
		return nil, err
	}
	bFinal, err := b.finalState()
	if err != nil {
		return nil, err
	}

	builder := NewBuilder[thompsonLabel]()
	copyTransitions(builder, a, left)
	builder.AddTransition(
		thompsonLabel{operand: left, state: aFinal},
		Epsilon,
		thompsonLabel{operand: right, state: b.InitialState()})
	copyTransitions(builder, b, right)

	builder.SetInitialStateLabel(thompsonLabel{operand: left, state: a.InitialState()})
	builder.AddFinalStateLabel(thompsonLabel{operand: right, state: bFinal})
	return builder.Build()
}

// Alternative Returns an automaton accepting the strings of a and the strings of b.
func Alternative(a, b *NFA) (*NFA, error) {
	aFinal, err := a.finalState()
	if err != nil {
		return nil, err
	}
	bFinal, err := b.finalState()
	if err != nil {
		return nil, err
	}

	builder := NewBuilder[thompsonLabel]()
	builder.AddTransition(outerStart, Epsilon, thompsonLabel{operand: left, state: a.InitialState()})
	copyTransitions(builder, a, left)
	builder.AddTransition(thompsonLabel{operand: left, state: aFinal}, Epsilon, outerFinal)

	builder.AddTransition(outerStart, Epsilon, thompsonLabel{operand: right, state: b.InitialState()})
	copyTransitions(builder, b, right)
	builder.AddTransition(thompsonLabel{operand: right, state: bFinal}, Epsilon, outerFinal)

	builder.SetInitialStateLabel(outerStart)
	builder.AddFinalStateLabel(outerFinal)
	return builder.Build()
}

// Kleene Returns an automaton accepting any number of repetitions of the strings of a,
// including none.
func Kleene(a *NFA) (*NFA, error) {
	aFinal, err := a.finalState()
	if err != nil {
		return nil, err
	}
	start := thompsonLabel{operand: left, state: a.InitialState()}
	end := thompsonLabel{operand: left, state: aFinal}

	builder := NewBuilder[thompsonLabel]()
	copyTransitions(builder, a, left)

	builder.AddTransition(outerStart, Epsilon, start)
	builder.AddTransition(outerStart, Epsilon, outerFinal)
	builder.AddTransition(end, Epsilon, outerFinal)
	builder.AddTransition(end, Epsilon, start)

	builder.SetInitialStateLabel(outerStart)
	builder.AddFinalStateLabel(outerFinal)
	return builder.Build()
}

// copyTransitions records every transition of n with its states labelled under op.
func copyTransitions(b *Builder[thompsonLabel], n *NFA, op operand) {
	for s := range n.States() {
		from := thompsonLabel{operand: op, state: s}
		transitions, _ := n.Transitions(s)
		for sym, targets := range transitions {
			for to := range targets.All() {
				b.AddTransition(from, sym, thompsonLabel{operand: op, state: to})
			}
		}
	}
}
