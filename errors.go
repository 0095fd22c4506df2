package redfa

import "errors"

var (
	// ErrInvalidState is returned when a state id is not part of a transition table.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidSymbol is returned for empty symbols, unregistered symbols and, when building a
	// DFA, for epsilon transitions.
	ErrInvalidSymbol = errors.New("invalid symbol")

	ErrMissingInitialState = errors.New("initial state label was not defined")

	// ErrUnknownState is returned by EpsilonClosure lookups for states outside its NFA.
	ErrUnknownState = errors.New("unknown state")

	ErrNoTransition = errors.New("no transition")

	// ErrNondeterministic is returned when a (state, symbol) pair of a DFA leads to more than
	// one state.
	ErrNondeterministic = errors.New("nondeterministic transition")

	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidOperand is returned by the Thompson combinators when an operand does not have
	// exactly one final state.
	ErrInvalidOperand = errors.New("operand must have exactly one final state")

	ErrTooComplex = errors.New("too complex to determinize")
)
