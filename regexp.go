package redfa

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/geange/redfa/postfix"
)

// Thompson builds an NFA from a postfix expression with Thompson's construction. '*' takes one
// operand, '.' and '|' take two (the left operand is the one pushed first); every other rune is
// a single-symbol operand, Epsilon included.
//
// An operator without enough operands, an empty expression or operands left without an operator
// fail with ErrMalformedExpression.
func Thompson(expr string) (*NFA, error) {
	stack := make([]*NFA, 0)
	pop := func() *NFA {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for pos, c := range []rune(expr) {
		var (
			n   *NFA
			err error
		)
		switch c {
		case postfix.Kleene:
			if len(stack) < 1 {
				return nil, fmt.Errorf("%w: %q at position %d has no operand", ErrMalformedExpression, c, pos)
			}
			n, err = Kleene(pop())
		case postfix.Concatenation, postfix.Alternative:
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: %q at position %d needs two operands, got %d",
					ErrMalformedExpression, c, pos, len(stack))
			}
			b := pop()
			a := pop()
			if c == postfix.Concatenation {
				n, err = Concatenation(a, b)
			} else {
				n, err = Alternative(a, b)
			}
		default:
			n, err = Trivial(Symbol(c))
		}
		if err != nil {
			return nil, err
		}
		stack = append(stack, n)
	}

	switch len(stack) {
	case 0:
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	case 1:
		return stack[0], nil
	default:
		return nil, fmt.Errorf("%w: %d operands left without an operator", ErrMalformedExpression, len(stack))
	}
}

// Compilation holds every stage of compiling one expression.
type Compilation struct {
	Expression string
	Postfix    string
	NFA        *NFA
	DFA        *DFA
	Minimal    *DFA

	runner *DFARunner
}

// Match Returns true if the minimal DFA accepts s.
func (c *Compilation) Match(s string) bool {
	return c.runner.Run(s)
}

type compileOption struct {
	logger               *slog.Logger
	determinizeWorkLimit int
}

type CompileOption func(*compileOption)

// WithLogger logs one debug record per stage.
func WithLogger(logger *slog.Logger) CompileOption {
	return func(o *compileOption) {
		o.logger = logger
	}
}

// WithDeterminizeWorkLimit bounds the number of DFA states the powerset construction may
// discover. Zero means no limit.
func WithDeterminizeWorkLimit(limit int) CompileOption {
	return func(o *compileOption) {
		o.determinizeWorkLimit = limit
	}
}

// Compile runs the whole pipeline on an infix expression: postfix rewriting, Thompson's
// construction, powerset construction and Hopcroft minimization.
func Compile(expr string, options ...CompileOption) (*Compilation, error) {
	opts := &compileOption{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range options {
		fn(opts)
	}
	logger := opts.logger.With("expression", expr)

	post, err := postfix.Convert(expr)
	if err != nil {
		return nil, err
	}
	logger.Debug("converted to postfix", "postfix", post)

	nfa, err := Thompson(post)
	if err != nil {
		return nil, err
	}
	logger.Debug("built NFA", "states", nfa.NumStates(), "alphabet", len(nfa.Alphabet()))

	dfa, err := Powerset(nfa, WithWorkLimit(opts.determinizeWorkLimit))
	if err != nil {
		return nil, err
	}
	logger.Debug("determinized", "states", dfa.NumStates())

	minimal, err := Hopcroft(dfa)
	if err != nil {
		return nil, err
	}
	logger.Debug("minimized", "states", minimal.NumStates())

	return &Compilation{
		Expression: expr,
		Postfix:    post,
		NFA:        nfa,
		DFA:        dfa,
		Minimal:    minimal,
		runner:     NewDFARunner(minimal),
	}, nil
}
