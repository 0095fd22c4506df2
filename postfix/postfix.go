// Package postfix rewrites infix regular expressions into postfix form with the shunting-yard
// algorithm.
//
// Expressions are made of single-rune literals, parentheses and three operators:
//
//	*	Kleene closure (unary, postfix)
//	.	concatenation, which is always explicit
//	|	alternation
//
// For example "(a|b)*.a.b.b" becomes "ab|*a.b.b.".
package postfix

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Kleene        = '*'
	Concatenation = '.'
	Alternative   = '|'

	leftParenthesis  = '('
	rightParenthesis = ')'
)

var ErrMismatchedParenthesis = errors.New("mismatched parenthesis")

// Operator describes how an operator binds.
type Operator struct {
	Precedence      int
	LeftAssociative bool
}

var operators = map[rune]Operator{
	Kleene:        {Precedence: 500, LeftAssociative: true},
	Concatenation: {Precedence: 400, LeftAssociative: true},
	Alternative:   {Precedence: 300, LeftAssociative: true},
}

// Lookup Returns the operator r stands for, false if r is not an operator.
func Lookup(r rune) (Operator, bool) {
	op, ok := operators[r]
	return op, ok
}

func IsOperator(r rune) bool {
	_, ok := operators[r]
	return ok
}

// Convert Returns infix rewritten in postfix form. Any rune that is neither an operator nor a
// parenthesis is copied to the output as a literal.
func Convert(infix string) (string, error) {
	var (
		output strings.Builder
		stack  []rune
	)

	pop := func() rune {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, token := range infix {
		switch {
		case token == leftParenthesis:
			stack = append(stack, token)
		case token == rightParenthesis:
			for len(stack) > 0 && stack[len(stack)-1] != leftParenthesis {
				output.WriteRune(pop())
			}
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: unmatched ')'", ErrMismatchedParenthesis)
			}
			pop()
		case IsOperator(token):
			op := operators[token]
			for len(stack) > 0 && stack[len(stack)-1] != leftParenthesis {
				top := operators[stack[len(stack)-1]]
				if top.Precedence > op.Precedence || (top.Precedence == op.Precedence && top.LeftAssociative) {
					output.WriteRune(pop())
					continue
				}
				break
			}
			stack = append(stack, token)
		default:
			output.WriteRune(token)
		}
	}

	if unclosed := strings.Count(string(stack), string(leftParenthesis)); unclosed > 0 {
		return "", fmt.Errorf("%w: %d unclosed '('", ErrMismatchedParenthesis, unclosed)
	}
	for len(stack) > 0 {
		output.WriteRune(pop())
	}
	return output.String(), nil
}
