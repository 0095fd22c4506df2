package redfa

import "fmt"

// EpsilonClosure holds, for every state of one NFA, the states reachable from it through
// epsilon transitions only. A state always belongs to its own closure.
type EpsilonClosure struct {
	closures []*StateSet
}

func NewEpsilonClosure(n *NFA) *EpsilonClosure {
	closures := make([]*StateSet, n.NumStates())
	for s := range n.States() {
		closures[s] = closureFrom(n, s)
	}
	return &EpsilonClosure{closures: closures}
}

// closureFrom walks epsilon edges breadth first. The visited set makes epsilon cycles, such as
// the ones introduced by Kleene, terminate.
func closureFrom(n *NFA, initial State) *StateSet {
	closure := NewStateSet(initial)

	workList := make([]State, 0)
	workList = append(workList, initial)
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		targets := n.table.rows[state][0]
		for next := range targets.All() {
			if closure.Contains(next) {
				continue
			}
			closure.Add(next)
			workList = append(workList, next)
		}
	}
	return closure
}

// Closure Returns a copy of the closure of state.
func (c *EpsilonClosure) Closure(state State) (*StateSet, error) {
	if int(state) >= len(c.closures) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, state)
	}
	return c.closures[state].Clone(), nil
}

// ClosureOf Returns the union of the closures of every state in states.
func (c *EpsilonClosure) ClosureOf(states *StateSet) (*StateSet, error) {
	result := NewStateSet()
	for s := range states.All() {
		if int(s) >= len(c.closures) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownState, s)
		}
		result.Union(c.closures[s])
	}
	return result, nil
}
