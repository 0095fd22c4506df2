package redfa

import (
	"errors"
	"maps"
	"slices"
)

// deadGroup is the target group of a missing transition.
const deadGroup = -1

// group is one class of a partition. Ids only mean something within the partition that holds
// the group.
type group struct {
	states *StateSet
	id     int
}

// partition holds groups in ascending id order.
type partition []group

// groupOf maps every state to the id of its group.
func (p partition) groupOf() map[State]int {
	ids := make(map[State]int)
	for _, g := range p {
		for s := range g.states.All() {
			ids[s] = g.id
		}
	}
	return ids
}

// equal compares the collections of state sets, ignoring ids.
func (p partition) equal(other partition) bool {
	if len(p) != len(other) {
		return false
	}
	keys := make(map[SetKey]struct{}, len(p))
	for _, g := range p {
		keys[g.states.Key()] = struct{}{}
	}
	for _, g := range other {
		if _, ok := keys[g.states.Key()]; !ok {
			return false
		}
	}
	return true
}

// Hopcroft Minimizes the given DFA by partition refinement. The result accepts the same language
// with the fewest states among complete DFAs when the input is complete and has no unreachable
// states, as the output of Powerset is. A missing transition is kept missing.
func Hopcroft(d *DFA) (*DFA, error) {
	alphabet := d.Alphabet()

	current := initialPartition(d)
	next, err := refinePartition(d, current, alphabet)
	if err != nil {
		return nil, err
	}
	for !next.equal(current) {
		current = next
		next, err = refinePartition(d, current, alphabet)
		if err != nil {
			return nil, err
		}
	}

	ids := current.groupOf()
	builder := NewDFABuilder[int]()
	for _, g := range current {
		representative, _ := g.states.Min()
		for _, sym := range alphabet {
			target, err := d.Move(representative, sym)
			if errors.Is(err, ErrNoTransition) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if err := builder.AddTransition(g.id, sym, ids[target]); err != nil {
				return nil, err
			}
		}
	}

	builder.SetInitialStateLabel(ids[d.InitialState()])
	final := d.nfa.final
	for _, g := range current {
		if g.states.Intersects(final) {
			builder.AddFinalStateLabel(g.id)
		}
	}

	return builder.Build()
}

// initialPartition splits the states into accepting (id 0) and non-accepting (id 1) groups.
// An empty group is left out.
func initialPartition(d *DFA) partition {
	accepting := NewStateSet()
	rejecting := NewStateSet()
	for s := range d.States() {
		if d.IsFinal(s) {
			accepting.Add(s)
		} else {
			rejecting.Add(s)
		}
	}

	p := make(partition, 0, 2)
	if !accepting.IsEmpty() {
		p = append(p, group{states: accepting, id: 0})
	}
	if !rejecting.IsEmpty() {
		p = append(p, group{states: rejecting, id: 1})
	}
	return p
}

// refinePartition runs one refinement round. Each group is split on the first symbol, in
// alphabet order, whose transitions lead its states into more than one group; the parts get
// fresh ids in ascending order of the group they lead to. Groups that do not split are copied
// under a fresh id.
func refinePartition(d *DFA, p partition, alphabet []Symbol) (partition, error) {
	ids := p.groupOf()
	counter := 0
	refined := make(partition, 0, len(p))

	for _, g := range p {
		split := false
		for _, sym := range alphabet {
			parts := make(map[int]*StateSet)
			for s := range g.states.All() {
				target := deadGroup
				next, err := d.Move(s, sym)
				switch {
				case err == nil:
					target = ids[next]
				case !errors.Is(err, ErrNoTransition):
					return nil, err
				}
				if parts[target] == nil {
					parts[target] = NewStateSet()
				}
				parts[target].Add(s)
			}

			if len(parts) > 1 {
				for _, target := range slices.Sorted(maps.Keys(parts)) {
					refined = append(refined, group{states: parts[target], id: counter})
					counter++
				}
				split = true
				break
			}
		}
		if !split {
			refined = append(refined, group{states: g.states, id: counter})
			counter++
		}
	}

	return refined, nil
}
