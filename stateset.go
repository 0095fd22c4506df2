package redfa

import (
	"iter"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// State is an automaton vertex. States are dense and numbered from 0 in creation order.
type State uint32

// SetKey is the frozen form of a StateSet: the ascending state ids joined by commas. Two sets
// hold the same states iff their keys are equal, so a SetKey can label a DFA state.
type SetKey string

// StateSet is an ordered set of states backed by a bitset. The zero value is an empty set.
type StateSet struct {
	bits bitset.BitSet
}

func NewStateSet(states ...State) *StateSet {
	s := &StateSet{}
	for _, state := range states {
		s.Add(state)
	}
	return s
}

// Add inserts state; adding a state twice is a no-op.
func (s *StateSet) Add(state State) {
	s.bits.Set(uint(state))
}

func (s *StateSet) Contains(state State) bool {
	return s.bits.Test(uint(state))
}

// Len How many states are in the set.
func (s *StateSet) Len() int {
	return int(s.bits.Count())
}

func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

// Min Returns the smallest state of the set, false if the set is empty.
func (s *StateSet) Min() (State, bool) {
	i, ok := s.bits.NextSet(0)
	return State(i), ok
}

// States Returns the states in ascending order.
func (s *StateSet) States() []State {
	states := make([]State, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		states = append(states, State(i))
	}
	return states
}

// All yields the states in ascending order.
func (s *StateSet) All() iter.Seq[State] {
	return func(yield func(State) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(State(i)) {
				return
			}
		}
	}
}

// Union adds every state of other to s.
func (s *StateSet) Union(other *StateSet) {
	s.bits.InPlaceUnion(&other.bits)
}

// Intersects Returns true if s and other share at least one state.
func (s *StateSet) Intersects(other *StateSet) bool {
	return s.bits.IntersectionCardinality(&other.bits) > 0
}

// Equal compares contents only; two sets that grew to different capacities are still equal.
func (s *StateSet) Equal(other *StateSet) bool {
	return s.bits.SymmetricDifferenceCardinality(&other.bits) == 0
}

func (s *StateSet) Clone() *StateSet {
	c := &StateSet{}
	s.bits.CopyFull(&c.bits)
	return c
}

// Key freezes the set into its canonical comparable form.
func (s *StateSet) Key() SetKey {
	return SetKey(s.join(","))
}

// String formats the set the way automaton tables print it, e.g. "{0, 1, 2}".
func (s *StateSet) String() string {
	return "{" + s.join(", ") + "}"
}

func (s *StateSet) join(sep string) string {
	b := new(strings.Builder)
	first := true
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return b.String()
}
