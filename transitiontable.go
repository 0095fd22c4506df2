package redfa

import (
	"fmt"
	"iter"
	"slices"
)

// Symbol is one alphabet unit. Automata built by this package use single-rune symbols.
type Symbol string

// Epsilon is the reserved symbol of transitions consumed without reading input. It is
// registered in every TransitionTable and never part of an Alphabet.
const Epsilon Symbol = "#"

// TransitionTable is a state x symbol matrix whose cells are sets of target states.
// Every row has one cell per registered symbol, including symbols registered after the row was
// added. Epsilon is always registered and always column 0, but it sorts with the other symbols
// wherever symbols are listed.
type TransitionTable struct {
	rows [][]*StateSet

	// Column of each registered symbol.
	columns map[Symbol]int

	// Registered symbols in ascending order, Epsilon included.
	symbols []Symbol
}

func NewTransitionTable() *TransitionTable {
	return &TransitionTable{
		columns: map[Symbol]int{Epsilon: 0},
		symbols: []Symbol{Epsilon},
	}
}

// AddState Create a new state; its row has an empty cell for every registered symbol.
func (t *TransitionTable) AddState() State {
	row := make([]*StateSet, len(t.columns))
	for i := range row {
		row[i] = NewStateSet()
	}
	t.rows = append(t.rows, row)
	return State(len(t.rows) - 1)
}

// AddSymbol registers sym, adding an empty column to every existing row. Registering a symbol
// twice is a no-op.
func (t *TransitionTable) AddSymbol(sym Symbol) error {
	if sym == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidSymbol)
	}
	if _, ok := t.columns[sym]; ok {
		return nil
	}

	t.columns[sym] = len(t.columns)
	pos, _ := slices.BinarySearch(t.symbols, sym)
	t.symbols = slices.Insert(t.symbols, pos, sym)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], NewStateSet())
	}
	return nil
}

// AddTransition Add to to the targets of (from, sym). Adding the same transition twice is a no-op.
func (t *TransitionTable) AddTransition(from State, sym Symbol, to State) error {
	cell, err := t.cell(from, sym)
	if err != nil {
		return err
	}
	if !t.IsValidState(to) {
		return fmt.Errorf("%w: %d", ErrInvalidState, to)
	}
	cell.Add(to)
	return nil
}

// Transition Returns a copy of the (possibly empty) targets of (from, sym).
func (t *TransitionTable) Transition(from State, sym Symbol) (*StateSet, error) {
	cell, err := t.cell(from, sym)
	if err != nil {
		return nil, err
	}
	return cell.Clone(), nil
}

func (t *TransitionTable) cell(from State, sym Symbol) (*StateSet, error) {
	if !t.IsValidState(from) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidState, from)
	}
	column, ok := t.columns[sym]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, sym)
	}
	return t.rows[from][column], nil
}

func (t *TransitionTable) IsValidState(state State) bool {
	return int(state) < len(t.rows)
}

func (t *TransitionTable) IsValidSymbol(sym Symbol) bool {
	_, ok := t.columns[sym]
	return ok
}

// NumStates How many states this table has.
func (t *TransitionTable) NumStates() int {
	return len(t.rows)
}

// Symbols Returns the registered symbols in ascending byte order, Epsilon included.
func (t *TransitionTable) Symbols() []Symbol {
	return slices.Clone(t.symbols)
}

// States yields 0..n-1.
func (t *TransitionTable) States() iter.Seq[State] {
	return func(yield func(State) bool) {
		for i := range t.rows {
			if !yield(State(i)) {
				return
			}
		}
	}
}

// Transitions Returns a sequence over the (symbol, targets) pairs of state, one pair per
// registered symbol, ordered as Symbols. Target sets are copies.
func (t *TransitionTable) Transitions(state State) (iter.Seq2[Symbol, *StateSet], error) {
	if !t.IsValidState(state) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidState, state)
	}
	row := t.rows[state]
	return func(yield func(Symbol, *StateSet) bool) {
		for _, sym := range t.symbols {
			if !yield(sym, row[t.columns[sym]].Clone()) {
				return
			}
		}
	}, nil
}

// Clone Returns a deep copy of the table.
func (t *TransitionTable) Clone() *TransitionTable {
	c := &TransitionTable{
		rows:    make([][]*StateSet, len(t.rows)),
		columns: make(map[Symbol]int, len(t.columns)),
		symbols: slices.Clone(t.symbols),
	}
	for sym, column := range t.columns {
		c.columns[sym] = column
	}
	for i, row := range t.rows {
		c.rows[i] = make([]*StateSet, len(row))
		for j, cell := range row {
			c.rows[i][j] = cell.Clone()
		}
	}
	return c
}
