package redfa

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTable renders the transition table of n, one row per state and one column per
// registered symbol, followed by the initial and final states. In the state column the
// initial state is marked "->" and final states "*".
func (n *NFA) WriteTable(w io.Writer) error {
	symbols := n.Symbols()

	header := make([]string, 0, len(symbols)+1)
	header = append(header, "state")
	for _, sym := range symbols {
		header = append(header, string(sym))
	}

	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(header)
	for s := range n.States() {
		row := make([]string, 0, len(header))
		row = append(row, n.stateLabel(s))
		transitions, err := n.Transitions(s)
		if err != nil {
			return err
		}
		for _, targets := range transitions {
			row = append(row, targets.String())
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Initial State: %d\nFinal States: %s\n", n.initial, n.final)
	return err
}

func (n *NFA) stateLabel(s State) string {
	label := strconv.FormatUint(uint64(s), 10)
	if s == n.initial {
		label = "->" + label
	}
	if n.IsFinal(s) {
		label += "*"
	}
	return label
}

func (n *NFA) String() string {
	b := new(strings.Builder)
	if err := n.WriteTable(b); err != nil {
		return err.Error()
	}
	return b.String()
}

func (d *DFA) WriteTable(w io.Writer) error {
	return d.nfa.WriteTable(w)
}

func (d *DFA) String() string {
	return d.nfa.String()
}
