package redfa

import (
	"bytes"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	t.Run("NFA", func(t *testing.T) {
		n, err := Concatenation(trivial(t, "a"), trivial(t, "b"))
		require.Nil(t, err)

		buf := new(bytes.Buffer)
		require.Nil(t, n.WriteTable(buf))
		out := buf.String()
		assert.Contains(t, out, "->0")
		assert.Contains(t, out, "3*")
		assert.Contains(t, out, "{2}")
		assert.True(t, strings.HasSuffix(out, "Initial State: 0\nFinal States: {3}\n"), out)
	})

	t.Run("DFA", func(t *testing.T) {
		d := abPlusDFA(t)
		out := d.String()
		assert.Contains(t, out, "->0")
		assert.Contains(t, out, "2*")
		assert.Contains(t, out, "Final States: {2}")
		assert.Equal(t, out, d.NFA().String())
	})

	t.Run("header keeps symbols verbatim", func(t *testing.T) {
		tests := []struct {
			postfix string
			want    []string
		}{
			{"ab.", []string{"state", "#", "a", "b"}},
			{"!a|", []string{"state", "!", "#", "a"}},
			{"aA|", []string{"state", "#", "A", "a"}},
		}
		for _, tt := range tests {
			n, err := Thompson(tt.postfix)
			require.Nil(t, err)
			assert.Equal(t, tt.want, headerCells(t, n.String()), tt.postfix)
		}
	})

	t.Run("one row per state", func(t *testing.T) {
		d := abPlusDFA(t)
		out := d.String()
		for _, label := range []string{"->0", "1", "2*", "3"} {
			assert.Contains(t, out, label)
		}
		assert.Equal(t, 1, strings.Count(out, "->"))
	})
}

// headerCells returns the cells of the first rendered line that holds the state column title.
func headerCells(t *testing.T, out string) []string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		cells := strings.FieldsFunc(line, func(r rune) bool {
			return r == '│' || r == '|' || unicode.IsSpace(r)
		})
		if len(cells) > 0 && cells[0] == "state" {
			return cells
		}
	}
	t.Fatalf("no header row in:\n%s", out)
	return nil
}
