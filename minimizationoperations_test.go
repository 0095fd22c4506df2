package redfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDFA(t *testing.T, transitions [][3]string, initial string, final ...string) *DFA {
	t.Helper()
	b := NewDFABuilder[string]()
	for _, tr := range transitions {
		require.Nil(t, b.AddTransition(tr[0], Symbol(tr[1]), tr[2]))
	}
	b.SetInitialStateLabel(initial)
	for _, label := range final {
		b.AddFinalStateLabel(label)
	}
	d, err := b.Build()
	require.Nil(t, err)
	return d
}

func assertEquivalent(t *testing.T, want, got *DFA, maxLen int) {
	t.Helper()
	wantRunner := NewDFARunner(want)
	gotRunner := NewDFARunner(got)
	for _, input := range stringsUpTo(want.Alphabet(), maxLen) {
		assert.Equalf(t, wantRunner.Run(input), gotRunner.Run(input), "Run(%q)", input)
	}
}

func TestHopcroft(t *testing.T) {
	t.Run("minimal DFA as input", func(t *testing.T) {
		d := buildDFA(t, [][3]string{
			{"0", "a", "1"}, {"0", "b", "0"},
			{"1", "b", "2"}, {"1", "a", "1"},
			{"2", "a", "1"}, {"2", "b", "3"},
			{"3", "a", "1"}, {"3", "b", "0"},
		}, "0", "3")

		m, err := Hopcroft(d)
		require.Nil(t, err)
		assert.Equal(t, 4, m.NumStates())

		runner := NewDFARunner(m)
		for _, input := range []string{"abb", "abbabb", "ababb", "babb", "ababbabb"} {
			assert.Truef(t, runner.Run(input), "Run(%q)", input)
		}
		for _, input := range []string{"ab", "bab", "b", "a", "abbaaba"} {
			assert.Falsef(t, runner.Run(input), "Run(%q)", input)
		}
		assertEquivalent(t, d, m, 8)
	})

	t.Run("starting with b", func(t *testing.T) {
		d := buildDFA(t, [][3]string{
			{"0", "a", "1"}, {"0", "b", "2"},
			{"1", "b", "1"}, {"1", "a", "1"},
			{"2", "a", "2"}, {"2", "b", "2"},
		}, "0", "2")

		m, err := Hopcroft(d)
		require.Nil(t, err)
		assert.Equal(t, 3, m.NumStates())
		assertEquivalent(t, d, m, 6)
	})

	t.Run("merges equivalent states", func(t *testing.T) {
		d, err := Powerset(abbNFA(t))
		require.Nil(t, err)
		require.Equal(t, 5, d.NumStates())

		m, err := Hopcroft(d)
		require.Nil(t, err)
		assert.Equal(t, 4, m.NumStates())
		assert.Equal(t, 1, m.FinalStates().Len())
		assertEquivalent(t, d, m, 8)
	})

	t.Run("idempotent", func(t *testing.T) {
		c, err := Compile("(a.a|b)*.(a|b.b)*")
		require.Nil(t, err)

		again, err := Hopcroft(c.Minimal)
		require.Nil(t, err)
		assert.Equal(t, c.Minimal.NumStates(), again.NumStates())
		assert.LessOrEqual(t, c.Minimal.NumStates(), c.DFA.NumStates())
		assertEquivalent(t, c.DFA, again, 7)
	})

	t.Run("all states accepting", func(t *testing.T) {
		d := buildDFA(t, [][3]string{
			{"p", "a", "q"}, {"q", "a", "p"},
		}, "p", "p", "q")

		m, err := Hopcroft(d)
		require.Nil(t, err)
		assert.Equal(t, 1, m.NumStates())
		assert.True(t, m.IsFinal(m.InitialState()))
	})

	t.Run("no accepting states", func(t *testing.T) {
		d := buildDFA(t, [][3]string{
			{"p", "a", "q"}, {"p", "b", "p"},
			{"q", "a", "p"}, {"q", "b", "q"},
		}, "p")

		m, err := Hopcroft(d)
		require.Nil(t, err)
		assert.Equal(t, 1, m.NumStates())
		assert.True(t, m.FinalStates().IsEmpty())
	})

	t.Run("partial DFA keeps missing transitions", func(t *testing.T) {
		d := buildDFA(t, [][3]string{
			{"0", "a", "1"}, {"1", "b", "2"}, {"2", "a", "1"},
		}, "0", "2")

		m, err := Hopcroft(d)
		require.Nil(t, err)
		assert.Equal(t, 3, m.NumStates())
		assertEquivalent(t, d, m, 6)

		_, err = m.Move(m.InitialState(), "b")
		assert.ErrorIs(t, err, ErrNoTransition)
	})
}
