package redfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLanguage(t *testing.T, n *NFA, accepted, rejected []string) {
	t.Helper()
	runner := NewNFARunner(n)
	for _, input := range accepted {
		assert.Truef(t, runner.Run(input), "Run(%q)", input)
	}
	for _, input := range rejected {
		assert.Falsef(t, runner.Run(input), "Run(%q)", input)
	}
}

func trivial(t *testing.T, sym Symbol) *NFA {
	t.Helper()
	n, err := Trivial(sym)
	require.Nil(t, err)
	return n
}

func TestTrivial(t *testing.T) {
	t.Run("symbol", func(t *testing.T) {
		n := trivial(t, "a")
		assert.Equal(t, 2, n.NumStates())
		assert.Equal(t, State(0), n.InitialState())
		assert.Equal(t, []State{1}, n.FinalStates().States())

		targets, err := n.Move(0, "a")
		assert.Nil(t, err)
		assert.Equal(t, []State{1}, targets.States())
		assertLanguage(t, n, []string{"a"}, []string{"", "aa", "b"})
	})

	t.Run("epsilon", func(t *testing.T) {
		n := trivial(t, Epsilon)
		assert.Empty(t, n.Alphabet())
		assertLanguage(t, n, []string{""}, []string{"a", "#"})
	})
}

func TestConcatenation(t *testing.T) {
	n, err := Concatenation(trivial(t, "a"), trivial(t, "b"))
	require.Nil(t, err)
	assert.Equal(t, 4, n.NumStates())
	assert.Equal(t, []Symbol{"a", "b"}, n.Alphabet())

	targets, err := n.Move(1, Epsilon)
	assert.Nil(t, err)
	assert.Equal(t, []State{2}, targets.States())
	assert.Equal(t, []State{3}, n.FinalStates().States())

	assertLanguage(t, n, []string{"ab"}, []string{"", "a", "b", "aa", "aba", "ba"})
}

func TestAlternative(t *testing.T) {
	n, err := Alternative(trivial(t, "a"), trivial(t, "b"))
	require.Nil(t, err)
	assert.Equal(t, 6, n.NumStates())
	assert.Equal(t, State(0), n.InitialState())

	targets, err := n.Move(0, Epsilon)
	assert.Nil(t, err)
	assert.Equal(t, []State{1, 4}, targets.States())
	assert.Equal(t, []State{3}, n.FinalStates().States())

	assertLanguage(t, n, []string{"a", "b"}, []string{"", "ab", "ba", "c"})
}

func TestKleene(t *testing.T) {
	n, err := Kleene(trivial(t, "a"))
	require.Nil(t, err)
	assert.Equal(t, 4, n.NumStates())

	targets, err := n.Move(0, Epsilon)
	assert.Nil(t, err)
	assert.Equal(t, []State{1, 3}, targets.States())
	targets, err = n.Move(2, Epsilon)
	assert.Nil(t, err)
	assert.Equal(t, []State{1, 3}, targets.States())

	assertLanguage(t, n, []string{"", "a", "aa", "aaaa"}, []string{"ab", "aab", "b"})

	t.Run("nested", func(t *testing.T) {
		inner, err := Concatenation(trivial(t, "a"), trivial(t, "b"))
		require.Nil(t, err)
		star, err := Kleene(inner)
		require.Nil(t, err)
		twice, err := Kleene(star)
		require.Nil(t, err)
		assertLanguage(t, twice, []string{"", "ab", "abab"}, []string{"a", "aba", "ba"})
	})
}

func TestInvalidOperand(t *testing.T) {
	b := NewBuilder[int]()
	b.AddTransition(0, "a", 1)
	b.AddTransition(0, "b", 2)
	b.SetInitialStateLabel(0)
	b.AddFinalStateLabel(1)
	b.AddFinalStateLabel(2)
	twoFinals, err := b.Build()
	require.Nil(t, err)

	_, err = Kleene(twoFinals)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	_, err = Concatenation(trivial(t, "a"), twoFinals)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	_, err = Alternative(twoFinals, trivial(t, "a"))
	assert.ErrorIs(t, err, ErrInvalidOperand)
}
