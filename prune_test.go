package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordB plus an unreachable q3 that points back into the live part.
func recordC() Record {
	rec := recordB()
	rec.States = append(rec.States, "q3")
	rec.Transitions = append(rec.Transitions,
		TransitionRecord{Source: "q3", Label: "0", Dest: "q0"},
		TransitionRecord{Source: "q3", Label: "1", Dest: "q3"},
	)
	return rec
}

func TestPrune(t *testing.T) {
	t.Run("removesUnreachable", func(t *testing.T) {
		a := mustAutomaton(t, recordC())
		pruned := Prune(a)

		require.Equal(t, 3, pruned.NumStates())
		for s := 0; s < pruned.NumStates(); s++ {
			assert.NotEqual(t, "q3", pruned.StateName(s))
		}
		// The input stays intact.
		assert.Equal(t, 4, a.NumStates())
	})

	t.Run("preservesLanguage", func(t *testing.T) {
		a := mustAutomaton(t, recordC())
		equal, err := LanguageEqual(a, Prune(a))
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("allReachable", func(t *testing.T) {
		a := mustAutomaton(t, recordB())
		pruned := Prune(a)
		assert.Equal(t, a.NumStates(), pruned.NumStates())
	})

	t.Run("singleton", func(t *testing.T) {
		a := mustAutomaton(t, recordA())
		pruned := Prune(a)
		require.Equal(t, 1, pruned.NumStates())
		assert.Equal(t, 0, pruned.Start())
		assert.True(t, pruned.IsAccept(0))
	})
}
