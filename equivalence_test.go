package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageEqual(t *testing.T) {
	t.Run("identicalAutomata", func(t *testing.T) {
		a := mustAutomaton(t, recordB())
		b := mustAutomaton(t, recordB())
		equal, err := LanguageEqual(a, b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("differentShapeSameLanguage", func(t *testing.T) {
		redundant := mustAutomaton(t, recordEndsInZero())
		minimized, err := Minimize(redundant)
		require.NoError(t, err)

		equal, err := LanguageEqual(redundant, minimized)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("reorderedAlphabet", func(t *testing.T) {
		rec := recordEndsInZero()
		rec.Symbols = []string{"1", "0"}
		reordered := mustAutomaton(t, rec)

		equal, err := LanguageEqual(mustAutomaton(t, recordEndsInZero()), reordered)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("differentLanguages", func(t *testing.T) {
		endsInZero := mustAutomaton(t, recordEndsInZero())

		// Same shape, finality flipped: accepts strings ending in "1".
		rec := recordEndsInZero()
		rec.Finals = []string{"q1"}
		endsInOne := mustAutomaton(t, rec)

		equal, err := LanguageEqual(endsInZero, endsInOne)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("emptyStringDisagreement", func(t *testing.T) {
		a := mustAutomaton(t, recordA())
		b := mustAutomaton(t, recordB())
		equal, err := LanguageEqual(a, b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("alphabetSizeMismatch", func(t *testing.T) {
		rec := recordA()
		rec.Symbols = []string{"0"}
		rec.Transitions = rec.Transitions[:1]
		smaller := mustAutomaton(t, rec)

		_, err := LanguageEqual(mustAutomaton(t, recordA()), smaller)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("alphabetSymbolMismatch", func(t *testing.T) {
		rec := recordA()
		rec.Symbols = []string{"0", "2"}
		rec.Transitions = []TransitionRecord{
			{Source: "q0", Label: "0", Dest: "q0"},
			{Source: "q0", Label: "2", Dest: "q0"},
		}
		other := mustAutomaton(t, rec)

		_, err := LanguageEqual(mustAutomaton(t, recordA()), other)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
