package dfaxml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/dfa"
)

const sampleDoc = `<Automata type="DFA">
  <Alphabets numberOfAlphabets="2">
    <alphabet letter="0"/>
    <alphabet letter="1"/>
  </Alphabets>
  <States numberOfStates="3">
    <state name="q0"/>
    <state name="q1"/>
    <state name="q2"/>
    <initialState name="q0"/>
    <FinalStates numberOfFinalStates="1">
      <finalState name="q1"/>
    </FinalStates>
  </States>
  <Transitions numberOfTrans="3">
    <transition source="q0" destination="q1" label="0"/>
    <transition source="q1" destination="q2" label="0"/>
    <transition source="q2" destination="q2" label="1"/>
  </Transitions>
</Automata>`

func TestRead(t *testing.T) {
	t.Run("sampleDocument", func(t *testing.T) {
		rec, err := Read(strings.NewReader(sampleDoc))
		require.NoError(t, err)

		assert.Equal(t, []string{"0", "1"}, rec.Symbols)
		assert.Equal(t, []string{"q0", "q1", "q2"}, rec.States)
		assert.Equal(t, "q0", rec.Start)
		assert.Equal(t, []string{"q1"}, rec.Finals)
		require.Len(t, rec.Transitions, 3)
		assert.Equal(t, dfa.TransitionRecord{Source: "q0", Label: "0", Dest: "q1"}, rec.Transitions[0])
	})

	t.Run("initialStateAtRootLevel", func(t *testing.T) {
		doc := `<Automata type="DFA">
  <Alphabets><alphabet letter="a"/></Alphabets>
  <States><state name="s0"/></States>
  <initialState name="s0"/>
  <Transitions><transition source="s0" destination="s0" label="a"/></Transitions>
</Automata>`
		rec, err := Read(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "s0", rec.Start)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Read(strings.NewReader("<Automata><broken"))
		assert.Error(t, err)
	})
}

func TestWriteReadRoundTrip(t *testing.T) {
	rec, err := Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	a, err := dfa.FromRecord(rec)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a.Record()))
	assert.Contains(t, buf.String(), `<Automata type="DFA">`)
	assert.Contains(t, buf.String(), `<initialState name="q0">`)

	back, err := Read(&buf)
	require.NoError(t, err)

	b, err := dfa.FromRecord(back)
	require.NoError(t, err)

	assert.Equal(t, a.NumStates(), b.NumStates())
	equal, err := dfa.LanguageEqual(a, b)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.xml"

	rec, err := Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, rec))

	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rec, back)

	_, err = ReadFile(dir + "/missing.xml")
	assert.Error(t, err)
}
