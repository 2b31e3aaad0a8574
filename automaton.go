package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Automaton An immutable deterministic finite automaton over a finite label
// alphabet. States are dense ints assigned in declaration order at
// construction. The transition table is total: a partial input table is
// completed during FromRecord by one synthetic non-final sink state that
// self-loops on every symbol. Treat a constructed Automaton as read-only;
// every pipeline stage (Prune, Refine, Build) returns a fresh value and
// never mutates its input.
type Automaton struct {
	names   []string
	symbols []string

	// Flat transition table; table[state*len(symbols)+symbol] holds the
	// destination state.
	table []int

	start  int
	accept *bitset.BitSet
}

// FromRecord Validates a decoded record and constructs the Automaton.
// Fails with ErrInvalidStart, ErrInvalidFinal or ErrInvalidTransition on
// malformed input; completing a partial transition table is a fix-up, not
// an error.
func FromRecord(rec Record) (*Automaton, error) {
	if len(rec.Symbols) == 0 {
		return nil, fmt.Errorf("empty alphabet: %w", ErrInvalidTransition)
	}

	symbolOf := make(map[string]int, len(rec.Symbols))
	for i, label := range rec.Symbols {
		if _, ok := symbolOf[label]; ok {
			return nil, fmt.Errorf("duplicate alphabet symbol %q: %w", label, ErrInvalidTransition)
		}
		symbolOf[label] = i
	}

	stateOf := make(map[string]int, len(rec.States))
	for i, name := range rec.States {
		if _, ok := stateOf[name]; ok {
			return nil, fmt.Errorf("duplicate state %q: %w", name, ErrInvalidTransition)
		}
		stateOf[name] = i
	}

	start, ok := stateOf[rec.Start]
	if !ok {
		return nil, fmt.Errorf("start state %q not in state set: %w", rec.Start, ErrInvalidStart)
	}

	accept := bitset.New(uint(len(rec.States)))
	for _, name := range rec.Finals {
		s, ok := stateOf[name]
		if !ok {
			return nil, fmt.Errorf("final state %q not in state set: %w", name, ErrInvalidFinal)
		}
		accept.Set(uint(s))
	}

	numSymbols := len(rec.Symbols)
	table := make([]int, len(rec.States)*numSymbols)
	for i := range table {
		table[i] = -1
	}

	for _, tr := range rec.Transitions {
		src, ok := stateOf[tr.Source]
		if !ok {
			return nil, fmt.Errorf("transition source %q not in state set: %w", tr.Source, ErrInvalidTransition)
		}
		dest, ok := stateOf[tr.Dest]
		if !ok {
			return nil, fmt.Errorf("transition destination %q not in state set: %w", tr.Dest, ErrInvalidTransition)
		}
		x, ok := symbolOf[tr.Label]
		if !ok {
			return nil, fmt.Errorf("transition label %q not in alphabet: %w", tr.Label, ErrInvalidTransition)
		}
		cell := src*numSymbols + x
		if table[cell] != -1 {
			return nil, fmt.Errorf("state %q has two transitions on %q: %w", tr.Source, tr.Label, ErrInvalidTransition)
		}
		table[cell] = dest
	}

	names := append([]string(nil), rec.States...)
	symbols := append([]string(nil), rec.Symbols...)
	table, names = complete(table, names, numSymbols, stateOf)

	return &Automaton{
		names:   names,
		symbols: symbols,
		table:   table,
		start:   start,
		accept:  accept,
	}, nil
}

// Fills the holes of a partial transition table with a single synthetic
// non-final sink state. Idempotent: a total table comes back untouched.
func complete(table []int, names []string, numSymbols int, taken map[string]int) ([]int, []string) {
	partial := false
	for _, dest := range table {
		if dest == -1 {
			partial = true
			break
		}
	}
	if !partial {
		return table, names
	}

	sinkName := "sink"
	for {
		if _, ok := taken[sinkName]; !ok {
			break
		}
		sinkName += "_"
	}

	sink := len(names)
	names = append(names, sinkName)
	for x := 0; x < numSymbols; x++ {
		table = append(table, sink)
	}
	for i, dest := range table {
		if dest == -1 {
			table[i] = sink
		}
	}
	return table, names
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.names)
}

// NumSymbols How many symbols the alphabet has.
func (a *Automaton) NumSymbols() int {
	return len(a.symbols)
}

// Start The start state.
func (a *Automaton) Start() int {
	return a.start
}

// IsAccept Returns true if this state is a final (accepting) state.
func (a *Automaton) IsAccept(state int) bool {
	return a.accept.Test(uint(state))
}

// StateName The external identifier of a state.
func (a *Automaton) StateName(state int) string {
	return a.names[state]
}

// Symbol The label of the symbol at the given alphabet index.
func (a *Automaton) Symbol(x int) string {
	return a.symbols[x]
}

// Symbols The alphabet, in declaration order. The returned slice is a copy.
func (a *Automaton) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// Step Performs a transition table lookup.
func (a *Automaton) Step(state, symbol int) int {
	return a.table[state*len(a.symbols)+symbol]
}

// StepLabel Like Step but keyed by symbol label. Returns -1 when the label
// is not in the alphabet.
func (a *Automaton) StepLabel(state int, label string) int {
	for x, s := range a.symbols {
		if s == label {
			return a.Step(state, x)
		}
	}
	return -1
}

// Record Converts the automaton back into the decoded field shape consumed
// by external writers and renderers.
func (a *Automaton) Record() Record {
	rec := Record{
		Symbols: append([]string(nil), a.symbols...),
		States:  append([]string(nil), a.names...),
		Start:   a.names[a.start],
	}
	for s := 0; s < a.NumStates(); s++ {
		if a.IsAccept(s) {
			rec.Finals = append(rec.Finals, a.names[s])
		}
	}
	for s := 0; s < a.NumStates(); s++ {
		for x := 0; x < a.NumSymbols(); x++ {
			rec.Transitions = append(rec.Transitions, TransitionRecord{
				Source: a.names[s],
				Label:  a.symbols[x],
				Dest:   a.names[a.Step(s, x)],
			})
		}
	}
	return rec
}

// Run Walks the automaton over a sequence of symbol labels and reports
// whether it ends in a final state. Unknown labels reject.
func Run(a *Automaton, labels []string) bool {
	state := a.start
	for _, label := range labels {
		next := a.StepLabel(state, label)
		if next == -1 {
			return false
		}
		state = next
	}
	return a.IsAccept(state)
}
