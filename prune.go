package dfa

import "github.com/bits-and-blooms/bitset"

// Prune Returns a new automaton restricted to the states reachable from the
// start state. The transition table, final-state set and start state are
// filtered accordingly; the input is never mutated. Pruning is total — a
// single-state automaton prunes to itself.
func Prune(a *Automaton) *Automaton {
	numStates := a.NumStates()
	numSymbols := a.NumSymbols()

	reachable := bitset.New(uint(numStates))
	reachable.Set(uint(a.start))
	workList := []int{a.start}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		for x := 0; x < numSymbols; x++ {
			dest := a.Step(s, x)
			if !reachable.Test(uint(dest)) {
				reachable.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}

	// Rebuild through an old->new state map, keeping declaration order so
	// the result does not depend on traversal order.
	mp := make([]int, numStates)
	names := make([]string, 0, reachable.Count())
	for s := 0; s < numStates; s++ {
		if reachable.Test(uint(s)) {
			mp[s] = len(names)
			names = append(names, a.names[s])
		} else {
			mp[s] = -1
		}
	}

	accept := bitset.New(uint(len(names)))
	table := make([]int, len(names)*numSymbols)
	for s := 0; s < numStates; s++ {
		if mp[s] == -1 {
			continue
		}
		if a.IsAccept(s) {
			accept.Set(uint(mp[s]))
		}
		for x := 0; x < numSymbols; x++ {
			// Destinations of reachable states are reachable themselves,
			// so the restricted table stays total.
			table[mp[s]*numSymbols+x] = mp[a.Step(s, x)]
		}
	}

	return &Automaton{
		names:   names,
		symbols: append([]string(nil), a.symbols...),
		table:   table,
		start:   mp[a.start],
		accept:  accept,
	}
}
