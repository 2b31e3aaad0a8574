package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Build Maps a stable partition back into a new automaton with one state
// per block. A block is final iff its members are final, the block holding
// the original start state becomes the new start, and a block's transition
// on a symbol is the block its members transition to. Fails with
// ErrInconsistentPartition when members of a block disagree on a
// destination block; that is unreachable when the partition came from
// Refine and exists as an internal consistency assertion.
func Build(a *Automaton, p *Partition) (*Automaton, error) {
	numBlocks := p.Len()
	numSymbols := a.NumSymbols()

	names := make([]string, numBlocks)
	accept := bitset.New(uint(numBlocks))
	table := make([]int, numBlocks*numSymbols)

	for b, members := range p.blocks {
		names[b] = blockName(a, members)
		if a.IsAccept(members[0]) {
			accept.Set(uint(b))
		}

		for x := 0; x < numSymbols; x++ {
			dest := p.blockOf[a.Step(members[0], x)]
			for _, s := range members[1:] {
				if p.blockOf[a.Step(s, x)] != dest {
					return nil, fmt.Errorf("block %d splits on symbol %q: %w",
						b, a.symbols[x], ErrInconsistentPartition)
				}
			}
			table[b*numSymbols+x] = dest
		}
	}

	return &Automaton{
		names:   names,
		symbols: append([]string(nil), a.symbols...),
		table:   table,
		start:   p.blockOf[a.start],
		accept:  accept,
	}, nil
}

// Minimize Produces the minimal automaton accepting the same language:
// removes unreachable states, refines the remaining states into
// equivalence classes and rebuilds one state per class.
func Minimize(a *Automaton) (*Automaton, error) {
	pruned := Prune(a)
	return Build(pruned, Refine(pruned))
}

// Block states are named after their members, sorted, so minimized output
// stays readable and stable across runs.
func blockName(a *Automaton, members []int) string {
	names := make([]string, len(members))
	for i, s := range members {
		names[i] = a.names[s]
	}
	sort.Strings(names)
	return "q" + strings.Join(names, "")
}
