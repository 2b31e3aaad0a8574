package dfa

import "strconv"

// Partition A set partition of an automaton's states: disjoint, non-empty
// blocks whose union is the full state set. Produced by Refine and consumed
// once by Build.
type Partition struct {
	blocks  [][]int
	blockOf []int
}

// Len How many blocks the partition has.
func (p *Partition) Len() int {
	return len(p.blocks)
}

// BlockOf The index of the block containing the given state.
func (p *Partition) BlockOf(state int) int {
	return p.blockOf[state]
}

// Blocks The blocks as slices of state ids, members ascending. The returned
// slices are copies.
func (p *Partition) Blocks() [][]int {
	blocks := make([][]int, len(p.blocks))
	for i, b := range p.blocks {
		blocks[i] = append([]int(nil), b...)
	}
	return blocks
}

// Refine Computes the coarsest partition of a reachable-only automaton's
// states in which two states share a block iff no input string
// distinguishes them (Moore partition refinement). Starts from the
// final/non-final split and re-splits blocks by destination-block signature
// until a full pass produces no split. Always terminates: each round either
// reaches the fixed point or strictly increases the block count, which is
// bounded by the number of states.
func Refine(a *Automaton) *Partition {
	p := initialPartition(a)
	for {
		next, split := refineOnce(a, p)
		if !split {
			return p
		}
		p = next
	}
}

// Initial partition: final states and non-final states. One block when
// either side is empty.
func initialPartition(a *Automaton) *Partition {
	numStates := a.NumStates()
	blockOf := make([]int, numStates)

	var finals, others []int
	for s := 0; s < numStates; s++ {
		if a.IsAccept(s) {
			finals = append(finals, s)
		} else {
			others = append(others, s)
		}
	}

	var blocks [][]int
	for _, b := range [][]int{finals, others} {
		if len(b) == 0 {
			continue
		}
		for _, s := range b {
			blockOf[s] = len(blocks)
		}
		blocks = append(blocks, b)
	}

	return &Partition{blocks: blocks, blockOf: blockOf}
}

// One refinement round: split every block by the per-symbol destination
// block of its members, judged against the frozen input partition. Reports
// whether any block split.
func refineOnce(a *Automaton, p *Partition) (*Partition, bool) {
	next := &Partition{blockOf: make([]int, a.NumStates())}
	split := false

	for _, block := range p.blocks {
		groups := make(map[string]int)
		for _, s := range block {
			key := signature(a, p, s)
			idx, ok := groups[key]
			if !ok {
				idx = len(next.blocks)
				groups[key] = idx
				next.blocks = append(next.blocks, nil)
			}
			next.blocks[idx] = append(next.blocks[idx], s)
			next.blockOf[s] = idx
		}
		if len(groups) > 1 {
			split = true
		}
	}

	return next, split
}

// The destination-block signature of a state: which block each symbol leads
// to under the current partition.
func signature(a *Automaton, p *Partition, state int) string {
	buf := make([]byte, 0, 2*a.NumSymbols())
	for x := 0; x < a.NumSymbols(); x++ {
		buf = strconv.AppendInt(buf, int64(p.blockOf[a.Step(state, x)]), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}
