package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// LanguageEqual Reports whether two automata over the same alphabet accept
// exactly the same language. It walks the product of the two machines from
// the pair of start states and answers false at the first reachable pair
// that disagrees on acceptance. The check is independent of the refiner so
// it serves as an honest external verification of the pipeline. Errors only
// when the alphabets differ as sets, before any exploration.
func LanguageEqual(a, b *Automaton) (bool, error) {
	bSymbol, err := alignAlphabets(a, b)
	if err != nil {
		return false, err
	}

	numB := b.NumStates()
	seen := bitset.New(uint(a.NumStates() * numB))

	pair := a.start*numB + b.start
	seen.Set(uint(pair))
	workList := []int{pair}

	for len(workList) > 0 {
		pair = workList[0]
		workList = workList[1:]

		sa, sb := pair/numB, pair%numB
		if a.IsAccept(sa) != b.IsAccept(sb) {
			return false, nil
		}

		for x := 0; x < a.NumSymbols(); x++ {
			next := a.Step(sa, x)*numB + b.Step(sb, bSymbol[x])
			if !seen.Test(uint(next)) {
				seen.Set(uint(next))
				workList = append(workList, next)
			}
		}
	}

	return true, nil
}

// Maps a's symbol indexes onto b's, so the two machines can be stepped in
// lockstep even when their alphabets were declared in different orders.
func alignAlphabets(a, b *Automaton) ([]int, error) {
	if a.NumSymbols() != b.NumSymbols() {
		return nil, fmt.Errorf("alphabets differ in size (%d vs %d): %w",
			a.NumSymbols(), b.NumSymbols(), ErrInvalidTransition)
	}

	indexOf := make(map[string]int, b.NumSymbols())
	for x, label := range b.symbols {
		indexOf[label] = x
	}

	bSymbol := make([]int, a.NumSymbols())
	for x, label := range a.symbols {
		bx, ok := indexOf[label]
		if !ok {
			return nil, fmt.Errorf("symbol %q missing from second alphabet: %w",
				label, ErrInvalidTransition)
		}
		bSymbol[x] = bx
	}

	return bSymbol, nil
}
