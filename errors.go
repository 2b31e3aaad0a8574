package dfa

import "errors"

var (
	// ErrInvalidStart Raised at construction when the record has no start
	// state or names one outside the declared state set.
	ErrInvalidStart = errors.New("invalid start state")

	// ErrInvalidFinal Raised at construction when a final state is not in
	// the declared state set.
	ErrInvalidFinal = errors.New("invalid final state")

	// ErrInvalidTransition Raised at construction when a transition
	// references an undeclared state or symbol, when the table is
	// nondeterministic, or when the declared sets themselves are malformed.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInconsistentPartition Internal assertion: members of a stable
	// block disagreed on a destination block. Unreachable under a correct
	// refiner.
	ErrInconsistentPartition = errors.New("inconsistent partition")
)
