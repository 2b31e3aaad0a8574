package dfa

// TransitionRecord One row of a decoded transition table: reading Label in
// state Source moves the machine to Dest.
type TransitionRecord struct {
	Source string
	Label  string
	Dest   string
}

// Record The decoded field shape exchanged with external collaborators
// (XML reader/writer, renderers). Pure data; Record carries no notion of
// the document format it was decoded from.
type Record struct {
	Symbols     []string
	States      []string
	Start       string
	Finals      []string
	Transitions []TransitionRecord
}
