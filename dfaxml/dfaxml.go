// Package dfaxml reads and writes the XML document format for automata:
//
//	<Automata type="DFA">
//	  <Alphabets numberOfAlphabets="2"><alphabet letter="0"/>...</Alphabets>
//	  <States numberOfStates="2">
//	    <state name="q0"/>...
//	    <initialState name="q0"/>
//	    <FinalStates numberOfFinalStates="1"><finalState name="q1"/>...</FinalStates>
//	  </States>
//	  <Transitions numberOfTrans="4">
//	    <transition source="q0" destination="q1" label="0"/>...
//	  </Transitions>
//	</Automata>
//
// It only decodes documents into the core's Record shape and encodes
// Records back; validation and construction belong to the dfa package.
package dfaxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/geange/dfa"
)

type document struct {
	XMLName     xml.Name    `xml:"Automata"`
	Type        string      `xml:"type,attr"`
	Alphabets   alphabets   `xml:"Alphabets"`
	States      states      `xml:"States"`
	Initial     *namedElem  `xml:"initialState"`
	Transitions transitions `xml:"Transitions"`
}

type alphabets struct {
	Count   int          `xml:"numberOfAlphabets,attr"`
	Letters []letterElem `xml:"alphabet"`
}

type letterElem struct {
	Letter string `xml:"letter,attr"`
}

type states struct {
	Count   int          `xml:"numberOfStates,attr"`
	States  []namedElem  `xml:"state"`
	Initial *namedElem   `xml:"initialState"`
	Finals  *finalStates `xml:"FinalStates"`
}

type namedElem struct {
	Name string `xml:"name,attr"`
}

type finalStates struct {
	Count  int         `xml:"numberOfFinalStates,attr"`
	Finals []namedElem `xml:"finalState"`
}

type transitions struct {
	Count int              `xml:"numberOfTrans,attr"`
	Items []transitionElem `xml:"transition"`
}

type transitionElem struct {
	Source string `xml:"source,attr"`
	Dest   string `xml:"destination,attr"`
	Label  string `xml:"label,attr"`
}

// Read Decodes one automaton document. The initialState element is accepted
// both nested under States and as a direct child of the root; documents in
// the wild carry it in either place.
func Read(r io.Reader) (dfa.Record, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return dfa.Record{}, fmt.Errorf("decode automaton document: %w", err)
	}

	rec := dfa.Record{}
	for _, l := range doc.Alphabets.Letters {
		rec.Symbols = append(rec.Symbols, l.Letter)
	}
	for _, s := range doc.States.States {
		rec.States = append(rec.States, s.Name)
	}
	switch {
	case doc.States.Initial != nil:
		rec.Start = doc.States.Initial.Name
	case doc.Initial != nil:
		rec.Start = doc.Initial.Name
	}
	if doc.States.Finals != nil {
		for _, f := range doc.States.Finals.Finals {
			rec.Finals = append(rec.Finals, f.Name)
		}
	}
	for _, t := range doc.Transitions.Items {
		rec.Transitions = append(rec.Transitions, dfa.TransitionRecord{
			Source: t.Source,
			Label:  t.Label,
			Dest:   t.Dest,
		})
	}
	return rec, nil
}

// Write Encodes a record as an automaton document, initialState nested
// under States.
func Write(w io.Writer, rec dfa.Record) error {
	doc := document{
		Type: "DFA",
		Alphabets: alphabets{
			Count: len(rec.Symbols),
		},
		States: states{
			Count:   len(rec.States),
			Initial: &namedElem{Name: rec.Start},
			Finals: &finalStates{
				Count: len(rec.Finals),
			},
		},
		Transitions: transitions{
			Count: len(rec.Transitions),
		},
	}
	for _, label := range rec.Symbols {
		doc.Alphabets.Letters = append(doc.Alphabets.Letters, letterElem{Letter: label})
	}
	for _, name := range rec.States {
		doc.States.States = append(doc.States.States, namedElem{Name: name})
	}
	for _, name := range rec.Finals {
		doc.States.Finals.Finals = append(doc.States.Finals.Finals, namedElem{Name: name})
	}
	for _, t := range rec.Transitions {
		doc.Transitions.Items = append(doc.Transitions.Items, transitionElem{
			Source: t.Source,
			Dest:   t.Dest,
			Label:  t.Label,
		})
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode automaton document: %w", err)
	}
	return enc.Close()
}

// ReadFile Reads an automaton document from a file.
func ReadFile(path string) (dfa.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return dfa.Record{}, err
	}
	defer f.Close()
	return Read(f)
}

// WriteFile Writes an automaton document to a file.
func WriteFile(path string, rec dfa.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
