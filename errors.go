package g2pa

import "fmt"

// MalformedEntryError is returned by LoadDictionary when a dictionary
// line does not split into exactly two TAB-separated, non-empty fields.
// Loading aborts on the first offending line.
type MalformedEntryError struct {
	Line string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed dictionary line (want exactly two TAB-separated fields): %q", e.Line)
}

// InfeasibleAlignmentError is returned by LatticeBuilder.Build when no
// admissible alignment survives trimming. Callers that load whole
// dictionaries should log this and skip the entry rather than treat it
// as fatal.
type InfeasibleAlignmentError struct {
	Seq1, Seq2 []string
}

func (e *InfeasibleAlignmentError) Error() string {
	return fmt.Sprintf("no admissible alignment from %q to %q", e.Seq1, e.Seq2)
}

// SymbolOverflowError is returned by LatticeBuilder.Build when a lattice
// would need a state index beyond the StateId width. A label overflow in
// SymbolTable.AddSymbol is not returned as an error: AddSymbol panics
// with this error's message.
type SymbolOverflowError struct {
	Want int
}

func (e *SymbolOverflowError) Error() string {
	return fmt.Sprintf("symbol or state index %d overflows StateId/Label width", e.Want)
}

// MissingSymbolError is returned by the Decoder when a label on the best
// path has no corresponding string in the SymbolTable. It indicates
// corruption of the table shared between the lattices and the model, and
// is always fatal to the caller.
type MissingSymbolError struct {
	Label Label
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("label %d not found in symbol table", e.Label)
}
