// Package ngram is a placeholder for the N-gram language model that
// would normally be trained on the alignment output of package g2pa, so
// that a G2P decoder (see package g2p) could score candidate label
// sequences. Counting and Kneser-Ney smoothing are out of scope (an
// explicit non-goal): the reference implementation this package mirrors
// never filled in these bodies either.
package ngram

import (
	"strings"

	"github.com/kho/g2pa"
)

// Config controls NGram.Train. Order is the N-gram order; WriteFSTs is
// carried for interface parity but unused, since there is nothing here
// that builds an FST to write.
type Config struct {
	Order     int
	WriteFSTs bool
}

// NGram holds the alignment label sequences an N-gram model would be
// counted over. Construct with New, then LoadAlignments.
type NGram struct {
	Config Config
	Syms   *g2pa.SymbolTable

	inputs [][]g2pa.Label
}

// New returns an NGram with a fresh symbol table.
func New(cfg Config) *NGram {
	return &NGram{
		Config: cfg,
		Syms:   g2pa.NewSymbolTable("<eps>"),
	}
}

// LoadAlignments tokenizes each whitespace-separated alignment line in
// lines (the output of Aligner.WriteAlignments), adding any new token
// strings to Syms.
func (n *NGram) LoadAlignments(lines []string) {
	for _, line := range lines {
		var labels []g2pa.Label
		for _, tok := range strings.Fields(line) {
			labels = append(labels, n.Syms.AddSymbol(tok))
		}
		n.inputs = append(n.inputs, labels)
	}
}

// Train is unimplemented: counting N-grams and smoothing them into a
// model is out of scope for this repository.
func (n *NGram) Train() error {
	panic("ngram: Train is not implemented")
}
