package g2pa

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/kho/easy"
)

// Aligner is the process-wide EM aligner: one shared SymbolTable and
// AlignmentModel, and one Lattice per loaded dictionary entry (spec.md
// §2, §4.3). Construct with NewAligner.
type Aligner struct {
	Config Config

	syms    *SymbolTable
	model   *AlignmentModel
	builder *LatticeBuilder
	lattice []*Lattice
}

// NewAligner seeds a fresh SymbolTable the way the original reserves
// label slots: eps at label 0, skip at label 1, then three book-keeping
// strings with no algorithmic meaning of their own (spec.md §9,
// "vestigial... reproducing the reservation preserves label IDs across
// runs"). This is purely for label-ID parity with the reference
// implementation; nothing downstream inspects these three extra symbols.
func NewAligner(cfg Config) *Aligner {
	syms := NewSymbolTable(cfg.Eps)
	syms.AddSymbol(cfg.Skip)
	syms.AddSymbol(cfg.Seq1Sep + "_" + cfg.Seq2Sep)
	syms.AddSymbol(cfg.S1S2Sep)
	syms.AddSymbol(fmt.Sprintf("%t_%t_%d_%d", cfg.Seq1Del, cfg.Seq2Del, cfg.Seq1Max, cfg.Seq2Max))

	model := NewAlignmentModel()
	return &Aligner{
		Config:  cfg,
		syms:    syms,
		model:   model,
		builder: NewLatticeBuilder(cfg, syms, model),
	}
}

// Symbols returns the aligner's shared symbol table.
func (a *Aligner) Symbols() *SymbolTable { return a.syms }

// Model returns the aligner's shared alignment model.
func (a *Aligner) Model() *AlignmentModel { return a.model }

// NumEntries returns the number of lattices currently loaded.
func (a *Aligner) NumEntries() int { return len(a.lattice) }

// LoadDictionaryFile opens path (transparently decompressing .gz, via
// kho/easy, the way the teacher's FromARPAFile does) and loads it as a
// dictionary.
func (a *Aligner) LoadDictionaryFile(path string) error {
	in, err := easy.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	return a.LoadDictionary(in)
}

// LoadDictionary reads a pronunciation dictionary (spec.md §6.1): UTF-8
// text, one entry per line, two TAB-separated fields. A malformed line
// aborts the whole load; an entry that yields an infeasible alignment is
// logged and skipped.
func (a *Aligner) LoadDictionary(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitNonEmpty(line, "\t")
		if len(fields) != 2 {
			return &MalformedEntryError{Line: line}
		}
		seq1 := splitField(fields[0], a.Config.S1CharDelim)
		seq2 := splitField(fields[1], a.Config.S2CharDelim)
		if err := a.addEntry(seq1, seq2); err != nil {
			glog.Warningf("ignoring entry %q -> %q: %v", fields[0], fields[1], err)
		}
	}
	return scanner.Err()
}

func (a *Aligner) addEntry(seq1, seq2 []string) error {
	if len(seq1) == 0 || len(seq2) == 0 {
		return &InfeasibleAlignmentError{Seq1: seq1, Seq2: seq2}
	}
	lat, err := a.builder.Build(seq1, seq2)
	if err != nil {
		return err
	}
	a.lattice = append(a.lattice, lat)
	return nil
}

// splitField splits s by delim the way spec.md §6.1 requires: an empty
// delim splits into individual runes (Unicode characters), otherwise a
// literal substring split; empty results are dropped either way.
func splitField(s, delim string) []string {
	var parts []string
	if delim == "" {
		for _, r := range s {
			parts = append(parts, string(r))
		}
		return parts
	}
	return splitNonEmpty(s, delim)
}

func splitNonEmpty(s, sep string) []string {
	raw := strings.Split(s, sep)
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Expectation runs one E-step over every loaded lattice (spec.md §4.3):
// forward and backward potentials, then for every arc the expected
// traversal count gamma = alpha[q] * w * beta[q'] / beta[start],
// accumulated into the model unless it is non-finite (the correct
// behavior for trimmed lattices with unreachable regions).
func (a *Aligner) Expectation() {
	for _, lat := range a.lattice {
		alpha := ForwardPotentials(lat)
		beta := BackwardPotentials(lat)
		betaStart := beta[lat.Start()]
		for q, arcs := range lat.Arcs {
			for _, arc := range arcs {
				gamma := LogDivide(LogTimes(LogTimes(alpha[q], arc.Weight), beta[arc.To]), betaStart)
				if IsFinite(gamma) {
					a.model.Accumulate(arc.Label, gamma)
				}
			}
		}
	}
}

// Maximization runs one M-step (spec.md §4.3): normalize the model's
// accumulated counts into new estimates, then rewrite every arc in
// every lattice from those estimates so that all arcs sharing a label
// keep one tied parameter. Returns the convergence delta.
func (a *Aligner) Maximization() float64 {
	delta := a.model.NormalizeAndReset()
	for _, lat := range a.lattice {
		lat.RewriteWeights(a.model.Get)
	}
	return delta
}

// Train runs the EM driver loop (spec.md §4.3, §9): one Maximization
// call to turn the lattices' seeded counts into the zeroth-iteration
// model, then Config.Iter rounds of Expectation/Maximization, then one
// closing round. If Config.Thresh is positive and a round's delta falls
// below it, the loop exits early (spec.md's Open Question #1, resolved
// in DESIGN.md).
func (a *Aligner) Train() {
	glog.Info("starting EM")
	elapsed := easy.Timed(func() {
		a.Maximization()
		for i := 1; i <= a.Config.Iter; i++ {
			a.Expectation()
			delta := a.Maximization()
			if glog.V(1) {
				glog.Infof("iteration %d: change %g", i, delta)
			}
			if a.Config.Thresh > 0 && delta < a.Config.Thresh {
				break
			}
		}
		a.Expectation()
		delta := a.Maximization()
		if glog.V(1) {
			glog.Infof("last iteration: change %g", delta)
		}
	})
	glog.Info("EM training took ", elapsed)
}

// WriteAlignments decodes every loaded lattice's single best path and
// writes one space-separated alignment line per entry to w (spec.md
// §6.2), in load order.
func (a *Aligner) WriteAlignments(w io.Writer) error {
	dec := NewDecoder(a.syms)
	bw := bufio.NewWriter(w)
	for _, lat := range a.lattice {
		line, err := dec.Decode(lat)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
