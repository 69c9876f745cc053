package g2pa

import (
	"math"
	"strings"
)

// StateId indexes a state within a single Lattice. States are numbered
// densely in row-major order over the (|seq1|+1) x (|seq2|+1) grid
// (spec.md §3): before trimming, state (i, j) is stored at
// i*(|seq2|+1)+j; trim renumbers the surviving states densely, keeping
// their order.
type StateId uint32

// Arc is one transition of a Lattice. Input and output labels are
// always equal (a Lattice is an acceptor): every admissible joint
// segmentation step consumes exactly one AlignmentToken.
type Arc struct {
	To     StateId
	Label  Label
	Weight Weight
}

// Lattice is the acyclic weighted acceptor built for one training pair
// (spec.md §3). States are never removed after Trim except as part of
// construction; arcs are rewritten in place by every M-step.
type Lattice struct {
	// Arcs[q] holds the out-going arcs of state q, in the order they
	// were added.
	Arcs [][]Arc
	// final marks, per state, whether it is an accepting state and (if
	// so) its accept weight. Exactly one state is final in a Lattice
	// built by LatticeBuilder.
	final map[StateId]Weight
	start StateId
}

// NumStates returns the number of states currently in the lattice.
func (l *Lattice) NumStates() int { return len(l.Arcs) }

// Start returns the single start state.
func (l *Lattice) Start() StateId { return l.start }

// FinalWeight returns q's accept weight and whether q is final.
func (l *Lattice) FinalWeight(q StateId) (Weight, bool) {
	w, ok := l.final[q]
	return w, ok
}

// RewriteWeights sets every arc's weight from get(arc.Label). Called by
// the M-step so that all arcs sharing a label keep a single tied
// parameter (spec.md §9, "Tied parameters").
func (l *Lattice) RewriteWeights(get func(Label) Weight) {
	for q := range l.Arcs {
		arcs := l.Arcs[q]
		for i := range arcs {
			arcs[i].Weight = get(arcs[i].Label)
		}
	}
}

// LatticeBuilder constructs lattices for one aligner configuration,
// sharing a single SymbolTable and AlignmentModel across all of them
// (spec.md §4.2).
type LatticeBuilder struct {
	cfg    Config
	syms   *SymbolTable
	model  *AlignmentModel
	skipID Label
}

// NewLatticeBuilder returns a builder that will add tokens to syms and
// seed counts into model as lattices are built.
func NewLatticeBuilder(cfg Config, syms *SymbolTable, model *AlignmentModel) *LatticeBuilder {
	return &LatticeBuilder{
		cfg:    cfg,
		syms:   syms,
		model:  model,
		skipID: syms.AddSymbol(cfg.Skip),
	}
}

// Build constructs the lattice for one training pair. It returns
// InfeasibleAlignmentError if every state is disconnected from the
// start-to-accept span after trimming.
func (b *LatticeBuilder) Build(seq1, seq2 []string) (*Lattice, error) {
	n1, n2 := len(seq1), len(seq2)
	numStates := (n1 + 1) * (n2 + 1)
	if numStates > math.MaxUint32 {
		return nil, &SymbolOverflowError{Want: numStates}
	}
	lat := &Lattice{
		Arcs:  make([][]Arc, numStates),
		final: make(map[StateId]Weight, 1),
		start: 0,
	}

	idx := func(i, j int) StateId { return StateId(i*(n2+1) + j) }

	for i := 0; i <= n1; i++ {
		for j := 0; j <= n2; j++ {
			from := idx(i, j)

			if b.cfg.Seq1Del {
				maxL := min(b.cfg.Seq2Max, n2-j)
				for l := 1; l <= maxL; l++ {
					tok := b.skip() + b.cfg.S1S2Sep + strings.Join(seq2[j:j+l], b.cfg.Seq2Sep)
					label := b.syms.AddSymbol(tok)
					b.model.Seed(label, DeletionPenalty)
					lat.Arcs[from] = append(lat.Arcs[from], Arc{To: idx(i, j+l), Label: label, Weight: DeletionPenalty})
				}
			}
			if b.cfg.Seq2Del {
				maxK := min(b.cfg.Seq1Max, n1-i)
				for k := 1; k <= maxK; k++ {
					tok := strings.Join(seq1[i:i+k], b.cfg.Seq1Sep) + b.cfg.S1S2Sep + b.skip()
					label := b.syms.AddSymbol(tok)
					b.model.Seed(label, DeletionPenalty)
					lat.Arcs[from] = append(lat.Arcs[from], Arc{To: idx(i+k, j), Label: label, Weight: DeletionPenalty})
				}
			}
			maxK := min(b.cfg.Seq1Max, n1-i)
			maxL := min(b.cfg.Seq2Max, n2-j)
			for k := 1; k <= maxK; k++ {
				for l := 1; l <= maxL; l++ {
					if b.cfg.Restrict && k > 1 && l > 1 {
						continue
					}
					tok := strings.Join(seq1[i:i+k], b.cfg.Seq1Sep) + b.cfg.S1S2Sep + strings.Join(seq2[j:j+l], b.cfg.Seq2Sep)
					label := b.syms.AddSymbol(tok)
					b.model.Seed(label, LogOne)
					lat.Arcs[from] = append(lat.Arcs[from], Arc{To: idx(i+k, j+l), Label: label, Weight: LogOne})
				}
			}
		}
	}

	accept := idx(n1, n2)
	lat.final[accept] = LogOne

	if !(b.cfg.Seq1Del && b.cfg.Seq2Del) {
		lat.trim()
	}
	if lat.NumStates() == 0 {
		return nil, &InfeasibleAlignmentError{Seq1: seq1, Seq2: seq2}
	}
	return lat, nil
}

func (b *LatticeBuilder) skip() string { return b.cfg.Skip }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// trim removes states that are not on any path from the start to an
// accepting state, renumbering the survivors densely and compacting
// Arcs/final to match (spec.md §3, "after construction... the lattice
// is trimmed"). If no state survives, the Lattice is left with zero
// states — the caller (Build) treats that as InfeasibleAlignmentError.
func (l *Lattice) trim() {
	n := len(l.Arcs)
	reachable := make([]bool, n)
	reachable[l.start] = true
	// States are already topologically sorted by construction (every
	// arc goes from a lower index to a strictly higher one), so one
	// forward pass suffices.
	for q := 0; q < n; q++ {
		if !reachable[q] {
			continue
		}
		for _, a := range l.Arcs[q] {
			reachable[a.To] = true
		}
	}

	coaccessible := make([]bool, n)
	for q := range l.final {
		coaccessible[q] = true
	}
	for q := n - 1; q >= 0; q-- {
		if coaccessible[q] {
			continue
		}
		for _, a := range l.Arcs[q] {
			if coaccessible[a.To] {
				coaccessible[q] = true
				break
			}
		}
	}

	keep := make([]bool, n)
	newIdx := make([]StateId, n)
	nextID := StateId(0)
	for q := 0; q < n; q++ {
		keep[q] = reachable[q] && coaccessible[q]
		if keep[q] {
			newIdx[q] = nextID
			nextID++
		}
	}

	newArcs := make([][]Arc, nextID)
	newFinal := make(map[StateId]Weight, len(l.final))
	for q := 0; q < n; q++ {
		if !keep[q] {
			continue
		}
		var kept []Arc
		for _, a := range l.Arcs[q] {
			if keep[int(a.To)] {
				kept = append(kept, Arc{To: newIdx[a.To], Label: a.Label, Weight: a.Weight})
			}
		}
		newArcs[newIdx[q]] = kept
		if w, ok := l.final[StateId(q)]; ok {
			newFinal[newIdx[q]] = w
		}
	}
	l.Arcs = newArcs
	l.final = newFinal
	if keep[l.start] {
		l.start = newIdx[l.start]
	} else {
		l.start = 0
	}
}
