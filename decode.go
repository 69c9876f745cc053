package g2pa

import "strings"

// Decoder projects a Lattice's single best path back into a readable
// alignment string (spec.md §4.5). It only needs the shared
// SymbolTable, not the AlignmentModel, since by the time decoding
// happens every arc weight has already been rewritten from the
// model's estimates.
type Decoder struct {
	syms *SymbolTable
}

// NewDecoder returns a Decoder that resolves labels against syms.
func NewDecoder(syms *SymbolTable) *Decoder {
	return &Decoder{syms: syms}
}

// Decode converts l's weights to the tropical semiring (selecting
// lowest-cost-path rather than summed-probability semantics), extracts
// the single best path, and renders its label sequence as a
// space-separated string of AlignmentToken strings.
func (d *Decoder) Decode(l *Lattice) (string, error) {
	path, err := shortestPath(l)
	if err != nil {
		return "", err
	}
	toks := make([]string, len(path))
	for i, label := range path {
		sym, ok := d.syms.GetSymbol(label)
		if !ok {
			return "", &MissingSymbolError{Label: label}
		}
		toks[i] = sym
	}
	return strings.Join(toks, " "), nil
}

// shortestPath walks l backward from its accepting state to its start,
// at each step picking the incoming arc that minimizes
// dist[from] + arc.Weight (tropical ⊗ = +, ⊕ = min — the same value
// range as the log semiring, so ToTropical is the identity and only the
// combination rule below differs from ForwardPotentials/
// BackwardPotentials). The lattice is a DAG with a single accepting
// state by construction, so this always yields one linear path.
func shortestPath(l *Lattice) ([]Label, error) {
	n := l.NumStates()
	dist := make([]Weight, n)
	pred := make([]int, n)
	predLabel := make([]Label, n)
	for q := range dist {
		dist[q] = LogZero
		pred[q] = -1
	}
	dist[l.Start()] = LogOne
	for q := 0; q < n; q++ {
		if dist[q] == LogZero {
			continue
		}
		for _, a := range l.Arcs[q] {
			cand := LogTimes(dist[q], ToTropical(a.Weight))
			if cand < dist[a.To] {
				dist[a.To] = cand
				pred[a.To] = q
				predLabel[a.To] = a.Label
			}
		}
	}

	var accept int = -1
	for q := range l.Arcs {
		if _, ok := l.final[StateId(q)]; ok {
			accept = q
			break
		}
	}
	if accept < 0 {
		return nil, &InfeasibleAlignmentError{}
	}

	var rev []Label
	for q := accept; q != int(l.Start()); {
		if pred[q] == -1 {
			return nil, &InfeasibleAlignmentError{}
		}
		rev = append(rev, predLabel[q])
		q = pred[q]
	}
	// Reverse into forward order.
	path := make([]Label, len(rev))
	for i, l := range rev {
		path[len(rev)-1-i] = l
	}
	return path, nil
}
