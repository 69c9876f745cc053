package g2pa

// ForwardPotentials computes alpha[q], the log-semiring sum of the
// weights of every path from the start state to q (spec.md §4.3,
// "shortest_distance(reverse=false)"). Lattices are acyclic and
// topologically sorted by construction (every arc strictly increases
// its source's state index), so a single forward pass suffices — no
// generic graph shortest-distance algorithm is needed.
func ForwardPotentials(l *Lattice) []Weight {
	n := l.NumStates()
	alpha := make([]Weight, n)
	for q := range alpha {
		alpha[q] = LogZero
	}
	alpha[l.Start()] = LogOne
	for q := 0; q < n; q++ {
		if alpha[q] == LogZero {
			continue
		}
		for _, a := range l.Arcs[q] {
			alpha[a.To] = LogPlus(alpha[a.To], LogTimes(alpha[q], a.Weight))
		}
	}
	return alpha
}

// BackwardPotentials computes beta[q], the log-semiring sum of the
// weights of every path from q to an accepting state (spec.md §4.3,
// "shortest_distance(reverse=true)").
func BackwardPotentials(l *Lattice) []Weight {
	n := l.NumStates()
	beta := make([]Weight, n)
	for q := range beta {
		beta[q] = LogZero
	}
	for q, w := range l.final {
		beta[q] = w
	}
	for q := n - 1; q >= 0; q-- {
		for _, a := range l.Arcs[q] {
			beta[q] = LogPlus(beta[q], LogTimes(a.Weight, beta[a.To]))
		}
	}
	return beta
}
