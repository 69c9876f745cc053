package g2pa

import "testing"

func TestDecodeSinglePathLattice(t *testing.T) {
	cfg := testConfig()
	syms := NewSymbolTable(cfg.Eps)
	syms.AddSymbol(cfg.Skip)
	model := NewAlignmentModel()
	b := NewLatticeBuilder(cfg, syms, model)

	lat, err := b.Build([]string{"c", "a", "t"}, []string{"k", "a", "t"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// With only one path in the lattice, every arc weight (even the
	// uniform seed) decodes to that path.
	dec := NewDecoder(syms)
	out, err := dec.Decode(lat)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := "c}k a}a t}t"
	if out != want {
		t.Errorf("expected %q; got %q", want, out)
	}
}

func TestDecodePicksLowerWeightPath(t *testing.T) {
	cfg := testConfig()
	cfg.Seq1Max, cfg.Seq2Max = 2, 2
	syms := NewSymbolTable(cfg.Eps)
	syms.AddSymbol(cfg.Skip)
	model := NewAlignmentModel()
	b := NewLatticeBuilder(cfg, syms, model)

	lat, err := b.Build([]string{"a", "b"}, []string{"x", "y"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Drive every arc's weight to 50 except the one cheap two-for-two
	// arc, which gets LogOne, so the shortest path is forced and
	// deterministic.
	cheap := map[Label]bool{}
	for _, a := range lat.Arcs[0] {
		// Prefer the single two-for-two arc over the two one-for-one
		// arcs, by making the joint arc cheap and the split path dear.
		sym, _ := syms.GetSymbol(a.Label)
		if sym == "a|b}x|y" {
			cheap[a.Label] = true
		}
	}
	lat.RewriteWeights(func(l Label) Weight {
		if cheap[l] {
			return LogOne
		}
		return Weight(50)
	})

	dec := NewDecoder(syms)
	out, err := dec.Decode(lat)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != "a|b}x|y" {
		t.Errorf("expected the cheap joint token to win; got %q", out)
	}
}

func TestShortestPathOnDisconnectedLatticeErrors(t *testing.T) {
	lat := &Lattice{
		Arcs:  make([][]Arc, 2),
		final: map[StateId]Weight{1: LogOne},
		start: 0,
	}
	// No arc at all: state 1 is unreachable from state 0.
	if _, err := shortestPath(lat); err == nil {
		t.Fatal("expected InfeasibleAlignmentError for a disconnected lattice")
	}
}
