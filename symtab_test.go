package g2pa

import "testing"

func TestNewSymbolTableReservesEpsilon(t *testing.T) {
	syms := NewSymbolTable("<eps>")
	if l, ok := syms.GetLabel("<eps>"); !ok || l != EpsilonLabel {
		t.Fatalf("expected <eps> at label %d; got %d, ok=%v", EpsilonLabel, l, ok)
	}
	if syms.Len() != 1 {
		t.Fatalf("expected Len() = 1; got %d", syms.Len())
	}
}

func TestSymbolTableAddSymbolIsIdempotent(t *testing.T) {
	syms := NewSymbolTable("<eps>")
	a := syms.AddSymbol("a")
	b := syms.AddSymbol("b")
	aAgain := syms.AddSymbol("a")
	if a != aAgain {
		t.Errorf("expected AddSymbol(%q) = %d on repeat; got %d", "a", a, aAgain)
	}
	if a == b {
		t.Errorf("expected distinct labels for distinct symbols; got %d for both", a)
	}
	if syms.Len() != 3 {
		t.Errorf("expected Len() = 3; got %d", syms.Len())
	}
}

func TestSymbolTableGetSymbolRoundTrip(t *testing.T) {
	syms := NewSymbolTable("<eps>")
	x := syms.AddSymbol("x")
	s, ok := syms.GetSymbol(x)
	if !ok || s != "x" {
		t.Errorf("expected GetSymbol(%d) = (%q, true); got (%q, %v)", x, "x", s, ok)
	}
	if _, ok := syms.GetSymbol(Label(syms.Len())); ok {
		t.Errorf("expected GetSymbol of an out-of-range label to fail")
	}
}

func TestSymbolTableMarshalRoundTrip(t *testing.T) {
	syms := NewSymbolTable("<eps>")
	syms.AddSymbol("_")
	syms.AddSymbol("k}a")

	data, err := syms.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got := &SymbolTable{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.Len() != syms.Len() {
		t.Fatalf("expected Len() = %d after round trip; got %d", syms.Len(), got.Len())
	}
	for l := 0; l < syms.Len(); l++ {
		want, _ := syms.GetSymbol(Label(l))
		have, ok := got.GetSymbol(Label(l))
		if !ok || have != want {
			t.Errorf("label %d: expected %q; got %q, ok=%v", l, want, have, ok)
		}
	}
}
