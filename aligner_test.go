package g2pa

import (
	"strings"
	"testing"
)

func TestAlignerLoadDictionaryAndTrain(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAligner(cfg)
	dict := "cat\tk a t\ndog\td o g\n"
	if err := a.LoadDictionary(strings.NewReader(dict)); err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if a.NumEntries() != 2 {
		t.Fatalf("expected 2 entries; got %d", a.NumEntries())
	}

	a.Train()

	var out strings.Builder
	if err := a.WriteAlignments(&out); err != nil {
		t.Fatalf("WriteAlignments: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines; got %d: %q", len(lines), out.String())
	}
	for i, line := range lines {
		if line == "" {
			t.Errorf("line %d: expected a non-empty alignment string", i)
		}
	}
}

func TestAlignerLoadDictionaryMalformedLine(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAligner(cfg)
	err := a.LoadDictionary(strings.NewReader("no_tab_here\n"))
	if err == nil {
		t.Fatal("expected a MalformedEntryError")
	}
	if _, ok := err.(*MalformedEntryError); !ok {
		t.Errorf("expected *MalformedEntryError; got %T", err)
	}
}

func TestAlignerLoadDictionarySkipsInfeasibleEntries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seq1Del = false
	cfg.Seq2Del = false
	cfg.Seq1Max, cfg.Seq2Max = 1, 1
	a := NewAligner(cfg)
	// "a" -> "x y" cannot align 1-for-1 with no deletions permitted;
	// LoadDictionary should log and skip it rather than failing the
	// whole load.
	dict := "a\tx y\nb\tz\n"
	if err := a.LoadDictionary(strings.NewReader(dict)); err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if a.NumEntries() != 1 {
		t.Fatalf("expected the infeasible entry to be skipped, leaving 1; got %d", a.NumEntries())
	}
}

func TestAlignerSymbolTableReservesVestigialSlots(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAligner(cfg)
	syms := a.Symbols()
	if syms.Len() < 5 {
		t.Fatalf("expected at least 5 reserved symbols (eps, skip, 3 bookkeeping slots); got %d", syms.Len())
	}
	if l, ok := syms.GetLabel(cfg.Eps); !ok || l != EpsilonLabel {
		t.Errorf("expected %q at label %d", cfg.Eps, EpsilonLabel)
	}
}

func TestSplitFieldEmptyDelimSplitsRunes(t *testing.T) {
	got := splitField("cat", "")
	want := []string{"c", "a", "t"}
	if len(got) != len(want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q; got %q", i, want[i], got[i])
		}
	}
}

func TestSplitFieldWithDelim(t *testing.T) {
	got := splitField("k a t", " ")
	want := []string{"k", "a", "t"}
	if len(got) != len(want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q; got %q", i, want[i], got[i])
		}
	}
}
