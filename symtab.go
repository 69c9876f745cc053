package g2pa

import "math"

// Label identifies an AlignmentToken (or the reserved epsilon/skip
// strings) within a SymbolTable. Mirrors the teacher's WordId: a dense,
// gap-free integer handle into a shared string table (fslm.go's Vocab).
type Label uint32

// EpsilonLabel is the reserved label for the epsilon string; always 0.
const EpsilonLabel Label = 0

// SymbolTable is a bidirectional mapping between textual symbols and
// dense integer Labels, append-only once a mapping is made (spec.md
// §4.1). The zero value is not usable; construct with NewSymbolTable.
type SymbolTable struct {
	id2str []string
	str2id map[string]Label
}

// NewSymbolTable returns an empty table. eps becomes label 0
// unconditionally; callers add further reserved symbols (skip, etc.)
// with AddSymbol immediately afterwards.
func NewSymbolTable(eps string) *SymbolTable {
	t := &SymbolTable{
		id2str: make([]string, 0, 8),
		str2id: make(map[string]Label, 8),
	}
	label := t.AddSymbol(eps)
	if label != EpsilonLabel {
		panic("g2pa: NewSymbolTable must be the first call on a fresh table")
	}
	return t
}

// AddSymbol returns s's existing label, or assigns and returns the next
// free one. Labels are dense and never reassigned or removed.
func (t *SymbolTable) AddSymbol(s string) Label {
	if l, ok := t.str2id[s]; ok {
		return l
	}
	next := len(t.id2str)
	if next > math.MaxUint32 {
		panic((&SymbolOverflowError{Want: next}).Error())
	}
	l := Label(next)
	t.id2str = append(t.id2str, s)
	t.str2id[s] = l
	return l
}

// GetLabel looks up s without inserting it.
func (t *SymbolTable) GetLabel(s string) (Label, bool) {
	l, ok := t.str2id[s]
	return l, ok
}

// GetSymbol looks up the string for l.
func (t *SymbolTable) GetSymbol(l Label) (string, bool) {
	if int(l) < 0 || int(l) >= len(t.id2str) {
		return "", false
	}
	return t.id2str[l], true
}

// Len returns one past the highest assigned label.
func (t *SymbolTable) Len() int { return len(t.id2str) }
