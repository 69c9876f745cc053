package g2pa

import (
	"bytes"
	"encoding/gob"
)

// MarshalBinary gob-encodes the model's current estimate table (the
// same gob idiom the teacher uses for Vocab, adapted in symtab_io.go).
// Only estimate is persisted: accum and the two running totals are
// mid-E-step scratch state with no meaning outside a live Train() call.
func (m *AlignmentModel) MarshalBinary() (data []byte, err error) {
	var buf bytes.Buffer
	if err = gob.NewEncoder(&buf).Encode(m.estimate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into a fresh
// estimate table, the way NewAlignmentModel would have left it: accum
// empty, both totals at the semiring zero.
func (m *AlignmentModel) UnmarshalBinary(data []byte) error {
	var estimate map[Label]Weight
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&estimate); err != nil {
		return err
	}
	m.estimate = estimate
	m.accum = make(map[Label]Weight)
	m.total = LogZero
	m.prevTotal = LogZero
	return nil
}
