package g2pa

import (
	"bytes"
	"encoding/gob"
)

// MarshalBinary gob-encodes the table (adapted from the teacher's own
// Vocab.MarshalBinary in vocab.go). Alignment symbol tables are at most
// a few tens of thousands of entries, so the gob encoder's overhead is
// never a practical concern.
func (t *SymbolTable) MarshalBinary() (data []byte, err error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err = enc.Encode(t.id2str); err != nil {
		return nil, err
	}
	if err = enc.Encode(t.str2id); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary. t is left in
// an invalid state if an error is returned.
func (t *SymbolTable) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&t.id2str); err != nil {
		return err
	}
	if err := dec.Decode(&t.str2id); err != nil {
		return err
	}
	return nil
}
