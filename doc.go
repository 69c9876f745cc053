// Package g2pa implements a joint-sequence grapheme-to-phoneme (G2P)
// alignment model.
//
// Given a pronunciation dictionary — lines pairing an orthographic form
// with its phonetic form — the package builds, for each entry, a weighted
// lattice of every admissible joint alignment between the two sides, and
// then fits a shared per-token parameter table to all lattices at once
// using expectation-maximization. The fitted parameters pick out the
// single most likely alignment of each entry, which is the fundamental
// unit ("joint sequence") later consumed by an N-gram language-model
// trainer (see the ngram subpackage, which is a contract-level stub: the
// trainer itself is out of scope here).
package g2pa
