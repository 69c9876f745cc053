// Package g2p is a placeholder for a word decoder built on top of a
// trained N-gram model (see package ngram). A real implementation would
// expand a word into its grapheme-cluster acceptor, compose it against
// the N-gram model, and take the cluster acceptor's shortest path — but
// since package ngram never produces a real model, G2P.Decode can never
// do anything useful and says so.
package g2p

import (
	"errors"
	"strings"

	"github.com/kho/g2pa"
)

// Config controls G2P.Decode's input segmentation.
type Config struct {
	// GraphemeSep splits a word into grapheme clusters. Empty means
	// split into individual runes.
	GraphemeSep string
	// Skip is the skip-symbol string. Decode does not use it, since it
	// never produces output.
	Skip string
}

// G2P holds an aligner's symbol table for decoding words against an
// N-gram model over its alignment labels. Its Decode always fails with
// ErrNoModel.
type G2P struct {
	Config Config
	Syms   *g2pa.SymbolTable
}

// New returns a G2P that will segment words against syms.
func New(cfg Config, syms *g2pa.SymbolTable) *G2P {
	return &G2P{Config: cfg, Syms: syms}
}

// ErrNoModel is returned by Decode: composing a word's grapheme-cluster
// acceptor against an N-gram model requires ngram.NGram.Train, which is
// not implemented.
var ErrNoModel = errors.New("g2p: decoding requires a trained N-gram model, which this repository does not build")

// Decode would expand word into grapheme clusters found in Syms, compose
// that acceptor against a trained N-gram model, and return the best
// phoneme sequence. It always fails with ErrNoModel.
func (g *G2P) Decode(word string) ([]string, float32, error) {
	if _, err := g.clusters(word); err != nil {
		return nil, 0, err
	}
	return nil, 0, ErrNoModel
}

func (g *G2P) clusters(word string) ([]string, error) {
	var parts []string
	if g.Config.GraphemeSep == "" {
		for _, r := range word {
			parts = append(parts, string(r))
		}
	} else {
		for _, p := range strings.Split(word, g.Config.GraphemeSep) {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	if len(parts) == 0 {
		return nil, errors.New("g2p: empty word")
	}
	return parts, nil
}
