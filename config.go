package g2pa

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Config holds the tunable parameters of the aligner (spec.md §6.3).
// A zero Config is not usable; build one with DefaultConfig.
type Config struct {
	// Seq1Max is the maximum input-chunk length, in tokens.
	Seq1Max int `toml:"seq1_max"`
	// Seq2Max is the maximum output-chunk length, in tokens.
	Seq2Max int `toml:"seq2_max"`
	// Iter is the number of EM iterations the driver runs.
	Iter int `toml:"iter"`
	// Seq1Del permits insertions (a skip on the input side).
	Seq1Del bool `toml:"seq1_del"`
	// Seq2Del permits deletions (a skip on the output side).
	Seq2Del bool `toml:"seq2_del"`
	// Restrict forbids joint arcs with both chunk lengths > 1.
	Restrict bool `toml:"restrict"`
	// Seq1Sep joins multi-token input chunks.
	Seq1Sep string `toml:"seq1_sep"`
	// Seq2Sep joins multi-token output chunks.
	Seq2Sep string `toml:"seq2_sep"`
	// S1S2Sep separates the two sides of an AlignmentToken.
	S1S2Sep string `toml:"s1s2_sep"`
	// Eps is the epsilon symbol string, reserved as label 0.
	Eps string `toml:"eps"`
	// Skip is the skip-symbol string, reserved as label 1.
	Skip string `toml:"skip"`
	// S1CharDelim splits the input field of a dictionary line. Empty
	// means split into individual runes.
	S1CharDelim string `toml:"s1_char_delim"`
	// S2CharDelim splits the output field of a dictionary line.
	S2CharDelim string `toml:"s2_char_delim"`
	// Thresh is an optional delta below which Train stops early. Zero
	// disables early stopping (the driver always runs exactly Iter
	// iterations plus the closing round).
	Thresh float64 `toml:"thresh"`
}

// DefaultConfig returns the configuration table from spec.md §6.3.
func DefaultConfig() Config {
	return Config{
		Seq1Max:     2,
		Seq2Max:     2,
		Iter:        11,
		Seq1Del:     true,
		Seq2Del:     true,
		Restrict:    true,
		Seq1Sep:     "|",
		Seq2Sep:     "|",
		S1S2Sep:     "}",
		Eps:         "<eps>",
		Skip:        "_",
		S1CharDelim: "",
		S2CharDelim: " ",
		Thresh:      1e-10,
	}
}

// RegisterFlags adds pflag long flags for every Config field to fs,
// defaulted from cfg, and returns a closure that builds a Config from
// the parsed flag values. Mirrors the dekarrin-tunaq cmd/tqi pattern of
// package-level pflag.*P vars, but scoped to a single FlagSet so it can
// be called from tests without touching pflag.CommandLine.
func RegisterFlags(fs *pflag.FlagSet, cfg Config) func() Config {
	seq1Max := fs.Int("seq1_max", cfg.Seq1Max, "max input chunk length in tokens")
	seq2Max := fs.Int("seq2_max", cfg.Seq2Max, "max output chunk length in tokens")
	iter := fs.Int("iter", cfg.Iter, "number of EM iterations")
	seq1Del := fs.Bool("seq1_del", cfg.Seq1Del, "permit insertions (skip on input side)")
	seq2Del := fs.Bool("seq2_del", cfg.Seq2Del, "permit deletions (skip on output side)")
	restrict := fs.Bool("restrict", cfg.Restrict, "forbid joint arcs with both chunk lengths > 1")
	seq1Sep := fs.String("seq1_sep", cfg.Seq1Sep, "multi-token joiner for input chunks")
	seq2Sep := fs.String("seq2_sep", cfg.Seq2Sep, "multi-token joiner for output chunks")
	s1s2Sep := fs.String("s1s2_sep", cfg.S1S2Sep, "separator between the two sides of a token")
	eps := fs.String("eps", cfg.Eps, "epsilon string (label 0)")
	skip := fs.String("skip", cfg.Skip, "skip string (label 1)")
	s1CharDelim := fs.String("s1_char_delim", cfg.S1CharDelim, "input-field splitter")
	s2CharDelim := fs.String("s2_char_delim", cfg.S2CharDelim, "output-field splitter")
	thresh := fs.Float64("thresh", cfg.Thresh, "optional early-stop delta; 0 disables")

	return func() Config {
		return Config{
			Seq1Max:     *seq1Max,
			Seq2Max:     *seq2Max,
			Iter:        *iter,
			Seq1Del:     *seq1Del,
			Seq2Del:     *seq2Del,
			Restrict:    *restrict,
			Seq1Sep:     *seq1Sep,
			Seq2Sep:     *seq2Sep,
			S1S2Sep:     *s1s2Sep,
			Eps:         *eps,
			Skip:        *skip,
			S1CharDelim: *s1CharDelim,
			S2CharDelim: *s2CharDelim,
			Thresh:      *thresh,
		}
	}
}

// LoadConfigTOML reads a Config from a TOML file, starting from
// DefaultConfig so that a file only needs to mention the fields it
// overrides. Unmarshaling follows the same toml.Unmarshal idiom
// dekarrin-tunaq uses in internal/tqw/marshaling.go.
func LoadConfigTOML(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
