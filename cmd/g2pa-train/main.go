// Command g2pa-train trains a joint-sequence alignment model from a
// pronunciation dictionary and prints the single best alignment for
// every entry, one per line (spec.md §6).
package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/kho/g2pa"
)

func main() {
	cfg := g2pa.DefaultConfig()
	configPath := pflag.String("config", "", "optional TOML file overriding the default configuration")
	getConfig := g2pa.RegisterFlags(pflag.CommandLine, cfg)
	pflag.Parse()

	if *configPath != "" {
		fileCfg, err := g2pa.LoadConfigTOML(*configPath)
		if err != nil {
			glog.Fatalf("loading config %s: %v", *configPath, err)
		}
		cfg = fileCfg
	} else {
		cfg = getConfig()
	}

	args := pflag.Args()
	if len(args) != 1 {
		glog.Fatal("usage: g2pa-train [flags] dictionary")
	}

	a := g2pa.NewAligner(cfg)
	if err := a.LoadDictionaryFile(args[0]); err != nil {
		glog.Fatalf("loading dictionary %s: %v", args[0], err)
	}
	glog.Infof("loaded %d entries", a.NumEntries())

	a.Train()

	if err := a.WriteAlignments(os.Stdout); err != nil {
		glog.Fatalf("writing alignments: %v", err)
	}
}
