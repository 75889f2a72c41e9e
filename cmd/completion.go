package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command, len(Commands)),
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"data-dir": predict.Dirs("*"),
		},
	}
	for _, e := range Commands {
		fs := flag.NewFlagSet(e.Command.Name(), flag.ContinueOnError)
		e.Command.SetFlags(fs)

		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		root.Sub[e.Command.Name()] = sub
	}
	return root
}

// flagPredictor returns nil for boolean flags, which take no value.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return nil
	}
	if f.Name == "d" {
		return predict.Set{f.DefValue}
	}
	return predict.Something
}
