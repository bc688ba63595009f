package cmd

import (
	"flag"

	"github.com/etnz/networth"
	"github.com/etnz/networth/docs"
	"github.com/etnz/networth/store"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the nw command line, built from
// the flags of every command in Commands.
//
// Install it with "COMP_INSTALL=1 nw".
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine, globalPredictors()),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Command.Name(), flag.ContinueOnError)
		c.Command.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs, commandPredictors[c.Command.Name()])}
		if args, ok := argPredictors[c.Command.Name()]; ok {
			sub.Args = args()
		}
		root.Sub[c.Command.Name()] = sub
	}
	return root
}

// flagPredictors predicts every flag of fs: values from known, nothing for
// booleans and anything otherwise.
func flagPredictors(fs *flag.FlagSet, known map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := known[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

func globalPredictors() map[string]complete.Predictor {
	backends := predict.Set{}
	for _, b := range store.BackendTypes {
		backends = append(backends, b.String())
	}
	return map[string]complete.Predictor{
		"backend":     backends,
		"data-dir":    predict.Dirs("*"),
		"sqlite-path": predict.Files("*.db"),
	}
}

func assetCategories() predict.Set {
	var s predict.Set
	for _, c := range networth.AssetCategories {
		s = append(s, string(c))
	}
	return s
}

func liabilityCategories() predict.Set {
	var s predict.Set
	for _, c := range networth.LiabilityCategories {
		s = append(s, string(c))
	}
	return s
}

func presetNames[C networth.AssetCategory | networth.LiabilityCategory](presets []networth.Preset[C]) predict.Set {
	var s predict.Set
	for _, p := range presets {
		s = append(s, p.Name)
	}
	return s
}

// commandPredictors are the flag values known per command.
var commandPredictors = map[string]map[string]complete.Predictor{
	"add-asset": {
		"c":      assetCategories(),
		"preset": presetNames(networth.AssetPresets),
	},
	"add-liability": {
		"c":      liabilityCategories(),
		"preset": presetNames(networth.LiabilityPresets),
	},
	"update": {
		"c": append(assetCategories(), liabilityCategories()...),
	},
	"export": {
		"o": predict.Files("*"),
	},
}

// argPredictors predict the positional arguments per command.
var argPredictors = map[string]func() complete.Predictor{
	"export": func() complete.Predictor { return predict.Set{"csv", "md"} },
	"topic": func() complete.Predictor {
		topics, err := docs.GetAllTopics()
		if err != nil {
			return predict.Nothing
		}
		return predict.Set(topics)
	},
}
