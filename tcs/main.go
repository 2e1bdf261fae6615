package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/khliang/tradecost/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	// shell completion: a no-op unless invoked by the completion machinery
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"spot":    {Flags: map[string]complete.Predictor{"a": nil, "s": nil, "e": nil}},
			"perp":    {Flags: map[string]complete.Predictor{"a": nil, "s": nil, "e": nil}},
			"csv":     {Flags: map[string]complete.Predictor{"f": nil, "a": nil, "i": nil}},
			"convert": {Flags: map[string]complete.Predictor{"p": nil}},
		},
	}
	completion.Complete("tcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
