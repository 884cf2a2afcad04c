package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"moneta/cmd"
)

func main() {
	// A local .env is a convenience for the base URL, token and default
	// currency; absence is not an error.
	_ = godotenv.Load()

	// Shell completion for the subcommands and shared flags.
	complete.Complete("mn", &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":  {Flags: map[string]complete.Predictor{"sort": predict.Set{"amount", "bank", "asset_type"}, "order": predict.Set{"asc", "desc"}, "payable": predict.Nothing}},
			"asset":    {},
			"add":      {},
			"edit":     {},
			"delete":   {Flags: map[string]complete.Predictor{"yes": predict.Nothing}},
			"transfer": {Flags: map[string]complete.Predictor{"yes": predict.Nothing}},
			"topic":    {},
		},
		Flags: map[string]complete.Predictor{
			"base-url": predict.Nothing,
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF"},
		},
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
