package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"moneta"
	"moneta/renderer"
)

type assetCmd struct{}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "display one asset with its transaction history" }
func (*assetCmd) Usage() string {
	return `mn asset <asset-id>

  Shows the asset's fields, its aggregate flow summary, and its history.
  Foreign-currency transactions are shown with the converted amount in
  the asset's currency alongside the native one.
`
}

func (c *assetCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mn asset <asset-id>")
		return subcommands.ExitUsageError
	}

	view := moneta.NewDetailView(newService())
	if err := view.Focus(ctx, f.Arg(0)); err != nil {
		// The asset itself could not load; there is nothing to render.
		surface(notifier{}, err)
		return subcommands.ExitFailure
	}

	a, _ := view.Asset()
	h, histErr := view.History()
	if histErr != nil {
		// History is independent: the static fields still render below.
		surface(notifier{}, histErr)
	}
	printMarkdown(renderer.DetailMarkdown(a, h, histErr, loc))
	return subcommands.ExitSuccess
}
