package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"moneta"
)

type deleteCmd struct {
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an asset (requires -yes)" }
func (*deleteCmd) Usage() string {
	return `mn delete <asset-id> -yes

  Deletes the asset on the remote service. Deletion is irreversible, so
  the -yes flag is the explicit confirmation gate: without it nothing
  is sent.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion.")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mn delete <asset-id> -yes")
		return subcommands.ExitUsageError
	}

	view := moneta.NewDetailView(newService())
	if err := view.Load(ctx, f.Arg(0)); err != nil {
		surface(notifier{}, err)
		return subcommands.ExitFailure
	}

	a, _ := view.Asset()
	if err := view.Delete(ctx, c.yes); err != nil {
		if errors.Is(err, moneta.ErrConfirmationRequired) {
			fmt.Fprintf(os.Stderr, "about to delete %s (%s, %s); re-run with -yes to confirm\n",
				a.ID, a.Bank, a.Amount)
			return subcommands.ExitUsageError
		}
		surface(notifier{}, err)
		return subcommands.ExitFailure
	}

	notifier{}.Success(moneta.KeyDeleteDone)
	return subcommands.ExitSuccess
}
