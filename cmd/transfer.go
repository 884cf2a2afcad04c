package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"moneta"
	"moneta/renderer"
)

type transferCmd struct {
	from   string
	to     string
	amount string
	yes    bool
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move an amount from one asset to another" }
func (*transferCmd) Usage() string {
	return `mn transfer -from <asset-id> -to <asset-id> -amount <value> [-yes]

  Validates and submits a transfer. When -from or -to is missing the
  corresponding pick list is shown instead. Transfers crossing
  currencies carry an advisory; they are still submittable. The remote
  service moves the value atomically, and both balances are refetched
  afterwards, never patched locally.

Usage Examples:
$ mn transfer -from a1 -to b2 -amount 150
$ mn transfer -from a1 -to b2 -amount 150 -yes
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source asset id.")
	f.StringVar(&c.to, "to", "", "Destination asset id.")
	f.StringVar(&c.amount, "amount", "", "Amount to move, in the source currency.")
	f.BoolVar(&c.yes, "yes", false, "Confirm the submission.")
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := newService()
	catalog := moneta.NewCatalog(svc)
	picker := &moneta.Picker{}
	engine := moneta.NewTransferEngine(svc, picker, func(ctx context.Context) {
		// Reconciliation after the remote call resolves, either way.
		catalog.Refresh(ctx)
	})

	// A missing side turns this run into the picking screen.
	if c.from == "" || c.to == "" {
		if err := catalog.Focus(ctx); err != nil {
			surface(notifier{}, err)
		}
		snap := catalog.Snapshot()
		if c.from != "" {
			if a, ok := catalog.AssetByID(c.from); ok {
				picker.SelectFrom(a)
			}
		}
		if c.to != "" {
			if a, ok := catalog.AssetByID(c.to); ok {
				picker.SelectTo(a)
			}
		}
		side := moneta.SideFrom
		if c.from != "" {
			side = moneta.SideTo
		}
		printMarkdown(renderer.PickMarkdown(side, snap.Assets, picker))
		_, err := engine.Validate()
		fmt.Fprintf(os.Stderr, "  %s\n", reasonText(err))
		return subcommands.ExitUsageError
	}

	if err := picker.LoadPair(ctx, svc, c.from, c.to); err != nil {
		surface(notifier{}, err)
		return subcommands.ExitFailure
	}

	engine.SetAmount(c.amount)
	order, err := engine.Validate()
	if err != nil {
		// Validation reasons render inline next to the form, never as a
		// transient notification.
		fmt.Fprintf(os.Stderr, "  %s\n", reasonText(err))
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.TransferPreviewMarkdown(engine, order.Amount, loc))
	if !c.yes {
		fmt.Fprintln(os.Stderr, "re-run with -yes to submit")
		return subcommands.ExitUsageError
	}

	if err := engine.Submit(ctx); err != nil {
		var reason moneta.Reason
		if errors.As(err, &reason) {
			fmt.Fprintf(os.Stderr, "  %s\n", loc.T(reason.Key()))
			return subcommands.ExitUsageError
		}
		// The intent stays intact on failure; re-running the same
		// command is the retry. Generic fallback per policy.
		if msg, ok := moneta.RemoteMessage(err); ok {
			notifier{}.Error(msg)
		} else if errors.Is(err, moneta.ErrCredentialMissing) {
			notifier{}.Error(loc.T(moneta.KeyCredentialMissing))
		} else {
			notifier{}.Error(loc.T(moneta.KeyTransferFailed))
		}
		return subcommands.ExitFailure
	}

	notifier{}.Success(moneta.KeyTransferDone)
	printUpdatedPair(catalog, c.from, c.to)
	time.Sleep(moneta.SuccessDismissDelay)
	return subcommands.ExitSuccess
}

func reasonText(err error) string {
	var reason moneta.Reason
	if errors.As(err, &reason) {
		return loc.T(reason.Key())
	}
	return err.Error()
}

// printUpdatedPair shows the refetched balances of the two assets, the
// only balances the server has confirmed.
func printUpdatedPair(catalog *moneta.Catalog, fromID, toID string) {
	for _, id := range []string{fromID, toID} {
		if a, ok := catalog.AssetByID(id); ok {
			fmt.Printf("%s (%s): %s\n", a.Bank, a.ID, a.Amount)
		}
	}
}
