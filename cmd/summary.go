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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	sort    string
	order   string
	payable bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the asset catalog with totals and breakdowns" }
func (*summaryCmd) Usage() string {
	return `mn summary [-sort <field>] [-order <asc|desc>] [-payable]

  Displays the grand total, the by-type and by-bank distributions, and
  the flat asset list. Each run starts from the default view (amount
  descending, all assets) exactly like re-entering the screen.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", string(moneta.SortByAmount), "Sort field: amount, bank or asset_type.")
	f.StringVar(&c.order, "order", string(moneta.Descending), "Sort order: asc or desc.")
	f.BoolVar(&c.payable, "payable", false, "Show payable assets only.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog := moneta.NewCatalog(newService())

	// Entering the screen: reset to defaults and refresh everything.
	// A failed slice keeps rendering the others, so errors here are
	// surfaced but not fatal.
	if err := catalog.Focus(ctx); err != nil {
		surface(notifier{}, err)
	}

	// Flag overrides are the user touching the sort/filter controls
	// after entry: they refetch the list view only.
	q := moneta.DefaultListQuery()
	if c.sort != string(q.SortBy) || c.order != string(q.Order) {
		if err := catalog.SetSort(ctx, moneta.SortField(c.sort), moneta.SortOrder(c.order)); err != nil {
			surface(notifier{}, err)
		}
	}
	if c.payable {
		if err := catalog.SetPayableOnly(ctx, true); err != nil {
			surface(notifier{}, err)
		}
	}

	snap := catalog.Snapshot()
	if snap.Errs.Total != nil && snap.Errs.ByType != nil && snap.Errs.ByBank != nil && snap.Errs.List != nil {
		fmt.Fprintln(os.Stderr, loc.T(moneta.KeyNothingFetched))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(snap, *defaultCurrency, loc))
	return subcommands.ExitSuccess
}
