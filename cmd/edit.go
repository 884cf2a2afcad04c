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
)

type editCmd struct {
	bank   string
	typ    string
	amount string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an asset's bank, type or amount" }
func (*editCmd) Usage() string {
	return `mn edit <asset-id> [-bank <name>] [-type <asset-type>] [-amount <value>]

  Edits the three mutable fields in place. Omitted flags keep the
  current value. Validation failures are reported per field and nothing
  is sent until the whole form is valid.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bank, "bank", "", "New holder name.")
	f.StringVar(&c.typ, "type", "", "New asset type.")
	f.StringVar(&c.amount, "amount", "", "New balance, non-negative.")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mn edit <asset-id> [flags]")
		return subcommands.ExitUsageError
	}

	view := moneta.NewDetailView(newService())
	if err := view.Load(ctx, f.Arg(0)); err != nil {
		surface(notifier{}, err)
		return subcommands.ExitFailure
	}

	// The form starts pre-filled with the current values; flags are the
	// user's changes on top.
	view.BeginEdit()
	form := view.Form()
	if c.bank != "" {
		form.Bank = c.bank
	}
	if c.typ != "" {
		form.Type = c.typ
	}
	if c.amount != "" {
		form.Amount = c.amount
	}
	view.SetForm(form)

	if err := view.SubmitEdit(ctx); err != nil {
		var ve *moneta.ValidationError
		if errors.As(err, &ve) {
			inlineErrors(err)
			return subcommands.ExitUsageError
		}
		// Remote failure: the view stays in edit mode with the form
		// intact; here that means the user re-runs the same command.
		surface(notifier{}, err)
		return subcommands.ExitFailure
	}

	notifier{}.Success(moneta.KeyEditSaved)
	a, _ := view.Asset()
	fmt.Printf("%s: %s %s, %s\n", a.ID, a.Bank, a.Type, a.Amount)
	// Keep the acknowledgment on screen briefly before handing the
	// terminal back, as the edit screen does before navigating away.
	time.Sleep(moneta.SuccessDismissDelay)
	return subcommands.ExitSuccess
}
