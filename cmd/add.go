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

type addCmd struct {
	bank     string
	typ      string
	currency string
	amount   string
	payable  bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create a new asset" }
func (*addCmd) Usage() string {
	return `mn add -bank <name> -type <asset-type> -currency <code> -amount <value> [-payable]

  Creates an asset on the remote service. All fields are validated
  locally first; every invalid field is reported, not just the first.

Usage Examples:
$ mn add -bank Revolut -type LIQUIDITY -currency EUR -amount 500 -payable
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bank, "bank", "", "Holder name (bank, broker, wallet).")
	f.StringVar(&c.typ, "type", "", "Asset type, e.g. LIQUIDITY, STOCK, CRYPTO.")
	f.StringVar(&c.currency, "currency", "", "ISO currency code, e.g. EUR.")
	f.StringVar(&c.amount, "amount", "", "Opening balance, non-negative.")
	f.BoolVar(&c.payable, "payable", false, "Mark the asset usable as a payment source.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	draft, err := moneta.ValidateDraft(moneta.EditForm{
		Bank:   c.bank,
		Type:   c.typ,
		Amount: c.amount,
	}, c.currency, c.payable)
	if err != nil {
		var ve *moneta.ValidationError
		if errors.As(err, &ve) {
			inlineErrors(err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	a, err := newService().Insert(ctx, draft)
	if err != nil {
		surface(notifier{}, err)
		return subcommands.ExitFailure
	}

	notifier{}.Success(moneta.KeyInsertDone)
	fmt.Printf("created asset %s (%s, %s)\n", a.ID, a.Bank, a.Amount)
	return subcommands.ExitSuccess
}
