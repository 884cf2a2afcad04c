// Package cmd implements the CLI application. Each screen of the client
// is one subcommand; a main package calls Commands() to register them.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"moneta"
	"moneta/api"
)

// Commands lists every screen, in help order.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&summaryCmd{},
		&assetCmd{},
		&addCmd{},
		&editCmd{},
		&deleteCmd{},
		&transferCmd{},
		&topicCmd{},
	}
}

// as a CLI application it has a very short lived lifecycle, so it is ok
// to use global variables for the shared configuration.

var baseURL = flag.String("base-url", envOr("MONETA_BASE_URL", "https://api.moneta.local"), "Base URL of the remote asset service")
var defaultCurrency = flag.String("currency", envOr("MONETA_CURRENCY", "EUR"), "The user's default currency for totals")

// loc is the shipped localization table. Core code emits keys only.
var loc = moneta.DefaultLocalizer()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newService builds the remote client for one screen. The bearer token
// comes from the environment only: an empty token does not fail here, it
// short-circuits every call with CredentialMissing instead.
func newService() *api.Client {
	return api.New(*baseURL, os.Getenv("MONETA_TOKEN"), *defaultCurrency)
}

// printMarkdown renders markdown for the terminal. On render failure the
// raw markdown is still printed: the screen content matters more than
// the styling.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}

// notifier is the transient message surface of the CLI: fire-and-forget
// lines on stderr, never awaited, never retried.
type notifier struct{}

func (notifier) Success(key string) { fmt.Fprintln(os.Stderr, "✅ "+loc.T(key)) }
func (notifier) Error(text string)  { fmt.Fprintln(os.Stderr, "❌ "+text) }

// surface routes a non-validation error to the notifier per the
// propagation policy: the remote message verbatim when present, a
// credential hint when the session is missing, a generic localized
// fallback otherwise. Session invalidation is handled here for every
// subsystem; no screen navigates anywhere on a 401.
func surface(n moneta.Notifier, err error) {
	if msg, ok := moneta.RemoteMessage(err); ok {
		n.Error(msg)
		return
	}
	if errors.Is(err, moneta.ErrCredentialMissing) {
		n.Error(loc.T(moneta.KeyCredentialMissing))
		return
	}
	n.Error(loc.T(moneta.KeyRemoteUnavailable))
}

// inlineErrors prints validation failures next to their field names, one
// line per field. Validation never goes through the notifier.
func inlineErrors(err error) {
	type multi interface{ Unwrap() []error }
	errs := []error{err}
	if m, ok := err.(multi); ok {
		errs = m.Unwrap()
	}
	for _, e := range errs {
		var ve *moneta.ValidationError
		if errors.As(e, &ve) {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", ve.Field, loc.T(ve.Key))
			continue
		}
		fmt.Fprintf(os.Stderr, "  %v\n", e)
	}
}
