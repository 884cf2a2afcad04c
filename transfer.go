package moneta

import (
	"context"
	"errors"
	"time"
)

// TransferState is the engine's position in its lifecycle:
//
//	Idle -> Validating -> { Invalid -> Idle
//	                      | Submitting -> { Success -> Idle
//	                                      | Failed  -> Idle } }
//
// Success, Failed and Invalid are transient: the engine always comes to
// rest in Idle, with the last outcome queryable separately.
type TransferState int

const (
	StateIdle TransferState = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s TransferState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Reason is a transfer validation failure. Reasons are recovered locally
// and rendered inline next to the offending control, never as a toast.
type Reason string

func (r Reason) Error() string { return string(r) }

const (
	MissingSource      Reason = "missing source"
	MissingDestination Reason = "missing destination"
	SameAsset          Reason = "same asset on both sides"
	InvalidAmount      Reason = "invalid amount"
	InsufficientFunds  Reason = "insufficient funds"
)

// Key returns the localization key for the reason.
func (r Reason) Key() string {
	switch r {
	case MissingSource:
		return KeyMissingSource
	case MissingDestination:
		return KeyMissingDestination
	case SameAsset:
		return KeySameAsset
	case InvalidAmount:
		return KeyInvalidAmount
	case InsufficientFunds:
		return KeyInsufficientFunds
	}
	return string(r)
}

// ErrSubmitInFlight rejects a second submission while one is running.
// Transfers are not idempotent from the client's perspective: retrying a
// transfer that succeeded server-side but whose response was lost would
// double-move funds, so the submit control stays disabled for the whole
// Submitting state.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// SuccessDismissDelay is the fixed user-visible pause between a success
// acknowledgment and leaving the screen, so the acknowledgment is
// readable.
const SuccessDismissDelay = 1500 * time.Millisecond

// Advisory is the non-fatal cross-currency warning: the service will
// convert server-side, and the transfer is still submittable.
type Advisory struct {
	FromCurrency string
	ToCurrency   string
}

// TransferEngine validates and executes a transfer described by the
// picker's pair and a user-entered amount. The intent is ephemeral and
// client-local: created when the screen opens, destroyed on submission or
// on navigating away, never persisted.
type TransferEngine struct {
	svc     AssetWriter
	picker  *Picker
	refetch func(context.Context)

	amountInput string
	state       TransferState
	outcome     TransferState // last transient outcome: Invalid, Success or Failed
}

// NewTransferEngine wires the engine to the write service, the selection
// picker and the post-resolve refetch hook. refetch runs after every
// submission resolves, positively or negatively: both balances changed
// remotely (or did not), and only the server knows which, so the client
// refetches instead of ever applying a local delta. refetch may be nil.
func NewTransferEngine(svc AssetWriter, picker *Picker, refetch func(context.Context)) *TransferEngine {
	return &TransferEngine{svc: svc, picker: picker, refetch: refetch, state: StateIdle}
}

// SetAmount records the raw user input; parsing happens at validation.
func (e *TransferEngine) SetAmount(input string) { e.amountInput = input }

// Picker exposes the engine's selection for the picking screen.
func (e *TransferEngine) Picker() *Picker { return e.picker }

// State returns the engine's current lifecycle state.
func (e *TransferEngine) State() TransferState { return e.state }

// Outcome returns the transient state the last run passed through before
// coming back to rest: StateInvalid, StateSuccess or StateFailed.
func (e *TransferEngine) Outcome() TransferState { return e.outcome }

// Advisory returns the cross-currency advisory when the two selected
// assets are denominated differently. It is not a validation failure.
func (e *TransferEngine) Advisory() (Advisory, bool) {
	from, okF := e.picker.From()
	to, okT := e.picker.To()
	if !okF || !okT || from.Currency == to.Currency {
		return Advisory{}, false
	}
	return Advisory{FromCurrency: from.Currency, ToCurrency: to.Currency}, true
}

// Validate runs the checks in order; the first failure wins because each
// subsequent check depends on the previous one being satisfiable. On
// success it returns the order ready for submission.
func (e *TransferEngine) Validate() (TransferOrder, error) {
	e.state = StateValidating
	order, err := e.validate()
	if err != nil {
		e.outcome = StateInvalid
		e.state = StateIdle
		return TransferOrder{}, err
	}
	e.state = StateIdle
	return order, nil
}

func (e *TransferEngine) validate() (TransferOrder, error) {
	from, ok := e.picker.From()
	if !ok {
		return TransferOrder{}, MissingSource
	}
	to, ok := e.picker.To()
	if !ok {
		return TransferOrder{}, MissingDestination
	}
	// The picker makes this unrepresentable; still rejected in case the
	// pair was assembled some other way.
	if from.ID == to.ID {
		return TransferOrder{}, SameAsset
	}
	amount, err := ParseMoney(e.amountInput, from.Currency)
	if err != nil || !amount.IsPositive() {
		return TransferOrder{}, InvalidAmount
	}
	// Boundary inclusive: transferring the full balance is allowed.
	if amount.GreaterThan(from.Amount) {
		return TransferOrder{}, InsufficientFunds
	}
	return TransferOrder{FromID: from.ID, ToID: to.ID, Amount: amount}, nil
}

// Submit validates and submits the transfer. On success the intent is
// cleared; on failure it stays intact so the user does not re-enter the
// form. Either way the refetch hook runs once the remote call resolves.
func (e *TransferEngine) Submit(ctx context.Context) error {
	if e.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	order, err := e.Validate()
	if err != nil {
		return err
	}

	e.state = StateSubmitting
	err = e.svc.Transfer(ctx, order)
	if e.refetch != nil {
		e.refetch(ctx)
	}
	if err != nil {
		e.outcome = StateFailed
		e.state = StateIdle
		return err
	}

	e.outcome = StateSuccess
	e.picker.from, e.picker.to = nil, nil
	e.amountInput = ""
	e.state = StateIdle
	return nil
}
