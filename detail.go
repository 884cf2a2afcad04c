package moneta

import (
	"context"
	"errors"
	"strings"
)

// ErrConfirmationRequired gates destructive actions: deletion and
// transfer submission both demand an explicit confirmation before the
// irreversible remote call is made.
var ErrConfirmationRequired = errors.New("explicit confirmation required")

// EditForm carries the three mutable fields of an asset as entered by the
// user, before validation.
type EditForm struct {
	Bank   string
	Type   string
	Amount string
}

// DetailView shows one asset's full detail: static fields, aggregate
// summary and transaction history, plus in-place edit and delete.
type DetailView struct {
	svc AssetService

	asset   *Asset
	history *History
	histErr error

	editing bool
	form    EditForm
}

// NewDetailView creates the view-model for one asset's detail screen.
func NewDetailView(svc AssetService) *DetailView {
	return &DetailView{svc: svc}
}

// Load fetches the asset itself. History is loaded independently: a
// history failure must not block rendering the asset's static fields.
func (v *DetailView) Load(ctx context.Context, assetID string) error {
	a, err := v.svc.Asset(ctx, assetID)
	if err != nil {
		return err
	}
	v.asset = &a
	return nil
}

// LoadHistory fetches the transactions and the server-computed aggregate
// summary. The error is kept on the view so the screen can render the
// asset with a history-unavailable indicator.
func (v *DetailView) LoadHistory(ctx context.Context, assetID string) error {
	h, err := v.svc.History(ctx, assetID)
	if err != nil {
		v.histErr = err
		return err
	}
	v.history = &h
	v.histErr = nil
	return nil
}

// Focus resets any in-progress edit and reloads asset and history. Edit
// state is never preserved across navigation.
func (v *DetailView) Focus(ctx context.Context, assetID string) error {
	v.editing = false
	v.form = EditForm{}
	if err := v.Load(ctx, assetID); err != nil {
		return err
	}
	v.LoadHistory(ctx, assetID) // failure recorded, not fatal
	return nil
}

// Asset returns the loaded asset.
func (v *DetailView) Asset() (Asset, bool) {
	if v.asset == nil {
		return Asset{}, false
	}
	return *v.asset, true
}

// History returns the loaded history and the last history error.
func (v *DetailView) History() (*History, error) { return v.history, v.histErr }

// Editing reports whether the view is in edit mode.
func (v *DetailView) Editing() bool { return v.editing }

// BeginEdit enters edit mode pre-filled with the asset's current values.
func (v *DetailView) BeginEdit() {
	if v.asset == nil {
		return
	}
	v.editing = true
	v.form = EditForm{
		Bank:   v.asset.Bank,
		Type:   string(v.asset.Type),
		Amount: v.asset.Amount.Fixed(),
	}
}

// Form returns the in-progress edit form.
func (v *DetailView) Form() EditForm { return v.form }

// SetForm replaces the in-progress edit form.
func (v *DetailView) SetForm(f EditForm) { v.form = f }

// ValidateEdit checks the three fields independently and reports every
// failure together rather than short-circuiting on the first, so the
// user fixes the whole form in one pass. Each failure is a
// *ValidationError carrying the field and its localization key.
func ValidateEdit(f EditForm) (AssetEdit, error) {
	var errs []error

	bank := strings.TrimSpace(f.Bank)
	if bank == "" {
		errs = append(errs, &ValidationError{Field: "bank", Key: KeyBankEmpty})
	}

	typ, terr := ParseAssetType(f.Type)
	if terr != nil {
		errs = append(errs, &ValidationError{Field: "asset_type", Key: KeyTypeUnknown})
	}

	amount, aerr := ParseMoney(f.Amount, "")
	switch {
	case aerr != nil:
		errs = append(errs, &ValidationError{Field: "amount", Key: KeyAmountInvalid})
	case amount.IsNegative():
		errs = append(errs, &ValidationError{Field: "amount", Key: KeyAmountNegative})
	}

	if err := errors.Join(errs...); err != nil {
		return AssetEdit{}, err
	}
	return AssetEdit{Bank: bank, Type: typ, Amount: amount}, nil
}

// SubmitEdit validates and submits the form. On success the view leaves
// edit mode and replaces its asset with the server's answer; the screen
// then returns to the previous one after SuccessDismissDelay. On failure
// the view stays in edit mode with the form intact.
func (v *DetailView) SubmitEdit(ctx context.Context) error {
	if v.asset == nil {
		return errors.New("no asset loaded")
	}
	edit, err := ValidateEdit(v.form)
	if err != nil {
		return err
	}
	edit.Amount = M(edit.Amount.Amount(), v.asset.Currency)

	updated, err := v.svc.Edit(ctx, v.asset.ID, edit)
	if err != nil {
		return err
	}
	v.asset = &updated
	v.editing = false
	v.form = EditForm{}
	return nil
}

// Delete removes the asset. The confirmed flag is the destructive-action
// gate: without it no remote call is made. Deletion is not undoable by
// this subsystem. On success the screen navigates back; on failure it
// stays with an error indicator.
func (v *DetailView) Delete(ctx context.Context, confirmed bool) error {
	if v.asset == nil {
		return errors.New("no asset loaded")
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	return v.svc.Delete(ctx, v.asset.ID)
}

// ValidateDraft checks an insert form: same rules as edit, plus the
// currency must be a known code. The per-field failures stay one level
// deep: the edit failures are re-joined flat, never nested.
func ValidateDraft(f EditForm, currency string, payable bool) (AssetDraft, error) {
	edit, err := ValidateEdit(f)
	var errs []error
	if err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, joined.Unwrap()...)
		} else {
			errs = append(errs, err)
		}
	}
	if !KnownCurrency(strings.TrimSpace(currency)) {
		errs = append(errs, &ValidationError{Field: "currency", Key: KeyCurrencyUnknown})
	}
	if err := errors.Join(errs...); err != nil {
		return AssetDraft{}, err
	}
	cur := strings.TrimSpace(currency)
	return AssetDraft{
		Bank:      edit.Bank,
		Type:      edit.Type,
		Currency:  cur,
		Amount:    M(edit.Amount.Amount(), cur),
		IsPayable: payable,
	}, nil
}
