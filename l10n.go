package moneta

// Localizer resolves a message key into user-facing text. The view-models
// only ever emit keys; the surrounding UI decides the language.
type Localizer interface {
	T(key string) string
}

// Keys emitted by the view-models. The shipped default table is English;
// a different Localizer swaps the language without touching this package.
const (
	KeyEditSaved          = "asset.edit.saved"
	KeyEditFailed         = "asset.edit.failed"
	KeyDeleteDone         = "asset.delete.done"
	KeyDeleteFailed       = "asset.delete.failed"
	KeyInsertDone         = "asset.insert.done"
	KeyTransferDone       = "transfer.done"
	KeyTransferFailed     = "transfer.failed"
	KeyCredentialMissing  = "error.credential_missing"
	KeyRemoteUnavailable  = "error.remote_unavailable"
	KeyBankEmpty          = "validate.bank_empty"
	KeyTypeUnknown        = "validate.type_unknown"
	KeyAmountInvalid      = "validate.amount_invalid"
	KeyAmountNegative     = "validate.amount_negative"
	KeyCurrencyUnknown    = "validate.currency_unknown"
	KeyMissingSource      = "transfer.missing_source"
	KeyMissingDestination = "transfer.missing_destination"
	KeyInvalidAmount      = "transfer.invalid_amount"
	KeyInsufficientFunds  = "transfer.insufficient_funds"
	KeySameAsset          = "transfer.same_asset"
	KeyCrossCurrency      = "transfer.cross_currency"
	KeyNoData             = "chart.no_data"
	KeyNothingFetched     = "error.nothing_fetched"
)

// MapLocalizer is a table-backed Localizer. Missing keys resolve to the
// key itself, so a hole in the table is visible instead of silent.
type MapLocalizer map[string]string

func (m MapLocalizer) T(key string) string {
	if s, ok := m[key]; ok {
		return s
	}
	return key
}

// DefaultLocalizer returns the English table shipped with the binary.
func DefaultLocalizer() Localizer {
	return MapLocalizer{
		KeyEditSaved:          "asset saved",
		KeyEditFailed:         "could not save the asset",
		KeyDeleteDone:         "asset deleted",
		KeyDeleteFailed:       "could not delete the asset",
		KeyInsertDone:         "asset created",
		KeyTransferDone:       "transfer completed",
		KeyTransferFailed:     "transfer failed",
		KeyCredentialMissing:  "no session: set MONETA_TOKEN and retry",
		KeyRemoteUnavailable:  "the service did not answer, retry later",
		KeyBankEmpty:          "holder name cannot be empty",
		KeyTypeUnknown:        "unknown asset type",
		KeyAmountInvalid:      "amount must be a number",
		KeyAmountNegative:     "amount cannot be negative",
		KeyCurrencyUnknown:    "unknown currency code",
		KeyMissingSource:      "pick a source asset",
		KeyMissingDestination: "pick a destination asset",
		KeyInvalidAmount:      "amount must be a positive number",
		KeyInsufficientFunds:  "amount exceeds the source balance",
		KeySameAsset:          "source and destination must differ",
		KeyCrossCurrency:      "currencies differ, the service will convert",
		KeyNoData:             "no data",
		KeyNothingFetched:     "nothing could be fetched",
	}
}
