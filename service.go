package moneta

import "context"

// Ports for the outbound collaborators. The view-models consume narrow
// interfaces so that screens, tests and the HTTP client stay decoupled.

type (
	// AssetReader is the read side of the remote asset service.
	AssetReader interface {
		// Total returns the grand total over all assets, in the user's
		// default currency.
		Total(ctx context.Context) (Money, error)
		// GroupedTotals returns the totals bucketed by the dimension.
		GroupedTotals(ctx context.Context, by GroupBy) ([]Group, error)
		// List returns the flat asset list shaped by the query.
		List(ctx context.Context, q ListQuery) ([]Asset, error)
		// History returns one asset's transactions and aggregate summary.
		History(ctx context.Context, assetID string) (History, error)
		// Asset returns one asset by id.
		Asset(ctx context.Context, assetID string) (Asset, error)
	}

	// AssetWriter is the write side of the remote asset service. Every
	// mutation is performed and guaranteed atomic remotely; callers
	// reconcile by refetching, never by applying a local delta.
	AssetWriter interface {
		Insert(ctx context.Context, d AssetDraft) (Asset, error)
		Edit(ctx context.Context, assetID string, e AssetEdit) (Asset, error)
		Delete(ctx context.Context, assetID string) error
		Transfer(ctx context.Context, o TransferOrder) error
	}

	// AssetService is the full remote contract.
	AssetService interface {
		AssetReader
		AssetWriter
	}

	// Notifier is the fire-and-forget transient message surface. The
	// view-models do not await or retry on it.
	Notifier interface {
		Success(key string)
		Error(text string)
	}
)

// ListQuery shapes the flat list read.
type ListQuery struct {
	SortBy      SortField
	Order       SortOrder
	PayableOnly bool
}

// SortField is a sortable column of the asset list.
type SortField string

const (
	SortByAmount SortField = "amount"
	SortByBank   SortField = "bank"
	SortByType   SortField = "asset_type"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Descending SortOrder = "desc"
	Ascending  SortOrder = "asc"
)

// AssetDraft is the payload of an insert.
type AssetDraft struct {
	Bank      string
	Type      AssetType
	Currency  string
	Amount    Money
	IsPayable bool
}

// AssetEdit is the payload of an edit: the three mutable fields.
type AssetEdit struct {
	Bank   string
	Type   AssetType
	Amount Money
}

// TransferOrder is the wire payload of a transfer submission.
type TransferOrder struct {
	FromID string
	ToID   string
	Amount Money
}
