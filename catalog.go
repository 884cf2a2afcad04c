package moneta

import (
	"context"
	"errors"
	"sync"
)

// Catalog is the single source of truth for "what assets exist" on the
// catalog screen. It produces four views of the same underlying
// collection and keeps them refreshable as an atomic batch.
//
// Each screen owns its own Catalog over its own fresh snapshot: there is
// no cache shared across screens, so read-your-writes is not guaranteed
// between concurrently open views. A screen reconciles by refetching on
// focus.
type Catalog struct {
	reader AssetReader

	mu   sync.Mutex
	q    ListQuery
	snap Snapshot
}

// Snapshot is the catalog's last fetched state. Slices keep their
// last-known value when their own read fails; Errs records which reads
// failed. The four values are informationally independent, so partial
// success is acceptable.
type Snapshot struct {
	Total  Money
	ByType []Group
	ByBank []Group
	Assets []Asset
	Errs   SliceErrors
}

// SliceErrors holds the per-slice outcome of the last refresh. The
// aggregate error state is reported per slice, never globally.
type SliceErrors struct {
	Total  error
	ByType error
	ByBank error
	List   error
}

// Any returns the per-slice errors joined, or nil when all reads passed.
func (e SliceErrors) Any() error {
	return errors.Join(e.Total, e.ByType, e.ByBank, e.List)
}

// DefaultListQuery is the state every focus resets to.
func DefaultListQuery() ListQuery {
	return ListQuery{SortBy: SortByAmount, Order: Descending, PayableOnly: false}
}

// NewCatalog creates a catalog view-model in its default (focused) state.
func NewCatalog(reader AssetReader) *Catalog {
	return &Catalog{reader: reader, q: DefaultListQuery()}
}

// Query returns the current sort/filter configuration.
func (c *Catalog) Query() ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.q
}

// Snapshot returns the last fetched state.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Focus resets all filter/sort state to the defaults and runs a full
// refresh. Screens call it on every (re-)entry: the view never trusts
// stale client state across navigations.
func (c *Catalog) Focus(ctx context.Context) error {
	c.mu.Lock()
	c.q = DefaultListQuery()
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh issues the four underlying reads concurrently. A failed read
// leaves its slice at the last-known value and records the error; the
// other slices still update. The returned error joins the per-slice
// failures and is nil only when all four reads passed.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.mu.Lock()
	q := c.q
	c.mu.Unlock()

	var (
		wg     sync.WaitGroup
		total  Money
		byType []Group
		byBank []Group
		assets []Asset
		errs   SliceErrors
	)

	// The four fetches are awaited independently: none blocks another,
	// and each may complete, fail or be slow on its own. This is a plain
	// fan-out rather than an errgroup because a single failure must not
	// cancel the sibling reads.
	wg.Add(4)
	go func() { defer wg.Done(); total, errs.Total = c.reader.Total(ctx) }()
	go func() { defer wg.Done(); byType, errs.ByType = c.reader.GroupedTotals(ctx, ByType) }()
	go func() { defer wg.Done(); byBank, errs.ByBank = c.reader.GroupedTotals(ctx, ByBank) }()
	go func() { defer wg.Done(); assets, errs.List = c.reader.List(ctx, q) }()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if errs.Total == nil {
		c.snap.Total = total
	}
	if errs.ByType == nil {
		c.snap.ByType = byType
	}
	if errs.ByBank == nil {
		c.snap.ByBank = byBank
	}
	if errs.List == nil {
		c.snap.Assets = assets
	}
	c.snap.Errs = errs
	return errs.Any()
}

// SetSort changes the list ordering and refetches the list view only:
// sorting is a list-shape concern, the totals are untouched.
func (c *Catalog) SetSort(ctx context.Context, by SortField, order SortOrder) error {
	c.mu.Lock()
	c.q.SortBy = by
	c.q.Order = order
	c.mu.Unlock()
	return c.refreshList(ctx)
}

// SetPayableOnly toggles the payable filter and refetches the list only.
func (c *Catalog) SetPayableOnly(ctx context.Context, on bool) error {
	c.mu.Lock()
	c.q.PayableOnly = on
	c.mu.Unlock()
	return c.refreshList(ctx)
}

func (c *Catalog) refreshList(ctx context.Context) error {
	c.mu.Lock()
	q := c.q
	c.mu.Unlock()

	assets, err := c.reader.List(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		c.snap.Assets = assets
	}
	c.snap.Errs.List = err
	return err
}

// AssetByID finds an asset in the current snapshot. List-item identity is
// always the asset's id: the remote contract does not promise a stable
// order for equal sort keys, so index identity is meaningless across
// refreshes.
func (c *Catalog) AssetByID(id string) (Asset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.snap.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}
