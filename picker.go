package moneta

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Side distinguishes the two ends of a transfer selection.
type Side int

const (
	SideFrom Side = iota
	SideTo
)

func (s Side) String() string {
	if s == SideFrom {
		return "from"
	}
	return "to"
}

// Picker presents a mutually-exclusive choice of two assets from the
// catalog. The same asset can never be selected on both sides: selecting
// one side silently deselects a colliding other side instead of erroring,
// so the selection can never get stuck in an invalid state.
type Picker struct {
	from *Asset
	to   *Asset
}

// SelectFrom sets the source. If the current destination has the same id
// the destination is cleared.
func (p *Picker) SelectFrom(a Asset) {
	if p.to != nil && p.to.ID == a.ID {
		p.to = nil
	}
	p.from = &a
}

// SelectTo sets the destination. If the current source has the same id
// the source is cleared.
func (p *Picker) SelectTo(a Asset) {
	if p.from != nil && p.from.ID == a.ID {
		p.from = nil
	}
	p.to = &a
}

// Swap exchanges the two selections atomically. Two distinct ids remain
// distinct when swapped, so the pair stays valid.
func (p *Picker) Swap() {
	p.from, p.to = p.to, p.from
}

// From returns the selected source, if any.
func (p *Picker) From() (Asset, bool) {
	if p.from == nil {
		return Asset{}, false
	}
	return *p.from, true
}

// To returns the selected destination, if any.
func (p *Picker) To() (Asset, bool) {
	if p.to == nil {
		return Asset{}, false
	}
	return *p.to, true
}

// Disabled reports whether the asset must be shown disabled when picking
// the given side: an asset equal to the opposite selection stays visible
// with its full data, so the user understands why it is unavailable.
func (p *Picker) Disabled(side Side, a Asset) bool {
	switch side {
	case SideFrom:
		return p.to != nil && p.to.ID == a.ID
	case SideTo:
		return p.from != nil && p.from.ID == a.ID
	}
	return false
}

// LoadPair fetches two assets by id concurrently and selects them. Unlike
// the catalog's tolerant fan-out, both reads are required: either failure
// aborts the pair.
func (p *Picker) LoadPair(ctx context.Context, r AssetReader, fromID, toID string) error {
	var from, to Asset
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		from, err = r.Asset(ctx, fromID)
		return err
	})
	g.Go(func() (err error) {
		to, err = r.Asset(ctx, toID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	p.SelectFrom(from)
	p.SelectTo(to)
	return nil
}
