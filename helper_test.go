package moneta

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return MF(v, "EUR") }

// USD is a helper for tests to create usd money from const
func USD(v float64) Money { return MF(v, "USD") }

// fakeService is an in-memory stand-in for the remote asset service.
// Its mutations mimic the server's atomic behavior so reconciliation by
// refetch can be observed.
type fakeService struct {
	assets    []Asset
	histories map[string]History

	totalErr  error
	byTypeErr error
	byBankErr error
	listErr   error

	totalCalls int
	listCalls  int
	editCalls  int

	lastQuery ListQuery

	transferErr error
	transferFn  func() error // runs inside Transfer, before the mutation
	editErr     error
	deleteErr   error
}

func (s *fakeService) Total(ctx context.Context) (Money, error) {
	s.totalCalls++
	if s.totalErr != nil {
		return Money{}, s.totalErr
	}
	total := EUR(0)
	for _, a := range s.assets {
		total = total.Add(M(a.Amount.Amount(), "EUR"))
	}
	return total, nil
}

func (s *fakeService) GroupedTotals(ctx context.Context, by GroupBy) ([]Group, error) {
	if by == ByType && s.byTypeErr != nil {
		return nil, s.byTypeErr
	}
	if by == ByBank && s.byBankErr != nil {
		return nil, s.byBankErr
	}
	sums := map[string]Money{}
	var labels []string
	for _, a := range s.assets {
		label := string(a.Type)
		if by == ByBank {
			label = a.Bank
		}
		if _, ok := sums[label]; !ok {
			labels = append(labels, label)
		}
		sums[label] = sums[label].Add(M(a.Amount.Amount(), "EUR"))
	}
	groups := make([]Group, 0, len(labels))
	for _, l := range labels {
		groups = append(groups, Group{Label: l, Value: sums[l]})
	}
	return groups, nil
}

func (s *fakeService) List(ctx context.Context, q ListQuery) ([]Asset, error) {
	s.listCalls++
	s.lastQuery = q
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if q.PayableOnly && !a.IsPayable {
			continue
		}
		out = append(out, a)
	}
	// the server owns the ordering; the fake mimics the amount sort
	if q.SortBy == SortByAmount {
		sort.SliceStable(out, func(i, j int) bool {
			if q.Order == Descending {
				return out[i].Amount.GreaterThan(out[j].Amount)
			}
			return out[i].Amount.LessThan(out[j].Amount)
		})
	}
	return out, nil
}

func (s *fakeService) Asset(ctx context.Context, id string) (Asset, error) {
	for _, a := range s.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return Asset{}, fmt.Errorf("asset %q not found", id)
}

func (s *fakeService) History(ctx context.Context, id string) (History, error) {
	h, ok := s.histories[id]
	if !ok {
		return History{}, fmt.Errorf("no history for %q", id)
	}
	return h, nil
}

func (s *fakeService) Insert(ctx context.Context, d AssetDraft) (Asset, error) {
	a := Asset{
		ID:          fmt.Sprintf("a%d", len(s.assets)+1),
		Bank:        d.Bank,
		Type:        d.Type,
		Currency:    d.Currency,
		Amount:      d.Amount,
		IsPayable:   d.IsPayable,
		LastUpdated: Today(),
	}
	s.assets = append(s.assets, a)
	return a, nil
}

func (s *fakeService) Edit(ctx context.Context, id string, e AssetEdit) (Asset, error) {
	s.editCalls++
	if s.editErr != nil {
		return Asset{}, s.editErr
	}
	for i, a := range s.assets {
		if a.ID == id {
			a.Bank = e.Bank
			a.Type = e.Type
			a.Amount = M(e.Amount.Amount(), a.Currency)
			a.LastUpdated = Today()
			s.assets[i] = a
			return a, nil
		}
	}
	return Asset{}, fmt.Errorf("asset %q not found", id)
}

func (s *fakeService) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, a := range s.assets {
		if a.ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("asset %q not found", id)
}

func (s *fakeService) Transfer(ctx context.Context, o TransferOrder) error {
	if s.transferFn != nil {
		if err := s.transferFn(); err != nil {
			return err
		}
	}
	if s.transferErr != nil {
		return s.transferErr
	}
	// the remote mutation is atomic: both legs or neither
	fi, ti := -1, -1
	for i, a := range s.assets {
		if a.ID == o.FromID {
			fi = i
		}
		if a.ID == o.ToID {
			ti = i
		}
	}
	if fi < 0 || ti < 0 {
		return fmt.Errorf("unknown asset in transfer")
	}
	if s.assets[fi].Amount.LessThan(o.Amount) {
		return fmt.Errorf("insufficient funds")
	}
	s.assets[fi].Amount = s.assets[fi].Amount.Sub(o.Amount)
	// cross-currency: the fake converts 1:1, which is enough for tests
	s.assets[ti].Amount = s.assets[ti].Amount.Add(M(o.Amount.Amount(), s.assets[ti].Currency))
	return nil
}

// dec is a shorthand for decimal literals in tests.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
