package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"moneta"
)

// Client implements moneta.AssetService.
var _ moneta.AssetService = (*Client)(nil)

// Wire shapes. Amounts travel as JSON numbers and are decoded exactly.

type assetDTO struct {
	ID           string          `json:"id"`
	Bank         string          `json:"bank"`
	Type         string          `json:"asset_type"`
	Currency     string          `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	IsPayable    bool            `json:"is_payable"`
	ExchangeRate decimal.Decimal `json:"exchange_rate,omitempty"`
	LastUpdated  moneta.Date     `json:"last_updated"`
}

func (d assetDTO) domain() moneta.Asset {
	// Unknown type labels are bucketed as OTHER rather than dropped: the
	// asset still has a balance the user must see.
	typ, err := moneta.ParseAssetType(d.Type)
	if err != nil {
		typ = moneta.Other
	}
	return moneta.Asset{
		ID:           d.ID,
		Bank:         d.Bank,
		Type:         typ,
		Currency:     d.Currency,
		Amount:       moneta.M(d.Amount, d.Currency),
		IsPayable:    d.IsPayable,
		ExchangeRate: d.ExchangeRate,
		LastUpdated:  d.LastUpdated,
	}
}

type groupDTO struct {
	Label    string          `json:"label"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

type transactionDTO struct {
	ID           string          `json:"id"`
	Source       string          `json:"source"`
	FlowType     string          `json:"flow_type"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate,omitempty"`
	Date         moneta.Date     `json:"date"`
	Type         string          `json:"type"`
	Description  string          `json:"description,omitempty"`
}

// number renders a decimal as a bare JSON number. The default decimal
// marshaling quotes it, and the service expects numbers.
func number(d decimal.Decimal) json.RawMessage {
	return json.RawMessage(d.String())
}

type summaryDTO struct {
	TotalInflow  decimal.Decimal `json:"total_inflow"`
	TotalOutflow decimal.Decimal `json:"total_outflow"`
	NetFlow      decimal.Decimal `json:"net_flow"`
	Currency     string          `json:"currency"`
}

// Total implements the grand-total read, reported in the user's default
// currency.
func (c *Client) Total(ctx context.Context) (moneta.Money, error) {
	var out struct {
		Total    decimal.Decimal `json:"total"`
		Currency string          `json:"currency"`
	}
	if err := c.do(ctx, http.MethodGet, "/assets/totals", nil, nil, &out); err != nil {
		return moneta.Money{}, err
	}
	cur := out.Currency
	if cur == "" {
		cur = c.cur
	}
	return moneta.M(out.Total, cur), nil
}

// GroupedTotals implements the bucketed totals read.
func (c *Client) GroupedTotals(ctx context.Context, by moneta.GroupBy) ([]moneta.Group, error) {
	q := url.Values{"group_by": {string(by)}}
	var out items[groupDTO]
	if err := c.do(ctx, http.MethodGet, "/assets/totals", q, nil, &out); err != nil {
		return nil, err
	}
	groups := make([]moneta.Group, 0, len(out.list))
	for _, g := range out.list {
		cur := g.Currency
		if cur == "" {
			cur = c.cur
		}
		groups = append(groups, moneta.Group{Label: g.Label, Value: moneta.M(g.Value, cur)})
	}
	return groups, nil
}

// List implements the flat list read. Ordering is the server's: the
// client never re-sorts, and rows are identified by asset id only.
func (c *Client) List(ctx context.Context, lq moneta.ListQuery) ([]moneta.Asset, error) {
	q := url.Values{
		"sort_by":    {string(lq.SortBy)},
		"order":      {string(lq.Order)},
		"is_payable": {strconv.FormatBool(lq.PayableOnly)},
	}
	var out items[assetDTO]
	if err := c.do(ctx, http.MethodGet, "/assets/list", q, nil, &out); err != nil {
		return nil, err
	}
	assets := make([]moneta.Asset, 0, len(out.list))
	for _, d := range out.list {
		assets = append(assets, d.domain())
	}
	return assets, nil
}

// Asset implements the single-asset read.
func (c *Client) Asset(ctx context.Context, assetID string) (moneta.Asset, error) {
	var out assetDTO
	if err := c.do(ctx, http.MethodGet, "/assets/"+url.PathEscape(assetID), nil, nil, &out); err != nil {
		return moneta.Asset{}, err
	}
	return out.domain(), nil
}

// History implements the per-asset history read.
func (c *Client) History(ctx context.Context, assetID string) (moneta.History, error) {
	var out struct {
		Transactions items[transactionDTO] `json:"transactions"`
		Summary      summaryDTO            `json:"summary"`
	}
	if err := c.do(ctx, http.MethodGet, "/assets/history/"+url.PathEscape(assetID), nil, nil, &out); err != nil {
		return moneta.History{}, err
	}

	h := moneta.History{Transactions: make([]moneta.Transaction, 0, len(out.Transactions.list))}
	for _, d := range out.Transactions.list {
		h.Transactions = append(h.Transactions, moneta.Transaction{
			ID:           d.ID,
			Source:       d.Source,
			Flow:         moneta.FlowType(d.FlowType),
			Amount:       moneta.M(d.Amount, d.Currency),
			Currency:     d.Currency,
			ExchangeRate: d.ExchangeRate,
			Date:         d.Date,
			Type:         d.Type,
			Description:  d.Description,
		})
	}
	cur := out.Summary.Currency
	if cur == "" {
		cur = c.cur
	}
	h.Summary = moneta.AggregateSummary{
		TotalInflow:  moneta.M(out.Summary.TotalInflow, cur),
		TotalOutflow: moneta.M(out.Summary.TotalOutflow, cur),
		NetFlow:      moneta.M(out.Summary.NetFlow, cur),
	}
	return h, nil
}

// Insert implements the asset creation write.
func (c *Client) Insert(ctx context.Context, d moneta.AssetDraft) (moneta.Asset, error) {
	body := map[string]any{
		"bank":       d.Bank,
		"asset_type": string(d.Type),
		"currency":   d.Currency,
		"amount":     number(d.Amount.Amount()),
		"is_payable": d.IsPayable,
	}
	var out assetDTO
	if err := c.do(ctx, http.MethodPost, "/assets/insert", nil, body, &out); err != nil {
		return moneta.Asset{}, err
	}
	return out.domain(), nil
}

// Edit implements the three-field asset edit.
func (c *Client) Edit(ctx context.Context, assetID string, e moneta.AssetEdit) (moneta.Asset, error) {
	body := map[string]any{
		"bank":       e.Bank,
		"asset_type": string(e.Type),
		"amount":     number(e.Amount.Amount()),
	}
	var out assetDTO
	if err := c.do(ctx, http.MethodPatch, "/assets/edit/"+url.PathEscape(assetID), nil, body, &out); err != nil {
		return moneta.Asset{}, err
	}
	return out.domain(), nil
}

// Delete implements the asset deletion write.
func (c *Client) Delete(ctx context.Context, assetID string) error {
	return c.do(ctx, http.MethodDelete, "/assets/delete/"+url.PathEscape(assetID), nil, nil, nil)
}

// Transfer submits a transfer order. The service performs the two-legged
// mutation atomically; on any outcome the caller refetches rather than
// applying a local delta.
func (c *Client) Transfer(ctx context.Context, o moneta.TransferOrder) error {
	body := map[string]any{
		"from_asset_id": o.FromID,
		"to_asset_id":   o.ToID,
		"amount":        number(o.Amount.Amount()),
		"currency":      o.Amount.Currency(),
	}
	return c.do(ctx, http.MethodPost, "/assets/transfer", nil, body, nil)
}
