// Package moneta provides the view-model logic of a personal finance
// client whose authoritative state lives in a remote service. The remote
// side owns persistence, authentication and true balance mutation; this
// package owns what the user sees and what the client is allowed to ask
// for.
//
// The core functionalities include:
//   - Asset Catalog: four concurrently refreshed views of the same asset
//     collection (grand total, by-type totals, by-bank totals, and a
//     sortable, filterable flat list).
//   - Asset Detail: one asset with its transaction history, in-place edit
//     and delete, and currency-normalized history display.
//   - Distribution: chart-ready percentage slices with stable coloring,
//     derived from grouped totals.
//   - Transfer: selection of a source and destination asset with mutual
//     exclusion, validation, cross-currency advisory, and submission with
//     refetch-based reconciliation (never an optimistic local delta).
//
// This package serves as the foundational logic for the `mn` command-line
// tool; every screen of the tool is a thin rendering of a type defined
// here.
package moneta
