// Package model defines the data structures shared by the pymoli packages.
//
// This package contains the following main types:
//   - PurchaseRecord: one row of the purchase table
//   - Table: the immutable, loaded purchase table with its distinct players
//   - AgeBracket: one interval of the fixed age partition
//   - Quotient: a division result that may be undefined
//   - Report: the nine summary views computed from a Table
//
// The view types are serializable to JSON for structured report output.
package model
