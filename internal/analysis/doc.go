// Package analysis computes the summary views of a purchase table.
//
// Every function is pure: it reads a *model.Table (and, where a view is
// normalised per distinct player, the demographics view it depends on)
// and returns a fresh result. Values are kept at full precision; rounding
// is left to the format package.
//
// Group iteration order is deterministic before any ranking sort, and
// ranking sorts are stable, so ties keep the key-ascending order.
package analysis
