// Package main provides the entry point for the pymoli CLI.
//
// pymoli reads a storefront purchase export and prints a report of player
// demographics and spending: totals, breakdowns by gender and age bracket,
// top spenders and the most popular and profitable items.
//
// Usage:
//
//	pymoli report [input...]
//	pymoli report --json Resources/purchase_data.csv
//
// See --help for all available options.
package main

func main() {
	Execute()
}
