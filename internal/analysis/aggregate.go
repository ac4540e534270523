package analysis

import (
	"cmp"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/nao1215/pymoli/internal/model"
)

// sum returns the sum of prices, 0 for none.
func sum(prices []float64) float64 {
	total, err := stats.Sum(prices)
	if err != nil {
		return 0
	}
	return total
}

// mean returns the mean of prices, undefined for none.
func mean(prices []float64) model.Quotient {
	m, err := stats.Mean(prices)
	if err != nil {
		return model.Quotient{}
	}
	return model.Quotient{Value: m, Defined: true}
}

// groupPrices collects the prices of records by key. Keys are returned
// sorted with compare.
func groupPrices[K comparable](records []model.PurchaseRecord, key func(model.PurchaseRecord) K, compare func(a, b K) int) ([]K, map[K][]float64) {
	groups := make(map[K][]float64)
	var keys []K
	for _, r := range records {
		k := key(r)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r.Price)
	}
	slices.SortFunc(keys, compare)
	return keys, groups
}

// PlayerCount returns the number of distinct screen names.
func PlayerCount(t *model.Table) int {
	return len(t.Players())
}

// PurchasingTotals summarises every row of the table.
func PurchasingTotals(t *model.Table) model.PurchasingTotals {
	records := t.Records()

	items := make(map[int]struct{})
	prices := make([]float64, len(records))
	for i, r := range records {
		items[r.ItemID] = struct{}{}
		prices[i] = r.Price
	}

	return model.PurchasingTotals{
		UniqueItems:  len(items),
		AveragePrice: mean(prices),
		Purchases:    len(records),
		TotalRevenue: sum(prices),
	}
}

// GenderDemographics counts distinct players per gender, largest group
// first and ties by gender label.
func GenderDemographics(t *model.Table) []model.GenderDemographic {
	players := t.Players()

	counts := make(map[string]int)
	var genders []string
	for _, p := range players {
		if _, ok := counts[p.Gender]; !ok {
			genders = append(genders, p.Gender)
		}
		counts[p.Gender]++
	}
	slices.Sort(genders)

	out := make([]model.GenderDemographic, len(genders))
	for i, g := range genders {
		out[i] = model.GenderDemographic{
			Gender:     g,
			Players:    counts[g],
			Percentage: model.Percentage(counts[g], len(players)),
		}
	}
	slices.SortStableFunc(out, func(a, b model.GenderDemographic) int {
		return cmp.Compare(b.Players, a.Players)
	})

	return out
}

// PurchasingByGender summarises raw purchases per gender, ordered by gender
// label. Per-person spend divides by the distinct player count of the gender
// taken from demographics; a gender absent there has an undefined per-person
// spend.
func PurchasingByGender(t *model.Table, demographics []model.GenderDemographic) []model.GroupSummary {
	players := make(map[string]int, len(demographics))
	for _, d := range demographics {
		players[d.Gender] = d.Players
	}

	genders, groups := groupPrices(t.Records(),
		func(r model.PurchaseRecord) string { return r.Gender },
		cmp.Compare[string],
	)

	out := make([]model.GroupSummary, len(genders))
	for i, g := range genders {
		prices := groups[g]
		total := sum(prices)
		out[i] = model.GroupSummary{
			Group:        g,
			Purchases:    len(prices),
			AveragePrice: mean(prices),
			TotalValue:   total,
			PerPerson:    model.Divide(total, float64(players[g])),
		}
	}
	return out
}

// AgeDemographics counts distinct players per age bracket. Every bracket is
// present, in partition order.
func AgeDemographics(t *model.Table) []model.AgeDemographic {
	players := t.Players()
	brackets := model.AgeBrackets()

	counts := make([]int, len(brackets))
	for _, p := range players {
		if idx := model.BracketIndex(p.Age); idx >= 0 {
			counts[idx]++
		}
	}

	out := make([]model.AgeDemographic, len(brackets))
	for i, b := range brackets {
		out[i] = model.AgeDemographic{
			Bracket:    b,
			Players:    counts[i],
			Percentage: model.Percentage(counts[i], len(players)),
		}
	}
	return out
}

// PurchasingByAge summarises raw purchases per age bracket, each row placed
// by its own age. Every bracket is present, in partition order. Per-person
// spend divides by the bracket's distinct player count from demographics.
func PurchasingByAge(t *model.Table, demographics []model.AgeDemographic) []model.GroupSummary {
	brackets := model.AgeBrackets()

	players := make(map[string]int, len(demographics))
	for _, d := range demographics {
		players[d.Bracket.Label] = d.Players
	}

	prices := make([][]float64, len(brackets))
	for _, r := range t.Records() {
		if idx := model.BracketIndex(r.Age); idx >= 0 {
			prices[idx] = append(prices[idx], r.Price)
		}
	}

	out := make([]model.GroupSummary, len(brackets))
	for i, b := range brackets {
		total := sum(prices[i])
		out[i] = model.GroupSummary{
			Group:        b.Label,
			Purchases:    len(prices[i]),
			AveragePrice: mean(prices[i]),
			TotalValue:   total,
			PerPerson:    model.Divide(total, float64(players[b.Label])),
		}
	}
	return out
}

// TopSpenders ranks screen names by total spend, largest first.
// The full ranking is returned; callers decide how many to show.
func TopSpenders(t *model.Table) []model.SpenderSummary {
	names, groups := groupPrices(t.Records(),
		func(r model.PurchaseRecord) string { return r.ScreenName },
		cmp.Compare[string],
	)

	out := make([]model.SpenderSummary, len(names))
	for i, name := range names {
		prices := groups[name]
		total := sum(prices)
		out[i] = model.SpenderSummary{
			ScreenName:   name,
			Purchases:    len(prices),
			AveragePrice: model.Divide(total, float64(len(prices))),
			TotalValue:   total,
		}
	}
	slices.SortStableFunc(out, func(a, b model.SpenderSummary) int {
		return cmp.Compare(b.TotalValue, a.TotalValue)
	})
	return out
}

// itemKey identifies an item group.
type itemKey struct {
	id   int
	name string
}

// ItemSummaries summarises purchases per (item ID, item name), ordered by
// item ID then name. TotalValue is the purchase count times the mean price.
func ItemSummaries(t *model.Table) []model.ItemSummary {
	keys, groups := groupPrices(t.Records(),
		func(r model.PurchaseRecord) itemKey { return itemKey{id: r.ItemID, name: r.ItemName} },
		func(a, b itemKey) int {
			if c := cmp.Compare(a.id, b.id); c != 0 {
				return c
			}
			return cmp.Compare(a.name, b.name)
		},
	)

	out := make([]model.ItemSummary, len(keys))
	for i, k := range keys {
		prices := groups[k]
		price := mean(prices)
		out[i] = model.ItemSummary{
			ItemID:     k.id,
			ItemName:   k.name,
			Purchases:  len(prices),
			ItemPrice:  price,
			TotalValue: float64(len(prices)) * price.Value,
		}
	}
	return out
}

// PopularItems ranks items by purchase count, largest first.
func PopularItems(t *model.Table) []model.ItemSummary {
	return RankByPurchases(ItemSummaries(t))
}

// ProfitableItems ranks items by total purchase value, largest first.
func ProfitableItems(t *model.Table) []model.ItemSummary {
	return RankByValue(ItemSummaries(t))
}

// RankByPurchases returns a copy of items sorted by purchase count, largest first.
func RankByPurchases(items []model.ItemSummary) []model.ItemSummary {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.ItemSummary) int {
		return cmp.Compare(b.Purchases, a.Purchases)
	})
	return out
}

// RankByValue returns a copy of items sorted by total purchase value, largest first.
func RankByValue(items []model.ItemSummary) []model.ItemSummary {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.ItemSummary) int {
		return cmp.Compare(b.TotalValue, a.TotalValue)
	})
	return out
}
