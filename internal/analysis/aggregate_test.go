package analysis

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/nao1215/pymoli/internal/model"
)

// scenarioTable holds two players: Alice (20, Female) buying for $1 and $3,
// and Bob (25, Male) buying for $2.
func scenarioTable() *model.Table {
	return model.NewTable([]model.PurchaseRecord{
		{PurchaseID: 0, ScreenName: "Alice", Age: 20, Gender: "Female", ItemID: 1, ItemName: "Sword", Price: 1},
		{PurchaseID: 1, ScreenName: "Alice", Age: 20, Gender: "Female", ItemID: 2, ItemName: "Shield", Price: 3},
		{PurchaseID: 2, ScreenName: "Bob", Age: 25, Gender: "Male", ItemID: 3, ItemName: "Bow", Price: 2},
	})
}

// randomTable builds a deterministic table that honours the data invariants.
func randomTable(seed uint64, rows int) *model.Table {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	genders := []string{"Male", "Female", "Other / Non-Disclosed"}

	type demo struct {
		age    int
		gender string
	}
	players := make(map[string]demo)
	records := make([]model.PurchaseRecord, rows)
	for i := range records {
		name := "Player" + string(rune('A'+rng.IntN(20))) + string(rune('a'+rng.IntN(5)))
		d, ok := players[name]
		if !ok {
			d = demo{age: rng.IntN(60), gender: genders[rng.IntN(len(genders))]}
			players[name] = d
		}
		itemID := rng.IntN(30)
		records[i] = model.PurchaseRecord{
			PurchaseID: i,
			ScreenName: name,
			Age:        d.age,
			Gender:     d.gender,
			ItemID:     itemID,
			ItemName:   "Item" + string(rune('A'+itemID)),
			Price:      float64(itemID%7+1) + 0.25,
		}
	}
	return model.NewTable(records)
}

// almostEqual compares floats that were summed in different orders.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScenario(t *testing.T) {
	t.Parallel()

	table := scenarioTable()

	t.Run("player count", func(t *testing.T) {
		t.Parallel()
		if got := PlayerCount(table); got != 2 {
			t.Errorf("expected 2 players, got %d", got)
		}
	})

	t.Run("purchasing totals", func(t *testing.T) {
		t.Parallel()
		totals := PurchasingTotals(table)
		if totals.UniqueItems != 3 {
			t.Errorf("expected 3 unique items, got %d", totals.UniqueItems)
		}
		if !totals.AveragePrice.Defined || totals.AveragePrice.Value != 2 {
			t.Errorf("expected average price 2, got %+v", totals.AveragePrice)
		}
		if totals.Purchases != 3 {
			t.Errorf("expected 3 purchases, got %d", totals.Purchases)
		}
		if totals.TotalRevenue != 6 {
			t.Errorf("expected total revenue 6, got %v", totals.TotalRevenue)
		}
	})

	t.Run("gender demographics", func(t *testing.T) {
		t.Parallel()
		demo := GenderDemographics(table)
		want := []model.GenderDemographic{
			{Gender: "Female", Players: 1, Percentage: model.Quotient{Value: 50, Defined: true}},
			{Gender: "Male", Players: 1, Percentage: model.Quotient{Value: 50, Defined: true}},
		}
		if !slices.Equal(demo, want) {
			t.Errorf("got %+v, expected %+v", demo, want)
		}
	})

	t.Run("purchasing by gender divides by distinct players", func(t *testing.T) {
		t.Parallel()
		byGender := PurchasingByGender(table, GenderDemographics(table))
		if len(byGender) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(byGender))
		}
		female := byGender[0]
		if female.Group != "Female" || female.Purchases != 2 || female.TotalValue != 4 {
			t.Errorf("unexpected female summary: %+v", female)
		}
		if female.AveragePrice.Value != 2 {
			t.Errorf("expected female average 2, got %+v", female.AveragePrice)
		}
		if !female.PerPerson.Defined || female.PerPerson.Value != 4 {
			t.Errorf("expected female per person 4, got %+v", female.PerPerson)
		}
	})

	t.Run("top spenders", func(t *testing.T) {
		t.Parallel()
		spenders := TopSpenders(table)
		if len(spenders) != 2 {
			t.Fatalf("expected 2 spenders, got %d", len(spenders))
		}
		if spenders[0].ScreenName != "Alice" || spenders[0].TotalValue != 4 {
			t.Errorf("expected Alice first with 4, got %+v", spenders[0])
		}
		if spenders[1].ScreenName != "Bob" || spenders[1].TotalValue != 2 {
			t.Errorf("expected Bob second with 2, got %+v", spenders[1])
		}
		if spenders[0].AveragePrice.Value != 2 {
			t.Errorf("expected Alice average 2, got %+v", spenders[0].AveragePrice)
		}
	})

	t.Run("age views cover every bracket", func(t *testing.T) {
		t.Parallel()
		demo := AgeDemographics(table)
		byAge := PurchasingByAge(table, demo)
		if len(demo) != 8 || len(byAge) != 8 {
			t.Fatalf("expected 8 brackets, got %d and %d", len(demo), len(byAge))
		}
		if demo[3].Bracket.Label != "20-24" || demo[3].Players != 1 {
			t.Errorf("expected Alice in 20-24, got %+v", demo[3])
		}
		if demo[4].Bracket.Label != "25-29" || demo[4].Players != 1 {
			t.Errorf("expected Bob in 25-29, got %+v", demo[4])
		}
		if byAge[3].TotalValue != 4 || byAge[3].PerPerson.Value != 4 {
			t.Errorf("unexpected 20-24 purchasing: %+v", byAge[3])
		}
	})

	t.Run("empty brackets have undefined averages", func(t *testing.T) {
		t.Parallel()
		byAge := PurchasingByAge(table, AgeDemographics(table))
		empty := byAge[0]
		if empty.Purchases != 0 || empty.TotalValue != 0 {
			t.Errorf("expected empty bracket, got %+v", empty)
		}
		if empty.AveragePrice.Defined || empty.PerPerson.Defined {
			t.Errorf("expected undefined averages, got %+v", empty)
		}
	})
}

func TestPerPersonWithoutPlayers(t *testing.T) {
	t.Parallel()

	// Bob's second row disagrees on gender; first-seen wins, so no
	// distinct player is "Other" even though a purchase is.
	table := model.NewTable([]model.PurchaseRecord{
		{PurchaseID: 0, ScreenName: "Bob", Age: 25, Gender: "Male", ItemID: 1, Price: 2},
		{PurchaseID: 1, ScreenName: "Bob", Age: 25, Gender: "Other", ItemID: 1, Price: 2},
	})

	byGender := PurchasingByGender(table, GenderDemographics(table))
	var other *model.GroupSummary
	for i := range byGender {
		if byGender[i].Group == "Other" {
			other = &byGender[i]
		}
	}
	if other == nil {
		t.Fatal("expected a summary for Other")
	}
	if other.PerPerson.Defined {
		t.Errorf("expected undefined per-person spend, got %+v", other.PerPerson)
	}
	if !other.AveragePrice.Defined || other.AveragePrice.Value != 2 {
		t.Errorf("expected average price 2, got %+v", other.AveragePrice)
	}
}

func TestEmptyTable(t *testing.T) {
	t.Parallel()

	table := model.NewTable(nil)

	if PlayerCount(table) != 0 {
		t.Error("expected no players")
	}
	totals := PurchasingTotals(table)
	if totals.AveragePrice.Defined {
		t.Errorf("expected undefined average, got %+v", totals.AveragePrice)
	}
	if len(GenderDemographics(table)) != 0 {
		t.Error("expected no gender groups")
	}
	for _, d := range AgeDemographics(table) {
		if d.Percentage.Defined {
			t.Errorf("expected undefined percentage for %s", d.Bracket.Label)
		}
	}
	if len(TopSpenders(table)) != 0 || len(PopularItems(table)) != 0 {
		t.Error("expected no ranked rows")
	}
}

func TestProperties(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 20; seed++ {
		table := randomTable(seed, 200)
		genderDemo := GenderDemographics(table)
		ageDemo := AgeDemographics(table)
		totals := PurchasingTotals(table)

		t.Run("gender purchases add up to the total", func(t *testing.T) {
			count := 0
			for _, g := range PurchasingByGender(table, genderDemo) {
				count += g.Purchases
			}
			if count != totals.Purchases {
				t.Errorf("seed %d: %d gender purchases, %d total", seed, count, totals.Purchases)
			}
		})

		t.Run("gender players add up to the player count", func(t *testing.T) {
			players := 0
			for _, g := range genderDemo {
				players += g.Players
			}
			if players != PlayerCount(table) {
				t.Errorf("seed %d: %d gender players, %d distinct", seed, players, PlayerCount(table))
			}
		})

		t.Run("age brackets partition players and purchases", func(t *testing.T) {
			players, purchases := 0, 0
			for _, d := range ageDemo {
				players += d.Players
			}
			for _, g := range PurchasingByAge(table, ageDemo) {
				purchases += g.Purchases
			}
			if players != PlayerCount(table) {
				t.Errorf("seed %d: %d bracketed players, %d distinct", seed, players, PlayerCount(table))
			}
			if purchases != table.Len() {
				t.Errorf("seed %d: %d bracketed purchases, %d rows", seed, purchases, table.Len())
			}
		})

		t.Run("spender totals equal the row sums", func(t *testing.T) {
			want := make(map[string]float64)
			for _, r := range table.Records() {
				want[r.ScreenName] += r.Price
			}
			spenders := TopSpenders(table)
			if len(spenders) != len(want) {
				t.Fatalf("seed %d: %d spenders, %d names", seed, len(spenders), len(want))
			}
			for i, s := range spenders {
				if !almostEqual(s.TotalValue, want[s.ScreenName]) {
					t.Errorf("seed %d: %s total %v, expected %v", seed, s.ScreenName, s.TotalValue, want[s.ScreenName])
				}
				if i > 0 && spenders[i-1].TotalValue < s.TotalValue {
					t.Errorf("seed %d: spenders not sorted at %d", seed, i)
				}
			}
		})

		t.Run("item views are permutations of each other", func(t *testing.T) {
			popular := PopularItems(table)
			profitable := ProfitableItems(table)
			if len(popular) != len(profitable) {
				t.Fatalf("seed %d: %d popular, %d profitable", seed, len(popular), len(profitable))
			}

			byKey := func(items []model.ItemSummary) []model.ItemSummary {
				out := slices.Clone(items)
				slices.SortFunc(out, func(a, b model.ItemSummary) int { return a.ItemID - b.ItemID })
				return out
			}
			if !slices.Equal(byKey(popular), byKey(profitable)) {
				t.Errorf("seed %d: item views hold different rows", seed)
			}
			for i := 1; i < len(popular); i++ {
				if popular[i-1].Purchases < popular[i].Purchases {
					t.Errorf("seed %d: popular items not sorted at %d", seed, i)
				}
				if profitable[i-1].TotalValue < profitable[i].TotalValue {
					t.Errorf("seed %d: profitable items not sorted at %d", seed, i)
				}
			}
		})
	}
}

func TestRankingTiesKeepKeyOrder(t *testing.T) {
	t.Parallel()

	table := model.NewTable([]model.PurchaseRecord{
		{PurchaseID: 0, ScreenName: "Zed", Age: 30, Gender: "Male", ItemID: 9, ItemName: "Axe", Price: 2},
		{PurchaseID: 1, ScreenName: "Amy", Age: 30, Gender: "Female", ItemID: 3, ItemName: "Bow", Price: 2},
		{PurchaseID: 2, ScreenName: "Max", Age: 30, Gender: "Male", ItemID: 5, ItemName: "Cap", Price: 2},
	})

	spenders := TopSpenders(table)
	names := []string{spenders[0].ScreenName, spenders[1].ScreenName, spenders[2].ScreenName}
	if !slices.Equal(names, []string{"Amy", "Max", "Zed"}) {
		t.Errorf("expected tie order by screen name, got %v", names)
	}

	items := PopularItems(table)
	ids := []int{items[0].ItemID, items[1].ItemID, items[2].ItemID}
	if !slices.Equal(ids, []int{3, 5, 9}) {
		t.Errorf("expected tie order by item ID, got %v", ids)
	}

	genders := GenderDemographics(table)
	if genders[0].Gender != "Male" || genders[1].Gender != "Female" {
		t.Errorf("expected Male (2) before Female (1), got %+v", genders)
	}
}

func TestItemSummaries(t *testing.T) {
	t.Parallel()

	table := model.NewTable([]model.PurchaseRecord{
		{PurchaseID: 0, ScreenName: "A", ItemID: 7, ItemName: "Orb", Price: 4.5},
		{PurchaseID: 1, ScreenName: "B", ItemID: 7, ItemName: "Orb", Price: 4.5},
		{PurchaseID: 2, ScreenName: "C", ItemID: 7, ItemName: "Orb Renamed", Price: 1},
		{PurchaseID: 3, ScreenName: "D", ItemID: 2, ItemName: "Ring", Price: 10},
	})

	items := ItemSummaries(table)
	if len(items) != 3 {
		t.Fatalf("expected 3 item groups, got %d", len(items))
	}
	if items[0].ItemID != 2 || items[1].ItemName != "Orb" || items[2].ItemName != "Orb Renamed" {
		t.Errorf("unexpected key order: %+v", items)
	}
	if items[1].Purchases != 2 || items[1].ItemPrice.Value != 4.5 || items[1].TotalValue != 9 {
		t.Errorf("unexpected Orb summary: %+v", items[1])
	}

	popular := PopularItems(table)
	if popular[0].ItemName != "Orb" {
		t.Errorf("expected Orb most popular, got %+v", popular[0])
	}
	profitable := ProfitableItems(table)
	if profitable[0].ItemName != "Ring" {
		t.Errorf("expected Ring most profitable, got %+v", profitable[0])
	}
}
