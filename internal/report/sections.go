package report

import (
	"strconv"

	"github.com/nao1215/pymoli/internal/format"
	"github.com/nao1215/pymoli/internal/model"
)

// section is one rendered view: a title plus a header row and data rows,
// every cell already formatted.
type section struct {
	title  string
	header []string
	rows   [][]string
}

// buildSections formats every view of the report in display order.
// Views that were not computed are skipped. top limits the ranked views.
func buildSections(report *model.Report, top int) []section {
	sections := []section{playerCountSection(report)}

	if report.Totals != nil {
		sections = append(sections, totalsSection(report.Totals))
	}
	if report.GenderDemographics != nil {
		sections = append(sections, genderSection(report.GenderDemographics))
	}
	if report.PurchasingByGender != nil {
		sections = append(sections, groupSection("Purchasing Analysis (Gender)", "Gender", report.PurchasingByGender))
	}
	if report.AgeDemographics != nil {
		sections = append(sections, ageSection(report.AgeDemographics))
	}
	if report.PurchasingByAge != nil {
		sections = append(sections, groupSection("Purchasing Analysis (Age)", "Age Range", report.PurchasingByAge))
	}
	if report.TopSpenders != nil {
		sections = append(sections, spenderSection(limit(report.TopSpenders, top)))
	}
	if report.PopularItems != nil {
		sections = append(sections, itemSection("Most Popular Items", limit(report.PopularItems, top)))
	}
	if report.ProfitableItems != nil {
		sections = append(sections, itemSection("Most Profitable Items", limit(report.ProfitableItems, top)))
	}
	return sections
}

func playerCountSection(report *model.Report) section {
	return section{
		title:  "Player Count",
		header: []string{"Total Players"},
		rows:   [][]string{{strconv.Itoa(report.PlayerCount)}},
	}
}

func totalsSection(totals *model.PurchasingTotals) section {
	return section{
		title:  "Purchasing Analysis (Total)",
		header: []string{"Number of Unique Items", "Average Price", "Number of Purchases", "Total Revenue"},
		rows: [][]string{{
			strconv.Itoa(totals.UniqueItems),
			format.CurrencyOf(totals.AveragePrice),
			strconv.Itoa(totals.Purchases),
			format.Currency(totals.TotalRevenue),
		}},
	}
}

func genderSection(demographics []model.GenderDemographic) section {
	rows := make([][]string, 0, len(demographics))
	for _, d := range demographics {
		rows = append(rows, []string{d.Gender, strconv.Itoa(d.Players), format.PercentOf(d.Percentage)})
	}
	return section{
		title:  "Gender Demographics",
		header: []string{"Gender", "Total Count", "Percentage of Players"},
		rows:   rows,
	}
}

func ageSection(demographics []model.AgeDemographic) section {
	rows := make([][]string, 0, len(demographics))
	for _, d := range demographics {
		rows = append(rows, []string{d.Bracket.String(), strconv.Itoa(d.Players), format.PercentOf(d.Percentage)})
	}
	return section{
		title:  "Age Demographics",
		header: []string{"Age Range", "Total Count", "Percentage of Players"},
		rows:   rows,
	}
}

func groupSection(title, groupHeader string, groups []model.GroupSummary) section {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Group,
			strconv.Itoa(g.Purchases),
			format.CurrencyOf(g.AveragePrice),
			format.Currency(g.TotalValue),
			format.CurrencyOf(g.PerPerson),
		})
	}
	return section{
		title:  title,
		header: []string{groupHeader, "Purchase Count", "Average Purchase Price", "Total Purchase Value", "Avg Total Purchase per Person"},
		rows:   rows,
	}
}

func spenderSection(spenders []model.SpenderSummary) section {
	rows := make([][]string, 0, len(spenders))
	for _, s := range spenders {
		rows = append(rows, []string{
			s.ScreenName,
			strconv.Itoa(s.Purchases),
			format.CurrencyOf(s.AveragePrice),
			format.Currency(s.TotalValue),
		})
	}
	return section{
		title:  "Top Spenders",
		header: []string{"SN", "Purchase Count", "Average Purchase Price", "Total Purchase Value"},
		rows:   rows,
	}
}

func itemSection(title string, items []model.ItemSummary) section {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.ItemID),
			item.ItemName,
			strconv.Itoa(item.Purchases),
			format.CurrencyOf(item.ItemPrice),
			format.Currency(item.TotalValue),
		})
	}
	return section{
		title:  title,
		header: []string{"Item ID", "Item Name", "Purchase Count", "Item Price", "Total Purchase Value"},
		rows:   rows,
	}
}
