package model

// PurchasingTotals summarises every row of the table.
type PurchasingTotals struct {
	// UniqueItems is the number of distinct item IDs.
	UniqueItems int `json:"unique_items"`

	// AveragePrice is the mean price over all rows.
	AveragePrice Quotient `json:"average_price"`

	// Purchases is the number of rows.
	Purchases int `json:"purchases"`

	// TotalRevenue is the sum of all prices.
	TotalRevenue float64 `json:"total_revenue"`
}

// GenderDemographic counts distinct players of one gender.
type GenderDemographic struct {
	Gender     string   `json:"gender"`
	Players    int      `json:"players"`
	Percentage Quotient `json:"percentage"`
}

// AgeDemographic counts distinct players inside one age bracket.
type AgeDemographic struct {
	Bracket    AgeBracket `json:"bracket"`
	Players    int        `json:"players"`
	Percentage Quotient   `json:"percentage"`
}

// GroupSummary is the purchasing summary of one gender or age bracket.
//
// PerPerson divides TotalValue by the number of distinct players in the
// group, not by the number of purchases.
type GroupSummary struct {
	Group        string   `json:"group"`
	Purchases    int      `json:"purchases"`
	AveragePrice Quotient `json:"average_price"`
	TotalValue   float64  `json:"total_value"`
	PerPerson    Quotient `json:"per_person"`
}

// SpenderSummary is the purchasing summary of one screen name.
type SpenderSummary struct {
	ScreenName   string   `json:"screen_name"`
	Purchases    int      `json:"purchases"`
	AveragePrice Quotient `json:"average_price"`
	TotalValue   float64  `json:"total_value"`
}

// ItemSummary is the purchasing summary of one (item ID, item name) pair.
// TotalValue is Purchases times ItemPrice.
type ItemSummary struct {
	ItemID     int      `json:"item_id"`
	ItemName   string   `json:"item_name"`
	Purchases  int      `json:"purchases"`
	ItemPrice  Quotient `json:"item_price"`
	TotalValue float64  `json:"total_value"`
}
