package model

import "time"

// Report collects the summary views computed from one Table.
// Each field is filled by the analysis step of the same name.
type Report struct {
	// Sources lists the inputs the table was loaded from.
	Sources []string `json:"sources"`

	// GeneratedAt is when the report was created.
	GeneratedAt time.Time `json:"generated_at"`

	// PlayerCount is the number of distinct screen names.
	PlayerCount int `json:"player_count"`

	// Totals summarises every purchase.
	Totals *PurchasingTotals `json:"totals,omitempty"`

	// GenderDemographics is ordered by player count, largest first.
	GenderDemographics []GenderDemographic `json:"gender_demographics"`

	// PurchasingByGender is ordered by gender label.
	PurchasingByGender []GroupSummary `json:"purchasing_by_gender"`

	// AgeDemographics holds every bracket in partition order.
	AgeDemographics []AgeDemographic `json:"age_demographics"`

	// PurchasingByAge holds every bracket in partition order.
	PurchasingByAge []GroupSummary `json:"purchasing_by_age"`

	// TopSpenders is ordered by total spend, largest first.
	TopSpenders []SpenderSummary `json:"top_spenders"`

	// PopularItems is ordered by purchase count, largest first.
	PopularItems []ItemSummary `json:"popular_items"`

	// ProfitableItems is ordered by total purchase value, largest first.
	ProfitableItems []ItemSummary `json:"profitable_items"`

	// Conflicts lists screen names whose rows disagree on age or gender.
	Conflicts []string `json:"conflicts,omitempty"`

	// CompletedSteps records the analysis steps that ran, in order.
	CompletedSteps []string `json:"completed_steps"`
}

// NewReport creates an empty Report for the given sources.
func NewReport(sources ...string) *Report {
	return &Report{
		Sources:     sources,
		GeneratedAt: time.Now(),
	}
}
