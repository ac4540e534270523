package pipeline

import (
	"context"

	"github.com/nao1215/pymoli/internal/analysis"
	"github.com/nao1215/pymoli/internal/model"
)

// Step names, in report order.
const (
	StepPlayerCount        = "player_count"
	StepPurchasingTotals   = "purchasing_totals"
	StepGenderDemographics = "gender_demographics"
	StepPurchasingByGender = "purchasing_by_gender"
	StepAgeDemographics    = "age_demographics"
	StepPurchasingByAge    = "purchasing_by_age"
	StepTopSpenders        = "top_spenders"
	StepPopularItems       = "popular_items"
	StepProfitableItems    = "profitable_items"
)

// tableStep holds the table every analysis step reads.
type tableStep struct {
	table *model.Table
}

// PlayerCountStep counts distinct players.
type PlayerCountStep struct{ tableStep }

// NewPlayerCountStep creates a PlayerCountStep over table.
func NewPlayerCountStep(table *model.Table) *PlayerCountStep {
	return &PlayerCountStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *PlayerCountStep) Name() string { return StepPlayerCount }

// Do stores the distinct player count.
func (s *PlayerCountStep) Do(_ context.Context, report *model.Report) error {
	report.PlayerCount = analysis.PlayerCount(s.table)
	return nil
}

// PurchasingTotalsStep summarises every purchase.
type PurchasingTotalsStep struct{ tableStep }

// NewPurchasingTotalsStep creates a PurchasingTotalsStep over table.
func NewPurchasingTotalsStep(table *model.Table) *PurchasingTotalsStep {
	return &PurchasingTotalsStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *PurchasingTotalsStep) Name() string { return StepPurchasingTotals }

// Do stores the purchasing totals.
func (s *PurchasingTotalsStep) Do(_ context.Context, report *model.Report) error {
	totals := analysis.PurchasingTotals(s.table)
	report.Totals = &totals
	return nil
}

// GenderDemographicsStep counts distinct players per gender.
type GenderDemographicsStep struct{ tableStep }

// NewGenderDemographicsStep creates a GenderDemographicsStep over table.
func NewGenderDemographicsStep(table *model.Table) *GenderDemographicsStep {
	return &GenderDemographicsStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *GenderDemographicsStep) Name() string { return StepGenderDemographics }

// Do stores the gender demographics.
func (s *GenderDemographicsStep) Do(_ context.Context, report *model.Report) error {
	report.GenderDemographics = analysis.GenderDemographics(s.table)
	return nil
}

// PurchasingByGenderStep summarises purchases per gender. It reuses the
// gender demographics already in the report, computing them when absent.
type PurchasingByGenderStep struct{ tableStep }

// NewPurchasingByGenderStep creates a PurchasingByGenderStep over table.
func NewPurchasingByGenderStep(table *model.Table) *PurchasingByGenderStep {
	return &PurchasingByGenderStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *PurchasingByGenderStep) Name() string { return StepPurchasingByGender }

// Do stores the purchasing-by-gender view.
func (s *PurchasingByGenderStep) Do(_ context.Context, report *model.Report) error {
	demographics := report.GenderDemographics
	if demographics == nil {
		demographics = analysis.GenderDemographics(s.table)
	}
	report.PurchasingByGender = analysis.PurchasingByGender(s.table, demographics)
	return nil
}

// AgeDemographicsStep counts distinct players per age bracket.
type AgeDemographicsStep struct{ tableStep }

// NewAgeDemographicsStep creates an AgeDemographicsStep over table.
func NewAgeDemographicsStep(table *model.Table) *AgeDemographicsStep {
	return &AgeDemographicsStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *AgeDemographicsStep) Name() string { return StepAgeDemographics }

// Do stores the age demographics.
func (s *AgeDemographicsStep) Do(_ context.Context, report *model.Report) error {
	report.AgeDemographics = analysis.AgeDemographics(s.table)
	return nil
}

// PurchasingByAgeStep summarises purchases per age bracket. It reuses the
// age demographics already in the report, computing them when absent.
type PurchasingByAgeStep struct{ tableStep }

// NewPurchasingByAgeStep creates a PurchasingByAgeStep over table.
func NewPurchasingByAgeStep(table *model.Table) *PurchasingByAgeStep {
	return &PurchasingByAgeStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *PurchasingByAgeStep) Name() string { return StepPurchasingByAge }

// Do stores the purchasing-by-age view.
func (s *PurchasingByAgeStep) Do(_ context.Context, report *model.Report) error {
	demographics := report.AgeDemographics
	if demographics == nil {
		demographics = analysis.AgeDemographics(s.table)
	}
	report.PurchasingByAge = analysis.PurchasingByAge(s.table, demographics)
	return nil
}

// TopSpendersStep ranks screen names by total spend.
type TopSpendersStep struct{ tableStep }

// NewTopSpendersStep creates a TopSpendersStep over table.
func NewTopSpendersStep(table *model.Table) *TopSpendersStep {
	return &TopSpendersStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *TopSpendersStep) Name() string { return StepTopSpenders }

// Do stores the spender ranking.
func (s *TopSpendersStep) Do(_ context.Context, report *model.Report) error {
	report.TopSpenders = analysis.TopSpenders(s.table)
	return nil
}

// PopularItemsStep ranks items by purchase count.
type PopularItemsStep struct{ tableStep }

// NewPopularItemsStep creates a PopularItemsStep over table.
func NewPopularItemsStep(table *model.Table) *PopularItemsStep {
	return &PopularItemsStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *PopularItemsStep) Name() string { return StepPopularItems }

// Do stores the popular item ranking.
func (s *PopularItemsStep) Do(_ context.Context, report *model.Report) error {
	report.PopularItems = analysis.PopularItems(s.table)
	return nil
}

// ProfitableItemsStep ranks items by total purchase value.
type ProfitableItemsStep struct{ tableStep }

// NewProfitableItemsStep creates a ProfitableItemsStep over table.
func NewProfitableItemsStep(table *model.Table) *ProfitableItemsStep {
	return &ProfitableItemsStep{tableStep{table: table}}
}

// Name returns the step name.
func (s *ProfitableItemsStep) Name() string { return StepProfitableItems }

// Do stores the profitable item ranking.
func (s *ProfitableItemsStep) Do(_ context.Context, report *model.Report) error {
	report.ProfitableItems = analysis.ProfitableItems(s.table)
	return nil
}

// DefaultPipeline creates a pipeline computing every report view over
// table, in report order.
func DefaultPipeline(table *model.Table, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewPlayerCountStep(table),
		NewPurchasingTotalsStep(table),
		NewGenderDemographicsStep(table),
		NewPurchasingByGenderStep(table),
		NewAgeDemographicsStep(table),
		NewPurchasingByAgeStep(table),
		NewTopSpendersStep(table),
		NewPopularItemsStep(table),
		NewProfitableItemsStep(table),
	)
	return p
}
