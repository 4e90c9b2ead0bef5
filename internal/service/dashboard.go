package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/generator"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/insights"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/metrics"
)

// Fixed reference amounts shown next to the generated financial totals.
const (
	OtherCosts  = 100000.0
	OtherIncome = 50000.0
)

// DashboardService regenerates a view from scratch on every call.
type DashboardService struct {
	gen     *generator.Generator
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func (s *DashboardService) Render(view domain.View) (*domain.Dashboard, error) {
	info, ok := view.Info()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, view)
	}
	started := time.Now()

	d := &domain.Dashboard{
		View:        info.View,
		Title:       info.Title,
		Subtitle:    info.Subtitle,
		GeneratedAt: s.gen.Now(),
	}
	switch view {
	case domain.RealTimeMonitoring:
		s.realTime(d)
	case domain.OperationalEfficiency:
		s.operational(d)
	case domain.EnvironmentalImpact:
		s.environmental(d)
	case domain.FinancialPerformance:
		s.financial(d)
	case domain.SupplyChain:
		s.supplyChain(d)
	}

	s.metrics.ObserveRender(string(view), time.Since(started))
	s.log.Debug().Str("view", string(view)).Int("rows", len(d.Table.Rows)).Msg("dashboard rendered")
	return d, nil
}

// Insights summarizes a freshly generated real-time table.
func (s *DashboardService) Insights() *domain.InsightReport {
	return s.summarize(s.gen.RealTime())
}

// summarize keeps only the trailing week before computing the report.
func (s *DashboardService) summarize(rows []domain.RealTimeSample) *domain.InsightReport {
	now := s.gen.Now()
	weekly := insights.WithinWindow(rows, now.Add(-generator.RealTimeLookback))
	return NewReport(domain.RealTimeMonitoring, weekly, now)
}

// NewReport assigns an ID and timestamps a summary of rows.
func NewReport(view domain.View, rows []domain.RealTimeSample, at time.Time) *domain.InsightReport {
	ins, recs := insights.Summarize(rows)
	return &domain.InsightReport{
		ID:              uuid.NewString(),
		View:            view,
		GeneratedAt:     at.UTC(),
		SampleCount:     len(rows),
		Insights:        ins,
		Recommendations: recs,
	}
}

func (s *DashboardService) realTime(d *domain.Dashboard) {
	rows := s.gen.RealTime()
	fuel := make([]domain.Point, len(rows))
	dispensing := make([]domain.Point, len(rows))
	for i, r := range rows {
		fuel[i] = domain.Point{X: r.Timestamp, Y: r.FuelLevelPct}
		dispensing[i] = domain.Point{X: r.Timestamp, Y: r.DispensingKg}
	}
	d.Table = domain.RealTimeTable(rows)
	d.Series = []domain.Series{
		{Title: "Fuel Levels Over Time", XLabel: "Time", YLabel: "Fuel Levels (%)", Points: fuel},
		{Title: "Dispensing Data Over Time", XLabel: "Time", YLabel: "Dispensing Data (kg)", Points: dispensing},
	}
	d.Report = s.summarize(rows)
}

func (s *DashboardService) operational(d *domain.Dashboard) {
	rows := s.gen.Operational()
	equipment := make([]string, len(rows))
	alerts := make([]string, len(rows))
	for i, r := range rows {
		equipment[i] = r.EquipmentStatus
		alerts[i] = r.MaintenanceAlert
	}
	d.Table = domain.OperationalTable(rows)
	d.Counts = []domain.Counts{
		{Title: "Equipment Status Count", Label: "Equipment Status", Items: insights.ValueCounts(equipment)},
		{Title: "Maintenance Alerts Count", Label: "Maintenance Alerts", Items: insights.ValueCounts(alerts)},
	}
}

func (s *DashboardService) environmental(d *domain.Dashboard) {
	rows := s.gen.Environmental()
	emissions := make([]domain.Point, len(rows))
	footprint := make([]domain.Point, len(rows))
	for i, r := range rows {
		emissions[i] = domain.Point{X: r.Date, Y: r.EmissionsReductionTonnes}
		footprint[i] = domain.Point{X: r.Date, Y: r.CarbonFootprintTonnes}
	}
	d.Table = domain.EnvironmentalTable(rows)
	d.Series = []domain.Series{
		{Title: "Emissions Reduction Over Time", XLabel: "Date", YLabel: "Emissions Reduction (tonnes)", Points: emissions},
		{Title: "Carbon Footprint Over Time", XLabel: "Date", YLabel: "Carbon Footprint (tonnes)", Points: footprint},
	}
}

func (s *DashboardService) financial(d *domain.Dashboard) {
	rows := s.gen.Financial()
	dates := make([]time.Time, len(rows))
	savings := make([]float64, len(rows))
	revenue := make([]float64, len(rows))
	savingsPts := make([]domain.Point, len(rows))
	revenuePts := make([]domain.Point, len(rows))
	for i, r := range rows {
		dates[i] = r.Date
		savings[i] = r.CostSavingsUSD
		revenue[i] = r.RevenueUSD
		savingsPts[i] = domain.Point{X: r.Date, Y: r.CostSavingsUSD}
		revenuePts[i] = domain.Point{X: r.Date, Y: r.RevenueUSD}
	}
	d.Table = domain.FinancialTable(rows)
	d.Series = []domain.Series{
		{Title: "Cost Savings Over Time", XLabel: "Date", YLabel: "Cost Savings ($)", Points: savingsPts},
		{Title: "Revenue Over Time", XLabel: "Date", YLabel: "Revenue ($)", Points: revenuePts},
	}
	d.Breakdowns = []domain.Breakdown{
		{Title: "Cost Analysis", Slices: []domain.Slice{
			{Category: "Cost Savings", Amount: insights.Total(dates, savings)},
			{Category: "Other Costs", Amount: OtherCosts},
		}},
		{Title: "Revenue Tracking", Slices: []domain.Slice{
			{Category: "Revenue", Amount: insights.Total(dates, revenue)},
			{Category: "Other Income", Amount: OtherIncome},
		}},
	}
}

func (s *DashboardService) supplyChain(d *domain.Dashboard) {
	rows := s.gen.SupplyChain()
	statuses := make([]string, len(rows))
	inventory := make([]domain.Point, len(rows))
	for i, r := range rows {
		statuses[i] = r.Status
		inventory[i] = domain.Point{X: r.Date, Y: r.InventoryKg}
	}
	d.Table = domain.SupplyChainTable(rows)
	d.Counts = []domain.Counts{
		{Title: "Supply Chain Status", Label: "Supply Chain Status", Items: insights.ValueCounts(statuses)},
	}
	d.Series = []domain.Series{
		{Title: "Inventory Levels Over Time", XLabel: "Date", YLabel: "Inventory Levels (kg)", Points: inventory},
	}
}
