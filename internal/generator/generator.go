// Package generator produces the synthetic tables behind every dashboard view.
package generator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
)

// HistoryStart anchors the operational, environmental, financial and
// supply-chain tables.
var HistoryStart = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

// RealTimeLookback is how far before now the real-time table starts.
const RealTimeLookback = 7 * 24 * time.Hour

// Generator samples every table from one random source. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func New(src rand.Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rand.New(src), now: now}
}

// NewSeeded seeds from the wall clock when seed is 0.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.NewSource(seed), time.Now)
}

// Now is the clock the real-time table is anchored to.
func (g *Generator) Now() time.Time { return g.now() }

func (g *Generator) RealTime() []domain.RealTimeSample {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := g.now().Add(-RealTimeLookback)
	out := make([]domain.RealTimeSample, domain.SampleCount)
	for i := range out {
		out[i] = domain.RealTimeSample{
			Timestamp:     start.Add(time.Duration(i) * time.Minute),
			Location:      g.choice(domain.Locations),
			FuelLevelPct:  g.uniform(domain.FuelLevelRange),
			DispensingKg:  g.uniform(domain.DispensingRange),
			FleetStatus:   g.choice(domain.FleetStatuses),
			TemperatureC:  g.uniform(domain.TemperatureRange),
			PressureBar:   g.uniform(domain.PressureRange),
			HumidityPct:   g.uniform(domain.HumidityRange),
			TankCapacityL: g.uniform(domain.TankCapacityRange),
		}
	}
	return out
}

// Operational samples the alert description independently of the alert
// type, so a row may read "No Alert" / "Equipment malfunction detected".
func (g *Generator) Operational() []domain.OperationalSample {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.OperationalSample, domain.SampleCount)
	for i := range out {
		out[i] = domain.OperationalSample{
			Timestamp:          HistoryStart.Add(time.Duration(i) * time.Minute),
			EquipmentStatus:    g.choice(domain.EquipmentStatuses),
			MaintenanceAlert:   g.choice(domain.MaintenanceAlerts),
			AlertDescription:   g.choice(domain.AlertDescriptions),
			ResponseTimeHours:  g.uniform(domain.ResponseTimeRange),
			DowntimeHours:      g.uniform(domain.DowntimeRange),
			MaintenanceCostUSD: g.uniform(domain.MaintenanceCostRange),
		}
	}
	return out
}

func (g *Generator) Environmental() []domain.EnvironmentalSample {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.EnvironmentalSample, domain.SampleCount)
	for i := range out {
		out[i] = domain.EnvironmentalSample{
			Date:                     HistoryStart.AddDate(0, 0, i),
			EmissionsReductionTonnes: g.uniform(domain.EmissionsReductionRange),
			CarbonFootprintTonnes:    g.uniform(domain.CarbonFootprintRange),
		}
	}
	return out
}

func (g *Generator) Financial() []domain.FinancialSample {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.FinancialSample, domain.SampleCount)
	for i := range out {
		out[i] = domain.FinancialSample{
			Date:           HistoryStart.AddDate(0, 0, i),
			CostSavingsUSD: g.uniform(domain.CostSavingsRange),
			RevenueUSD:     g.uniform(domain.RevenueRange),
		}
	}
	return out
}

func (g *Generator) SupplyChain() []domain.SupplyChainSample {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.SupplyChainSample, domain.SampleCount)
	for i := range out {
		out[i] = domain.SupplyChainSample{
			Date:        HistoryStart.AddDate(0, 0, i),
			Status:      g.choice(domain.SupplyChainStatuses),
			InventoryKg: g.uniform(domain.InventoryRange),
		}
	}
	return out
}

func (g *Generator) uniform(r domain.Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

func (g *Generator) choice(values []string) string {
	return values[g.rng.Intn(len(values))]
}
