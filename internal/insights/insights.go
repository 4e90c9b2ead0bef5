// Package insights computes the descriptive summary shown under the
// real-time dashboard.
package insights

import (
	"fmt"
	"slices"
	"time"

	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/aggregator"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
)

const (
	NoData            = "No data"
	NoRecommendations = "No data available for recommendations."
)

// Insight names, in report order.
const (
	AverageFuelLevel   = "Average Fuel Level"
	MaxDispensed       = "Max Dispensed Data"
	MostCommonStatus   = "Most Common Fleet Status"
	AverageTemperature = "Average Temperature"
	FuelTrend          = "Trend in Fuel Levels"
	PeakConsumption    = "Peak Fuel Consumption Time"
)

var Names = []string{AverageFuelLevel, MaxDispensed, MostCommonStatus, AverageTemperature, FuelTrend, PeakConsumption}

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

// Stats are the raw values behind the formatted insights.
type Stats struct {
	AvgFuelLevel     float64
	MaxDispensed     float64
	MostCommonStatus string
	AvgTemperature   float64
	Trend            string
	PeakHour         int
}

// Compute returns false for an empty table.
func Compute(rows []domain.RealTimeSample) (Stats, bool) {
	if len(rows) == 0 {
		return Stats{}, false
	}

	fuel := make([]aggregator.Point, len(rows))
	temp := make([]aggregator.Point, len(rows))
	statuses := make([]string, len(rows))
	maxDispensed := rows[0].DispensingKg
	for i, r := range rows {
		fuel[i] = aggregator.Point{Value: r.FuelLevelPct, Timestamp: r.Timestamp}
		temp[i] = aggregator.Point{Value: r.TemperatureC, Timestamp: r.Timestamp}
		statuses[i] = r.FleetStatus
		if r.DispensingKg > maxDispensed {
			maxDispensed = r.DispensingKg
		}
	}

	trend := TrendDecreasing
	if rows[len(rows)-1].FuelLevelPct > rows[0].FuelLevelPct {
		trend = TrendIncreasing
	}

	return Stats{
		AvgFuelLevel:     aggregator.Average(fuel),
		MaxDispensed:     maxDispensed,
		MostCommonStatus: Mode(statuses),
		AvgTemperature:   aggregator.Average(temp),
		Trend:            trend,
		PeakHour:         peakHour(rows),
	}, true
}

// Summarize formats the six insights and the six recommendations.
func Summarize(rows []domain.RealTimeSample) ([]domain.Insight, []string) {
	st, ok := Compute(rows)
	if !ok {
		out := make([]domain.Insight, len(Names))
		for i, n := range Names {
			out[i] = domain.Insight{Name: n, Value: NoData}
		}
		return out, []string{NoRecommendations}
	}

	insights := []domain.Insight{
		{Name: AverageFuelLevel, Value: fmt.Sprintf("%.2f%%", st.AvgFuelLevel)},
		{Name: MaxDispensed, Value: fmt.Sprintf("%.2f kg", st.MaxDispensed)},
		{Name: MostCommonStatus, Value: st.MostCommonStatus},
		{Name: AverageTemperature, Value: fmt.Sprintf("%.2f°C", st.AvgTemperature)},
		{Name: FuelTrend, Value: fmt.Sprintf("Fuel levels are %s over the week.", st.Trend)},
		{Name: PeakConsumption, Value: fmt.Sprintf("Peak fuel consumption occurs at %d:00 hours.", st.PeakHour)},
	}
	return insights, Recommendations(st)
}

func Recommendations(st Stats) []string {
	return []string{
		"Consider scheduling refueling during off-peak hours to reduce wait times.",
		"Monitor temperature variations closely as they may affect fuel efficiency. A higher average temperature can lead to increased fuel consumption.",
		fmt.Sprintf("With fuel levels %s, ensure to adjust the storage accordingly to avoid shortages or excess.", st.Trend),
		"Increase the frequency of maintenance checks for fleets frequently in transit to ensure optimal performance.",
		fmt.Sprintf("Peak fuel consumption occurs at %d:00 hours. Schedule maintenance and refueling tasks around this time to avoid operational delays.", st.PeakHour),
		"Optimize fuel storage locations based on dispensing data trends to improve efficiency and reduce transportation costs.",
	}
}

// Mode returns the most frequent value; ties go to the value seen first.
func Mode(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if c := counts[v]; c > bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

// peakHour sums dispensing per hour of day; ties go to the smaller hour.
func peakHour(rows []domain.RealTimeSample) int {
	var sums [24]float64
	var seen [24]bool
	for _, r := range rows {
		h := r.Timestamp.Hour()
		sums[h] += r.DispensingKg
		seen[h] = true
	}
	best := -1
	for h := 0; h < 24; h++ {
		if !seen[h] {
			continue
		}
		if best < 0 || sums[h] > sums[best] {
			best = h
		}
	}
	return best
}

// ValueCounts orders by descending count, ties by first appearance.
func ValueCounts(values []string) []domain.ValueCount {
	idx := map[string]int{}
	var out []domain.ValueCount
	for _, v := range values {
		if i, ok := idx[v]; ok {
			out[i].Count++
			continue
		}
		idx[v] = len(out)
		out = append(out, domain.ValueCount{Value: v, Count: 1})
	}
	slices.SortStableFunc(out, func(a, b domain.ValueCount) int { return b.Count - a.Count })
	return out
}

// Total sums a daily column indexed by dates.
func Total(dates []time.Time, values []float64) float64 {
	pts := make([]aggregator.Point, len(values))
	for i, v := range values {
		pts[i] = aggregator.Point{Value: v, Timestamp: dates[i]}
	}
	return aggregator.Sum(pts)
}

// WithinWindow keeps rows at or after since, preserving order.
func WithinWindow(rows []domain.RealTimeSample, since time.Time) []domain.RealTimeSample {
	out := make([]domain.RealTimeSample, 0, len(rows))
	for _, r := range rows {
		if !r.Timestamp.Before(since) {
			out = append(out, r)
		}
	}
	return out
}
