package insights

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/generator"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 2, 14, hour, minute, 0, 0, time.UTC)
}

func sample(ts time.Time, fuel, dispensing float64, status string) domain.RealTimeSample {
	return domain.RealTimeSample{
		Timestamp:    ts,
		Location:     "Terminal A",
		FuelLevelPct: fuel,
		DispensingKg: dispensing,
		FleetStatus:  status,
		TemperatureC: 20,
	}
}

func valueOf(t *testing.T, ins []domain.Insight, name string) string {
	t.Helper()
	for _, in := range ins {
		if in.Name == name {
			return in.Value
		}
	}
	t.Fatalf("insight %q missing", name)
	return ""
}

func TestSummarizeEmpty(t *testing.T) {
	ins, recs := Summarize(nil)
	if len(ins) != len(Names) {
		t.Fatalf("got %d insights want %d", len(ins), len(Names))
	}
	for i, in := range ins {
		if in.Name != Names[i] {
			t.Fatalf("insight %d name %q want %q", i, in.Name, Names[i])
		}
		if in.Value != NoData {
			t.Fatalf("insight %q = %q want %q", in.Name, in.Value, NoData)
		}
	}
	if len(recs) != 1 || recs[0] != "No data available for recommendations." {
		t.Fatalf("unexpected recommendations %q", recs)
	}
}

func TestSummarizeAverageFuelMatchesMean(t *testing.T) {
	rows := generator.New(rand.NewSource(7), func() time.Time { return at(12, 0) }).RealTime()

	var sum float64
	for _, r := range rows {
		sum += r.FuelLevelPct
	}
	want := sum / float64(len(rows))

	ins, recs := Summarize(rows)
	raw := strings.TrimSuffix(valueOf(t, ins, AverageFuelLevel), "%")
	got, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	if math.Abs(got-want) > 0.005 {
		t.Fatalf("average fuel %v want %v", got, want)
	}
	if len(recs) != 6 {
		t.Fatalf("got %d recommendations want 6", len(recs))
	}
}

func TestSummarizeFormatting(t *testing.T) {
	rows := []domain.RealTimeSample{
		sample(at(9, 0), 40, 120, "Idle"),
		sample(at(9, 1), 60, 480.4, "Refueling"),
		sample(at(9, 2), 50.5, 300, "Refueling"),
	}
	rows[1].TemperatureC = 30

	ins, recs := Summarize(rows)
	cases := map[string]string{
		AverageFuelLevel:   "50.17%",
		MaxDispensed:       "480.40 kg",
		MostCommonStatus:   "Refueling",
		AverageTemperature: "23.33°C",
		FuelTrend:          "Fuel levels are increasing over the week.",
		PeakConsumption:    "Peak fuel consumption occurs at 9:00 hours.",
	}
	for name, want := range cases {
		if got := valueOf(t, ins, name); got != want {
			t.Fatalf("%s got %q want %q", name, got, want)
		}
	}
	if !strings.Contains(recs[2], "With fuel levels increasing,") {
		t.Fatalf("trend not interpolated: %q", recs[2])
	}
	if !strings.HasPrefix(recs[4], "Peak fuel consumption occurs at 9:00 hours.") {
		t.Fatalf("peak hour not interpolated: %q", recs[4])
	}
}

func TestTrendEqualEndpointsIsDecreasing(t *testing.T) {
	rows := []domain.RealTimeSample{
		sample(at(1, 0), 55, 200, "Idle"),
		sample(at(1, 1), 55, 200, "Idle"),
	}
	st, ok := Compute(rows)
	if !ok {
		t.Fatal("expected stats")
	}
	if st.Trend != TrendDecreasing {
		t.Fatalf("trend %q want %q", st.Trend, TrendDecreasing)
	}
}

func TestPeakHourTieBreaksToSmallerHour(t *testing.T) {
	rows := []domain.RealTimeSample{
		sample(at(3, 0), 50, 100, "Idle"),
		sample(at(3, 30), 50, 100, "Idle"),
		sample(at(1, 10), 50, 200, "Idle"),
		sample(at(2, 0), 50, 150, "Idle"),
	}
	st, _ := Compute(rows)
	if st.PeakHour != 1 {
		t.Fatalf("peak hour %d want 1", st.PeakHour)
	}
}

func TestModeTieBreaksToFirstSeen(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"In Transit", "Idle", "Idle", "In Transit"}, "In Transit"},
		{[]string{"Idle", "Refueling", "Refueling"}, "Refueling"},
		{[]string{"Refueling"}, "Refueling"},
	}
	for _, tc := range cases {
		if got := Mode(tc.in); got != tc.want {
			t.Fatalf("Mode(%v) got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestValueCounts(t *testing.T) {
	got := ValueCounts([]string{"Delayed", "Completed", "On Schedule", "Completed", "On Schedule", "Delayed", "Completed"})
	want := []domain.ValueCount{
		{Value: "Completed", Count: 3},
		{Value: "Delayed", Count: 2},
		{Value: "On Schedule", Count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d got %v want %v", i, got[i], want[i])
		}
	}
}

func TestWithinWindowKeepsBoundary(t *testing.T) {
	rows := []domain.RealTimeSample{
		sample(at(1, 0), 50, 100, "Idle"),
		sample(at(1, 1), 50, 100, "Idle"),
		sample(at(1, 2), 50, 100, "Idle"),
	}
	got := WithinWindow(rows, at(1, 1))
	if len(got) != 2 || !got[0].Timestamp.Equal(at(1, 1)) {
		t.Fatalf("unexpected window %v", got)
	}
}

func TestTotal(t *testing.T) {
	dates := []time.Time{at(0, 0), at(0, 1), at(0, 2)}
	if got := Total(dates, []float64{1.5, 2.5, 6}); math.Abs(got-10) > 1e-9 {
		t.Fatalf("total %v want 10", got)
	}
}
