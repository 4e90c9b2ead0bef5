package domain

import "time"

type Point struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

// Series is the data behind one line chart.
type Series struct {
	Title  string  `json:"title"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Points []Point `json:"points"`
}

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Counts is the data behind one bar chart of categorical frequencies.
type Counts struct {
	Title string       `json:"title"`
	Label string       `json:"label"`
	Items []ValueCount `json:"items"`
}

type Slice struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Breakdown is the data behind one pie chart.
type Breakdown struct {
	Title  string  `json:"title"`
	Slices []Slice `json:"slices"`
}

type Insight struct {
	Name  string `json:"name" dynamodbav:"name"`
	Value string `json:"value" dynamodbav:"value"`
}

type InsightReport struct {
	ID              string    `json:"id"`
	View            View      `json:"view"`
	GeneratedAt     time.Time `json:"generated_at"`
	SampleCount     int       `json:"sample_count"`
	Insights        []Insight `json:"insights"`
	Recommendations []string  `json:"recommendations"`
}

// Value returns the named insight, or "" when absent.
func (r *InsightReport) Value(name string) string {
	for _, in := range r.Insights {
		if in.Name == name {
			return in.Value
		}
	}
	return ""
}

type Dashboard struct {
	View        View           `json:"view"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	GeneratedAt time.Time      `json:"generated_at"`
	Table       Table          `json:"table"`
	Series      []Series       `json:"series,omitempty"`
	Counts      []Counts       `json:"counts,omitempty"`
	Breakdowns  []Breakdown    `json:"breakdowns,omitempty"`
	Report      *InsightReport `json:"report,omitempty"`
}
