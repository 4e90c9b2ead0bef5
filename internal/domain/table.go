package domain

import "time"

type ColumnKind string

const (
	KindTime     ColumnKind = "time"
	KindCategory ColumnKind = "category"
	KindNumber   ColumnKind = "number"
)

type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Table is the column-ordered form the dashboards are shipped in.
// Row values are time.Time, string or float64 according to the column kind.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

var (
	RealTimeColumns = []Column{
		{"DateTime", KindTime},
		{"Location", KindCategory},
		{"Fuel Levels (%)", KindNumber},
		{"Dispensing Data (kg)", KindNumber},
		{"Fleet Status", KindCategory},
		{"Temperature (°C)", KindNumber},
		{"Pressure (bar)", KindNumber},
		{"Humidity (%)", KindNumber},
		{"Tank Capacity (L)", KindNumber},
	}
	OperationalColumns = []Column{
		{"DateTime", KindTime},
		{"Equipment Status", KindCategory},
		{"Maintenance Alerts", KindCategory},
		{"Alert Description", KindCategory},
		{"Response Time (hours)", KindNumber},
		{"Downtime (hours)", KindNumber},
		{"Maintenance Cost ($)", KindNumber},
	}
	EnvironmentalColumns = []Column{
		{"Date", KindTime},
		{"Emissions Reduction (tonnes)", KindNumber},
		{"Carbon Footprint (tonnes)", KindNumber},
	}
	FinancialColumns = []Column{
		{"Date", KindTime},
		{"Cost Savings ($)", KindNumber},
		{"Revenue ($)", KindNumber},
	}
	SupplyChainColumns = []Column{
		{"Date", KindTime},
		{"Supply Chain Status", KindCategory},
		{"Inventory Levels (kg)", KindNumber},
	}
)

func RealTimeTable(rows []RealTimeSample) Table {
	return buildTable(RealTimeColumns, rows, func(s RealTimeSample) []any {
		return []any{s.Timestamp, s.Location, s.FuelLevelPct, s.DispensingKg, s.FleetStatus,
			s.TemperatureC, s.PressureBar, s.HumidityPct, s.TankCapacityL}
	})
}

func OperationalTable(rows []OperationalSample) Table {
	return buildTable(OperationalColumns, rows, func(s OperationalSample) []any {
		return []any{s.Timestamp, s.EquipmentStatus, s.MaintenanceAlert, s.AlertDescription,
			s.ResponseTimeHours, s.DowntimeHours, s.MaintenanceCostUSD}
	})
}

func EnvironmentalTable(rows []EnvironmentalSample) Table {
	return buildTable(EnvironmentalColumns, rows, func(s EnvironmentalSample) []any {
		return []any{s.Date, s.EmissionsReductionTonnes, s.CarbonFootprintTonnes}
	})
}

func FinancialTable(rows []FinancialSample) Table {
	return buildTable(FinancialColumns, rows, func(s FinancialSample) []any {
		return []any{s.Date, s.CostSavingsUSD, s.RevenueUSD}
	})
}

func SupplyChainTable(rows []SupplyChainSample) Table {
	return buildTable(SupplyChainColumns, rows, func(s SupplyChainSample) []any {
		return []any{s.Date, s.Status, s.InventoryKg}
	})
}

func buildTable[T any](cols []Column, rows []T, values func(T) []any) Table {
	t := Table{Columns: cols, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = values(r)
	}
	return t
}

// Matches reports whether v has the Go type a column of kind k carries.
func (k ColumnKind) Matches(v any) bool {
	switch k {
	case KindTime:
		_, ok := v.(time.Time)
		return ok
	case KindCategory:
		_, ok := v.(string)
		return ok
	case KindNumber:
		_, ok := v.(float64)
		return ok
	}
	return false
}
