package domain

import "time"

// SampleCount is the fixed row count of every generated table.
const SampleCount = 60

type RealTimeSample struct {
	Timestamp     time.Time `json:"timestamp"`
	Location      string    `json:"location"`
	FuelLevelPct  float64   `json:"fuel_level_pct"`
	DispensingKg  float64   `json:"dispensing_kg"`
	FleetStatus   string    `json:"fleet_status"`
	TemperatureC  float64   `json:"temperature_c"`
	PressureBar   float64   `json:"pressure_bar"`
	HumidityPct   float64   `json:"humidity_pct"`
	TankCapacityL float64   `json:"tank_capacity_l"`
}

type OperationalSample struct {
	Timestamp          time.Time `json:"timestamp"`
	EquipmentStatus    string    `json:"equipment_status"`
	MaintenanceAlert   string    `json:"maintenance_alert"`
	AlertDescription   string    `json:"alert_description"`
	ResponseTimeHours  float64   `json:"response_time_hours"`
	DowntimeHours      float64   `json:"downtime_hours"`
	MaintenanceCostUSD float64   `json:"maintenance_cost_usd"`
}

type EnvironmentalSample struct {
	Date                     time.Time `json:"date"`
	EmissionsReductionTonnes float64   `json:"emissions_reduction_tonnes"`
	CarbonFootprintTonnes    float64   `json:"carbon_footprint_tonnes"`
}

type FinancialSample struct {
	Date           time.Time `json:"date"`
	CostSavingsUSD float64   `json:"cost_savings_usd"`
	RevenueUSD     float64   `json:"revenue_usd"`
}

type SupplyChainSample struct {
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	InventoryKg float64   `json:"inventory_kg"`
}

// Categorical value sets.
var (
	Locations           = []string{"Terminal A", "Terminal B", "Terminal C"}
	FleetStatuses       = []string{"Idle", "In Transit", "Refueling"}
	EquipmentStatuses   = []string{"Operational", "Maintenance Needed", "Fault"}
	MaintenanceAlerts   = []string{"No Alert", "Scheduled Maintenance", "Malfunction Detected"}
	AlertDescriptions   = []string{"All systems normal", "Scheduled maintenance required", "Equipment malfunction detected"}
	SupplyChainStatuses = []string{"On Schedule", "Delayed", "Completed"}
)

// Range is a closed numeric sampling interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

var (
	FuelLevelRange          = Range{30, 100}
	DispensingRange         = Range{100, 500}
	TemperatureRange        = Range{15, 35}
	PressureRange           = Range{1, 5}
	HumidityRange           = Range{30, 70}
	TankCapacityRange       = Range{500, 1000}
	ResponseTimeRange       = Range{1, 10}
	DowntimeRange           = Range{0, 2}
	MaintenanceCostRange    = Range{100, 1000}
	EmissionsReductionRange = Range{0.1, 2.0}
	CarbonFootprintRange    = Range{50, 300}
	CostSavingsRange        = Range{5000, 20000}
	RevenueRange            = Range{10000, 50000}
	InventoryRange          = Range{1000, 5000}
)
