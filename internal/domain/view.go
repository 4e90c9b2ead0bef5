package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownView = errors.New("unknown view")

type View string

const (
	RealTimeMonitoring    View = "RealTimeMonitoring"
	OperationalEfficiency View = "OperationalEfficiency"
	EnvironmentalImpact   View = "EnvironmentalImpact"
	FinancialPerformance  View = "FinancialPerformance"
	SupplyChain           View = "SupplyChain"
)

// ViewInfo describes one selectable dashboard.
type ViewInfo struct {
	View        View   `json:"view"`
	DisplayName string `json:"display_name"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
}

// Views is the catalogue in selector order.
var Views = []ViewInfo{
	{RealTimeMonitoring, "Real-Time Monitoring", "Real-Time Monitoring Dashboard", "Fuel Levels, Dispensing Data, Fleet Tracking"},
	{OperationalEfficiency, "Operational Efficiency", "Operational Efficiency Dashboard", "Equipment Status, Maintenance Alerts"},
	{EnvironmentalImpact, "Environmental Impact", "Environmental Impact Dashboard", "Emissions Reduction, Carbon Footprint"},
	{FinancialPerformance, "Financial Performance", "Financial Performance Dashboard", "Cost Analysis, Revenue Tracking"},
	{SupplyChain, "Supply Chain", "Supply Chain Dashboard", "Hydrogen Supply Chain, Inventory Management"},
}

// ParseView accepts the identifier or the display name, case-insensitively.
func ParseView(s string) (View, error) {
	s = strings.TrimSpace(s)
	for _, v := range Views {
		if strings.EqualFold(s, string(v.View)) || strings.EqualFold(s, v.DisplayName) {
			return v.View, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

func (v View) Info() (ViewInfo, bool) {
	for _, info := range Views {
		if info.View == v {
			return info, true
		}
	}
	return ViewInfo{}, false
}
