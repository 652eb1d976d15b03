package entities

import "smartparking/internal/analytics"

// DailySummaryView is the display form of a daily summary: amounts
// fixed to two decimals, counts as-is.
type DailySummaryView struct {
	TotalRevenue     string         `json:"total_revenue"`
	MaxSingleFee     string         `json:"max_single_fee"`
	AvgRevenue       string         `json:"avg_revenue"`
	TotalVehicles    int            `json:"total_vehicles"`
	TypeDistribution map[string]int `json:"type_distribution"`
}

type HistoricalSummaryView struct {
	TotalRevenue string `json:"total_revenue"`
	AvgFee       string `json:"avg_fee"`
	VehicleCount int    `json:"vehicle_count"`
}

func NewDailySummaryView(s analytics.DailySummary) DailySummaryView {
	return DailySummaryView{
		TotalRevenue:     s.TotalRevenue.StringFixed(2),
		MaxSingleFee:     s.MaxSingleFee.StringFixed(2),
		AvgRevenue:       s.AvgRevenue.StringFixed(2),
		TotalVehicles:    s.TotalVehicles,
		TypeDistribution: s.TypeDistribution,
	}
}

func NewHistoricalSummaryView(s analytics.HistoricalSummary) HistoricalSummaryView {
	return HistoricalSummaryView{
		TotalRevenue: s.TotalRevenue.StringFixed(2),
		AvgFee:       s.AvgFee.StringFixed(2),
		VehicleCount: s.VehicleCount,
	}
}
