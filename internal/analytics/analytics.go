package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionSnapshot is the slice of a parking session the summaries
// need. Repositories build these from the session/slot join; the
// functions here never touch storage themselves.
type SessionSnapshot struct {
	VehicleType string
	EntryTime   time.Time
	ExitTime    *time.Time
	FeeCharged  decimal.Decimal
	IsActive    bool
}

// DailySummary covers one calendar day in the report timezone.
// Volume counts everything currently parked; revenue covers payments
// collected between 00:00 and 23:59 that day, including long stays
// that entered on an earlier date.
type DailySummary struct {
	TotalRevenue     decimal.Decimal
	MaxSingleFee     decimal.Decimal
	AvgRevenue       decimal.Decimal
	TotalVehicles    int
	TypeDistribution map[string]int
}

// HistoricalSummary aggregates every completed session regardless of date.
type HistoricalSummary struct {
	TotalRevenue decimal.Decimal
	AvgFee       decimal.Decimal
	VehicleCount int
}

// ComputeDaily summarizes today's occupancy and revenue, with "today"
// anchored to now in loc.
func ComputeDaily(now time.Time, loc *time.Location, sessions []SessionSnapshot) DailySummary {
	local := now.In(loc)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)

	summary := DailySummary{
		TotalRevenue:     decimal.Zero,
		MaxSingleFee:     decimal.Zero,
		AvgRevenue:       decimal.Zero,
		TypeDistribution: map[string]int{},
	}

	var collected []decimal.Decimal
	for _, s := range sessions {
		if s.IsActive && !s.EntryTime.After(endOfDay) {
			summary.TotalVehicles++
			summary.TypeDistribution[s.VehicleType]++
		}
		if !s.IsActive && s.ExitTime != nil &&
			!s.ExitTime.Before(startOfDay) && !s.ExitTime.After(endOfDay) {
			collected = append(collected, s.FeeCharged)
		}
	}

	if len(collected) > 0 {
		total := decimal.Zero
		max := collected[0]
		for _, fee := range collected {
			total = total.Add(fee)
			if fee.GreaterThan(max) {
				max = fee
			}
		}
		summary.TotalRevenue = total.Round(2)
		summary.MaxSingleFee = max.Round(2)
		summary.AvgRevenue = total.Div(decimal.NewFromInt(int64(len(collected)))).Round(2)
	}

	return summary
}

// ComputeHistorical summarizes all completed sessions. Empty or
// all-active input yields the zero summary.
func ComputeHistorical(sessions []SessionSnapshot) HistoricalSummary {
	summary := HistoricalSummary{
		TotalRevenue: decimal.Zero,
		AvgFee:       decimal.Zero,
	}

	total := decimal.Zero
	for _, s := range sessions {
		if s.IsActive {
			continue
		}
		total = total.Add(s.FeeCharged)
		summary.VehicleCount++
	}

	if summary.VehicleCount > 0 {
		summary.TotalRevenue = total.Round(2)
		summary.AvgFee = total.Div(decimal.NewFromInt(int64(summary.VehicleCount))).Round(2)
	}

	return summary
}
