package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"smartparking/internal/db"
)

var (
	kolkata = time.FixedZone("IST", 5*3600+1800)
	now     = time.Date(2025, 3, 10, 14, 30, 0, 0, kolkata)
)

func closedSession(vehicleType string, exit time.Time, fee string) SessionSnapshot {
	return SessionSnapshot{
		VehicleType: vehicleType,
		EntryTime:   exit.Add(-2 * time.Hour),
		ExitTime:    &exit,
		FeeCharged:  decimal.RequireFromString(fee),
		IsActive:    false,
	}
}

func activeSession(vehicleType string, entry time.Time) SessionSnapshot {
	return SessionSnapshot{
		VehicleType: vehicleType,
		EntryTime:   entry,
		FeeCharged:  decimal.Zero,
		IsActive:    true,
	}
}

func TestComputeDailyEmpty(t *testing.T) {
	summary := ComputeDaily(now, kolkata, nil)
	assert.Equal(t, 0, summary.TotalVehicles)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.MaxSingleFee.IsZero())
	assert.True(t, summary.AvgRevenue.IsZero())
	assert.Empty(t, summary.TypeDistribution)
}

func TestComputeDailySingleExit(t *testing.T) {
	summary := ComputeDaily(now, kolkata, []SessionSnapshot{
		closedSession(db.TypeCar, now.Add(-time.Hour), "42.50"),
	})
	assert.Equal(t, "42.50", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "42.50", summary.MaxSingleFee.StringFixed(2))
	assert.Equal(t, "42.50", summary.AvgRevenue.StringFixed(2))
	assert.Equal(t, 0, summary.TotalVehicles)
}

func TestComputeDailyRevenueStats(t *testing.T) {
	summary := ComputeDaily(now, kolkata, []SessionSnapshot{
		closedSession(db.TypeCar, now.Add(-time.Hour), "20.00"),
		closedSession(db.TypeHeavy, now.Add(-2*time.Hour), "100.00"),
		closedSession(db.TypeBike, now.Add(-3*time.Hour), "10.00"),
		// Exited yesterday: excluded from today's revenue.
		closedSession(db.TypeCar, now.Add(-30*time.Hour), "500.00"),
	})
	assert.Equal(t, "130.00", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "100.00", summary.MaxSingleFee.StringFixed(2))
	assert.Equal(t, "43.33", summary.AvgRevenue.StringFixed(2))
}

func TestComputeDailyLongStayerPaysToday(t *testing.T) {
	// Entered last week, exits today: revenue counts it.
	exit := now.Add(-time.Hour)
	long := SessionSnapshot{
		VehicleType: db.TypeHeavy,
		EntryTime:   now.AddDate(0, 0, -7),
		ExitTime:    &exit,
		FeeCharged:  decimal.RequireFromString("3400.00"),
		IsActive:    false,
	}
	summary := ComputeDaily(now, kolkata, []SessionSnapshot{long})
	assert.Equal(t, "3400.00", summary.TotalRevenue.StringFixed(2))
}

func TestComputeDailyVolumeAndDistribution(t *testing.T) {
	summary := ComputeDaily(now, kolkata, []SessionSnapshot{
		activeSession(db.TypeCar, now.Add(-time.Hour)),
		activeSession(db.TypeCar, now.Add(-10*time.Minute)),
		activeSession(db.TypeBike, now.Add(-5*time.Minute)),
		// Still parked since yesterday: counted too.
		activeSession(db.TypeEV, now.Add(-26*time.Hour)),
		// Closed sessions never count toward volume.
		closedSession(db.TypeHeavy, now.Add(-time.Hour), "50.00"),
	})
	assert.Equal(t, 4, summary.TotalVehicles)
	assert.Equal(t, map[string]int{
		db.TypeCar:  2,
		db.TypeBike: 1,
		db.TypeEV:   1,
	}, summary.TypeDistribution)
}

func TestComputeDailyWindowBoundaries(t *testing.T) {
	startOfDay := time.Date(2025, 3, 10, 0, 0, 0, 0, kolkata)
	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)
	summary := ComputeDaily(now, kolkata, []SessionSnapshot{
		closedSession(db.TypeCar, startOfDay, "10.00"),
		closedSession(db.TypeCar, endOfDay, "20.00"),
		closedSession(db.TypeCar, startOfDay.Add(-time.Second), "40.00"),
	})
	assert.Equal(t, "30.00", summary.TotalRevenue.StringFixed(2))
}

func TestComputeHistoricalEmpty(t *testing.T) {
	summary := ComputeHistorical(nil)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.AvgFee.IsZero())
	assert.Equal(t, 0, summary.VehicleCount)
}

func TestComputeHistoricalIgnoresActive(t *testing.T) {
	summary := ComputeHistorical([]SessionSnapshot{
		activeSession(db.TypeCar, now),
		closedSession(db.TypeCar, now.AddDate(0, -1, 0), "25.00"),
		closedSession(db.TypeBike, now, "10.50"),
	})
	assert.Equal(t, 2, summary.VehicleCount)
	assert.Equal(t, "35.50", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "17.75", summary.AvgFee.StringFixed(2))
}

func TestComputeHistoricalOrderInvariant(t *testing.T) {
	sessions := []SessionSnapshot{
		closedSession(db.TypeCar, now, "25.00"),
		closedSession(db.TypeBike, now.AddDate(-1, 0, 0), "10.50"),
		closedSession(db.TypeHeavy, now.AddDate(0, 0, -3), "125.00"),
	}
	reversed := []SessionSnapshot{sessions[2], sessions[1], sessions[0]}

	a := ComputeHistorical(sessions)
	b := ComputeHistorical(reversed)
	assert.True(t, a.TotalRevenue.Equal(b.TotalRevenue))
	assert.True(t, a.AvgFee.Equal(b.AvgFee))
	assert.Equal(t, a.VehicleCount, b.VehicleCount)
}
