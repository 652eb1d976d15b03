package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartparking/internal/db"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

var entry = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestCalculateFeeMinimumOneHour(t *testing.T) {
	// Zero-duration stays still pay the base of their type.
	cases := map[string]string{
		db.TypeBike:  "10",
		db.TypeCar:   "20",
		db.TypeEV:    "15",
		db.TypeHeavy: "50",
	}
	for vehicleType, want := range cases {
		fee := CalculateFee(entry, entry, vehicleType, false)
		assert.True(t, fee.Equal(decimalFromString(t, want)), "%s: got %s", vehicleType, fee)
	}
}

func TestCalculateFeeBaseCoversTwoHours(t *testing.T) {
	fee := CalculateFee(entry, entry.Add(2*time.Hour), db.TypeCar, false)
	assert.Equal(t, "20.00", fee.StringFixed(2))
}

func TestCalculateFeeThirdHourStartsHourlyRate(t *testing.T) {
	// 2h01m rounds up to 3 hours: base 20 + 1*10.
	fee := CalculateFee(entry, entry.Add(2*time.Hour+time.Minute), db.TypeCar, false)
	assert.Equal(t, "30.00", fee.StringFixed(2))
}

func TestCalculateFeeOneMinuteIsOneHour(t *testing.T) {
	fee := CalculateFee(entry, entry.Add(time.Minute), db.TypeBike, false)
	assert.Equal(t, "10.00", fee.StringFixed(2))
}

func TestCalculateFeeSixtyOneMinutesIsTwoHours(t *testing.T) {
	// Still inside the base window.
	fee := CalculateFee(entry, entry.Add(61*time.Minute), db.TypeBike, false)
	assert.Equal(t, "10.00", fee.StringFixed(2))
}

func TestCalculateFeeVIPDiscount(t *testing.T) {
	// 5h HEAVY: 50 + 3*25 = 125, minus 20% = 100.00.
	fee := CalculateFee(entry, entry.Add(5*time.Hour), db.TypeHeavy, true)
	assert.Equal(t, "100.00", fee.StringFixed(2))
}

func TestCalculateFeeVIPDiscountFractionalResult(t *testing.T) {
	// 5h EV: 15 + 3*7 = 36, minus 20% = 28.80.
	fee := CalculateFee(entry, entry.Add(5*time.Hour), db.TypeEV, true)
	assert.Equal(t, "28.80", fee.StringFixed(2))
}

func TestCalculateFeeNegativeDurationClampsToOneHour(t *testing.T) {
	fee := CalculateFee(entry, entry.Add(-time.Minute), db.TypeBike, false)
	assert.Equal(t, "10.00", fee.StringFixed(2))
}

func TestCalculateFeeUnknownTypeUsesCarRates(t *testing.T) {
	fee := CalculateFee(entry, entry.Add(3*time.Hour), "RICKSHAW", false)
	assert.Equal(t, "30.00", fee.StringFixed(2))
}

func TestCalculateFeeIdempotent(t *testing.T) {
	exit := entry.Add(7*time.Hour + 13*time.Minute)
	first := CalculateFee(entry, exit, db.TypeEV, true)
	second := CalculateFee(entry, exit, db.TypeEV, true)
	assert.True(t, first.Equal(second))
}

func TestCalculateFeeNeverNegative(t *testing.T) {
	for _, vehicleType := range db.VehicleTypes {
		fee := CalculateFee(entry, entry.Add(-48*time.Hour), vehicleType, true)
		assert.False(t, fee.IsNegative(), "%s: got %s", vehicleType, fee)
	}
}
