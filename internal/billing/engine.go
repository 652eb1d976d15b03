package billing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"smartparking/internal/db"
)

// rate holds the tariff for one vehicle type. base covers the first
// two hours in full; hourly applies to every started hour after that.
type rate struct {
	base   int64
	hourly int64
}

var rates = map[string]rate{
	db.TypeBike:  {base: 10, hourly: 5},
	db.TypeCar:   {base: 20, hourly: 10},
	db.TypeEV:    {base: 15, hourly: 7},
	db.TypeHeavy: {base: 50, hourly: 25},
}

var vipDiscount = decimal.RequireFromString("0.80")

// CalculateFee charges for the stay between entryTime and exitTime.
// Duration is rounded up to whole hours, with a one-hour minimum even
// when exit is processed immediately or the clocks are out of order.
// Unrecognized vehicle types are billed at car rates. VIP slots get a
// 20% discount on the tiered amount. The result is rounded half-up to
// two decimal places.
func CalculateFee(entryTime, exitTime time.Time, vehicleType string, isVIP bool) decimal.Decimal {
	hours := int64(math.Ceil(exitTime.Sub(entryTime).Seconds() / 3600))
	if hours <= 0 {
		hours = 1
	}

	r, ok := rates[vehicleType]
	if !ok {
		r = rates[db.TypeCar]
	}

	fee := decimal.NewFromInt(r.base)
	if hours > 2 {
		fee = fee.Add(decimal.NewFromInt(hours - 2).Mul(decimal.NewFromInt(r.hourly)))
	}

	if isVIP {
		fee = fee.Mul(vipDiscount)
	}

	return fee.Round(2)
}
