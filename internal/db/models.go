package db

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle type categories. Every slot is fixed to one of these at
// provisioning time; sessions inherit the type from their slot.
const (
	TypeBike  = "BIKE"
	TypeCar   = "CAR"
	TypeEV    = "EV"
	TypeHeavy = "HEAVY"
)

var VehicleTypes = []string{TypeBike, TypeCar, TypeEV, TypeHeavy}

func IsValidVehicleType(t string) bool {
	for _, vt := range VehicleTypes {
		if vt == t {
			return true
		}
	}
	return false
}

// Slot is one physical parking space. IsAvailable is false exactly
// while one active session references the slot.
type Slot struct {
	ID          int
	SlotNumber  string
	VehicleType string
	IsVIP       bool
	IsAvailable bool
}

// ParkingSession records one vehicle's stay from entry to exit.
// ExitTime and FeeCharged are only set once the session is closed.
type ParkingSession struct {
	ID            int
	SlotID        int
	VehicleNumber string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	EntryTime     time.Time
	ExitTime      *time.Time
	FeeCharged    decimal.Decimal
	IsActive      bool
}

// SessionWithSlot is a session joined with the slot it occupies, the
// shape the exit flow, receipts and reports work with.
type SessionWithSlot struct {
	ParkingSession
	SlotNumber  string
	VehicleType string
	SlotIsVIP   bool
}

type StaffUser struct {
	ID           int
	Email        string
	PasswordHash string
}
