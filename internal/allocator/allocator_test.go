package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartparking/internal/db"
)

func slot(number, vehicleType string, vip, available bool) db.Slot {
	return db.Slot{
		SlotNumber:  number,
		VehicleType: vehicleType,
		IsVIP:       vip,
		IsAvailable: available,
	}
}

func TestAllocateMatchesTypeAndZone(t *testing.T) {
	slots := []db.Slot{
		slot("STD-201", db.TypeBike, false, true),
		slot("STD-202", db.TypeCar, false, true),
		slot("VIP-101", db.TypeCar, true, true),
	}

	chosen := Allocate(db.TypeCar, false, slots)
	require.NotNil(t, chosen)
	assert.Equal(t, "STD-202", chosen.SlotNumber)

	chosen = Allocate(db.TypeCar, true, slots)
	require.NotNil(t, chosen)
	assert.Equal(t, "VIP-101", chosen.SlotNumber)
}

func TestAllocateTieBreaksBySlotNumber(t *testing.T) {
	slots := []db.Slot{
		slot("STD-210", db.TypeEV, false, true),
		slot("STD-203", db.TypeEV, false, true),
		slot("STD-207", db.TypeEV, false, true),
	}
	chosen := Allocate(db.TypeEV, false, slots)
	require.NotNil(t, chosen)
	assert.Equal(t, "STD-203", chosen.SlotNumber)
}

func TestAllocateNoMatch(t *testing.T) {
	slots := []db.Slot{
		// Right type, wrong zone.
		slot("VIP-102", db.TypeHeavy, true, true),
		// Right type and zone, but occupied.
		slot("STD-204", db.TypeHeavy, false, false),
		// Free, wrong type.
		slot("STD-205", db.TypeBike, false, true),
	}
	assert.Nil(t, Allocate(db.TypeHeavy, false, slots))
}

func TestAllocateEmptyInput(t *testing.T) {
	assert.Nil(t, Allocate(db.TypeCar, false, nil))
}

func TestAllocateDoesNotMutateInput(t *testing.T) {
	slots := []db.Slot{
		slot("STD-202", db.TypeCar, false, true),
		slot("STD-201", db.TypeCar, false, true),
	}
	chosen := Allocate(db.TypeCar, false, slots)
	require.NotNil(t, chosen)
	assert.Equal(t, "STD-201", chosen.SlotNumber)
	assert.Equal(t, "STD-202", slots[0].SlotNumber, "input order must be preserved")

	chosen.IsAvailable = false
	assert.True(t, slots[1].IsAvailable, "returned slot must be a copy")
}
