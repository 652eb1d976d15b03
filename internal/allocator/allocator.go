package allocator

import (
	"sort"

	"smartparking/internal/db"
)

// Allocate picks one free slot matching the requested vehicle type and
// zone. Ties are broken by slot number ascending so repeated calls over
// the same state choose the same slot. Returns nil when nothing
// matches; the caller decides how to report that.
//
// Allocate never mutates its input. Marking the chosen slot unavailable
// and recording the session is the caller's job.
func Allocate(vehicleType string, vipZone bool, slots []db.Slot) *db.Slot {
	var candidates []db.Slot
	for _, s := range slots {
		if s.IsAvailable && s.VehicleType == vehicleType && s.IsVIP == vipZone {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].SlotNumber < candidates[j].SlotNumber
	})
	chosen := candidates[0]
	return &chosen
}
