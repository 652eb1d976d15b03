package entities

// SlotView is one slot on the live status board.
type SlotView struct {
	SlotNumber  string `json:"slot_number"`
	VehicleType string `json:"vehicle_type"`
	Zone        string `json:"zone"`
	IsAvailable bool   `json:"is_available"`
}

// DashboardResponse backs the staff dashboard: live slot grid plus
// today's analytics.
type DashboardResponse struct {
	Slots          []SlotView       `json:"slots"`
	TotalSlots     int              `json:"total_slots"`
	AvailableSlots int              `json:"available_slots"`
	Analytics      DailySummaryView `json:"analytics"`
	CurrencySymbol string           `json:"currency_symbol"`
}
