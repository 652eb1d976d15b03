package api

// Entry
type EntryRequest struct {
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ParkingZone   string `json:"parking_zone"`
}

// Exit
type ExitRequest struct {
	VehicleNumber string `json:"vehicle_number"`
}

// Auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	Token string `json:"token"`
}

// Admin
type CreateSlotRequest struct {
	SlotNumber  string `json:"slot_number"`
	VehicleType string `json:"vehicle_type"`
	IsVIP       bool   `json:"is_vip"`
}
type UpdateSlotRequest struct {
	VehicleType string `json:"vehicle_type"`
	IsVIP       bool   `json:"is_vip"`
}
type CreateStaffRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
