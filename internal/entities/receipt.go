package entities

import "time"

// Receipt is the settled view of one session, handed to the exit
// screen, the receipt PDF and the notification senders.
type Receipt struct {
	SessionID     int       `json:"session_id"`
	VehicleNumber string    `json:"vehicle_number"`
	CustomerName  string    `json:"customer_name"`
	SlotNumber    string    `json:"slot_number"`
	VehicleType   string    `json:"vehicle_type"`
	Zone          string    `json:"zone"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
	FeeCharged    string    `json:"fee_charged"`
}

// ExitQuote previews the fee for an active session before payment is
// processed. Nothing is persisted when one is produced.
type ExitQuote struct {
	SessionID     int       `json:"session_id"`
	VehicleNumber string    `json:"vehicle_number"`
	CustomerName  string    `json:"customer_name"`
	SlotNumber    string    `json:"slot_number"`
	VehicleType   string    `json:"vehicle_type"`
	EntryTime     time.Time `json:"entry_time"`
	QuotedAt      time.Time `json:"quoted_at"`
	Fee           string    `json:"fee"`
}
