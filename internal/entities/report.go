package entities

import "time"

// SessionLogEntry is one row of the revenue & customer log.
type SessionLogEntry struct {
	SessionID     int        `json:"session_id"`
	VehicleNumber string     `json:"vehicle_number"`
	CustomerName  string     `json:"customer_name"`
	Zone          string     `json:"zone"`
	VehicleType   string     `json:"vehicle_type"`
	EntryTime     time.Time  `json:"entry_time"`
	ExitTime      *time.Time `json:"exit_time,omitempty"`
	FeeCharged    string     `json:"fee_charged"`
	IsActive      bool       `json:"is_active"`
}

// ActiveSessionView lists a currently parked customer on the exit screen.
type ActiveSessionView struct {
	SessionID     int       `json:"session_id"`
	VehicleNumber string    `json:"vehicle_number"`
	CustomerName  string    `json:"customer_name"`
	SlotNumber    string    `json:"slot_number"`
	VehicleType   string    `json:"vehicle_type"`
	EntryTime     time.Time `json:"entry_time"`
}

// ReportResponse backs the revenue report page: today's and lifetime
// summaries, the last-exits chart series and the full session log.
type ReportResponse struct {
	Daily          DailySummaryView      `json:"daily"`
	Historical     HistoricalSummaryView `json:"historical"`
	ChartLabels    []string              `json:"chart_labels"`
	ChartData      []float64             `json:"chart_data"`
	Sessions       []SessionLogEntry     `json:"sessions"`
	CurrencySymbol string                `json:"currency_symbol"`
}
