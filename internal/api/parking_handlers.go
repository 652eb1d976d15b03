package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"smartparking/internal/db"
	httperrors "smartparking/internal/errors"
	"smartparking/internal/repository"
	"smartparking/internal/service"
)

type ParkingHandler struct {
	Service *service.ParkingService
}

func NewParkingHandler(svc *service.ParkingService) *ParkingHandler {
	return &ParkingHandler{Service: svc}
}

func writeHTTPError(w http.ResponseWriter, err *httperrors.HTTPError) {
	http.Error(w, err.Message, err.Code)
}

// VehicleEntry assigns a slot based on zone selection and vehicle type,
// then opens the session.
func (h *ParkingHandler) VehicleEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.VehicleNumber) == "" {
		http.Error(w, "vehicle_number is required", http.StatusBadRequest)
		return
	}
	if !db.IsValidVehicleType(req.VehicleType) {
		http.Error(w, "Unknown vehicle type", http.StatusBadRequest)
		return
	}
	zone := strings.ToLower(req.ParkingZone)
	if zone != "vip" && zone != "standard" {
		http.Error(w, "Selection Required: Please choose a Parking Zone.", http.StatusBadRequest)
		return
	}

	result, err := h.Service.RegisterEntry(service.EntryRequest{
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VIPZone:       zone == "vip",
	})
	if errors.Is(err, service.ErrNoSlotAvailable) {
		msg := fmt.Sprintf("Allocation Failed: No available %s slots in %s zone.",
			req.VehicleType, strings.ToUpper(zone))
		writeHTTPError(w, httperrors.ErrConflict(msg))
		return
	}
	if err != nil {
		http.Error(w, "Error registering entry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"entry":   result,
		"message": fmt.Sprintf("Entry Confirmed: %s assigned to %s", result.VehicleNumber, result.SlotNumber),
	})
}

// QuoteExit previews the fee without closing the session.
func (h *ParkingHandler) QuoteExit(w http.ResponseWriter, r *http.Request) {
	var req ExitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	quote, err := h.Service.QuoteExit(req.VehicleNumber)
	if errors.Is(err, repository.ErrNoActiveSession) {
		writeHTTPError(w, httperrors.ErrNotFound("Error: No active record found."))
		return
	}
	if err != nil {
		http.Error(w, "Error computing fee", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

// SettleExit processes payment: computes the fee, closes the session
// and frees the slot.
func (h *ParkingHandler) SettleExit(w http.ResponseWriter, r *http.Request) {
	var req ExitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	receipt, err := h.Service.SettleExit(req.VehicleNumber)
	if errors.Is(err, repository.ErrNoActiveSession) {
		writeHTTPError(w, httperrors.ErrNotFound("Error: No active record found."))
		return
	}
	if err != nil {
		http.Error(w, "Error processing payment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"receipt": receipt,
		"message": fmt.Sprintf("Payment Processed: %s", receipt.FeeCharged),
	})
}

func (h *ParkingHandler) ListActiveSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Service.ListActiveSessions()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}
