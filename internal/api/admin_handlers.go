package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	httperrors "smartparking/internal/errors"
	"smartparking/internal/repository"
	"smartparking/internal/service"
)

type AdminHandler struct {
	Service *service.AdminService
	Auth    service.StaffAuthService
}

func NewAdminHandler(svc *service.AdminService, authSvc service.StaffAuthService) *AdminHandler {
	return &AdminHandler{Service: svc, Auth: authSvc}
}

func (h *AdminHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.Service.ListSlots()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

func (h *AdminHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.SlotNumber == "" {
		http.Error(w, "slot_number is required", http.StatusBadRequest)
		return
	}
	slot, err := h.Service.CreateSlot(req.SlotNumber, req.VehicleType, req.IsVIP)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(slot)
}

func (h *AdminHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	slotNumber := mux.Vars(r)["slot_number"]
	var req UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	err := h.Service.UpdateSlot(slotNumber, req.VehicleType, req.IsVIP)
	if errors.Is(err, repository.ErrSlotNotFound) {
		writeHTTPError(w, httperrors.ErrNotFound("Slot not found"))
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Slot updated"})
}

func (h *AdminHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Auth.CreateStaff(req.Email, req.Password); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Staff user created"})
}
