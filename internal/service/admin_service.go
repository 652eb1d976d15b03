package service

import (
	"fmt"

	"smartparking/internal/db"
	"smartparking/internal/repository"
)

type AdminService struct {
	slotRepo *repository.SlotRepository
}

func NewAdminService(slotRepo *repository.SlotRepository) *AdminService {
	return &AdminService{slotRepo: slotRepo}
}

func (s *AdminService) ListSlots() ([]db.Slot, error) {
	return s.slotRepo.ListSlots()
}

func (s *AdminService) CreateSlot(slotNumber, vehicleType string, isVIP bool) (*db.Slot, error) {
	if !db.IsValidVehicleType(vehicleType) {
		return nil, fmt.Errorf("unknown vehicle type %q", vehicleType)
	}
	slot := &db.Slot{
		SlotNumber:  slotNumber,
		VehicleType: vehicleType,
		IsVIP:       isVIP,
		IsAvailable: true,
	}
	if err := s.slotRepo.CreateSlot(slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *AdminService) UpdateSlot(slotNumber, vehicleType string, isVIP bool) error {
	if !db.IsValidVehicleType(vehicleType) {
		return fmt.Errorf("unknown vehicle type %q", vehicleType)
	}
	return s.slotRepo.UpdateSlot(slotNumber, vehicleType, isVIP)
}
