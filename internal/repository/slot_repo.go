package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"smartparking/internal/db"
)

var ErrSlotNotFound = errors.New("slot not found")

type SlotRepository struct {
	DB *sql.DB
}

func NewSlotRepository(database *sql.DB) *SlotRepository {
	return &SlotRepository{DB: database}
}

func (r *SlotRepository) ListSlots() ([]db.Slot, error) {
	query := `
		SELECT id, slot_number, vehicle_type, is_vip, is_available
		FROM parking_slots
		ORDER BY slot_number`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying slots: %w", err)
	}
	defer rows.Close()

	var slots []db.Slot
	for rows.Next() {
		var s db.Slot
		if err := rows.Scan(&s.ID, &s.SlotNumber, &s.VehicleType, &s.IsVIP, &s.IsAvailable); err != nil {
			return nil, fmt.Errorf("error scanning slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating slot rows: %w", err)
	}
	return slots, nil
}

// ListAvailableSlots returns the free slots for one vehicle type and
// zone, ordered by slot number. This is the allocator's input.
func (r *SlotRepository) ListAvailableSlots(vehicleType string, vipZone bool) ([]db.Slot, error) {
	query := `
		SELECT id, slot_number, vehicle_type, is_vip, is_available
		FROM parking_slots
		WHERE vehicle_type = $1 AND is_vip = $2 AND is_available = TRUE
		ORDER BY slot_number`

	rows, err := r.DB.Query(query, vehicleType, vipZone)
	if err != nil {
		return nil, fmt.Errorf("error querying available slots: %w", err)
	}
	defer rows.Close()

	var slots []db.Slot
	for rows.Next() {
		var s db.Slot
		if err := rows.Scan(&s.ID, &s.SlotNumber, &s.VehicleType, &s.IsVIP, &s.IsAvailable); err != nil {
			return nil, fmt.Errorf("error scanning available slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating available slot rows: %w", err)
	}
	return slots, nil
}

func (r *SlotRepository) CountSlots() (total int, available int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_available)
		FROM parking_slots`
	if err := r.DB.QueryRow(query).Scan(&total, &available); err != nil {
		return 0, 0, fmt.Errorf("error counting slots: %w", err)
	}
	return total, available, nil
}

func (r *SlotRepository) CreateSlot(s *db.Slot) error {
	query := `
		INSERT INTO parking_slots (slot_number, vehicle_type, is_vip, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return r.DB.QueryRow(query, s.SlotNumber, s.VehicleType, s.IsVIP, s.IsAvailable).Scan(&s.ID)
}

// UpsertSlot inserts the slot or, if the number is already taken,
// refreshes its type and zone. Seeding relies on this being idempotent.
func (r *SlotRepository) UpsertSlot(s *db.Slot) error {
	query := `
		INSERT INTO parking_slots (slot_number, vehicle_type, is_vip, is_available)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slot_number) DO UPDATE
		SET vehicle_type = EXCLUDED.vehicle_type, is_vip = EXCLUDED.is_vip
		RETURNING id`
	return r.DB.QueryRow(query, s.SlotNumber, s.VehicleType, s.IsVIP, s.IsAvailable).Scan(&s.ID)
}

func (r *SlotRepository) UpdateSlot(slotNumber, vehicleType string, isVIP bool) error {
	result, err := r.DB.Exec(
		`UPDATE parking_slots SET vehicle_type = $1, is_vip = $2 WHERE slot_number = $3`,
		vehicleType, isVIP, slotNumber,
	)
	if err != nil {
		return fmt.Errorf("error updating slot %s: %w", slotNumber, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSlotNotFound
	}
	return nil
}
