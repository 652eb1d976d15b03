package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	dbmodels "smartparking/internal/db"
	"smartparking/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS parking_slots (
	id SERIAL PRIMARY KEY,
	slot_number VARCHAR(10) UNIQUE NOT NULL,
	vehicle_type VARCHAR(10) NOT NULL DEFAULT 'CAR',
	is_vip BOOLEAN NOT NULL DEFAULT FALSE,
	is_available BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS parking_sessions (
	id SERIAL PRIMARY KEY,
	slot_id INTEGER NOT NULL REFERENCES parking_slots(id),
	vehicle_number VARCHAR(20) NOT NULL,
	customer_name VARCHAR(100) NOT NULL DEFAULT 'Guest',
	customer_email VARCHAR(255),
	customer_phone VARCHAR(30),
	entry_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	exit_time TIMESTAMPTZ,
	fee_charged NUMERIC(10,2) NOT NULL DEFAULT 0.00,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_sessions_active_vehicle
	ON parking_sessions (vehicle_number) WHERE is_active;

CREATE TABLE IF NOT EXISTS staff_users (
	id SERIAL PRIMARY KEY,
	email VARCHAR(255) UNIQUE NOT NULL,
	password_hash VARCHAR(255) NOT NULL
);
`

// Seeds the slot inventory: 30 VIP and 40 standard slots with vehicle
// types spread evenly across the enumeration. Safe to re-run; existing
// slots keep their availability and get their type and zone refreshed.
func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	slotRepo := repository.NewSlotRepository(db)
	types := dbmodels.VehicleTypes

	log.Println("Syncing VIP zone (30 slots)...")
	for i := 1; i <= 30; i++ {
		slot := &dbmodels.Slot{
			SlotNumber:  fmt.Sprintf("VIP-%d", 100+i),
			VehicleType: types[i%len(types)],
			IsVIP:       true,
			IsAvailable: true,
		}
		if err := slotRepo.UpsertSlot(slot); err != nil {
			log.Fatalf("Failed to seed slot %s: %v", slot.SlotNumber, err)
		}
	}

	log.Println("Syncing standard zone (40 slots)...")
	for i := 1; i <= 40; i++ {
		slot := &dbmodels.Slot{
			SlotNumber:  fmt.Sprintf("STD-%d", 200+i),
			VehicleType: types[i%len(types)],
			IsVIP:       false,
			IsAvailable: true,
		}
		if err := slotRepo.UpsertSlot(slot); err != nil {
			log.Fatalf("Failed to seed slot %s: %v", slot.SlotNumber, err)
		}
	}

	if email, password := os.Getenv("SEED_STAFF_EMAIL"), os.Getenv("SEED_STAFF_PASSWORD"); email != "" && password != "" {
		staffRepo := repository.NewStaffAuthRepository(db)
		existing, err := staffRepo.GetByEmail(email)
		if err != nil {
			log.Fatalf("Failed to check staff user: %v", err)
		}
		if existing == nil {
			if err := staffRepo.CreateStaff(email, password); err != nil {
				log.Fatalf("Failed to create staff user: %v", err)
			}
			log.Printf("Created staff user %s", email)
		}
	}

	total, available, err := slotRepo.CountSlots()
	if err != nil {
		log.Fatalf("Failed to count slots: %v", err)
	}
	log.Printf("Seeding complete. Slots in DB: %d (%d available)", total, available)
}
