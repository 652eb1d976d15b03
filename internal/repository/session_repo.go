package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"smartparking/internal/analytics"
	"smartparking/internal/db"
)

var (
	// ErrSlotTaken means another entry claimed the slot between the
	// availability read and the write.
	ErrSlotTaken = errors.New("slot no longer available")

	ErrNoActiveSession = errors.New("no active session for vehicle")
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(database *sql.DB) *SessionRepository {
	return &SessionRepository{DB: database}
}

// CreateSessionClaimingSlot inserts the session and flips the slot to
// unavailable in one transaction. The conditional update closes the
// window where two concurrent entries could book the same slot: the
// loser sees zero rows affected and gets ErrSlotTaken.
func (r *SessionRepository) CreateSessionClaimingSlot(sess *db.ParkingSession) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting entry transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE parking_slots SET is_available = FALSE WHERE id = $1 AND is_available = TRUE`,
		sess.SlotID,
	)
	if err != nil {
		return fmt.Errorf("error claiming slot %d: %w", sess.SlotID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSlotTaken
	}

	query := `
		INSERT INTO parking_sessions
		(slot_id, vehicle_number, customer_name, customer_email, customer_phone, entry_time, fee_charged, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err = tx.QueryRow(query,
		sess.SlotID,
		sess.VehicleNumber,
		sess.CustomerName,
		sess.CustomerEmail,
		sess.CustomerPhone,
		sess.EntryTime,
		sess.FeeCharged,
		sess.IsActive,
	).Scan(&sess.ID)
	if err != nil {
		return fmt.Errorf("error inserting session: %w", err)
	}

	return tx.Commit()
}

// CloseSessionReleasingSlot stamps exit time and fee, closes the
// session and frees its slot, all in one transaction.
func (r *SessionRepository) CloseSessionReleasingSlot(sessionID int, exitTime time.Time, fee decimal.Decimal) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting exit transaction: %w", err)
	}
	defer tx.Rollback()

	var slotID int
	err = tx.QueryRow(
		`UPDATE parking_sessions
		 SET exit_time = $1, fee_charged = $2, is_active = FALSE
		 WHERE id = $3 AND is_active = TRUE
		 RETURNING slot_id`,
		exitTime, fee, sessionID,
	).Scan(&slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoActiveSession
		}
		return fmt.Errorf("error closing session %d: %w", sessionID, err)
	}

	if _, err := tx.Exec(`UPDATE parking_slots SET is_available = TRUE WHERE id = $1`, slotID); err != nil {
		return fmt.Errorf("error releasing slot %d: %w", slotID, err)
	}

	return tx.Commit()
}

const sessionWithSlotColumns = `
	p.id, p.slot_id, p.vehicle_number, p.customer_name,
	COALESCE(p.customer_email, ''), COALESCE(p.customer_phone, ''),
	p.entry_time, p.exit_time, p.fee_charged, p.is_active,
	s.slot_number, s.vehicle_type, s.is_vip`

func scanSessionWithSlot(row interface{ Scan(...interface{}) error }) (*db.SessionWithSlot, error) {
	var sess db.SessionWithSlot
	var exitTime sql.NullTime
	err := row.Scan(
		&sess.ID, &sess.SlotID, &sess.VehicleNumber, &sess.CustomerName,
		&sess.CustomerEmail, &sess.CustomerPhone,
		&sess.EntryTime, &exitTime, &sess.FeeCharged, &sess.IsActive,
		&sess.SlotNumber, &sess.VehicleType, &sess.SlotIsVIP,
	)
	if err != nil {
		return nil, err
	}
	if exitTime.Valid {
		t := exitTime.Time
		sess.ExitTime = &t
	}
	return &sess, nil
}

// GetActiveByVehicle finds the open session for a vehicle number.
func (r *SessionRepository) GetActiveByVehicle(vehicleNumber string) (*db.SessionWithSlot, error) {
	query := `
		SELECT ` + sessionWithSlotColumns + `
		FROM parking_sessions p
		JOIN parking_slots s ON s.id = p.slot_id
		WHERE p.vehicle_number = $1 AND p.is_active = TRUE`

	sess, err := scanSessionWithSlot(r.DB.QueryRow(query, vehicleNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("error querying active session for %s: %w", vehicleNumber, err)
	}
	return sess, nil
}

func (r *SessionRepository) GetByID(id int) (*db.SessionWithSlot, error) {
	query := `
		SELECT ` + sessionWithSlotColumns + `
		FROM parking_sessions p
		JOIN parking_slots s ON s.id = p.slot_id
		WHERE p.id = $1`

	sess, err := scanSessionWithSlot(r.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error querying session %d: %w", id, err)
	}
	return sess, nil
}

func (r *SessionRepository) listWithSlot(query string, args ...interface{}) ([]db.SessionWithSlot, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []db.SessionWithSlot
	for rows.Next() {
		sess, err := scanSessionWithSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning session: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating session rows: %w", err)
	}
	return sessions, nil
}

// ListActive returns open sessions ordered by customer name, for the
// exit screen's customer picker.
func (r *SessionRepository) ListActive() ([]db.SessionWithSlot, error) {
	return r.listWithSlot(`
		SELECT ` + sessionWithSlotColumns + `
		FROM parking_sessions p
		JOIN parking_slots s ON s.id = p.slot_id
		WHERE p.is_active = TRUE
		ORDER BY p.customer_name`)
}

// ListAll returns every session, newest entry first, for the report log.
func (r *SessionRepository) ListAll() ([]db.SessionWithSlot, error) {
	return r.listWithSlot(`
		SELECT ` + sessionWithSlotColumns + `
		FROM parking_sessions p
		JOIN parking_slots s ON s.id = p.slot_id
		ORDER BY p.entry_time DESC`)
}

// ListCompleted returns closed sessions, most recent exit first.
func (r *SessionRepository) ListCompleted(limit int) ([]db.SessionWithSlot, error) {
	query := `
		SELECT ` + sessionWithSlotColumns + `
		FROM parking_sessions p
		JOIN parking_slots s ON s.id = p.slot_id
		WHERE p.is_active = FALSE
		ORDER BY p.exit_time DESC`
	if limit > 0 {
		return r.listWithSlot(query+` LIMIT $1`, limit)
	}
	return r.listWithSlot(query)
}

// ListSnapshots feeds the analytics functions: every session reduced
// to the fields the summaries read.
func (r *SessionRepository) ListSnapshots() ([]analytics.SessionSnapshot, error) {
	query := `
		SELECT s.vehicle_type, p.entry_time, p.exit_time, p.fee_charged, p.is_active
		FROM parking_sessions p
		JOIN parking_slots s ON s.id = p.slot_id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying session snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []analytics.SessionSnapshot
	for rows.Next() {
		var snap analytics.SessionSnapshot
		var exitTime sql.NullTime
		if err := rows.Scan(&snap.VehicleType, &snap.EntryTime, &exitTime, &snap.FeeCharged, &snap.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning session snapshot: %w", err)
		}
		if exitTime.Valid {
			t := exitTime.Time
			snap.ExitTime = &t
		}
		snapshots = append(snapshots, snap)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating snapshot rows: %w", err)
	}
	return snapshots, nil
}
