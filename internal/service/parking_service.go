package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"smartparking/internal/allocator"
	"smartparking/internal/billing"
	"smartparking/internal/db"
	"smartparking/internal/entities"
	"smartparking/internal/repository"
)

// ErrNoSlotAvailable means no free slot matched the requested vehicle
// type and zone. It is an ordinary outcome, rendered as an allocation
// failure, not a server error.
var ErrNoSlotAvailable = errors.New("no matching slot available")

const defaultCustomerName = "Guest"

type ParkingService struct {
	Slots    *repository.SlotRepository
	Sessions *repository.SessionRepository
	Notify   *NotifyService
}

func NewParkingService(slots *repository.SlotRepository, sessions *repository.SessionRepository, notify *NotifyService) *ParkingService {
	return &ParkingService{Slots: slots, Sessions: sessions, Notify: notify}
}

type EntryRequest struct {
	VehicleNumber string
	VehicleType   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VIPZone       bool
}

type EntryResult struct {
	SessionID     int       `json:"session_id"`
	SlotNumber    string    `json:"slot_number"`
	VehicleNumber string    `json:"vehicle_number"`
	CustomerName  string    `json:"customer_name"`
	Zone          string    `json:"zone"`
	EntryTime     time.Time `json:"entry_time"`
}

// RegisterEntry allocates a slot for the vehicle and opens a session
// on it. The slot claim and the session insert commit together, so a
// concurrent entry that picked the same slot loses cleanly and is
// retried on the next free candidate.
func (s *ParkingService) RegisterEntry(req EntryRequest) (*EntryResult, error) {
	vehicleNumber := strings.ToUpper(strings.TrimSpace(req.VehicleNumber))
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		customerName = defaultCustomerName
	}

	available, err := s.Slots.ListAvailableSlots(req.VehicleType, req.VIPZone)
	if err != nil {
		return nil, fmt.Errorf("error listing available slots: %w", err)
	}

	for {
		slot := allocator.Allocate(req.VehicleType, req.VIPZone, available)
		if slot == nil {
			return nil, ErrNoSlotAvailable
		}

		sess := &db.ParkingSession{
			SlotID:        slot.ID,
			VehicleNumber: vehicleNumber,
			CustomerName:  customerName,
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			CustomerPhone: strings.TrimSpace(req.CustomerPhone),
			EntryTime:     time.Now().UTC(),
			FeeCharged:    decimal.Zero,
			IsActive:      true,
		}

		err = s.Sessions.CreateSessionClaimingSlot(sess)
		if errors.Is(err, repository.ErrSlotTaken) {
			log.Printf("Slot %s claimed by a concurrent entry, retrying allocation", slot.SlotNumber)
			available = removeSlot(available, slot.ID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error creating session: %w", err)
		}

		if sess.CustomerPhone != "" {
			go s.Notify.SendEntrySMS(sess.CustomerPhone, vehicleNumber, slot.SlotNumber)
		}

		return &EntryResult{
			SessionID:     sess.ID,
			SlotNumber:    slot.SlotNumber,
			VehicleNumber: vehicleNumber,
			CustomerName:  customerName,
			Zone:          entities.ZoneLabel(slot.IsVIP),
			EntryTime:     sess.EntryTime,
		}, nil
	}
}

func removeSlot(slots []db.Slot, id int) []db.Slot {
	remaining := slots[:0]
	for _, s := range slots {
		if s.ID != id {
			remaining = append(remaining, s)
		}
	}
	return remaining
}

// QuoteExit computes what the vehicle would pay if it left now.
// Nothing is written; the exit screen shows this before payment.
func (s *ParkingService) QuoteExit(vehicleNumber string) (*entities.ExitQuote, error) {
	sess, err := s.Sessions.GetActiveByVehicle(strings.ToUpper(strings.TrimSpace(vehicleNumber)))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fee := billing.CalculateFee(sess.EntryTime, now, sess.VehicleType, sess.SlotIsVIP)

	return &entities.ExitQuote{
		SessionID:     sess.ID,
		VehicleNumber: sess.VehicleNumber,
		CustomerName:  sess.CustomerName,
		SlotNumber:    sess.SlotNumber,
		VehicleType:   sess.VehicleType,
		EntryTime:     sess.EntryTime,
		QuotedAt:      now,
		Fee:           fee.StringFixed(2),
	}, nil
}

// SettleExit charges the vehicle, closes its session and frees the
// slot. The receipt reflects what was committed.
func (s *ParkingService) SettleExit(vehicleNumber string) (*entities.Receipt, error) {
	sess, err := s.Sessions.GetActiveByVehicle(strings.ToUpper(strings.TrimSpace(vehicleNumber)))
	if err != nil {
		return nil, err
	}

	exitTime := time.Now().UTC()
	fee := billing.CalculateFee(sess.EntryTime, exitTime, sess.VehicleType, sess.SlotIsVIP)

	if err := s.Sessions.CloseSessionReleasingSlot(sess.ID, exitTime, fee); err != nil {
		return nil, fmt.Errorf("error closing session %d: %w", sess.ID, err)
	}

	receipt := &entities.Receipt{
		SessionID:     sess.ID,
		VehicleNumber: sess.VehicleNumber,
		CustomerName:  sess.CustomerName,
		SlotNumber:    sess.SlotNumber,
		VehicleType:   sess.VehicleType,
		Zone:          entities.ZoneLabel(sess.SlotIsVIP),
		EntryTime:     sess.EntryTime,
		ExitTime:      exitTime,
		FeeCharged:    fee.StringFixed(2),
	}

	if sess.CustomerEmail != "" {
		go func() {
			if err := s.Notify.SendReceiptEmail(sess.CustomerEmail, *receipt); err != nil {
				log.Printf("Failed to send receipt email for session %d: %v", sess.ID, err)
			}
		}()
	}
	if sess.CustomerPhone != "" {
		go s.Notify.SendExitSMS(sess.CustomerPhone, sess.VehicleNumber, receipt.FeeCharged)
	}

	return receipt, nil
}

// ListActiveSessions returns the currently parked customers, ordered
// by name.
func (s *ParkingService) ListActiveSessions() ([]entities.ActiveSessionView, error) {
	sessions, err := s.Sessions.ListActive()
	if err != nil {
		return nil, err
	}

	views := make([]entities.ActiveSessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, entities.ActiveSessionView{
			SessionID:     sess.ID,
			VehicleNumber: sess.VehicleNumber,
			CustomerName:  sess.CustomerName,
			SlotNumber:    sess.SlotNumber,
			VehicleType:   sess.VehicleType,
			EntryTime:     sess.EntryTime,
		})
	}
	return views, nil
}
