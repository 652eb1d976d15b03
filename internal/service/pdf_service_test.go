package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartparking/internal/db"
)

func sampleSession(closed bool) db.SessionWithSlot {
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sess := db.SessionWithSlot{
		ParkingSession: db.ParkingSession{
			ID:            1,
			VehicleNumber: "KL 70 1678",
			CustomerName:  "Guest",
			EntryTime:     entry,
			FeeCharged:    decimal.RequireFromString("42.50"),
			IsActive:      !closed,
		},
		SlotNumber:  "STD-204",
		VehicleType: db.TypeCar,
		SlotIsVIP:   false,
	}
	if closed {
		exit := entry.Add(3 * time.Hour)
		sess.ExitTime = &exit
	}
	return sess
}

func TestRenderReceipt(t *testing.T) {
	svc := NewPDFService(time.UTC, "Rs.")
	out, err := svc.RenderReceipt(sampleSession(true))
	require.NoError(t, err)
	assert.Greater(t, len(out), 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderReceiptOpenSession(t *testing.T) {
	// Receipts for still-open sessions print N/A for the exit time.
	svc := NewPDFService(time.UTC, "Rs.")
	out, err := svc.RenderReceipt(sampleSession(false))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderRevenueReport(t *testing.T) {
	svc := NewPDFService(time.UTC, "Rs.")
	out, err := svc.RenderRevenueReport([]db.SessionWithSlot{
		sampleSession(true),
		sampleSession(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderRevenueReportEmpty(t *testing.T) {
	svc := NewPDFService(time.UTC, "Rs.")
	out, err := svc.RenderRevenueReport(nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
