package service

import (
	"fmt"
	"time"

	"smartparking/internal/analytics"
	"smartparking/internal/entities"
	"smartparking/internal/repository"
)

const chartExitCount = 10

type ReportService struct {
	Slots    *repository.SlotRepository
	Sessions *repository.SessionRepository
	Location *time.Location
	Symbol   string
}

func NewReportService(slots *repository.SlotRepository, sessions *repository.SessionRepository, loc *time.Location, symbol string) *ReportService {
	return &ReportService{Slots: slots, Sessions: sessions, Location: loc, Symbol: symbol}
}

// DailySummary computes today's stats over the full session snapshot.
func (s *ReportService) DailySummary() (analytics.DailySummary, error) {
	snapshots, err := s.Sessions.ListSnapshots()
	if err != nil {
		return analytics.DailySummary{}, fmt.Errorf("error loading session snapshots: %w", err)
	}
	return analytics.ComputeDaily(time.Now(), s.Location, snapshots), nil
}

// Dashboard assembles the live status board: every slot, the free
// count and today's analytics.
func (s *ReportService) Dashboard() (*entities.DashboardResponse, error) {
	slots, err := s.Slots.ListSlots()
	if err != nil {
		return nil, fmt.Errorf("error listing slots: %w", err)
	}

	daily, err := s.DailySummary()
	if err != nil {
		return nil, err
	}

	resp := &entities.DashboardResponse{
		Slots:          make([]entities.SlotView, 0, len(slots)),
		TotalSlots:     len(slots),
		Analytics:      entities.NewDailySummaryView(daily),
		CurrencySymbol: s.Symbol,
	}
	for _, slot := range slots {
		if slot.IsAvailable {
			resp.AvailableSlots++
		}
		resp.Slots = append(resp.Slots, entities.SlotView{
			SlotNumber:  slot.SlotNumber,
			VehicleType: slot.VehicleType,
			Zone:        entities.ZoneLabel(slot.IsVIP),
			IsAvailable: slot.IsAvailable,
		})
	}
	return resp, nil
}

// Report assembles the revenue page: daily and lifetime summaries, a
// chart of the last exits (oldest first, so it reads left to right)
// and the complete session log.
func (s *ReportService) Report() (*entities.ReportResponse, error) {
	snapshots, err := s.Sessions.ListSnapshots()
	if err != nil {
		return nil, fmt.Errorf("error loading session snapshots: %w", err)
	}

	resp := &entities.ReportResponse{
		Daily:          entities.NewDailySummaryView(analytics.ComputeDaily(time.Now(), s.Location, snapshots)),
		Historical:     entities.NewHistoricalSummaryView(analytics.ComputeHistorical(snapshots)),
		CurrencySymbol: s.Symbol,
	}

	recentExits, err := s.Sessions.ListCompleted(chartExitCount)
	if err != nil {
		return nil, fmt.Errorf("error listing recent exits: %w", err)
	}
	for i := len(recentExits) - 1; i >= 0; i-- {
		sess := recentExits[i]
		if sess.ExitTime == nil {
			continue
		}
		resp.ChartLabels = append(resp.ChartLabels, sess.ExitTime.In(s.Location).Format("15:04"))
		value, _ := sess.FeeCharged.Round(2).Float64()
		resp.ChartData = append(resp.ChartData, value)
	}

	all, err := s.Sessions.ListAll()
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	for _, sess := range all {
		resp.Sessions = append(resp.Sessions, entities.SessionLogEntry{
			SessionID:     sess.ID,
			VehicleNumber: sess.VehicleNumber,
			CustomerName:  sess.CustomerName,
			Zone:          entities.ZoneLabel(sess.SlotIsVIP),
			VehicleType:   sess.VehicleType,
			EntryTime:     sess.EntryTime,
			ExitTime:      sess.ExitTime,
			FeeCharged:    sess.FeeCharged.StringFixed(2),
			IsActive:      sess.IsActive,
		})
	}

	return resp, nil
}
