package service

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"
)

// JobService runs the scheduled work: the nightly summary email to the
// site operator.
type JobService struct {
	Reports *ReportService
	Notify  *NotifyService
}

func NewJobService(reports *ReportService, notify *NotifyService) *JobService {
	return &JobService{Reports: reports, Notify: notify}
}

// SendDailySummaryEmail mails today's numbers to REPORT_RECIPIENT_EMAIL.
// Scheduled just before midnight so the day's window is nearly complete.
func (s *JobService) SendDailySummaryEmail() error {
	recipient := os.Getenv("REPORT_RECIPIENT_EMAIL")
	if recipient == "" {
		log.Println("Cron Job: REPORT_RECIPIENT_EMAIL not set, skipping daily summary email")
		return nil
	}

	summary, err := s.Reports.DailySummary()
	if err != nil {
		return fmt.Errorf("cron job: failed to compute daily summary: %w", err)
	}

	symbol := s.Notify.Symbol
	date := time.Now().In(s.Reports.Location).Format("02 Jan 2006")

	body := fmt.Sprintf(
		"Daily parking summary for %s\n\n"+
			"Revenue collected: %s%s\n"+
			"Highest single fee: %s%s\n"+
			"Average fee: %s%s\n"+
			"Vehicles on site: %d\n",
		date,
		symbol, summary.TotalRevenue.StringFixed(2),
		symbol, summary.MaxSingleFee.StringFixed(2),
		symbol, summary.AvgRevenue.StringFixed(2),
		summary.TotalVehicles,
	)

	if len(summary.TypeDistribution) > 0 {
		types := make([]string, 0, len(summary.TypeDistribution))
		for t := range summary.TypeDistribution {
			types = append(types, t)
		}
		sort.Strings(types)
		body += "\nBy vehicle type:\n"
		for _, t := range types {
			body += fmt.Sprintf("  %s: %d\n", t, summary.TypeDistribution[t])
		}
	}

	subject := fmt.Sprintf("Parking summary %s", date)
	if err := s.Notify.SendEmail(recipient, "Site Operator", subject, body); err != nil {
		return fmt.Errorf("cron job: failed to send daily summary email: %w", err)
	}

	log.Printf("Cron Job: Daily summary for %s sent to %s", date, recipient)
	return nil
}
