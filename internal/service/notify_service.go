package service

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"smartparking/internal/entities"
)

// NotifyService sends customer and operator notifications. Every
// sender is a no-op when its provider credentials are missing, so the
// booth works without SendGrid or Twilio configured.
type NotifyService struct {
	Symbol string
}

func NewNotifyService(symbol string) *NotifyService {
	return &NotifyService{Symbol: symbol}
}

func (n *NotifyService) SendEmail(toEmail, toName, subject, plainTextContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping email to", toEmail)
		return nil
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Smart Parking"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	log.Printf("Email sent to %s (subject: %s)", toEmail, subject)
	return nil
}

func (n *NotifyService) SendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Println("Twilio credentials not set, skipping SMS to", toNumber)
		return nil
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("Destination number %q is not E.164, SMS may fail", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS to %s: %w", toNumber, err)
	}
	return nil
}

func (n *NotifyService) SendEntrySMS(toNumber, vehicleNumber, slotNumber string) {
	body := fmt.Sprintf("Entry confirmed: %s assigned to slot %s.", vehicleNumber, slotNumber)
	if err := n.SendSMS(toNumber, body); err != nil {
		log.Printf("Failed to send entry SMS for %s: %v", vehicleNumber, err)
	}
}

func (n *NotifyService) SendExitSMS(toNumber, vehicleNumber, fee string) {
	body := fmt.Sprintf("Payment received for %s: %s%s. Thank you for parking with us.", vehicleNumber, n.Symbol, fee)
	if err := n.SendSMS(toNumber, body); err != nil {
		log.Printf("Failed to send exit SMS for %s: %v", vehicleNumber, err)
	}
}

func (n *NotifyService) SendReceiptEmail(toEmail string, receipt entities.Receipt) error {
	subject := fmt.Sprintf("Parking receipt for %s", receipt.VehicleNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for parking with us.\n\n"+
			"Vehicle: %s\n"+
			"Slot: %s (%s zone)\n"+
			"Entry: %s\n"+
			"Exit: %s\n"+
			"Total paid: %s%s\n",
		receipt.CustomerName,
		receipt.VehicleNumber,
		receipt.SlotNumber, receipt.Zone,
		receipt.EntryTime.Format("02 Jan 2006 15:04 MST"),
		receipt.ExitTime.Format("02 Jan 2006 15:04 MST"),
		n.Symbol, receipt.FeeCharged,
	)
	return n.SendEmail(toEmail, receipt.CustomerName, subject, body)
}
