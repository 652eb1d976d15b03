package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"smartparking/internal/db"
	"smartparking/internal/entities"
)

const pdfTimeFormat = "02/01 15:04"

// PDFService renders the printable artifacts: the customer receipt and
// the revenue & customer log.
type PDFService struct {
	Location *time.Location
	Symbol   string
}

func NewPDFService(loc *time.Location, symbol string) *PDFService {
	return &PDFService{Location: loc, Symbol: symbol}
}

// RenderReceipt produces the A6 receipt for one session.
func (p *PDFService) RenderReceipt(sess db.SessionWithSlot) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 105, Ht: 148},
	})
	pdf.SetMargins(10, 8, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(30, 144, 255)
	pdf.CellFormat(0, 8, "SMART PARKING PRO", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	exitTime := "N/A"
	if sess.ExitTime != nil {
		exitTime = sess.ExitTime.In(p.Location).Format(pdfTimeFormat)
	}

	rows := [][2]string{
		{"Customer:", sess.CustomerName},
		{"Vehicle:", sess.VehicleNumber},
		{"Type:", sess.VehicleType},
		{"Slot:", fmt.Sprintf("%s (%s)", sess.SlotNumber, entities.ZoneLabel(sess.SlotIsVIP))},
		{"Entry:", sess.EntryTime.In(p.Location).Format(pdfTimeFormat)},
		{"Exit:", exitTime},
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(30, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, row[1], "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(30, 8, "TOTAL PAID:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, p.Symbol+sess.FeeCharged.StringFixed(2), "T", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderRevenueReport produces the letter-size revenue & customer log
// over the given completed sessions, most recent exit first.
func (p *PDFService) RenderRevenueReport(sessions []db.SessionWithSlot) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Detailed Revenue & Customer Log", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	headers := []string{"Vehicle", "Customer", "Zone", "Type", "Entry", "Exit", "Fee"}
	widths := []float64{28, 42, 14, 20, 30, 30, 26}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(30, 144, 255)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, sess := range sessions {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		exitTime := "N/A"
		if sess.ExitTime != nil {
			exitTime = sess.ExitTime.In(p.Location).Format(pdfTimeFormat)
		}

		cells := []string{
			sess.VehicleNumber,
			sess.CustomerName,
			entities.ZoneLabel(sess.SlotIsVIP),
			sess.VehicleType,
			sess.EntryTime.In(p.Location).Format(pdfTimeFormat),
			exitTime,
			p.Symbol + sess.FeeCharged.StringFixed(2),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering revenue report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
