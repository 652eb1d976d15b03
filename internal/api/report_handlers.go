package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	httperrors "smartparking/internal/errors"
	"smartparking/internal/repository"
	"smartparking/internal/service"
)

type ReportHandler struct {
	Reports  *service.ReportService
	PDF      *service.PDFService
	Sessions *repository.SessionRepository
}

func NewReportHandler(reports *service.ReportService, pdf *service.PDFService, sessions *repository.SessionRepository) *ReportHandler {
	return &ReportHandler{Reports: reports, PDF: pdf, Sessions: sessions}
}

// Dashboard serves the live status board with today's analytics.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Reports.Dashboard()
	if err != nil {
		http.Error(w, "Error building dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// RevenueReport serves the report page data: summaries, chart, log.
func (h *ReportHandler) RevenueReport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Reports.Report()
	if err != nil {
		http.Error(w, "Error building report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ExportReportPDF streams the revenue & customer log as a PDF.
func (h *ReportHandler) ExportReportPDF(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Sessions.ListCompleted(0)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	pdfBytes, err := h.PDF.RenderRevenueReport(sessions)
	if err != nil {
		http.Error(w, "Error generating PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Parking_Revenue_Report.pdf"`)
	w.Write(pdfBytes)
}

// ReceiptPDF streams the printable receipt for one session.
func (h *ReportHandler) ReceiptPDF(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	sess, err := h.Sessions.GetByID(id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		writeHTTPError(w, httperrors.ErrNotFound("Session not found"))
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	pdfBytes, err := h.PDF.RenderReceipt(*sess)
	if err != nil {
		http.Error(w, "Error generating PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="Receipt_%s.pdf"`, sess.VehicleNumber))
	w.Write(pdfBytes)
}
