package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"smartparking/internal/api"
	"smartparking/internal/auth"
	"smartparking/internal/repository"
	"smartparking/internal/service"
)

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

	tzName := os.Getenv("REPORT_TIMEZONE")
	if tzName == "" {
		tzName = "Asia/Kolkata"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("Failed to load timezone %s: %v", tzName, err)
	}

	symbol := os.Getenv("CURRENCY_SYMBOL")
	if symbol == "" {
		symbol = "Rs."
	}

	slotRepo := repository.NewSlotRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	staffRepo := repository.NewStaffAuthRepository(db)

	notifySvc := service.NewNotifyService(symbol)
	parkingSvc := service.NewParkingService(slotRepo, sessionRepo, notifySvc)
	reportSvc := service.NewReportService(slotRepo, sessionRepo, loc, symbol)
	pdfSvc := service.NewPDFService(loc, symbol)
	adminSvc := service.NewAdminService(slotRepo)
	authSvc := service.NewStaffAuthService(staffRepo)
	jobSvc := service.NewJobService(reportSvc, notifySvc)

	parkingHandler := api.NewParkingHandler(parkingSvc)
	reportHandler := api.NewReportHandler(reportSvc, pdfSvc, sessionRepo)
	adminHandler := api.NewAdminHandler(adminSvc, authSvc)
	authHandler := api.NewAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Staff endpoints (protected)
	staff := r.PathPrefix("/api").Subrouter()
	staff.Use(auth.StaffAuthMiddleware)
	staff.HandleFunc("/entries", parkingHandler.VehicleEntry).Methods("POST")
	staff.HandleFunc("/exits/quote", parkingHandler.QuoteExit).Methods("POST")
	staff.HandleFunc("/exits", parkingHandler.SettleExit).Methods("POST")
	staff.HandleFunc("/sessions/active", parkingHandler.ListActiveSessions).Methods("GET")
	staff.HandleFunc("/dashboard", reportHandler.Dashboard).Methods("GET")
	staff.HandleFunc("/reports", reportHandler.RevenueReport).Methods("GET")
	staff.HandleFunc("/reports/export.pdf", reportHandler.ExportReportPDF).Methods("GET")
	staff.HandleFunc("/receipts/{id}.pdf", reportHandler.ReceiptPDF).Methods("GET")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.StaffAuthMiddleware)
	admin.HandleFunc("/slots", adminHandler.ListSlots).Methods("GET")
	admin.HandleFunc("/slots", adminHandler.CreateSlot).Methods("POST")
	admin.HandleFunc("/slots/{slot_number}", adminHandler.UpdateSlot).Methods("PUT")
	admin.HandleFunc("/staff", adminHandler.CreateStaff).Methods("POST")

	// Nightly summary email, just before the daily window closes.
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc("55 23 * * *", func() {
		if err := jobSvc.SendDailySummaryEmail(); err != nil {
			log.Printf("Cron Job: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule daily summary job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler)))
}
