package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"smartparking/internal/api"
	"smartparking/internal/auth"
	"smartparking/internal/ledger"
	"smartparking/internal/repository"
	"smartparking/internal/service"
)

func main() {
	godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}
	demoPassword := os.Getenv("DEMO_PASSWORD")
	if demoPassword == "" {
		demoPassword = "admin123"
	}
	paymentLatency := envDurationMS("PAYMENT_LATENCY_MS", 1500)
	loginLatency := envDurationMS("LOGIN_LATENCY_MS", 1500)

	slotLedger := ledger.NewSeeded()
	notify := service.NewNotifyService()
	gateway := service.NewSimulatedGateway(paymentLatency)
	slotSvc := service.NewSlotService(slotLedger, gateway, notify)
	jobSvc := service.NewJobService(slotLedger, notify)

	users := repository.NewUserRepository()
	sessions := repository.NewSessionRepository()
	authSvc := service.NewAuthService(users, sessions, []byte(jwtSecret), demoPassword, loginLatency)

	authHandler := api.NewAuthHandler(authSvc)
	slotHandler := api.NewSlotHandler(slotSvc, notify)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")

	// Dashboard endpoints (session required)
	dashboard := r.PathPrefix("/api").Subrouter()
	dashboard.Use(auth.SessionMiddleware(authSvc))
	dashboard.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	dashboard.HandleFunc("/slots", slotHandler.ListSlots).Methods("GET")
	dashboard.HandleFunc("/slots/{label}/book", slotHandler.BookSlot).Methods("POST")
	dashboard.HandleFunc("/slots/{label}/release", slotHandler.ReleaseSlot).Methods("POST")
	dashboard.HandleFunc("/stats", slotHandler.GetStats).Methods("GET")
	dashboard.HandleFunc("/bookings/active", slotHandler.ActiveBooking).Methods("GET")
	dashboard.HandleFunc("/bookings/recent", slotHandler.RecentBookings).Methods("GET")
	dashboard.HandleFunc("/notifications", slotHandler.Notifications).Methods("GET")

	// One tick per second drives countdowns and auto-expiry.
	ticker := cron.New(cron.WithSeconds())
	if _, err := ticker.AddFunc("* * * * * *", jobSvc.ReleaseExpiredSlots); err != nil {
		log.Fatalf("Failed to schedule expiry job: %v", err)
	}
	ticker.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: corsHandler(handlers.LoggingHandler(os.Stdout, r)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	<-ticker.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func envDurationMS(key string, fallback int) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		log.Printf("Invalid %s=%q, using %dms", key, value, fallback)
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
