package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mhbutzke/half-trip/docs"
	"github.com/mhbutzke/half-trip/internal/config"
	"github.com/mhbutzke/half-trip/internal/database"
	"github.com/mhbutzke/half-trip/internal/expense"
	expensesplit "github.com/mhbutzke/half-trip/internal/expense/split"
	"github.com/mhbutzke/half-trip/internal/notification"
	"github.com/mhbutzke/half-trip/internal/trip"
	"github.com/mhbutzke/half-trip/internal/user"
	mw "github.com/mhbutzke/half-trip/pkg/middleware"
)

// @title        Half-Trip API
// @version      1.0
// @description  Group trip planning and expense splitting API
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	// The split builder is the whole calculation engine; everything else is
	// orchestration around it.
	splitBuilder := expensesplit.NewBuilder()

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Notification feature
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Trip feature
	tripRepo := trip.NewRepository(db)
	tripService := trip.NewService(tripRepo, notificationService)
	tripHandler := trip.NewHandler(tripService)

	// Expense feature (with split builder injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, tripRepo, splitBuilder, notificationService)
	expenseHandler := expense.NewHandler(expenseService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.DevUserMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/trips", tripHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
