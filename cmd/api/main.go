package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/lielsontattoo/studio-backend/internal/events"
	"github.com/lielsontattoo/studio-backend/internal/modules/auth"
	"github.com/lielsontattoo/studio-backend/internal/modules/booking"
	"github.com/lielsontattoo/studio-backend/internal/modules/catalog"
	"github.com/lielsontattoo/studio-backend/internal/modules/config"
	"github.com/lielsontattoo/studio-backend/internal/modules/coupon"
	"github.com/lielsontattoo/studio-backend/internal/modules/order"
	"github.com/lielsontattoo/studio-backend/internal/modules/stats"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	hub := events.NewHub()
	requireAdmin := auth.RequireAdmin(jwtKey)

	// ── Config & Auth ───────────────────────────────────────
	configRepo := config.NewPostgresRepository(db)
	configService := config.NewService(configRepo)
	config.NewHandler(configService).RegisterRoutes(router, requireAdmin)

	authService := auth.NewService(configRepo, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	categoryRepo := catalog.NewCategoryPostgresRepository(db)
	productRepo := catalog.NewProductPostgresRepository(db)
	serviceRepo := catalog.NewServicePostgresRepository(db)
	catalogService := catalog.NewService(categoryRepo, productRepo, serviceRepo, hub)
	catalog.NewHandler(catalogService).RegisterRoutes(router, requireAdmin)

	// ── Booking ─────────────────────────────────────────────
	bookingRepo := booking.NewPostgresRepository(db)
	bookingService := booking.NewService(bookingRepo, configRepo, serviceRepo, hub)
	booking.NewHandler(bookingService).RegisterRoutes(router, requireAdmin)

	// ── Coupons & Orders ────────────────────────────────────
	couponRepo := coupon.NewPostgresRepository(db)
	couponService := coupon.NewService(couponRepo)
	coupon.NewHandler(couponService).RegisterRoutes(router, requireAdmin)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, couponService, configRepo, hub)
	order.NewHandler(orderService).RegisterRoutes(router, requireAdmin)

	// ── Dashboard ───────────────────────────────────────────
	statsRepo := stats.NewPostgresRepository(db)
	statsService := stats.NewService(statsRepo)
	stats.NewHandler(statsService).RegisterRoutes(router, requireAdmin)

	// ── Live updates for the admin panel ────────────────────
	router.Route("/api/v1/events", func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/appointments", events.SSEHandler(hub, events.TopicAppointments))
		r.Get("/orders", events.SSEHandler(hub, events.TopicOrders))
		r.Get("/products", events.SSEHandler(hub, events.TopicProducts))
	})

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Studio API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
