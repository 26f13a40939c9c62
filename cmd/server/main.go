package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/config"
	"github.com/MinhTrung9443/storefront-api/internal/handlers"
	"github.com/MinhTrung9443/storefront-api/internal/middleware"
	"github.com/MinhTrung9443/storefront-api/internal/models"
	"github.com/MinhTrung9443/storefront-api/internal/repository"
	"github.com/MinhTrung9443/storefront-api/internal/service"
	"github.com/MinhTrung9443/storefront-api/internal/voucher"
	"github.com/MinhTrung9443/storefront-api/pkg/logger"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load(".env")

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize voucher registry
	registry := voucher.NewRegistry(10000, 0.01)
	if err := seedVouchers(registry); err != nil {
		log.Error("failed to seed vouchers", "error", err)
		os.Exit(1)
	}
	stats := registry.Stats()
	log.Info("voucher registry ready",
		"total_vouchers", stats["total_vouchers"],
		"active_vouchers", stats["active_vouchers"],
	)

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()
	deliveryRepo := repository.NewInMemoryDeliveryRepository()
	userRepo := repository.NewInMemoryUserRepository()

	// Initialize services
	productService := service.NewProductService(productRepo)
	previewService := service.NewPreviewService(productRepo, registry, deliveryRepo, userRepo, cfg.Loyalty.PointValue)
	orderService := service.NewOrderService(previewService, registry, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	voucherHandler := handlers.NewVoucherHandler(registry)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryRepo, log)
	orderHandler := handlers.NewOrderHandler(previewService, orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-User-Id", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)

		// Voucher endpoints
		r.Get("/vouchers", voucherHandler.ListVouchers)
		r.Get("/vouchers/stats", voucherHandler.GetStats)
		r.Get("/vouchers/{voucherCode}", voucherHandler.CheckVoucher)

		// Delivery endpoints
		r.Get("/delivery-methods", deliveryHandler.ListMethods)

		// Order endpoints
		r.Post("/orders/preview", orderHandler.PreviewOrder)
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Post("/orders", orderHandler.CreateOrder)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// seedVouchers registers the launch promotions.
func seedVouchers(registry *voucher.Registry) error {
	now := time.Now()
	amount := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	seeds := []models.Voucher{
		{
			Code:              "WELCOME10",
			DiscountType:      models.DiscountPercentage,
			DiscountValue:     amount(10),
			Type:              models.VoucherPublic,
			MaxDiscountAmount: amount(50000),
			MinPurchaseAmount: amount(100000),
			StartDate:         now.AddDate(0, -1, 0),
			EndDate:           now.AddDate(0, 2, 0),
			IsActive:          true,
		},
		{
			Code:              "FREESHIP30",
			DiscountType:      models.DiscountFixed,
			DiscountValue:     amount(30000),
			Type:              models.VoucherPublic,
			MinPurchaseAmount: amount(200000),
			GlobalUsageLimit:  500,
			StartDate:         now.AddDate(0, -1, 0),
			EndDate:           now.AddDate(0, 1, 0),
			IsActive:          true,
		},
		{
			Code:                 "TEATIME15",
			DiscountType:         models.DiscountPercentage,
			DiscountValue:        amount(15),
			Type:                 models.VoucherPublic,
			MaxDiscountAmount:    amount(40000),
			ApplicableCategories: []string{"Tea"},
			StartDate:            now.AddDate(0, -1, 0),
			EndDate:              now.AddDate(0, 1, 0),
			IsActive:             true,
		},
		{
			Code:             "VIP50K",
			DiscountType:     models.DiscountFixed,
			DiscountValue:    amount(50000),
			Type:             models.VoucherPrivate,
			GlobalUsageLimit: 100,
			UserUsageLimit:   1,
			StartDate:        now.AddDate(0, -1, 0),
			EndDate:          now.AddDate(0, 3, 0),
			IsActive:         true,
		},
	}

	for _, s := range seeds {
		if _, err := registry.Add(s); err != nil {
			return fmt.Errorf("seed voucher %s: %w", s.Code, err)
		}
	}
	return nil
}
