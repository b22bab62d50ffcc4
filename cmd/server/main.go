package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"tractor-backend/internal/ai"
	"tractor-backend/internal/cache"
	"tractor-backend/internal/config"
	"tractor-backend/internal/handlers"
	"tractor-backend/internal/health"
	h "tractor-backend/internal/http"
	"tractor-backend/internal/middleware"
	"tractor-backend/internal/repositories"
	"tractor-backend/internal/services"
)

func main() {
	cfg := config.Load()

	// Redis is optional; the dashboard just recomputes on every hit
	// when it's absent.
	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (dashboard stats will not be cached)", err)
	}
	if cache.Enabled() {
		log.Printf("[Redis] Cache enabled at %s", cfg.Redis.Addr)
	}

	// Repositories
	customerRepo := repositories.NewCustomerRepository(cfg.Data.Dir)
	paymentRepo := repositories.NewPaymentRepository(cfg.Data.Dir)
	invoiceRepo := repositories.NewInvoiceRepository(cfg.Data.Dir)
	brandingRepo := repositories.NewBrandingRepository(cfg.Data.Dir)

	// AI drafter is only wired up when a key is configured.
	var drafter *ai.Drafter
	if cfg.OpenAI.APIKey != "" {
		drafter = ai.NewDrafter(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	} else {
		log.Printf("[AI] OPENAI_API_KEY not set, reminder drafting disabled")
	}

	// Services
	customerService := services.NewCustomerService(customerRepo, paymentRepo, invoiceRepo, cfg.Ledger.InvoiceCascade)
	paymentService := services.NewPaymentService(paymentRepo, customerRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, customerRepo)
	dashboardService := services.NewDashboardService(customerService, invoiceService, paymentService, time.Duration(cfg.Redis.StatsTTLSec)*time.Second)
	reminderService := services.NewReminderService(drafter, brandingRepo)
	reportService := services.NewReportService(customerService, invoiceService, brandingRepo)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	reportHandler := handlers.NewReportHandler(reportService)
	brandingHandler := handlers.NewBrandingHandler(brandingRepo)

	healthChecker := health.NewHealthChecker(cfg.Data.Dir, customerRepo, invoiceRepo, paymentRepo)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		customerHandler,
		paymentHandler,
		invoiceHandler,
		dashboardHandler,
		reminderHandler,
		reportHandler,
		brandingHandler,
		healthHandler,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (data dir: %s)", addr, cfg.Data.Dir)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
