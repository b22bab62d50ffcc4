package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tractor-backend/internal/handlers"
)

func NewRouter(
	customerHandler *handlers.CustomerHandler,
	paymentHandler *handlers.PaymentHandler,
	invoiceHandler *handlers.InvoiceHandler,
	dashboardHandler *handlers.DashboardHandler,
	reminderHandler *handlers.ReminderHandler,
	reportHandler *handlers.ReportHandler,
	brandingHandler *handlers.BrandingHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API routes - Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/reconcile", customerHandler.ReconcileCustomer).Methods("POST")

	// API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.CreatePayment).Methods("POST")

	// API routes - Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.HandleFunc("", invoiceHandler.CreateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.DeleteInvoice).Methods("DELETE")
	invoicesAPI.HandleFunc("/{id}/status", invoiceHandler.UpdateInvoiceStatus).Methods("PATCH")
	invoicesAPI.HandleFunc("/{id}/pdf", reportHandler.InvoicePDF).Methods("GET")

	// API routes - Dashboard and reminders
	r.HandleFunc("/api/dashboard/stats", dashboardHandler.GetStats).Methods("GET")
	r.HandleFunc("/api/reminders/email", reminderHandler.GenerateReminderEmail).Methods("POST")

	// API routes - Reports
	r.HandleFunc("/api/reports/customers.csv", reportHandler.ExportCustomersCSV).Methods("GET")

	// API routes - Branding settings
	r.HandleFunc("/api/settings/branding", brandingHandler.GetBranding).Methods("GET")
	r.HandleFunc("/api/settings/branding", brandingHandler.UpdateBranding).Methods("PUT")

	return r
}
