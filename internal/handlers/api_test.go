package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tractor-backend/internal/handlers"
	"tractor-backend/internal/health"
	apihttp "tractor-backend/internal/http"
	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
	"tractor-backend/internal/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()

	customerRepo := repositories.NewCustomerRepository(dir)
	paymentRepo := repositories.NewPaymentRepository(dir)
	invoiceRepo := repositories.NewInvoiceRepository(dir)
	brandingRepo := repositories.NewBrandingRepository(dir)

	customerService := services.NewCustomerService(customerRepo, paymentRepo, invoiceRepo, "keep")
	paymentService := services.NewPaymentService(paymentRepo, customerRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, customerRepo)
	dashboardService := services.NewDashboardService(customerService, invoiceService, paymentService, time.Minute)
	reminderService := services.NewReminderService(nil, brandingRepo)
	reportService := services.NewReportService(customerService, invoiceService, brandingRepo)

	checker := health.NewHealthChecker(dir, customerRepo, invoiceRepo, paymentRepo)

	router := apihttp.NewRouter(
		handlers.NewCustomerHandler(customerService),
		handlers.NewPaymentHandler(paymentService),
		handlers.NewInvoiceHandler(invoiceService),
		handlers.NewDashboardHandler(dashboardService),
		handlers.NewReminderHandler(reminderService),
		handlers.NewReportHandler(reportService),
		handlers.NewBrandingHandler(brandingRepo),
		handlers.NewHealthHandler(checker),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func createCustomer(t *testing.T, srv *httptest.Server) models.Customer {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/customers", models.CreateCustomerRequest{
		Name:        "Ramesh Kumar",
		Email:       "ramesh@example.com",
		Phone:       "9876512345",
		Address:     "Ward 2, Khargone",
		TotalBilled: 1000,
		TotalPaid:   200,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var c models.Customer
	require.NoError(t, json.Unmarshal(body, &c))
	return c
}

func TestCustomerLifecycle(t *testing.T) {
	srv := newTestServer(t)

	c := createCustomer(t, srv)
	assert.Equal(t, 800.0, c.RemainingBalance)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/customers/"+c.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var details models.CustomerDetails
	require.NoError(t, json.Unmarshal(body, &details))
	assert.Equal(t, c.ID, details.Customer.ID)
	assert.Empty(t, details.Invoices)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/customers/"+c.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/customers/"+c.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Contains(t, errBody["error"], c.ID)
}

func TestCreateCustomerBadJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/customers", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "Invalid request body", errBody["error"])
}

func TestPaymentAndInvoiceFlow(t *testing.T) {
	srv := newTestServer(t)
	c := createCustomer(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", models.CreateInvoiceRequest{
		CustomerID:    c.ID,
		InvoiceNumber: "TRK-1001",
		Date:          "2025-01-10",
		DueDate:       "2025-02-10",
		Items:         []models.InvoiceItem{{Description: "Ploughing", Quantity: 1, Price: 500}},
		Total:         500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inv models.Invoice
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, models.InvoiceStatusPending, inv.Status)

	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/api/invoices/"+inv.ID+"/status", models.UpdateInvoiceStatusRequest{
		Status: models.InvoiceStatusPaid,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/payments", models.CreatePaymentRequest{
		CustomerID: c.ID,
		Amount:     300,
		Date:       "2025-01-15",
		Method:     models.PaymentMethodCash,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// billed 1500, paid 200+500+300, balance 500
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/customers/"+c.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var details models.CustomerDetails
	require.NoError(t, json.Unmarshal(body, &details))
	assert.Equal(t, 1500.0, details.Customer.TotalBilled)
	assert.Equal(t, 1000.0, details.Customer.TotalPaid)
	assert.Equal(t, 500.0, details.Customer.RemainingBalance)
	assert.Len(t, details.Invoices, 1)
	assert.Len(t, details.Payments, 1)
}

func TestPaymentValidationError(t *testing.T) {
	srv := newTestServer(t)
	c := createCustomer(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/payments", models.CreatePaymentRequest{
		CustomerID: c.ID,
		Amount:     -5,
		Date:       "2025-01-15",
		Method:     models.PaymentMethodCash,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.NotEmpty(t, errBody["error"])
}

func TestListPaymentsFilterByCustomer(t *testing.T) {
	srv := newTestServer(t)
	c := createCustomer(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/payments", models.CreatePaymentRequest{
		CustomerID: c.ID, Amount: 300, Date: "2025-01-15", Method: models.PaymentMethodCash,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/payments?customerId=%s", srv.URL, c.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payments []models.Payment
	require.NoError(t, json.Unmarshal(body, &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, c.ID, payments[0].CustomerID)
}

func TestReconcileEndpoint(t *testing.T) {
	srv := newTestServer(t)
	c := createCustomer(t, srv) // opening figures with no backing rows

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/customers/"+c.ID+"/reconcile", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var repaired models.Customer
	require.NoError(t, json.Unmarshal(body, &repaired))
	// no invoice or payment rows exist, so everything folds to zero
	assert.Zero(t, repaired.TotalBilled)
	assert.Zero(t, repaired.TotalPaid)
	assert.Zero(t, repaired.RemainingBalance)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createCustomer(t, srv)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 3, stats.CustomerCount, "one created plus two seed rows")
}

func TestReminderEndpointUnconfigured(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/reminders/email", models.ReminderEmailRequest{
		CustomerName: "Ramesh Kumar",
		AmountDue:    500,
		DueDate:      "2025-02-10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Contains(t, errBody["error"], "not configured")
}

func TestBrandingEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/settings/branding", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var branding models.BrandingSettings
	require.NoError(t, json.Unmarshal(body, &branding))
	assert.Equal(t, repositories.DefaultBranding.BusinessName, branding.BusinessName)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/settings/branding", models.UpdateBrandingRequest{
		BusinessName: "Kisan Tractor Works",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = doJSON(t, http.MethodGet, srv.URL+"/api/settings/branding", nil)
	require.NoError(t, json.Unmarshal(body, &branding))
	assert.Equal(t, "Kisan Tractor Works", branding.BusinessName)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/settings/branding", models.UpdateBrandingRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoicePDFAndCSVExport(t *testing.T) {
	srv := newTestServer(t)
	c := createCustomer(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", models.CreateInvoiceRequest{
		CustomerID:    c.ID,
		InvoiceNumber: "TRK-1001",
		Date:          "2025-01-10",
		DueDate:       "2025-02-10",
		Items:         []models.InvoiceItem{{Description: "Ploughing", Quantity: 1, Price: 500}},
		Total:         500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inv models.Invoice
	require.NoError(t, json.Unmarshal(body, &inv))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/invoices/"+inv.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/reports/customers.csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Ramesh Kumar")
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/health/ready", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status health.HealthStatus
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "healthy", status.Status)
}
