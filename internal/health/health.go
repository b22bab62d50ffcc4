package health

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"tractor-backend/internal/repositories"
)

// HealthChecker probes the CSV store the way the old one pinged the
// database: every table is loaded, so a corrupted file surfaces here
// before an operator hits it mid-mutation.
type HealthChecker struct {
	dataDir   string
	customers *repositories.CustomerRepository
	invoices  *repositories.InvoiceRepository
	payments  *repositories.PaymentRepository
}

type HealthStatus struct {
	Status string       `json:"status"`
	Store  StoreHealth  `json:"store"`
	System SystemHealth `json:"system"`
}

type StoreHealth struct {
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
	Customers    int    `json:"customers"`
	Invoices     int    `json:"invoices"`
	Payments     int    `json:"payments"`
	ResponseTime int64  `json:"response_time_ms"`
}

type SystemHealth struct {
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
}

func NewHealthChecker(dataDir string, customers *repositories.CustomerRepository, invoices *repositories.InvoiceRepository, payments *repositories.PaymentRepository) *HealthChecker {
	return &HealthChecker{dataDir: dataDir, customers: customers, invoices: invoices, payments: payments}
}

func (h *HealthChecker) CheckBasic(ctx context.Context) HealthStatus {
	storeHealth := h.checkStore(ctx)

	status := "healthy"
	if storeHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status: status,
		Store:  storeHealth,
		System: h.checkSystem(),
	}
}

func (h *HealthChecker) checkStore(ctx context.Context) StoreHealth {
	start := time.Now()
	out := StoreHealth{Status: "healthy"}

	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		out.Status = "unhealthy"
		out.Error = err.Error()
		return out
	}

	customers, err := h.customers.List(ctx)
	if err != nil {
		out.Status = "unhealthy"
		out.Error = err.Error()
		return out
	}
	invoices, err := h.invoices.List(ctx)
	if err != nil {
		out.Status = "unhealthy"
		out.Error = err.Error()
		return out
	}
	payments, err := h.payments.List(ctx)
	if err != nil {
		out.Status = "unhealthy"
		out.Error = err.Error()
		return out
	}

	out.Customers = len(customers)
	out.Invoices = len(invoices)
	out.Payments = len(payments)
	out.ResponseTime = time.Since(start).Milliseconds()
	return out
}

func (h *HealthChecker) checkSystem() SystemHealth {
	out := SystemHealth{}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		out.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		out.MemoryUsedPercent = vm.UsedPercent
	}
	return out
}
