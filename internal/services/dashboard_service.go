package services

import (
	"context"
	"sort"
	"time"

	"tractor-backend/internal/cache"
	"tractor-backend/internal/models"
)

// DashboardService folds the three tables into the stats the dashboard
// page shows. Results are cached briefly in Redis when available.
type DashboardService struct {
	Customers *CustomerService
	Invoices  *InvoiceService
	Payments  *PaymentService
	StatsTTL  time.Duration
}

func NewDashboardService(customers *CustomerService, invoices *InvoiceService, payments *PaymentService, statsTTL time.Duration) *DashboardService {
	return &DashboardService{
		Customers: customers,
		Invoices:  invoices,
		Payments:  payments,
		StatsTTL:  statsTTL,
	}
}

// GetStats computes totals over the merged rows (seed included, same
// view the list pages show).
func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var cached models.DashboardStats
	if cache.GetJSON(ctx, cache.DashboardStatsKey, &cached) {
		return &cached, nil
	}

	customers, err := s.Customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.Invoices.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	stats := models.DashboardStats{CustomerCount: len(customers)}
	for _, c := range customers {
		stats.TotalBilled += c.TotalBilled
		stats.TotalPaid += c.TotalPaid
		stats.TotalOutstanding += c.RemainingBalance
	}
	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoiceStatusPending:
			stats.PendingInvoices++
		case models.InvoiceStatusOverdue:
			stats.OverdueInvoices++
		case models.InvoiceStatusPaid:
			stats.PaidInvoices++
		}
	}
	stats.MonthlyRevenue = monthlyRevenue(payments)

	cache.SetJSON(ctx, cache.DashboardStatsKey, &stats, s.StatsTTL)
	return &stats, nil
}

// monthlyRevenue buckets payment amounts by YYYY-MM, sorted ascending.
// Dates that do not start with YYYY-MM are skipped.
func monthlyRevenue(payments []models.Payment) []models.MonthlyRevenue {
	byMonth := make(map[string]float64)
	for _, p := range payments {
		if len(p.Date) < 7 {
			continue
		}
		byMonth[p.Date[:7]] += p.Amount
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]models.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		out = append(out, models.MonthlyRevenue{Month: m, Revenue: byMonth[m]})
	}
	return out
}
