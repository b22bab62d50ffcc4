package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/cache"
	"tractor-backend/internal/ledger"
	"tractor-backend/internal/metrics"
	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
)

// InvoiceService sequences invoice mutations. Creation writes the
// balance-bearing customer table first; deletion and status changes
// write the invoice table first so a failed second write can never
// leave an invoice row pointing at figures it was not applied to.
type InvoiceService struct {
	InvoiceRepo  *repositories.InvoiceRepository
	CustomerRepo *repositories.CustomerRepository
}

func NewInvoiceService(invoiceRepo *repositories.InvoiceRepository, customerRepo *repositories.CustomerRepository) *InvoiceService {
	return &InvoiceService{InvoiceRepo: invoiceRepo, CustomerRepo: customerRepo}
}

// CreateInvoice validates the request, bills the customer and appends
// the invoice row. The caller-computed total is trusted, never
// re-derived from the items.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.InvoiceStatusPending
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidation("unknown invoice status %q", req.Status)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidation("item %q: quantity must be positive", item.Description)
		}
		if item.Price < 0 {
			return nil, apperrors.NewValidation("item %q: price must not be negative", item.Description)
		}
	}

	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := ledger.FindCustomer(customers, req.CustomerID)
	if err != nil {
		return nil, err
	}
	customers[idx] = ledger.ApplyInvoice(customers[idx], req.Total)

	if err := s.CustomerRepo.ReplaceAll(ctx, customers); err != nil {
		return nil, err
	}

	invoice := models.Invoice{
		ID:            "inv-" + uuid.NewString(),
		CustomerID:    req.CustomerID,
		InvoiceNumber: req.InvoiceNumber,
		Date:          req.Date,
		DueDate:       req.DueDate,
		Items:         req.Items,
		Total:         req.Total,
		Status:        status,
	}
	if err := s.InvoiceRepo.Append(ctx, invoice); err != nil {
		return nil, err
	}
	metrics.LedgerMutationsTotal.WithLabelValues("add_invoice").Inc()
	cache.Invalidate(ctx, cache.DashboardStatsKey)
	return &invoice, nil
}

// ListInvoices returns persisted rows followed by the read-only seed.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return append(invoices, repositories.SeedInvoices...), nil
}

// GetInvoice resolves id against persisted rows first, then the seed.
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	invoices, err := s.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i], nil
		}
	}
	return nil, apperrors.NewNotFound("invoice %s not found", id)
}

// DeleteInvoice removes the row, then reverses its billing effect on
// the owning customer.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range invoices {
		if invoices[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperrors.NewNotFound("invoice %s not found", id)
	}
	removed := invoices[idx]
	invoices = append(invoices[:idx], invoices[idx+1:]...)
	if err := s.InvoiceRepo.ReplaceAll(ctx, invoices); err != nil {
		return err
	}

	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return err
	}
	cidx, err := ledger.FindCustomer(customers, removed.CustomerID)
	if err != nil {
		// orphaned invoice, nothing to reverse
		log.Printf("[Ledger] Deleted invoice %s had no customer %s", id, removed.CustomerID)
		return nil
	}
	customers[cidx] = ledger.ReverseInvoice(customers[cidx], removed.Total, removed.Status)
	if err := s.CustomerRepo.ReplaceAll(ctx, customers); err != nil {
		return err
	}
	metrics.LedgerMutationsTotal.WithLabelValues("delete_invoice").Inc()
	cache.Invalidate(ctx, cache.DashboardStatsKey)
	return nil
}

// UpdateInvoiceStatus mutates the row's status in place, then adjusts
// the owning customer's paid figures when the transition enters or
// leaves Paid.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id string, newStatus models.InvoiceStatus) (*models.Invoice, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidation("unknown invoice status %q", newStatus)
	}
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range invoices {
		if invoices[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NewNotFound("invoice %s not found", id)
	}
	oldStatus := invoices[idx].Status
	invoices[idx].Status = newStatus
	if err := s.InvoiceRepo.ReplaceAll(ctx, invoices); err != nil {
		return nil, err
	}

	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	cidx, err := ledger.FindCustomer(customers, invoices[idx].CustomerID)
	if err != nil {
		log.Printf("[Ledger] Invoice %s has no customer %s, status changed without balance adjustment", id, invoices[idx].CustomerID)
		result := invoices[idx]
		return &result, nil
	}
	customers[cidx] = ledger.ApplyStatusChange(customers[cidx], invoices[idx].Total, oldStatus, newStatus)
	if err := s.CustomerRepo.ReplaceAll(ctx, customers); err != nil {
		return nil, err
	}
	metrics.LedgerMutationsTotal.WithLabelValues("set_invoice_status").Inc()
	cache.Invalidate(ctx, cache.DashboardStatsKey)
	result := invoices[idx]
	return &result, nil
}
