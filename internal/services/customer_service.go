package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/cache"
	"tractor-backend/internal/config"
	"tractor-backend/internal/ledger"
	"tractor-backend/internal/metrics"
	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
)

// CustomerService sequences the customer mutations over the three
// backing tables.
type CustomerService struct {
	CustomerRepo   *repositories.CustomerRepository
	PaymentRepo    *repositories.PaymentRepository
	InvoiceRepo    *repositories.InvoiceRepository
	InvoiceCascade string
}

func NewCustomerService(
	customerRepo *repositories.CustomerRepository,
	paymentRepo *repositories.PaymentRepository,
	invoiceRepo *repositories.InvoiceRepository,
	invoiceCascade string,
) *CustomerService {
	return &CustomerService{
		CustomerRepo:   customerRepo,
		PaymentRepo:    paymentRepo,
		InvoiceRepo:    invoiceRepo,
		InvoiceCascade: invoiceCascade,
	}
}

// CreateCustomer validates the profile, assigns an id and appends the
// row with remainingBalance = totalBilled - totalPaid.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	customer := models.Customer{
		ID:                  "cust-" + uuid.NewString(),
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Address:             models.Address{Street: req.Address},
		JobCardNumber:       req.JobCardNumber,
		FatherOrHusbandName: req.FatherOrHusbandName,
		AadhaarNumber:       req.AadhaarNumber,
		BankAccountNumber:   req.BankAccountNumber,
		BankName:            req.BankName,
		IFSCCode:            req.IFSCCode,
		TotalBilled:         req.TotalBilled,
		TotalPaid:           req.TotalPaid,
		RemainingBalance:    req.TotalBilled - req.TotalPaid,
	}

	if err := s.CustomerRepo.Append(ctx, customer); err != nil {
		return nil, err
	}
	metrics.LedgerMutationsTotal.WithLabelValues("add_customer").Inc()
	cache.Invalidate(ctx, cache.DashboardStatsKey)
	return &customer, nil
}

// ListCustomers returns persisted rows followed by the read-only seed
// rows.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return append(customers, repositories.SeedCustomers...), nil
}

// GetCustomer resolves id against persisted rows first, then the seed.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, apperrors.NewNotFound("customer %s not found", id)
}

// GetCustomerDetails returns the customer with their invoices and
// payments for the detail page.
func (s *CustomerService) GetCustomerDetails(ctx context.Context, id string) (*models.CustomerDetails, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices = append(invoices, repositories.SeedInvoices...)
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments = append(payments, repositories.SeedPayments...)

	details := &models.CustomerDetails{Customer: *customer}
	for _, inv := range invoices {
		if inv.CustomerID == id {
			details.Invoices = append(details.Invoices, inv)
		}
	}
	for _, p := range payments {
		if p.CustomerID == id {
			details.Payments = append(details.Payments, p)
		}
	}
	return details, nil
}

// DeleteCustomer removes the customer row and cascades to its payments.
// Invoices follow the configured cascade policy; the legacy default
// leaves them in place, orphaned.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return err
	}
	idx, err := ledger.FindCustomer(customers, id)
	if err != nil {
		return err
	}

	switch s.InvoiceCascade {
	case config.CascadeBlock:
		invoices, err := s.InvoiceRepo.ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if len(invoices) > 0 {
			return apperrors.NewValidation("customer %s still has %d invoices", id, len(invoices))
		}
	case config.CascadeDelete:
		invoices, err := s.InvoiceRepo.List(ctx)
		if err != nil {
			return err
		}
		kept := invoices[:0]
		for _, inv := range invoices {
			if inv.CustomerID != id {
				kept = append(kept, inv)
			}
		}
		if err := s.InvoiceRepo.ReplaceAll(ctx, kept); err != nil {
			return err
		}
	}

	customers = append(customers[:idx], customers[idx+1:]...)
	if err := s.CustomerRepo.ReplaceAll(ctx, customers); err != nil {
		return err
	}

	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return err
	}
	kept := payments[:0]
	for _, p := range payments {
		if p.CustomerID != id {
			kept = append(kept, p)
		}
	}
	if err := s.PaymentRepo.ReplaceAll(ctx, kept); err != nil {
		return err
	}
	metrics.LedgerMutationsTotal.WithLabelValues("delete_customer").Inc()
	cache.Invalidate(ctx, cache.DashboardStatsKey)
	return nil
}

// ReconcileCustomer recomputes the customer's financial figures from
// their invoice and payment rows and persists the result. This is the
// repair path for drift left behind by the incremental ledger.
func (s *CustomerService) ReconcileCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := ledger.FindCustomer(customers, id)
	if err != nil {
		return nil, err
	}
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	before := customers[idx]
	customers[idx] = ledger.Recompute(before, invoices, payments)
	if err := s.CustomerRepo.ReplaceAll(ctx, customers); err != nil {
		return nil, err
	}
	if before != customers[idx] {
		log.Printf("[Ledger] Reconciled customer %s: balance %.2f -> %.2f", id, before.RemainingBalance, customers[idx].RemainingBalance)
	}
	return &customers[idx], nil
}
