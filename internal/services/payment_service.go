package services

import (
	"context"

	"github.com/google/uuid"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/cache"
	"tractor-backend/internal/ledger"
	"tractor-backend/internal/metrics"
	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
)

// PaymentService records payments. The balance-bearing customer write
// happens before the payment row is appended: if anything fails in
// between, a balance adjustment without its payment row is judged less
// harmful than a payment row with no matching balance adjustment.
type PaymentService struct {
	PaymentRepo  *repositories.PaymentRepository
	CustomerRepo *repositories.CustomerRepository
}

func NewPaymentService(paymentRepo *repositories.PaymentRepository, customerRepo *repositories.CustomerRepository) *PaymentService {
	return &PaymentService{PaymentRepo: paymentRepo, CustomerRepo: customerRepo}
}

// CreatePayment validates the request, applies the ledger delta to the
// customer and appends the payment row. An unresolved customer aborts
// the whole operation before any row is written.
func (s *PaymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	if !req.Method.IsValid() {
		return nil, apperrors.NewValidation("unknown payment method %q", req.Method)
	}

	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := ledger.FindCustomer(customers, req.CustomerID)
	if err != nil {
		return nil, err
	}
	customers[idx] = ledger.ApplyPayment(customers[idx], req.Amount)

	if err := s.CustomerRepo.ReplaceAll(ctx, customers); err != nil {
		return nil, err
	}

	payment := models.Payment{
		ID:         "pay-" + uuid.NewString(),
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Date:       req.Date,
		Method:     req.Method,
	}
	if err := s.PaymentRepo.Append(ctx, payment); err != nil {
		return nil, err
	}
	metrics.LedgerMutationsTotal.WithLabelValues("add_payment").Inc()
	cache.Invalidate(ctx, cache.DashboardStatsKey)
	return &payment, nil
}

// ListPayments returns persisted rows followed by the read-only seed.
func (s *PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return append(payments, repositories.SeedPayments...), nil
}

// ListPaymentsByCustomer filters the merged payment rows by customer.
func (s *PaymentService) ListPaymentsByCustomer(ctx context.Context, customerID string) ([]models.Payment, error) {
	payments, err := s.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Payment
	for _, p := range payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}
