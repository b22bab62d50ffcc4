package repositories

import (
	"context"
	"fmt"
	"path/filepath"

	"tractor-backend/internal/models"
	"tractor-backend/internal/store"
)

const paymentsFile = "payments.csv"

var paymentHeader = []string{"id", "customerId", "amount", "date", "method"}

type PaymentRepository struct {
	Table *store.Table[models.Payment]
}

func NewPaymentRepository(dataDir string) *PaymentRepository {
	path := filepath.Join(dataDir, paymentsFile)
	return &PaymentRepository{
		Table: store.NewTable(path, paymentHeader, encodePayment, decodePayment, paymentHasID),
	}
}

func encodePayment(p models.Payment) []string {
	return []string{p.ID, p.CustomerID, formatAmount(p.Amount), p.Date, string(p.Method)}
}

func decodePayment(record []string) (models.Payment, error) {
	amount, err := parseAmount(record[2])
	if err != nil {
		return models.Payment{}, fmt.Errorf("bad amount %q", record[2])
	}
	return models.Payment{
		ID:         record[0],
		CustomerID: record[1],
		Amount:     amount,
		Date:       record[3],
		Method:     models.PaymentMethod(record[4]),
	}, nil
}

func paymentHasID(p models.Payment) bool {
	return p.ID != ""
}

// List returns all persisted payments in storage order.
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	return r.Table.LoadAll()
}

// ListByCustomer returns the payments referencing the given customer.
func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Payment, error) {
	payments, err := r.Table.LoadAll()
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

// ReplaceAll rewrites the whole payment table.
func (r *PaymentRepository) ReplaceAll(ctx context.Context, payments []models.Payment) error {
	return r.Table.SaveAll(payments)
}

// Append adds one payment after the existing rows.
func (r *PaymentRepository) Append(ctx context.Context, p models.Payment) error {
	payments, err := r.Table.LoadAll()
	if err != nil {
		return err
	}
	return r.Table.SaveAll(append(payments, p))
}
