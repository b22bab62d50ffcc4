package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/models"
	"tractor-backend/internal/store"
)

const invoicesFile = "invoices.csv"

// items is an embedded JSON array inside its CSV cell.
var invoiceHeader = []string{"id", "customerId", "invoiceNumber", "date", "dueDate", "items", "total", "status"}

type InvoiceRepository struct {
	Table *store.Table[models.Invoice]
}

func NewInvoiceRepository(dataDir string) *InvoiceRepository {
	path := filepath.Join(dataDir, invoicesFile)
	return &InvoiceRepository{
		Table: store.NewTable(path, invoiceHeader, encodeInvoice, decodeInvoice, invoiceHasID),
	}
}

func encodeInvoice(inv models.Invoice) []string {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		// a slice of plain structs cannot fail to marshal
		items = []byte("[]")
	}
	return []string{
		inv.ID,
		inv.CustomerID,
		inv.InvoiceNumber,
		inv.Date,
		inv.DueDate,
		string(items),
		formatAmount(inv.Total),
		string(inv.Status),
	}
}

func decodeInvoice(record []string) (models.Invoice, error) {
	var items []models.InvoiceItem
	if record[5] != "" {
		if err := json.Unmarshal([]byte(record[5]), &items); err != nil {
			return models.Invoice{}, fmt.Errorf("bad items cell: %v", err)
		}
	}
	total, err := parseAmount(record[6])
	if err != nil {
		return models.Invoice{}, fmt.Errorf("bad total %q", record[6])
	}
	return models.Invoice{
		ID:            record[0],
		CustomerID:    record[1],
		InvoiceNumber: record[2],
		Date:          record[3],
		DueDate:       record[4],
		Items:         items,
		Total:         total,
		Status:        models.InvoiceStatus(record[7]),
	}, nil
}

func invoiceHasID(inv models.Invoice) bool {
	return inv.ID != ""
}

// List returns all persisted invoices in storage order.
func (r *InvoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	return r.Table.LoadAll()
}

// Get returns the persisted invoice with the given id.
func (r *InvoiceRepository) Get(ctx context.Context, id string) (*models.Invoice, error) {
	invoices, err := r.Table.LoadAll()
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

// ListByCustomer returns the invoices referencing the given customer.
func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Invoice, error) {
	invoices, err := r.Table.LoadAll()
	if err != nil {
		return nil, err
	}
	var out []models.Invoice
	for _, inv := range invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

// ReplaceAll rewrites the whole invoice table.
func (r *InvoiceRepository) ReplaceAll(ctx context.Context, invoices []models.Invoice) error {
	return r.Table.SaveAll(invoices)
}

// Append adds one invoice after the existing rows.
func (r *InvoiceRepository) Append(ctx context.Context, inv models.Invoice) error {
	invoices, err := r.Table.LoadAll()
	if err != nil {
		return err
	}
	return r.Table.SaveAll(append(invoices, inv))
}
