package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/models"
	"tractor-backend/internal/store"
)

// customersFile is the backing table for customers. Only the street
// line of the address survives the CSV round trip.
const customersFile = "customers.csv"

var customerHeader = []string{
	"id", "jobCardNumber", "name", "fatherOrHusbandName", "phone",
	"aadhaarNumber", "bankAccountNumber", "bankName", "ifscCode",
	"address", "email", "totalBilled", "totalPaid", "remainingBalance",
}

type CustomerRepository struct {
	Table *store.Table[models.Customer]
}

func NewCustomerRepository(dataDir string) *CustomerRepository {
	path := filepath.Join(dataDir, customersFile)
	return &CustomerRepository{
		Table: store.NewTable(path, customerHeader, encodeCustomer, decodeCustomer, customerHasID),
	}
}

func encodeCustomer(c models.Customer) []string {
	return []string{
		c.ID,
		c.JobCardNumber,
		c.Name,
		c.FatherOrHusbandName,
		c.Phone,
		c.AadhaarNumber,
		c.BankAccountNumber,
		c.BankName,
		c.IFSCCode,
		c.Address.Street,
		c.Email,
		formatAmount(c.TotalBilled),
		formatAmount(c.TotalPaid),
		formatAmount(c.RemainingBalance),
	}
}

func decodeCustomer(record []string) (models.Customer, error) {
	billed, err := parseAmount(record[11])
	if err != nil {
		return models.Customer{}, fmt.Errorf("bad totalBilled %q", record[11])
	}
	paid, err := parseAmount(record[12])
	if err != nil {
		return models.Customer{}, fmt.Errorf("bad totalPaid %q", record[12])
	}
	balance, err := parseAmount(record[13])
	if err != nil {
		return models.Customer{}, fmt.Errorf("bad remainingBalance %q", record[13])
	}
	return models.Customer{
		ID:                  record[0],
		JobCardNumber:       record[1],
		Name:                record[2],
		FatherOrHusbandName: record[3],
		Phone:               record[4],
		AadhaarNumber:       record[5],
		BankAccountNumber:   record[6],
		BankName:            record[7],
		IFSCCode:            record[8],
		Address:             models.Address{Street: record[9]},
		Email:               record[10],
		TotalBilled:         billed,
		TotalPaid:           paid,
		RemainingBalance:    balance,
	}, nil
}

func customerHasID(c models.Customer) bool {
	return c.ID != ""
}

// List returns all persisted customers in storage order.
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	return r.Table.LoadAll()
}

// Get returns the persisted customer with the given id.
func (r *CustomerRepository) Get(ctx context.Context, id string) (*models.Customer, error) {
	customers, err := r.Table.LoadAll()
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

// ReplaceAll rewrites the whole customer table.
func (r *CustomerRepository) ReplaceAll(ctx context.Context, customers []models.Customer) error {
	return r.Table.SaveAll(customers)
}

// Append adds one customer after the existing rows.
func (r *CustomerRepository) Append(ctx context.Context, c models.Customer) error {
	customers, err := r.Table.LoadAll()
	if err != nil {
		return err
	}
	return r.Table.SaveAll(append(customers, c))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseAmount tolerates blank cells in legacy sheets, reading them as 0.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
