package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/models"
)

func TestCustomerRoundTrip(t *testing.T) {
	repo := NewCustomerRepository(t.TempDir())
	ctx := context.Background()

	in := models.Customer{
		ID:                  "cust-1",
		Name:                "Ramesh Kumar",
		Email:               "ramesh@example.com",
		Phone:               "9876512345",
		Address:             models.Address{Street: "Ward 2, Khargone"},
		JobCardNumber:       "JC-104",
		FatherOrHusbandName: "Mohan Kumar",
		AadhaarNumber:       "1234 5678 9012",
		BankAccountNumber:   "001100220033",
		BankName:            "SBI",
		IFSCCode:            "SBIN0001234",
		TotalBilled:         1500.5,
		TotalPaid:           200,
		RemainingBalance:    1300.5,
	}
	require.NoError(t, repo.Append(ctx, in))

	got, err := repo.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, in, *got)

	_, err = repo.Get(ctx, "cust-nope")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCustomerAddressKeepsOnlyStreet(t *testing.T) {
	repo := NewCustomerRepository(t.TempDir())
	ctx := context.Background()

	in := models.Customer{
		ID:      "cust-1",
		Name:    "Ramesh Kumar",
		Address: models.Address{Street: "Ward 2", City: "Khargone", State: "MP", Zip: "451001"},
	}
	require.NoError(t, repo.Append(ctx, in))

	got, err := repo.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, models.Address{Street: "Ward 2"}, got.Address)
}

func TestCustomerBlankAmountsReadAsZero(t *testing.T) {
	dir := t.TempDir()
	repo := NewCustomerRepository(dir)

	csv := "id,jobCardNumber,name,fatherOrHusbandName,phone,aadhaarNumber,bankAccountNumber,bankName,ifscCode,address,email,totalBilled,totalPaid,remainingBalance\n" +
		"cust-1,,Ramesh Kumar,,,,,,,Ward 2,ramesh@example.com,,,\n"
	require.NoError(t, os.WriteFile(repo.Table.Path(), []byte(csv), 0o644))

	got, err := repo.Get(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Zero(t, got.TotalBilled)
	assert.Zero(t, got.TotalPaid)
	assert.Zero(t, got.RemainingBalance)
}

func TestCustomerBadAmountIsMalformed(t *testing.T) {
	repo := NewCustomerRepository(t.TempDir())

	csv := "id,jobCardNumber,name,fatherOrHusbandName,phone,aadhaarNumber,bankAccountNumber,bankName,ifscCode,address,email,totalBilled,totalPaid,remainingBalance\n" +
		"cust-1,,Ramesh Kumar,,,,,,,Ward 2,ramesh@example.com,abc,0,0\n"
	require.NoError(t, os.WriteFile(repo.Table.Path(), []byte(csv), 0o644))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindMalformedRecord, apperrors.KindOf(err))
}

func TestInvoiceRoundTripKeepsItems(t *testing.T) {
	repo := NewInvoiceRepository(t.TempDir())
	ctx := context.Background()

	in := models.Invoice{
		ID:            "inv-1",
		CustomerID:    "cust-1",
		InvoiceNumber: "TRK-1001",
		Date:          "2025-01-10",
		DueDate:       "2025-02-10",
		Items: []models.InvoiceItem{
			{Description: "Rotavator - 2 acres", Quantity: 2, Price: 1500},
			{Description: "Trolley haulage, \"long route\"", Quantity: 1, Price: 1000},
		},
		Total:  4000,
		Status: models.InvoiceStatusPending,
	}
	require.NoError(t, repo.Append(ctx, in))

	got, err := repo.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, in, *got)
}

func TestInvoiceListByCustomer(t *testing.T) {
	repo := NewInvoiceRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, models.Invoice{ID: "inv-1", CustomerID: "cust-a", Total: 100, Status: models.InvoiceStatusPending}))
	require.NoError(t, repo.Append(ctx, models.Invoice{ID: "inv-2", CustomerID: "cust-b", Total: 200, Status: models.InvoiceStatusPending}))
	require.NoError(t, repo.Append(ctx, models.Invoice{ID: "inv-3", CustomerID: "cust-a", Total: 300, Status: models.InvoiceStatusPaid}))

	got, err := repo.ListByCustomer(ctx, "cust-a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "inv-1", got[0].ID)
	assert.Equal(t, "inv-3", got[1].ID)
}

func TestPaymentRoundTrip(t *testing.T) {
	repo := NewPaymentRepository(t.TempDir())
	ctx := context.Background()

	in := models.Payment{
		ID:         "pay-1",
		CustomerID: "cust-1",
		Amount:     350.25,
		Date:       "2025-01-15",
		Method:     models.PaymentMethodBankTransfer,
	}
	require.NoError(t, repo.Append(ctx, in))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in, got[0])
}

func TestPaymentListByCustomer(t *testing.T) {
	repo := NewPaymentRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, models.Payment{ID: "pay-1", CustomerID: "cust-a", Amount: 100}))
	require.NoError(t, repo.Append(ctx, models.Payment{ID: "pay-2", CustomerID: "cust-b", Amount: 200}))
	require.NoError(t, repo.Append(ctx, models.Payment{ID: "pay-3", CustomerID: "cust-a", Amount: 300}))

	got, err := repo.ListByCustomer(ctx, "cust-a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pay-1", got[0].ID)
	assert.Equal(t, "pay-3", got[1].ID)
}

func TestBrandingDefaultsUntilSaved(t *testing.T) {
	repo := NewBrandingRepository(t.TempDir())
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultBranding, got)

	saved := models.BrandingSettings{
		BusinessName: "Kisan Tractor Works",
		Tagline:      "Haulage and tillage",
		PrimaryColor: "#123456",
	}
	require.NoError(t, repo.Save(ctx, saved))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}
