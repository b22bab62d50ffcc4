package repositories

import "tractor-backend/internal/models"

// Seed rows shipped with the app so a fresh install has something to
// show. They are merged after persisted rows on read paths and are
// never written back; mutations resolve ids against persisted rows
// only.

var SeedCustomers = []models.Customer{
	{
		ID:                  "cust-seed-1",
		Name:                "Ramesh Patel",
		Email:               "ramesh.patel@example.com",
		Phone:               "9876500011",
		Address:             models.Address{Street: "Ward 4, Khargone"},
		FatherOrHusbandName: "Mohan Patel",
		TotalBilled:         12000,
		TotalPaid:           9000,
		RemainingBalance:    3000,
	},
	{
		ID:               "cust-seed-2",
		Name:             "Sunita Devi",
		Email:            "sunita.devi@example.com",
		Phone:            "9876500012",
		Address:          models.Address{Street: "Village Piparia"},
		TotalBilled:      4500,
		TotalPaid:        4500,
		RemainingBalance: 0,
	},
}

var SeedPayments = []models.Payment{
	{ID: "pay-seed-1", CustomerID: "cust-seed-1", Amount: 9000, Date: "2024-11-02", Method: models.PaymentMethodCash},
	{ID: "pay-seed-2", CustomerID: "cust-seed-2", Amount: 4500, Date: "2024-12-18", Method: models.PaymentMethodBankTransfer},
}

var SeedInvoices = []models.Invoice{
	{
		ID:            "inv-seed-1",
		CustomerID:    "cust-seed-1",
		InvoiceNumber: "TRK-0001",
		Date:          "2024-10-20",
		DueDate:       "2024-11-20",
		Items: []models.InvoiceItem{
			{Description: "Rotavator - 6 acres", Quantity: 6, Price: 1500},
			{Description: "Trolley haulage", Quantity: 3, Price: 1000},
		},
		Total:  12000,
		Status: models.InvoiceStatusPaid,
	},
	{
		ID:            "inv-seed-2",
		CustomerID:    "cust-seed-2",
		InvoiceNumber: "TRK-0002",
		Date:          "2024-12-01",
		DueDate:       "2024-12-31",
		Items: []models.InvoiceItem{
			{Description: "Ploughing - 3 acres", Quantity: 3, Price: 1500},
		},
		Total:  4500,
		Status: models.InvoiceStatusPaid,
	},
}
