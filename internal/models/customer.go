package models

// Address holds the structured postal address shown in the UI.
// Only the street line is persisted in customers.csv; the remaining
// fields ride along for API clients that send them.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Customer is a farmer account with running financial figures.
// TotalBilled, TotalPaid and RemainingBalance are maintained
// incrementally by the ledger on every invoice/payment mutation.
type Customer struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Address             Address `json:"address"`
	JobCardNumber       string  `json:"jobCardNumber,omitempty"`
	FatherOrHusbandName string  `json:"fatherOrHusbandName,omitempty"`
	AadhaarNumber       string  `json:"aadhaarNumber,omitempty"`
	BankAccountNumber   string  `json:"bankAccountNumber,omitempty"`
	BankName            string  `json:"bankName,omitempty"`
	IFSCCode            string  `json:"ifscCode,omitempty"`
	TotalBilled         float64 `json:"totalBilled"`
	TotalPaid           float64 `json:"totalPaid"`
	RemainingBalance    float64 `json:"remainingBalance"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name                string  `json:"name" validate:"required"`
	Email               string  `json:"email" validate:"required,email"`
	Phone               string  `json:"phone" validate:"required"`
	Address             string  `json:"address" validate:"required"`
	JobCardNumber       string  `json:"jobCardNumber"`
	FatherOrHusbandName string  `json:"fatherOrHusbandName"`
	AadhaarNumber       string  `json:"aadhaarNumber"`
	BankAccountNumber   string  `json:"bankAccountNumber"`
	BankName            string  `json:"bankName"`
	IFSCCode            string  `json:"ifscCode"`
	TotalBilled         float64 `json:"totalBilled" validate:"gte=0"`
	TotalPaid           float64 `json:"totalPaid" validate:"gte=0"`
}

// CustomerDetails bundles a customer with their invoices and payments
// for the customer detail page.
type CustomerDetails struct {
	Customer Customer  `json:"customer"`
	Invoices []Invoice `json:"invoices"`
	Payments []Payment `json:"payments"`
}
