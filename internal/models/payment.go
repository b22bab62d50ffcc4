package models

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCheck        PaymentMethod = "Check"
)

// IsValid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCheck:
		return true
	}
	return false
}

// Payment is an amount received from a customer. Payments are immutable
// once recorded; they are only ever removed as a cascade of customer
// deletion.
type Payment struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	Amount     float64       `json:"amount"`
	Date       string        `json:"date"`
	Method     PaymentMethod `json:"method"`
}

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	CustomerID string        `json:"customerId" validate:"required"`
	Amount     float64       `json:"amount" validate:"required,gt=0"`
	Date       string        `json:"date" validate:"required"`
	Method     PaymentMethod `json:"method" validate:"required"`
}
