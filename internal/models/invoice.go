package models

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

// IsValid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusOverdue, InvoiceStatusPaid:
		return true
	}
	return false
}

// InvoiceItem is a single billed line on an invoice
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Invoice represents a bill issued to a customer. Total is supplied by
// the caller and never re-derived from Items.
type Invoice struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Date          string        `json:"date"`
	DueDate       string        `json:"dueDate"`
	Items         []InvoiceItem `json:"items"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"status"`
}

// CreateInvoiceRequest represents the request to create an invoice
type CreateInvoiceRequest struct {
	CustomerID    string        `json:"customerId" validate:"required"`
	InvoiceNumber string        `json:"invoiceNumber" validate:"required"`
	Date          string        `json:"date" validate:"required"`
	DueDate       string        `json:"dueDate" validate:"required"`
	Items         []InvoiceItem `json:"items" validate:"required,min=1,dive"`
	Total         float64       `json:"total" validate:"gte=0"`
	Status        InvoiceStatus `json:"status"`
}

// UpdateInvoiceStatusRequest carries a status transition for an invoice
type UpdateInvoiceStatusRequest struct {
	Status InvoiceStatus `json:"status" validate:"required"`
}
