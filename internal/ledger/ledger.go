// Package ledger holds the rules that keep a customer's billed, paid
// and balance figures consistent with the invoices and payments that
// reference it. Every function is pure: it takes a customer snapshot
// and returns the adjusted snapshot, no I/O.
//
// Figures are adjusted by delta rather than recomputed from source
// rows, which is the legacy behavior the rest of the system depends
// on. The one place the two disagree (deleting a Paid invoice leaves
// totalPaid behind) is covered by tests; Recompute exists for the
// operator-triggered reconcile that repairs such drift.
package ledger

import (
	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/models"
)

// FindCustomer locates id in the snapshot, returning its index or a
// NOT_FOUND error. Callers decide whether that is fatal.
func FindCustomer(customers []models.Customer, id string) (int, error) {
	for i := range customers {
		if customers[i].ID == id {
			return i, nil
		}
	}
	return -1, apperrors.NewNotFound("customer %s not found", id)
}

// ApplyPayment records an amount received against the account.
func ApplyPayment(c models.Customer, amount float64) models.Customer {
	c.TotalPaid += amount
	c.RemainingBalance -= amount
	return c
}

// ApplyInvoice records a newly issued invoice total.
func ApplyInvoice(c models.Customer, total float64) models.Customer {
	c.TotalBilled += total
	c.RemainingBalance += total
	return c
}

// ReverseInvoice undoes the billing effect of a deleted invoice. When
// the invoice was already Paid, billed and paid cancel and the balance
// is left untouched.
func ReverseInvoice(c models.Customer, total float64, wasStatus models.InvoiceStatus) models.Customer {
	c.TotalBilled -= total
	if wasStatus != models.InvoiceStatusPaid {
		c.RemainingBalance -= total
	}
	return c
}

// ApplyStatusChange adjusts the paid figures when an invoice enters or
// leaves Paid. Every other transition (e.g. Pending to Overdue) has no
// financial effect.
func ApplyStatusChange(c models.Customer, total float64, oldStatus, newStatus models.InvoiceStatus) models.Customer {
	if oldStatus != models.InvoiceStatusPaid && newStatus == models.InvoiceStatusPaid {
		c.TotalPaid += total
		c.RemainingBalance -= total
	} else if oldStatus == models.InvoiceStatusPaid && newStatus != models.InvoiceStatusPaid {
		c.TotalPaid -= total
		c.RemainingBalance += total
	}
	return c
}

// Recompute re-derives the financial figures as folds over the
// customer's invoice and payment rows: billed is the sum of invoice
// totals, paid is the sum of payment amounts plus the totals of Paid
// invoices, balance is billed minus paid.
func Recompute(c models.Customer, invoices []models.Invoice, payments []models.Payment) models.Customer {
	var billed, paid float64
	for _, inv := range invoices {
		if inv.CustomerID != c.ID {
			continue
		}
		billed += inv.Total
		if inv.Status == models.InvoiceStatusPaid {
			paid += inv.Total
		}
	}
	for _, p := range payments {
		if p.CustomerID != c.ID {
			continue
		}
		paid += p.Amount
	}
	c.TotalBilled = billed
	c.TotalPaid = paid
	c.RemainingBalance = billed - paid
	return c
}
