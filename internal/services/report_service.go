package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
	"tractor-backend/internal/timeutil"
)

// ReportService renders invoices as printable PDFs and exports the
// customer book as CSV for the UI's export button.
type ReportService struct {
	Customers    *CustomerService
	Invoices     *InvoiceService
	BrandingRepo *repositories.BrandingRepository
}

func NewReportService(customers *CustomerService, invoices *InvoiceService, brandingRepo *repositories.BrandingRepository) *ReportService {
	return &ReportService{Customers: customers, Invoices: invoices, BrandingRepo: brandingRepo}
}

// GenerateInvoicePDF renders one invoice with the saved branding.
func (s *ReportService) GenerateInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := s.Invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	customer, err := s.Customers.GetCustomer(ctx, invoice.CustomerID)
	if err != nil {
		// orphaned invoice still prints, with a blank customer block
		customer = &models.Customer{ID: invoice.CustomerID, Name: "(deleted customer)"}
	}
	branding, err := s.BrandingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, branding.BusinessName, "", 1, "C", false, 0, "")
	if branding.Tagline != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(190, 6, branding.Tagline, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Invoice Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Invoice %s", invoice.InvoiceNumber), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", customer.Phone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", invoice.Date), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Due: %s", invoice.DueDate), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", invoice.Status), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "", "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(100, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		desc := item.Description
		if len(desc) > 48 {
			desc = desc[:45] + "..."
		}
		pdf.CellFormat(100, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", float64(item.Quantity)*item.Price), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(155, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("Rs. %.2f", invoice.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.NewIO("render invoice PDF").WithCause(err)
	}
	return buf.Bytes(), nil
}

// ExportCustomersCSV renders the merged customer book (seed included)
// as a downloadable CSV.
func (s *ReportService) ExportCustomersCSV(ctx context.Context) ([]byte, error) {
	customers, err := s.Customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "name", "email", "phone", "address", "totalBilled", "totalPaid", "remainingBalance"})
	for _, c := range customers {
		w.Write([]string{
			c.ID,
			c.Name,
			c.Email,
			c.Phone,
			c.Address.Street,
			fmt.Sprintf("%.2f", c.TotalBilled),
			fmt.Sprintf("%.2f", c.TotalPaid),
			fmt.Sprintf("%.2f", c.RemainingBalance),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.NewIO("write customers export").WithCause(err)
	}
	return buf.Bytes(), nil
}
