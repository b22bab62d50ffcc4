package models

// MonthlyRevenue is one bucket of the revenue-by-month chart
type MonthlyRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

// DashboardStats summarizes the books for the dashboard page
type DashboardStats struct {
	CustomerCount       int              `json:"customerCount"`
	TotalBilled         float64          `json:"totalBilled"`
	TotalPaid           float64          `json:"totalPaid"`
	TotalOutstanding    float64          `json:"totalOutstanding"`
	PendingInvoices     int              `json:"pendingInvoices"`
	OverdueInvoices     int              `json:"overdueInvoices"`
	PaidInvoices        int              `json:"paidInvoices"`
	MonthlyRevenue      []MonthlyRevenue `json:"monthlyRevenue"`
}

// ReminderEmailRequest is the input to the AI payment-reminder drafter
type ReminderEmailRequest struct {
	CustomerName     string  `json:"customerName" validate:"required"`
	AmountDue        float64 `json:"amountDue" validate:"gt=0"`
	DueDate          string  `json:"dueDate" validate:"required"`
	BrandingElements string  `json:"brandingElements"`
}

// ReminderEmailResponse carries the generated draft back to the UI
type ReminderEmailResponse struct {
	EmailDraft string `json:"emailDraft"`
}
