package models

// BrandingSettings is the business identity shown on invoices, the PDF
// header and reminder emails.
type BrandingSettings struct {
	BusinessName   string `json:"businessName"`
	Tagline        string `json:"tagline"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// UpdateBrandingRequest represents the request body for saving branding
type UpdateBrandingRequest struct {
	BusinessName   string `json:"businessName" validate:"required"`
	Tagline        string `json:"tagline"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}
