package repositories

import (
	"context"
	"path/filepath"

	"tractor-backend/internal/models"
	"tractor-backend/internal/store"
)

const brandingFile = "branding.csv"

var brandingHeader = []string{"businessName", "tagline", "primaryColor", "secondaryColor"}

// BrandingRepository stores the single branding row. An empty table
// means defaults apply.
type BrandingRepository struct {
	Table *store.Table[models.BrandingSettings]
}

func NewBrandingRepository(dataDir string) *BrandingRepository {
	path := filepath.Join(dataDir, brandingFile)
	return &BrandingRepository{
		Table: store.NewTable(path, brandingHeader, encodeBranding, decodeBranding, brandingHasID),
	}
}

func encodeBranding(b models.BrandingSettings) []string {
	return []string{b.BusinessName, b.Tagline, b.PrimaryColor, b.SecondaryColor}
}

func decodeBranding(record []string) (models.BrandingSettings, error) {
	return models.BrandingSettings{
		BusinessName:   record[0],
		Tagline:        record[1],
		PrimaryColor:   record[2],
		SecondaryColor: record[3],
	}, nil
}

func brandingHasID(b models.BrandingSettings) bool {
	return b.BusinessName != ""
}

// DefaultBranding is used until the operator saves their own.
var DefaultBranding = models.BrandingSettings{
	BusinessName: "Tractor Seva Kendra",
	Tagline:      "Field work, tillage and haulage services",
	PrimaryColor: "#2F6846",
}

// Get returns the saved branding, or DefaultBranding when none is saved.
func (r *BrandingRepository) Get(ctx context.Context) (models.BrandingSettings, error) {
	rows, err := r.Table.LoadAll()
	if err != nil {
		return models.BrandingSettings{}, err
	}
	if len(rows) == 0 {
		return DefaultBranding, nil
	}
	return rows[len(rows)-1], nil
}

// Save replaces the branding row.
func (r *BrandingRepository) Save(ctx context.Context, b models.BrandingSettings) error {
	return r.Table.SaveAll([]models.BrandingSettings{b})
}
