package handlers

import (
	"encoding/json"
	"net/http"

	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
	"tractor-backend/pkg/utils"
)

// BrandingHandler reads and writes the single branding row directly;
// there is no business logic between it and the table.
type BrandingHandler struct {
	Repo *repositories.BrandingRepository
}

func NewBrandingHandler(repo *repositories.BrandingRepository) *BrandingHandler {
	return &BrandingHandler{Repo: repo}
}

func (h *BrandingHandler) GetBranding(w http.ResponseWriter, r *http.Request) {
	branding, err := h.Repo.Get(r.Context())
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, branding)
}

func (h *BrandingHandler) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBrandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BusinessName == "" {
		utils.Error(w, http.StatusBadRequest, "businessName is required")
		return
	}

	branding := models.BrandingSettings{
		BusinessName:   req.BusinessName,
		Tagline:        req.Tagline,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
	}
	if err := h.Repo.Save(r.Context(), branding); err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, branding)
}
