package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"tractor-backend/internal/services"
	"tractor-backend/internal/timeutil"
	"tractor-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

func (h *ReportHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	pdf, err := h.Service.GenerateInvoicePDF(r.Context(), id)
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, id))
	w.Write(pdf)
}

func (h *ReportHandler) ExportCustomersCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.ExportCustomersCSV(r.Context())
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	filename := fmt.Sprintf("customers-%s.csv", timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Write(data)
}
