package handlers

import (
	"encoding/json"
	"net/http"

	"tractor-backend/internal/models"
	"tractor-backend/internal/services"
	"tractor-backend/pkg/utils"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Service.CreatePayment(r.Context(), &req)
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")

	var (
		payments []models.Payment
		err      error
	)
	if customerID != "" {
		payments, err = h.Service.ListPaymentsByCustomer(r.Context(), customerID)
	} else {
		payments, err = h.Service.ListPayments(r.Context())
	}
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}
