package handlers

import (
	"encoding/json"
	"net/http"

	"tractor-backend/internal/models"
	"tractor-backend/internal/services"
	"tractor-backend/pkg/utils"
)

type ReminderHandler struct {
	Service *services.ReminderService
}

func NewReminderHandler(s *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: s}
}

func (h *ReminderHandler) GenerateReminderEmail(w http.ResponseWriter, r *http.Request) {
	var req models.ReminderEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.GenerateReminderEmail(r.Context(), &req)
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}
