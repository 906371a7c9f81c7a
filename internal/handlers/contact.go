package handlers

import (
	"encoding/json"
	"net/http"

	"thrivecms/internal/controller"
	"thrivecms/internal/forms"
	"thrivecms/internal/logger"
	"thrivecms/internal/models"
	helpers "thrivecms/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ContactHandler — контактные данные сайта (телефон, email, адрес, часы).
type ContactHandler struct {
	section *controller.Section[models.Contact]
}

func NewContactHandler(section *controller.Section[models.Contact]) *ContactHandler {
	return &ContactHandler{section: section}
}

// ListContacts godoc
// @Summary Контактные данные
// @Tags contact
// @Produce json
// @Success 200 {array} models.Contact
// @Router /api/contacts [get]
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

// UpdateContact godoc
// @Summary Обновить контактные данные (только admin)
// @Tags admin-contact
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID записи"
// @Param input body forms.ContactInfoForm true "Контакты"
// @Success 200 {object} models.Contact
// @Router /api/admin/contacts/{id} [put]
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form forms.ContactInfoForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Невалидный JSON при обновлении контактов", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	updated, err := h.section.Update(r.Context(), id, form.ToModel())
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления контактов")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}
