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

type ServiceHandler struct {
	section *controller.Section[models.Service]
}

func NewServiceHandler(section *controller.Section[models.Service]) *ServiceHandler {
	return &ServiceHandler{section: section}
}

// ListServices godoc
// @Summary Список услуг
// @Tags services
// @Produce json
// @Success 200 {array} models.Service
// @Router /api/services [get]
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

// CreateService godoc
// @Summary Создать услугу (только admin)
// @Tags admin-services
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body forms.ServiceForm true "Данные услуги"
// @Success 201 {object} models.Service
// @Failure 422 {string} string "Ошибка валидации"
// @Router /api/admin/services [post]
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var form forms.ServiceForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Невалидный JSON при создании услуги", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	created, err := h.section.Create(r.Context(), form.ToModel())
	if err != nil {
		writeAPIError(w, err, "Ошибка создания услуги")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// UpdateService godoc
// @Summary Обновить услугу (только admin)
// @Tags admin-services
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID услуги"
// @Param input body forms.ServiceForm true "Новое содержимое"
// @Success 200 {object} models.Service
// @Router /api/admin/services/{id} [put]
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form forms.ServiceForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Невалидный JSON при обновлении услуги", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	updated, err := h.section.Update(r.Context(), id, form.ToModel())
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления услуги")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteService godoc
// @Summary Удалить услугу (только admin)
// @Tags admin-services
// @Security ApiKeyAuth
// @Param id path string true "ID услуги"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/services/{id} [delete]
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления услуги")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
