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

type HeaderMenuHandler struct {
	section *controller.Section[models.HeaderMenu]
}

func NewHeaderMenuHandler(section *controller.Section[models.HeaderMenu]) *HeaderMenuHandler {
	return &HeaderMenuHandler{section: section}
}

// ListHeaderMenus godoc
// @Summary Пункты меню шапки
// @Tags header
// @Produce json
// @Success 200 {array} models.HeaderMenu
// @Router /api/header-menus [get]
func (h *HeaderMenuHandler) ListHeaderMenus(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

// CreateHeaderMenu godoc
// @Summary Добавить пункт меню (только admin)
// @Tags admin-header
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body forms.HeaderMenuForm true "Пункт меню"
// @Success 201 {object} models.HeaderMenu
// @Router /api/admin/header-menus [post]
func (h *HeaderMenuHandler) CreateHeaderMenu(w http.ResponseWriter, r *http.Request) {
	var form forms.HeaderMenuForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Некорректный JSON пункта меню", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	created, err := h.section.Create(r.Context(), form.ToModel())
	if err != nil {
		writeAPIError(w, err, "Ошибка создания пункта меню")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// UpdateHeaderMenu godoc
// @Summary Обновить пункт меню (только admin)
// @Tags admin-header
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID пункта"
// @Param input body forms.HeaderMenuForm true "Пункт меню"
// @Success 200 {object} models.HeaderMenu
// @Router /api/admin/header-menus/{id} [put]
func (h *HeaderMenuHandler) UpdateHeaderMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form forms.HeaderMenuForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Некорректный JSON пункта меню", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	updated, err := h.section.Update(r.Context(), id, form.ToModel())
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления пункта меню")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteHeaderMenu godoc
// @Summary Удалить пункт меню (только admin)
// @Tags admin-header
// @Security ApiKeyAuth
// @Param id path string true "ID пункта"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/header-menus/{id} [delete]
func (h *HeaderMenuHandler) DeleteHeaderMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления пункта меню")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// ActivateHeaderMenu godoc
// @Summary Сделать пункт меню активным (только admin)
// @Tags admin-header
// @Security ApiKeyAuth
// @Param id path string true "ID пункта"
// @Produce json
// @Success 200 {object} models.HeaderMenu
// @Router /api/admin/header-menus/{id}/activate [post]
func (h *HeaderMenuHandler) ActivateHeaderMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	activated, err := h.section.Activate(r.Context(), id)
	if err != nil {
		writeAPIError(w, err, "Ошибка активации пункта меню")
		return
	}
	helpers.JSON(w, http.StatusOK, activated)
}
