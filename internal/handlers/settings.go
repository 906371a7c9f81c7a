package handlers

import (
	"context"
	"net/http"

	"thrivecms/internal/contentapi"
	"thrivecms/internal/controller"
	"thrivecms/internal/forms"
	"thrivecms/internal/logger"
	"thrivecms/internal/models"
	helpers "thrivecms/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	section *controller.Section[models.SiteSetting]
	api     *contentapi.Resource[models.SiteSetting]
}

func NewSettingsHandler(section *controller.Section[models.SiteSetting], api *contentapi.Resource[models.SiteSetting]) *SettingsHandler {
	return &SettingsHandler{section: section, api: api}
}

// ListSettings godoc
// @Summary Список настроек сайта
// @Tags settings
// @Produce json
// @Success 200 {array} models.SiteSetting
// @Router /api/site-settings [get]
func (h *SettingsHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

func (h *SettingsHandler) parseForm(r *http.Request) (*forms.SiteSettingForm, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	form := &forms.SiteSettingForm{
		SiteName: r.FormValue("site_name"),
		NavItems: r.Form["nav_items[]"],
		LogoURL:  r.FormValue("logo"),
	}

	upload, err := formUpload(r, "logo")
	if err != nil {
		return nil, err
	}
	form.Logo = upload
	return form, nil
}

func settingDraft(form *forms.SiteSettingForm) models.SiteSetting {
	return models.SiteSetting{
		SiteName: form.SiteName,
		NavItems: form.NavItems,
		Logo:     form.LogoURL,
	}
}

// CreateSetting godoc
// @Summary Создать настройки сайта (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param site_name formData string true "Название сайта"
// @Param logo formData file false "Логотип"
// @Success 201 {object} models.SiteSetting
// @Router /api/admin/site-settings [post]
func (h *SettingsHandler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы настроек", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	created, err := h.section.CreateVia(r.Context(), settingDraft(form), func(ctx context.Context) (models.SiteSetting, error) {
		return h.api.CreateMultipart(ctx, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка создания настроек")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// UpdateSetting godoc
// @Summary Обновить настройки сайта (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID настроек"
// @Success 200 {object} models.SiteSetting
// @Router /api/admin/site-settings/{id} [post]
func (h *SettingsHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы настроек", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	updated, err := h.section.UpdateVia(r.Context(), id, settingDraft(form), func(ctx context.Context) (models.SiteSetting, error) {
		return h.api.UpdateMultipart(ctx, id, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления настроек")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteSetting godoc
// @Summary Удалить настройки сайта (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Param id path string true "ID настроек"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/site-settings/{id} [delete]
func (h *SettingsHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления настроек")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// ActivateSetting godoc
// @Summary Сделать настройки активными (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Param id path string true "ID настроек"
// @Produce json
// @Success 200 {object} models.SiteSetting
// @Router /api/admin/site-settings/{id}/activate [post]
func (h *SettingsHandler) ActivateSetting(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	activated, err := h.section.Activate(r.Context(), id)
	if err != nil {
		writeAPIError(w, err, "Ошибка активации настроек")
		return
	}
	helpers.JSON(w, http.StatusOK, activated)
}
