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

type AboutHandler struct {
	section *controller.Section[models.About]
	api     *contentapi.Resource[models.About]
}

func NewAboutHandler(section *controller.Section[models.About], api *contentapi.Resource[models.About]) *AboutHandler {
	return &AboutHandler{section: section, api: api}
}

// ListAbouts godoc
// @Summary Список блоков "О нас" (первый — активный)
// @Tags about
// @Produce json
// @Success 200 {array} models.About
// @Router /api/abouts [get]
func (h *AboutHandler) ListAbouts(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

func (h *AboutHandler) parseForm(r *http.Request) (*forms.AboutForm, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	form := &forms.AboutForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		ImageURL:    r.FormValue("image"),
	}

	upload, err := formUpload(r, "image")
	if err != nil {
		return nil, err
	}
	form.Image = upload
	return form, nil
}

// CreateAbout godoc
// @Summary Создать блок "О нас" (только admin)
// @Tags admin-about
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Заголовок"
// @Param image formData file false "Изображение"
// @Success 201 {object} models.About
// @Router /api/admin/abouts [post]
func (h *AboutHandler) CreateAbout(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы блока 'О нас'", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	draft := models.About{Title: fields["title"], Description: fields["description"]}

	created, err := h.section.CreateVia(r.Context(), draft, func(ctx context.Context) (models.About, error) {
		return h.api.CreateMultipart(ctx, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка создания блока 'О нас'")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// UpdateAbout godoc
// @Summary Обновить блок "О нас" (только admin)
// @Tags admin-about
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID блока"
// @Success 200 {object} models.About
// @Router /api/admin/abouts/{id} [post]
func (h *AboutHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы блока 'О нас'", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	draft := models.About{Title: fields["title"], Description: fields["description"], Image: form.ImageURL}

	updated, err := h.section.UpdateVia(r.Context(), id, draft, func(ctx context.Context) (models.About, error) {
		return h.api.UpdateMultipart(ctx, id, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления блока 'О нас'")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteAbout godoc
// @Summary Удалить блок "О нас" (только admin)
// @Tags admin-about
// @Security ApiKeyAuth
// @Param id path string true "ID блока"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/abouts/{id} [delete]
func (h *AboutHandler) DeleteAbout(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления блока 'О нас'")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
