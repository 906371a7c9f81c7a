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

type HeroHandler struct {
	section *controller.Section[models.HeroSlide]
	api     *contentapi.Resource[models.HeroSlide]
}

func NewHeroHandler(section *controller.Section[models.HeroSlide], api *contentapi.Resource[models.HeroSlide]) *HeroHandler {
	return &HeroHandler{section: section, api: api}
}

// ListHeroSlides godoc
// @Summary Слайды hero-карусели (по порядку order_index)
// @Tags hero
// @Produce json
// @Success 200 {array} models.HeroSlide
// @Router /api/hero-slides [get]
func (h *HeroHandler) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

func (h *HeroHandler) parseForm(r *http.Request) (*forms.HeroSlideForm, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	orderIndex := 0
	if v := r.FormValue("order_index"); v != "" {
		orderIndex = atoiOrZero(v)
	}

	form := &forms.HeroSlideForm{
		Title:       r.FormValue("title"),
		Subtitle:    r.FormValue("subtitle"),
		Description: r.FormValue("description"),
		OrderIndex:  orderIndex,
		ImageURL:    r.FormValue("image"),
	}

	upload, err := formUpload(r, "image")
	if err != nil {
		return nil, err
	}
	form.Image = upload
	return form, nil
}

func heroDraft(form *forms.HeroSlideForm) models.HeroSlide {
	return models.HeroSlide{
		Title:       form.Title,
		Subtitle:    form.Subtitle,
		Description: form.Description,
		Image:       form.ImageURL,
		OrderIndex:  form.OrderIndex,
	}
}

// CreateHeroSlide godoc
// @Summary Добавить слайд (только admin)
// @Tags admin-hero
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Заголовок"
// @Param order_index formData int false "Позиция в карусели"
// @Param image formData file false "Изображение"
// @Success 201 {object} models.HeroSlide
// @Router /api/admin/hero-slides [post]
func (h *HeroHandler) CreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы слайда", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	created, err := h.section.CreateVia(r.Context(), heroDraft(form), func(ctx context.Context) (models.HeroSlide, error) {
		return h.api.CreateMultipart(ctx, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка создания слайда")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// UpdateHeroSlide godoc
// @Summary Обновить слайд (только admin)
// @Tags admin-hero
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID слайда"
// @Success 200 {object} models.HeroSlide
// @Router /api/admin/hero-slides/{id} [post]
func (h *HeroHandler) UpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы слайда", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	updated, err := h.section.UpdateVia(r.Context(), id, heroDraft(form), func(ctx context.Context) (models.HeroSlide, error) {
		return h.api.UpdateMultipart(ctx, id, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления слайда")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteHeroSlide godoc
// @Summary Удалить слайд (только admin)
// @Tags admin-hero
// @Security ApiKeyAuth
// @Param id path string true "ID слайда"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/hero-slides/{id} [delete]
func (h *HeroHandler) DeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления слайда")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
