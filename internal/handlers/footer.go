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

type FooterHandler struct {
	section *controller.Section[models.FooterData]
	api     *contentapi.Resource[models.FooterData]
}

func NewFooterHandler(section *controller.Section[models.FooterData], api *contentapi.Resource[models.FooterData]) *FooterHandler {
	return &FooterHandler{section: section, api: api}
}

// ListFooters godoc
// @Summary Список футеров (активен максимум один)
// @Tags footer
// @Produce json
// @Success 200 {array} models.FooterData
// @Router /api/footers [get]
func (h *FooterHandler) ListFooters(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

func (h *FooterHandler) parseForm(r *http.Request) (*forms.FooterForm, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	form := &forms.FooterForm{
		Title:          r.FormValue("title"),
		Description:    r.FormValue("description"),
		CopyrightText:  r.FormValue("copyright_text"),
		DesignerText:   r.FormValue("designer_text"),
		PrivacyLink:    r.FormValue("privacy_link"),
		TermsLink:      r.FormValue("terms_link"),
		DisclaimerLink: r.FormValue("disclaimer_link"),
		FacebookURL:    r.FormValue("facebook_url"),
		TwitterURL:     r.FormValue("twitter_url"),
		InstagramURL:   r.FormValue("instagram_url"),
		PinterestURL:   r.FormValue("pinterest_url"),
		LinkedInURL:    r.FormValue("linkedin_url"),
		LogoURL:        r.FormValue("logo"),
	}

	upload, err := formUpload(r, "logo")
	if err != nil {
		return nil, err
	}
	form.Logo = upload
	return form, nil
}

func footerDraft(form *forms.FooterForm) models.FooterData {
	return models.FooterData{
		Title:          form.Title,
		Description:    form.Description,
		CopyrightText:  form.CopyrightText,
		DesignerText:   form.DesignerText,
		PrivacyLink:    form.PrivacyLink,
		TermsLink:      form.TermsLink,
		DisclaimerLink: form.DisclaimerLink,
		FacebookURL:    form.FacebookURL,
		TwitterURL:     form.TwitterURL,
		InstagramURL:   form.InstagramURL,
		PinterestURL:   form.PinterestURL,
		LinkedInURL:    form.LinkedInURL,
		Logo:           form.LogoURL,
	}
}

// CreateFooter godoc
// @Summary Создать футер (только admin)
// @Tags admin-footer
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Заголовок"
// @Param logo formData file false "Логотип"
// @Success 201 {object} models.FooterData
// @Router /api/admin/footers [post]
func (h *FooterHandler) CreateFooter(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы футера", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	created, err := h.section.CreateVia(r.Context(), footerDraft(form), func(ctx context.Context) (models.FooterData, error) {
		return h.api.CreateMultipart(ctx, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка создания футера")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// UpdateFooter godoc
// @Summary Обновить футер (только admin)
// @Tags admin-footer
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID футера"
// @Success 200 {object} models.FooterData
// @Router /api/admin/footers/{id} [post]
func (h *FooterHandler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы футера", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	updated, err := h.section.UpdateVia(r.Context(), id, footerDraft(form), func(ctx context.Context) (models.FooterData, error) {
		return h.api.UpdateMultipart(ctx, id, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления футера")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteFooter godoc
// @Summary Удалить футер (только admin)
// @Tags admin-footer
// @Security ApiKeyAuth
// @Param id path string true "ID футера"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/footers/{id} [delete]
func (h *FooterHandler) DeleteFooter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления футера")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// ActivateFooter godoc
// @Summary Сделать футер активным (только admin)
// @Tags admin-footer
// @Security ApiKeyAuth
// @Param id path string true "ID футера"
// @Produce json
// @Success 200 {object} models.FooterData
// @Router /api/admin/footers/{id}/activate [post]
func (h *FooterHandler) ActivateFooter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	activated, err := h.section.Activate(r.Context(), id)
	if err != nil {
		writeAPIError(w, err, "Ошибка активации футера")
		return
	}
	helpers.JSON(w, http.StatusOK, activated)
}
