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

type TeamHandler struct {
	section *controller.Section[models.TeamMember]
	api     *contentapi.Resource[models.TeamMember]
}

func NewTeamHandler(section *controller.Section[models.TeamMember], api *contentapi.Resource[models.TeamMember]) *TeamHandler {
	return &TeamHandler{section: section, api: api}
}

// ListTeam godoc
// @Summary Список команды
// @Tags team
// @Produce json
// @Success 200 {array} models.TeamMember
// @Router /api/teams [get]
func (h *TeamHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

func (h *TeamHandler) parseForm(r *http.Request) (*forms.TeamMemberForm, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	form := &forms.TeamMemberForm{
		Name:     r.FormValue("name"),
		Position: r.FormValue("position"),
		Twitter:  r.FormValue("twitter"),
		LinkedIn: r.FormValue("linkedin"),
		Facebook: r.FormValue("facebook"),
		ImageURL: r.FormValue("image"),
	}

	upload, err := formUpload(r, "image")
	if err != nil {
		return nil, err
	}
	form.Image = upload
	return form, nil
}

// CreateTeamMember godoc
// @Summary Добавить участника команды (только admin)
// @Tags admin-team
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Имя"
// @Param position formData string true "Должность"
// @Param image formData file false "Фото"
// @Success 201 {object} models.TeamMember
// @Router /api/admin/teams [post]
func (h *TeamHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы участника команды", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	draft := models.TeamMember{
		Name:     fields["name"],
		Position: fields["position"],
		SocialLinks: models.SocialLinks{
			Twitter:  form.Twitter,
			LinkedIn: form.LinkedIn,
			Facebook: form.Facebook,
		},
	}

	created, err := h.section.CreateVia(r.Context(), draft, func(ctx context.Context) (models.TeamMember, error) {
		return h.api.CreateMultipart(ctx, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка создания участника команды")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// UpdateTeamMember godoc
// @Summary Обновить участника команды (только admin)
// @Tags admin-team
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID участника"
// @Success 200 {object} models.TeamMember
// @Router /api/admin/teams/{id} [post]
func (h *TeamHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.parseForm(r)
	if err != nil {
		logger.Log.Warn("Ошибка разбора формы участника команды", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	fields, uploads := form.Multipart()
	draft := models.TeamMember{
		Name:     fields["name"],
		Position: fields["position"],
		Image:    form.ImageURL,
		SocialLinks: models.SocialLinks{
			Twitter:  form.Twitter,
			LinkedIn: form.LinkedIn,
			Facebook: form.Facebook,
		},
	}

	updated, err := h.section.UpdateVia(r.Context(), id, draft, func(ctx context.Context) (models.TeamMember, error) {
		return h.api.UpdateMultipart(ctx, id, fields, uploads)
	})
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления участника команды")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteTeamMember godoc
// @Summary Удалить участника команды (только admin)
// @Tags admin-team
// @Security ApiKeyAuth
// @Param id path string true "ID участника"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/teams/{id} [delete]
func (h *TeamHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления участника команды")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
