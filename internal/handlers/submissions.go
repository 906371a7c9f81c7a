package handlers

import (
	"encoding/json"
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

type SubmissionHandler struct {
	ctrl *controller.Submissions
	api  *contentapi.Resource[models.ContactSubmission]
}

func NewSubmissionHandler(ctrl *controller.Submissions, api *contentapi.Resource[models.ContactSubmission]) *SubmissionHandler {
	return &SubmissionHandler{ctrl: ctrl, api: api}
}

// SubmitContactForm godoc
// @Summary Отправить заявку с контактной формы (публично)
// @Tags contact
// @Accept json
// @Produce json
// @Param input body forms.SubmissionForm true "Заявка"
// @Success 201 {object} models.ContactSubmission
// @Failure 422 {object} map[string]string
// @Router /api/contact-submissions [post]
func (h *SubmissionHandler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	var form forms.SubmissionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Некорректный JSON заявки", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	created, err := h.api.Create(r.Context(), form.ToModel())
	if err != nil {
		writeAPIError(w, err, "Ошибка отправки заявки")
		return
	}

	logger.Log.Info("Заявка принята", zap.String("email", created.Email))
	helpers.JSON(w, http.StatusCreated, created)
}

// ListSubmissions godoc
// @Summary Список заявок (только admin)
// @Tags admin-submissions
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.ContactSubmission
// @Router /api/admin/contact-submissions [get]
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	col := h.ctrl.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

// MarkSubmissionRead godoc
// @Summary Отметить заявку прочитанной (только admin)
// @Tags admin-submissions
// @Security ApiKeyAuth
// @Param id path string true "ID заявки"
// @Produce json
// @Success 200 {object} models.ContactSubmission
// @Router /api/admin/contact-submissions/{id}/read [post]
func (h *SubmissionHandler) MarkSubmissionRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	updated, err := h.ctrl.MarkRead(r.Context(), id)
	if err != nil {
		writeAPIError(w, err, "Ошибка смены статуса заявки")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// MarkSubmissionReplied godoc
// @Summary Отметить заявку отвеченной (только admin)
// @Tags admin-submissions
// @Security ApiKeyAuth
// @Param id path string true "ID заявки"
// @Produce json
// @Success 200 {object} models.ContactSubmission
// @Router /api/admin/contact-submissions/{id}/replied [post]
func (h *SubmissionHandler) MarkSubmissionReplied(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	updated, err := h.ctrl.MarkReplied(r.Context(), id)
	if err != nil {
		writeAPIError(w, err, "Ошибка смены статуса заявки")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

// DeleteSubmission godoc
// @Summary Удалить заявку (только admin)
// @Tags admin-submissions
// @Security ApiKeyAuth
// @Param id path string true "ID заявки"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/contact-submissions/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.ctrl.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления заявки")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
