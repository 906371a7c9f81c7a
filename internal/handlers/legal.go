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

// legalSection обслуживает один юридический раздел: политику, условия
// или дисклеймер. Разделы отличаются только типом модели, поэтому вся
// логика общая, а обёртки ниже дают каждому разделу свои маршруты.
type legalSection[T any] struct {
	name    string
	section *controller.Section[T]
	build   func(forms.LegalForm) T
}

func (h *legalSection[T]) list(w http.ResponseWriter, r *http.Request) {
	col := h.section.Collection()
	col.Fetch(r.Context(), false)

	state := col.State()
	if state.Error != "" && len(state.Data) == 0 {
		helpers.Error(w, http.StatusBadGateway, state.Error)
		return
	}
	helpers.JSON(w, http.StatusOK, state)
}

func (h *legalSection[T]) create(w http.ResponseWriter, r *http.Request) {
	var form forms.LegalForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Некорректный JSON", zap.String("раздел", h.name), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	created, err := h.section.Create(r.Context(), h.build(form))
	if err != nil {
		writeAPIError(w, err, "Ошибка создания записи")
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

func (h *legalSection[T]) update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form forms.LegalForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Некорректный JSON", zap.String("раздел", h.name), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	updated, err := h.section.Update(r.Context(), id, h.build(form))
	if err != nil {
		writeAPIError(w, err, "Ошибка обновления записи")
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}

func (h *legalSection[T]) delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.section.Delete(r.Context(), id); err != nil {
		writeAPIError(w, err, "Ошибка удаления записи")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

func (h *legalSection[T]) activate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	activated, err := h.section.Activate(r.Context(), id)
	if err != nil {
		writeAPIError(w, err, "Ошибка активации записи")
		return
	}
	helpers.JSON(w, http.StatusOK, activated)
}

type LegalHandler struct {
	policies    legalSection[models.PrivacyPolicy]
	terms       legalSection[models.Term]
	disclaimers legalSection[models.Disclaimer]
}

func NewLegalHandler(
	policies *controller.Section[models.PrivacyPolicy],
	terms *controller.Section[models.Term],
	disclaimers *controller.Section[models.Disclaimer],
) *LegalHandler {
	return &LegalHandler{
		policies: legalSection[models.PrivacyPolicy]{
			name:    "privacy-policies",
			section: policies,
			build: func(f forms.LegalForm) models.PrivacyPolicy {
				return models.PrivacyPolicy{Title: f.Title, Content: f.Content}
			},
		},
		terms: legalSection[models.Term]{
			name:    "terms",
			section: terms,
			build: func(f forms.LegalForm) models.Term {
				return models.Term{Title: f.Title, Content: f.Content}
			},
		},
		disclaimers: legalSection[models.Disclaimer]{
			name:    "disclaimers",
			section: disclaimers,
			build: func(f forms.LegalForm) models.Disclaimer {
				return models.Disclaimer{Title: f.Title, Content: f.Content}
			},
		},
	}
}

// ListPolicies godoc
// @Summary Список политик конфиденциальности
// @Tags legal
// @Produce json
// @Success 200 {array} models.PrivacyPolicy
// @Router /api/privacy-policies [get]
func (h *LegalHandler) ListPolicies(w http.ResponseWriter, r *http.Request) { h.policies.list(w, r) }

// CreatePolicy godoc
// @Summary Создать политику (только admin)
// @Tags admin-legal
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.PrivacyPolicy
// @Router /api/admin/privacy-policies [post]
func (h *LegalHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) { h.policies.create(w, r) }

// UpdatePolicy godoc
// @Summary Обновить политику (только admin)
// @Tags admin-legal
// @Security ApiKeyAuth
// @Param id path string true "ID записи"
// @Success 200 {object} models.PrivacyPolicy
// @Router /api/admin/privacy-policies/{id} [put]
func (h *LegalHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) { h.policies.update(w, r) }

// DeletePolicy godoc
// @Summary Удалить политику (только admin)
// @Tags admin-legal
// @Security ApiKeyAuth
// @Param id path string true "ID записи"
// @Router /api/admin/privacy-policies/{id} [delete]
func (h *LegalHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) { h.policies.delete(w, r) }

// ActivatePolicy godoc
// @Summary Сделать политику активной (только admin)
// @Tags admin-legal
// @Security ApiKeyAuth
// @Param id path string true "ID записи"
// @Router /api/admin/privacy-policies/{id}/activate [post]
func (h *LegalHandler) ActivatePolicy(w http.ResponseWriter, r *http.Request) {
	h.policies.activate(w, r)
}

// ListTerms godoc
// @Summary Список условий использования
// @Tags legal
// @Produce json
// @Success 200 {array} models.Term
// @Router /api/terms [get]
func (h *LegalHandler) ListTerms(w http.ResponseWriter, r *http.Request) { h.terms.list(w, r) }

func (h *LegalHandler) CreateTerm(w http.ResponseWriter, r *http.Request) { h.terms.create(w, r) }
func (h *LegalHandler) UpdateTerm(w http.ResponseWriter, r *http.Request) { h.terms.update(w, r) }
func (h *LegalHandler) DeleteTerm(w http.ResponseWriter, r *http.Request) { h.terms.delete(w, r) }
func (h *LegalHandler) ActivateTerm(w http.ResponseWriter, r *http.Request) {
	h.terms.activate(w, r)
}

// ListDisclaimers godoc
// @Summary Список дисклеймеров
// @Tags legal
// @Produce json
// @Success 200 {array} models.Disclaimer
// @Router /api/disclaimers [get]
func (h *LegalHandler) ListDisclaimers(w http.ResponseWriter, r *http.Request) {
	h.disclaimers.list(w, r)
}

func (h *LegalHandler) CreateDisclaimer(w http.ResponseWriter, r *http.Request) {
	h.disclaimers.create(w, r)
}
func (h *LegalHandler) UpdateDisclaimer(w http.ResponseWriter, r *http.Request) {
	h.disclaimers.update(w, r)
}
func (h *LegalHandler) DeleteDisclaimer(w http.ResponseWriter, r *http.Request) {
	h.disclaimers.delete(w, r)
}
func (h *LegalHandler) ActivateDisclaimer(w http.ResponseWriter, r *http.Request) {
	h.disclaimers.activate(w, r)
}
