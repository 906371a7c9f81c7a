package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"thrivecms/internal/content"
	"thrivecms/internal/forms"
	"thrivecms/internal/logger"
	"thrivecms/internal/models"
	"thrivecms/internal/snapshot"
	helpers "thrivecms/internal/utils/helpres"

	"go.uber.org/zap"
)

const contactFormSnapshotKey = "contact-form"

// ContactFormHandler — тексты публичной контактной формы. У них нет
// коллекции на контент-бэкенде: админка пишет их прямо в документ,
// снапшот хранит их между перезапусками.
type ContactFormHandler struct {
	doc  *content.Document
	snap snapshot.Store
}

func NewContactFormHandler(doc *content.Document, snap snapshot.Store) *ContactFormHandler {
	return &ContactFormHandler{doc: doc, snap: snap}
}

// WarmStart поднимает сохранённые тексты формы из снапшота.
func (h *ContactFormHandler) WarmStart(ctx context.Context) {
	if h.snap == nil {
		return
	}
	data, err := h.snap.Load(ctx, contactFormSnapshotKey)
	if err != nil {
		return
	}
	var cf models.ContactForm
	if err := json.Unmarshal(data, &cf); err != nil {
		return
	}
	h.doc.MergeContactForm(cf)
}

// GetContactForm godoc
// @Summary Тексты контактной формы
// @Tags contact
// @Produce json
// @Success 200 {object} models.ContactForm
// @Router /api/contact-form [get]
func (h *ContactFormHandler) GetContactForm(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, h.doc.Snapshot().ContactForm)
}

// UpdateContactForm godoc
// @Summary Обновить тексты контактной формы (только admin)
// @Tags admin-contact
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body forms.ContactFormForm true "Тексты формы"
// @Success 200 {object} models.ContactForm
// @Router /api/admin/contact-form [put]
func (h *ContactFormHandler) UpdateContactForm(w http.ResponseWriter, r *http.Request) {
	var form forms.ContactFormForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Log.Warn("Некорректный JSON текстов формы", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректный JSON")
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		helpers.ValidationError(w, errs)
		return
	}

	cf := form.ToModel()
	h.doc.MergeContactForm(cf)

	// снапшот best-effort, как и write-through у коллекций
	if h.snap != nil {
		if data, err := json.Marshal(cf); err == nil {
			_ = h.snap.Save(r.Context(), contactFormSnapshotKey, data)
		}
	}

	logger.Log.Info("Тексты контактной формы обновлены")
	helpers.JSON(w, http.StatusOK, cf)
}
