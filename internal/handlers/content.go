package handlers

import (
	"context"
	"net/http"

	"thrivecms/internal/content"
	"thrivecms/internal/logger"
	helpers "thrivecms/internal/utils/helpres"
)

// Refresher — то, что умеет перечитать все коллекции с бэкенда.
type Refresher interface {
	RefreshAll(ctx context.Context, force bool)
}

type ContentHandler struct {
	doc       *content.Document
	refresher Refresher
}

func NewContentHandler(doc *content.Document, refresher Refresher) *ContentHandler {
	return &ContentHandler{doc: doc, refresher: refresher}
}

// GetContent godoc
// @Summary Собранный контент-документ публичного сайта
// @Tags content
// @Produce json
// @Success 200 {object} models.ContentDocument
// @Router /api/content [get]
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	// ленивый прогрев: если коллекции свежие, сетевых вызовов не будет
	h.refresher.RefreshAll(r.Context(), false)
	helpers.JSON(w, http.StatusOK, h.doc.Snapshot())
}

// RefreshContent godoc
// @Summary Принудительно перечитать весь контент с бэкенда (только admin)
// @Tags admin-content
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {string} string "Обновлено"
// @Router /api/admin/content/refresh [post]
func (h *ContentHandler) RefreshContent(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на принудительное обновление контента")
	h.refresher.RefreshAll(r.Context(), true)
	helpers.JSON(w, http.StatusOK, "Обновлено")
}
