package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"thrivecms/internal/content"
	"thrivecms/internal/logger"
	"thrivecms/internal/models"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	m.Run()
}

type memorySnapshotStore struct {
	data map[string][]byte
}

func newMemorySnapshotStore() *memorySnapshotStore {
	return &memorySnapshotStore{data: map[string][]byte{}}
}

func (s *memorySnapshotStore) Save(_ context.Context, key string, data []byte) error {
	s.data[key] = data
	return nil
}

func (s *memorySnapshotStore) Load(_ context.Context, key string) ([]byte, error) {
	return s.data[key], nil
}

func (s *memorySnapshotStore) Close() error { return nil }

func TestUpdateContactForm_WritesDocumentAndSnapshot(t *testing.T) {
	doc := content.NewDocument()
	snap := newMemorySnapshotStore()
	h := NewContactFormHandler(doc, snap)

	body, _ := json.Marshal(map[string]string{
		"title":           "Свяжитесь с нами",
		"success_message": "Спасибо за заявку",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/admin/contact-form", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.UpdateContactForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d: %s", rec.Code, rec.Body.String())
	}
	if got := doc.Snapshot().ContactForm.Title; got != "Свяжитесь с нами" {
		t.Errorf("тексты не попали в документ: %q", got)
	}
	if _, ok := snap.data["contact-form"]; !ok {
		t.Error("тексты не сохранены в снапшот")
	}
}

func TestUpdateContactForm_ValidationRejected(t *testing.T) {
	doc := content.NewDocument()
	h := NewContactFormHandler(doc, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/contact-form",
		bytes.NewReader([]byte(`{"subtitle":"без обязательных полей"}`)))
	rec := httptest.NewRecorder()

	h.UpdateContactForm(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("ожидался 422, получен %d", rec.Code)
	}
	if doc.Snapshot().ContactForm.Subtitle != "" {
		t.Error("невалидная форма не должна менять документ")
	}
}

func TestContactFormWarmStart(t *testing.T) {
	doc := content.NewDocument()
	snap := newMemorySnapshotStore()
	saved, _ := json.Marshal(models.ContactForm{Title: "Свяжитесь с нами"})
	snap.data["contact-form"] = saved

	h := NewContactFormHandler(doc, snap)
	h.WarmStart(context.Background())

	if got := doc.Snapshot().ContactForm.Title; got != "Свяжитесь с нами" {
		t.Errorf("снапшот не восстановлен при старте: %q", got)
	}
}
