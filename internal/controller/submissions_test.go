package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"thrivecms/internal/cache"
	"thrivecms/internal/models"
	"thrivecms/internal/syncer"
)

type mockSubmissionAPI struct {
	patched models.ContactSubmission
	err     error
}

func (m *mockSubmissionAPI) Patch(_ context.Context, _ string, _ any) (models.ContactSubmission, error) {
	if m.err != nil {
		return models.ContactSubmission{}, m.err
	}
	return m.patched, nil
}

func (m *mockSubmissionAPI) Delete(_ context.Context, _ string) error {
	return m.err
}

func newSubmissions(api *mockSubmissionAPI, initial []models.ContactSubmission) *Submissions {
	col := syncer.New(syncer.Options[models.ContactSubmission]{
		Name:  "contact-submissions",
		Store: cache.NewStore[models.ContactSubmission]("contact-submissions", nil),
	})
	col.Publish(context.Background(), initial)
	return NewSubmissions(col, api)
}

func TestMarkRead(t *testing.T) {
	api := &mockSubmissionAPI{
		patched: models.ContactSubmission{ID: "1", Status: models.SubmissionStatusRead, UpdatedAt: time.Now()},
	}
	s := newSubmissions(api, []models.ContactSubmission{
		{ID: "1", Status: models.SubmissionStatusNew},
	})

	updated, err := s.MarkRead(context.Background(), "1")
	if err != nil {
		t.Fatalf("ошибка смены статуса: %v", err)
	}
	if updated.Status != models.SubmissionStatusRead {
		t.Fatalf("ожидался статус read, получен %q", updated.Status)
	}

	list := s.Collection().Items()
	if len(list) != 1 || list[0].Status != models.SubmissionStatusRead {
		t.Fatalf("список не отражает новый статус: %+v", list)
	}
}

func TestMarkRead_InvalidTransition(t *testing.T) {
	s := newSubmissions(&mockSubmissionAPI{}, []models.ContactSubmission{
		{ID: "1", Status: models.SubmissionStatusReplied},
	})

	_, err := s.MarkRead(context.Background(), "1")
	if !errors.Is(err, ErrBadTransition) {
		t.Fatalf("ожидалась ErrBadTransition, получено %v", err)
	}
}

func TestMarkReplied_FromRead(t *testing.T) {
	api := &mockSubmissionAPI{
		patched: models.ContactSubmission{ID: "1", Status: models.SubmissionStatusReplied},
	}
	s := newSubmissions(api, []models.ContactSubmission{
		{ID: "1", Status: models.SubmissionStatusRead},
	})

	if _, err := s.MarkReplied(context.Background(), "1"); err != nil {
		t.Fatalf("ошибка смены статуса: %v", err)
	}
}

func TestSetStatus_FailureRollsBack(t *testing.T) {
	api := &mockSubmissionAPI{err: errors.New("сеть недоступна")}
	s := newSubmissions(api, []models.ContactSubmission{
		{ID: "1", Status: models.SubmissionStatusNew},
	})

	if _, err := s.MarkRead(context.Background(), "1"); err == nil {
		t.Fatal("ожидалась ошибка")
	}

	if got := s.Collection().Items()[0].Status; got != models.SubmissionStatusNew {
		t.Fatalf("статус должен откатиться к new, получен %q", got)
	}
}

func TestDeleteSubmission_FailureRestores(t *testing.T) {
	api := &mockSubmissionAPI{err: errors.New("сеть недоступна")}
	s := newSubmissions(api, []models.ContactSubmission{{ID: "1"}})

	if err := s.Delete(context.Background(), "1"); err == nil {
		t.Fatal("ожидалась ошибка удаления")
	}

	if len(s.Collection().Items()) != 1 {
		t.Fatal("заявка не восстановлена после сбоя")
	}
}

func TestDeleteSubmission_NotFound(t *testing.T) {
	s := newSubmissions(&mockSubmissionAPI{}, nil)

	if err := s.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ожидалась ErrNotFound, получено %v", err)
	}
}
