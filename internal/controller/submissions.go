package controller

import (
	"context"
	"errors"
	"slices"
	"sync"

	"thrivecms/internal/logger"
	"thrivecms/internal/models"
	"thrivecms/internal/syncer"

	"go.uber.org/zap"
)

// ErrBadTransition — недопустимая смена статуса заявки.
var ErrBadTransition = errors.New("недопустимый переход статуса")

// SubmissionAPI — транспорт заявок: статус меняется PATCH-ем,
// создание идёт публичной формой мимо админки.
type SubmissionAPI interface {
	Patch(ctx context.Context, id string, payload any) (models.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

// Submissions — контроллер заявок контактной формы. Та же оптимистичная
// дисциплина, что и у Section, но операции — только смена статуса и удаление.
type Submissions struct {
	col *syncer.Collection[models.ContactSubmission]
	api SubmissionAPI

	mu sync.Mutex
}

func NewSubmissions(col *syncer.Collection[models.ContactSubmission], api SubmissionAPI) *Submissions {
	return &Submissions{col: col, api: api}
}

func (s *Submissions) Collection() *syncer.Collection[models.ContactSubmission] {
	return s.col
}

func (s *Submissions) MarkRead(ctx context.Context, id string) (models.ContactSubmission, error) {
	return s.setStatus(ctx, id, models.SubmissionStatusRead)
}

func (s *Submissions) MarkReplied(ctx context.Context, id string) (models.ContactSubmission, error) {
	return s.setStatus(ctx, id, models.SubmissionStatusReplied)
}

func (s *Submissions) setStatus(ctx context.Context, id, status string) (models.ContactSubmission, error) {
	var zero models.ContactSubmission

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.col.Items()
	idx := indexByID(snapshot, id)
	if idx < 0 {
		return zero, ErrNotFound
	}
	if !models.ValidStatusTransition(snapshot[idx].Status, status) {
		return zero, ErrBadTransition
	}

	optimistic := slices.Clone(snapshot)
	optimistic[idx].Status = status
	s.col.Publish(ctx, optimistic)

	updated, err := s.api.Patch(ctx, id, map[string]string{"status": status})
	if err != nil {
		s.col.Publish(ctx, snapshot)
		logger.Log.Warn("Смена статуса отклонена, список откатан",
			zap.String("submission_id", id), zap.Error(err))
		return zero, err
	}

	list := s.col.Items()
	if i := indexByID(list, id); i >= 0 {
		list[i] = updated
	}
	s.col.Publish(ctx, list)

	logger.Log.Info("Статус заявки обновлён",
		zap.String("submission_id", id), zap.String("status", status))
	return updated, nil
}

func (s *Submissions) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.col.Items()
	idx := indexByID(snapshot, id)
	if idx < 0 {
		return ErrNotFound
	}

	s.col.Publish(ctx, slices.Delete(slices.Clone(snapshot), idx, idx+1))

	if err := s.api.Delete(ctx, id); err != nil {
		s.col.Publish(ctx, snapshot)
		logger.Log.Warn("Удаление заявки отклонено, запись восстановлена",
			zap.String("submission_id", id), zap.Error(err))
		return err
	}

	logger.Log.Info("Заявка удалена", zap.String("submission_id", id))
	return nil
}

func indexByID(list []models.ContactSubmission, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
