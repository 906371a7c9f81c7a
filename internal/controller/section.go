// Package controller связывает syncer-коллекцию с операциями
// create/update/delete одной секции админки. Дисциплина одна на все
// секции: оптимистичная локальная мутация, запись на бэкенд,
// реконсиляция с ответом сервера, откат на любом сбое.
package controller

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"thrivecms/internal/logger"
	"thrivecms/internal/syncer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrPendingCreate — операция над записью, чей create ещё не
	// подтверждён бэкендом (временный id). Такие записи трогать нельзя.
	ErrPendingCreate = errors.New("запись ещё не подтверждена бэкендом")

	ErrNotFound = errors.New("запись не найдена в локальном списке")

	// ErrNoActivation — у секции нет операции активации.
	ErrNoActivation = errors.New("секция не поддерживает активацию")
)

const tempIDPrefix = "tmp-"

// TempID — временный клиентский id между оптимистичной вставкой
// и подтверждением сервера.
func TempID() string {
	return tempIDPrefix + uuid.NewString()
}

func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}

// CRUD — низкоуровневый транспорт секции. В бою это contentapi.Resource.
type CRUD[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Delete(ctx context.Context, id string) error
}

type Activator[T any] interface {
	Activate(ctx context.Context, id string) (T, error)
}

type Section[T any] struct {
	name string
	api  CRUD[T]
	col  *syncer.Collection[T]

	getID func(T) string
	setID func(*T, string)

	// только для singleton-active секций
	activator Activator[T]
	setActive func(*T, bool)

	mu sync.Mutex
}

type SectionOptions[T any] struct {
	Name       string
	API        CRUD[T]
	Collection *syncer.Collection[T]
	GetID      func(T) string
	SetID      func(*T, string)
	Activator  Activator[T]
	SetActive  func(*T, bool)
}

func NewSection[T any](opts SectionOptions[T]) *Section[T] {
	return &Section[T]{
		name:      opts.Name,
		api:       opts.API,
		col:       opts.Collection,
		getID:     opts.GetID,
		setID:     opts.SetID,
		activator: opts.Activator,
		setActive: opts.SetActive,
	}
}

func (s *Section[T]) Collection() *syncer.Collection[T] {
	return s.col
}

// Create: временный id и вставка в список сразу, запись на бэкенд следом.
// Успех — временная запись заменяется серверной (ровно одна запись
// с серверным id, временного не остаётся). Сбой — список откатывается.
func (s *Section[T]) Create(ctx context.Context, draft T) (T, error) {
	return s.CreateVia(ctx, draft, func(ctx context.Context) (T, error) {
		return s.api.Create(ctx, draft)
	})
}

// CreateVia — то же с произвольным транспортным вызовом
// (multipart-формы с картинками идут этим путём).
func (s *Section[T]) CreateVia(ctx context.Context, draft T, call func(context.Context) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.col.Items()

	temp := draft
	tempID := TempID()
	s.setID(&temp, tempID)
	s.col.Publish(ctx, append(slices.Clone(snapshot), temp))

	created, err := call(ctx)
	if err != nil {
		s.col.Publish(ctx, snapshot)
		logger.Log.Warn("Создание отклонено, список откатан",
			zap.String("section", s.name), zap.Error(err))
		return zero, err
	}

	list := s.col.Items()
	for i := range list {
		if s.getID(list[i]) == tempID {
			list[i] = created
			break
		}
	}
	s.col.Publish(ctx, list)

	logger.Log.Info("Запись создана",
		zap.String("section", s.name), zap.String("id", s.getID(created)))
	return created, nil
}

func (s *Section[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	return s.UpdateVia(ctx, id, draft, func(ctx context.Context) (T, error) {
		return s.api.Update(ctx, id, draft)
	})
}

func (s *Section[T]) UpdateVia(ctx context.Context, id string, draft T, call func(context.Context) (T, error)) (T, error) {
	var zero T

	if IsTempID(id) {
		return zero, ErrPendingCreate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.col.Items()

	idx := s.indexOf(snapshot, id)
	if idx < 0 {
		return zero, ErrNotFound
	}

	optimistic := slices.Clone(snapshot)
	s.setID(&draft, id)
	optimistic[idx] = draft
	s.col.Publish(ctx, optimistic)

	updated, err := call(ctx)
	if err != nil {
		s.col.Publish(ctx, snapshot)
		logger.Log.Warn("Обновление отклонено, список откатан",
			zap.String("section", s.name), zap.String("id", id), zap.Error(err))
		return zero, err
	}

	// серверная истина: id и вычисляемые поля берём из ответа
	list := s.col.Items()
	if i := s.indexOf(list, id); i >= 0 {
		list[i] = updated
	}
	s.col.Publish(ctx, list)

	logger.Log.Info("Запись обновлена",
		zap.String("section", s.name), zap.String("id", id))
	return updated, nil
}

// Delete: запись убирается из списка сразу; сбой бэкенда возвращает её.
func (s *Section[T]) Delete(ctx context.Context, id string) error {
	if IsTempID(id) {
		// create ещё не подтверждён — удалять нечего и нельзя
		return ErrPendingCreate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.col.Items()

	idx := s.indexOf(snapshot, id)
	if idx < 0 {
		return ErrNotFound
	}

	s.col.Publish(ctx, slices.Delete(slices.Clone(snapshot), idx, idx+1))

	if err := s.api.Delete(ctx, id); err != nil {
		s.col.Publish(ctx, snapshot)
		logger.Log.Warn("Удаление отклонено, запись восстановлена",
			zap.String("section", s.name), zap.String("id", id), zap.Error(err))
		return err
	}

	logger.Log.Info("Запись удалена",
		zap.String("section", s.name), zap.String("id", id))
	return nil
}

// Activate: флаг is_active переносится на запись id; единственность
// активной записи гарантирует бэкенд, клиент отражает её локально.
func (s *Section[T]) Activate(ctx context.Context, id string) (T, error) {
	var zero T

	if s.activator == nil || s.setActive == nil {
		return zero, ErrNoActivation
	}
	if IsTempID(id) {
		return zero, ErrPendingCreate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.col.Items()
	if s.indexOf(snapshot, id) < 0 {
		return zero, ErrNotFound
	}

	optimistic := slices.Clone(snapshot)
	for i := range optimistic {
		s.setActive(&optimistic[i], s.getID(optimistic[i]) == id)
	}
	s.col.Publish(ctx, optimistic)

	activated, err := s.activator.Activate(ctx, id)
	if err != nil {
		s.col.Publish(ctx, snapshot)
		logger.Log.Warn("Активация отклонена, список откатан",
			zap.String("section", s.name), zap.String("id", id), zap.Error(err))
		return zero, err
	}

	list := s.col.Items()
	for i := range list {
		if s.getID(list[i]) == id {
			list[i] = activated
		} else {
			s.setActive(&list[i], false)
		}
	}
	s.col.Publish(ctx, list)

	logger.Log.Info("Запись активирована",
		zap.String("section", s.name), zap.String("id", id))
	return activated, nil
}

func (s *Section[T]) indexOf(list []T, id string) int {
	for i := range list {
		if s.getID(list[i]) == id {
			return i
		}
	}
	return -1
}
