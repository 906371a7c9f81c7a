package contentapi

import (
	"context"
	"net/http"
)

// Resource — типизированный CRUD-доступ к одной коллекции бэкенда.
// path — сегмент вроде "services" или "privacy-policies".
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

func (r *Resource[T]) collectionPath() string {
	return "/api/" + r.path
}

func (r *Resource[T]) itemPath(id string) string {
	return "/api/" + r.path + "/" + id
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	raw, err := r.client.getJSON(ctx, r.collectionPath())
	if err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func (r *Resource[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	raw, err := r.client.sendJSON(ctx, http.MethodPost, r.collectionPath(), entity)
	if err != nil {
		return zero, err
	}
	return decodeItem[T](raw)
}

func (r *Resource[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var zero T
	raw, err := r.client.sendJSON(ctx, http.MethodPut, r.itemPath(id), entity)
	if err != nil {
		return zero, err
	}
	return decodeItem[T](raw)
}

// Patch — частичное обновление (например, только статус заявки).
func (r *Resource[T]) Patch(ctx context.Context, id string, payload any) (T, error) {
	var zero T
	raw, err := r.client.sendJSON(ctx, http.MethodPatch, r.itemPath(id), payload)
	if err != nil {
		return zero, err
	}
	return decodeItem[T](raw)
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, r.itemPath(id))
}

// Activate помечает запись активной; бэкенд сам снимает флаг с остальных,
// клиент лишь отражает результат.
func (r *Resource[T]) Activate(ctx context.Context, id string) (T, error) {
	var zero T
	raw, err := r.client.sendJSON(ctx, http.MethodPost, r.itemPath(id)+"/activate", struct{}{})
	if err != nil {
		return zero, err
	}
	return decodeItem[T](raw)
}

// CreateMultipart — создание с бинарными полями (изображения).
func (r *Resource[T]) CreateMultipart(ctx context.Context, fields map[string]string, uploads []Upload) (T, error) {
	var zero T
	raw, err := r.client.sendMultipart(ctx, r.collectionPath(), fields, uploads)
	if err != nil {
		return zero, err
	}
	return decodeItem[T](raw)
}

// UpdateMultipart — обновление с файлами: POST + _method=PUT,
// как того требует бэкенд для multipart-запросов.
func (r *Resource[T]) UpdateMultipart(ctx context.Context, id string, fields map[string]string, uploads []Upload) (T, error) {
	var zero T

	merged := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["_method"] = "PUT"

	raw, err := r.client.sendMultipart(ctx, r.itemPath(id), merged, uploads)
	if err != nil {
		return zero, err
	}
	return decodeItem[T](raw)
}
