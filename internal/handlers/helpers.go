package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"thrivecms/internal/contentapi"
	"thrivecms/internal/controller"
	helpers "thrivecms/internal/utils/helpres"
)

// writeAPIError — единая точка превращения ошибок нижних слоёв в HTTP-ответ.
func writeAPIError(w http.ResponseWriter, err error, fallback string) {
	var verr *contentapi.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.ValidationError(w, verr.Fields)
	case errors.Is(err, contentapi.ErrUnauthorized):
		helpers.Error(w, http.StatusUnauthorized, "Контент-бэкенд отклонил токен, требуется переавторизация")
	case errors.Is(err, contentapi.ErrRateLimited):
		helpers.Error(w, http.StatusTooManyRequests, "Контент-бэкенд ограничил частоту запросов, попробуйте позже")
	case errors.Is(err, controller.ErrPendingCreate):
		helpers.Error(w, http.StatusConflict, "Запись ещё не подтверждена бэкендом")
	case errors.Is(err, controller.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "Запись не найдена")
	case errors.Is(err, controller.ErrBadTransition):
		helpers.Error(w, http.StatusUnprocessableEntity, "Недопустимый переход статуса")
	case errors.Is(err, controller.ErrNoActivation):
		helpers.Error(w, http.StatusBadRequest, "Секция не поддерживает активацию")
	default:
		helpers.Error(w, http.StatusInternalServerError, fallback)
	}
}

const maxUploadSize = 10 << 20 // 10MB

func atoiOrZero(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// formUpload вычитывает файл из multipart-формы в память.
// Отсутствие файла — не ошибка: поле опционально.
func formUpload(r *http.Request, field string) (*contentapi.Upload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &contentapi.Upload{Field: field, Filename: header.Filename, Data: data}, nil
}
