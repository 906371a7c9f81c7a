package contentapi

import (
	"errors"
	"fmt"
)

// ErrRateLimited — бэкенд ответил 429. Единственная ошибка, которую
// sync-слой повторяет по политике ретраев; всё остальное терминально.
var ErrRateLimited = errors.New("контент-бэкенд ограничил частоту запросов")

// ErrUnauthorized — токен невалиден или протух; пробрасывается наверх,
// клиентский код должен предложить переавторизацию.
var ErrUnauthorized = errors.New("контент-бэкенд отклонил токен")

// APIError — любой прочий ответ с кодом >= 400.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("контент-бэкенд вернул статус %d", e.Status)
	}
	return fmt.Sprintf("контент-бэкенд вернул статус %d: %s", e.Status, e.Message)
}

// ValidationError — 422: бэкенд отклонил сущность, поля и сообщения
// разнесены для показа рядом с полями формы.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "данные не прошли валидацию на бэкенде"
}
