package contentapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Списочные эндпоинты отвечают то голым массивом, то конвертом
// {"data": [...]}. Форма различается ОДИН раз, здесь.
func decodeList[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("не удалось разобрать список: %w", err)
		}
		return items, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конверт списка: %w", err)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("ответ бэкенда не содержит ни массива, ни поля data")
	}

	var items []T
	if err := json.Unmarshal(envelope.Data, &items); err != nil {
		return nil, fmt.Errorf("не удалось разобрать поле data: %w", err)
	}
	return items, nil
}

// Единичные ответы бывают голым объектом и конвертом {"data": {...}}.
func decodeItem[T any](raw []byte) (T, error) {
	var zero T
	trimmed := bytes.TrimSpace(raw)

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 {
		inner := bytes.TrimSpace(envelope.Data)
		if len(inner) > 0 && inner[0] == '{' {
			var item T
			if err := json.Unmarshal(inner, &item); err != nil {
				return zero, fmt.Errorf("не удалось разобрать поле data: %w", err)
			}
			return item, nil
		}
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return zero, fmt.Errorf("не удалось разобрать сущность: %w", err)
	}
	return item, nil
}
