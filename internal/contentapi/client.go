// Package contentapi — HTTP-транспорт к удалённому контент-бэкенду.
// Все коды ответов разбираются в одном месте, все списочные и единичные
// ответы декодируются одной парой функций — никакого повторного
// "угадывания" формы ответа по вызывающим местам.
package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// таймаут и обрыв сети — обычная терминальная ошибка, без спецобработки
		return nil, fmt.Errorf("контент-бэкенд недоступен: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать ответ бэкенда: %w", err)
	}

	if err := mapStatus(resp.StatusCode, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// mapStatus — единственное место, где коды ответов превращаются в ошибки.
func mapStatus(status int, raw []byte) error {
	switch {
	case status < 400:
		return nil
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusUnprocessableEntity:
		return &ValidationError{Fields: parseFieldErrors(raw)}
	default:
		return &APIError{Status: status, Message: parseMessage(raw)}
	}
}

// parseFieldErrors разбирает обе встречающиеся формы 422:
// {"errors": {"field": ["msg", ...]}} и {"errors": {"field": "msg"}}.
func parseFieldErrors(raw []byte) map[string]string {
	var envelope struct {
		Errors map[string]json.RawMessage `json:"errors"`
	}
	fields := make(map[string]string)
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fields
	}
	for name, msg := range envelope.Errors {
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil && len(list) > 0 {
			fields[name] = list[0]
			continue
		}
		var single string
		if err := json.Unmarshal(msg, &single); err == nil {
			fields[name] = single
		}
	}
	return fields
}

func parseMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json")
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, "")
	return err
}

// Upload — бинарное поле формы, удерживаемое в памяти до успешной записи.
type Upload struct {
	Field    string
	Filename string
	Data     []byte
}

// sendMultipart собирает multipart/form-data из полей и файлов.
// Для обновлений бэкенд принимает POST с полем _method=PUT.
func (c *Client) sendMultipart(ctx context.Context, path string, fields map[string]string, uploads []Upload) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	for _, up := range uploads {
		part, err := mw.CreateFormFile(up.Field, up.Filename)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(up.Data); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPost, path, &buf, mw.FormDataContentType())
}
