// Package reqctx — значения запроса, которые логгер достаёт из контекста:
// request_id ставит middleware.RequestID, user_id — JWT-middleware после
// разбора токена.
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyUserID
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, keyUserID, id)
}

func GetUserID(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(keyUserID).(int)
	return v, ok
}
