package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"thrivecms/internal/logger"
	"thrivecms/internal/reqctx"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	m.Run()
}

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("не удалось подписать токен: %v", err)
	}
	return signed
}

func TestJWTAuth_UserIDInRequestContext(t *testing.T) {
	var gotUserID int
	var gotOK bool

	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = reqctx.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"user_id": float64(42),
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", rec.Code)
	}
	if !gotOK {
		t.Fatal("user_id не попал в контекст запроса")
	}
	if gotUserID != 42 {
		t.Errorf("ожидался user_id 42, получен %d", gotUserID)
	}
}

func TestJWTAuth_MissingToken(t *testing.T) {
	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("запрос без токена не должен дойти до хендлера")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("ожидался 401, получен %d", rec.Code)
	}
}

func TestOnlyRole_WrongRoleRejected(t *testing.T) {
	handler := JWTAuth(testSecret)(OnlyRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("пользователь без роли admin не должен дойти до хендлера")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"user_id": float64(7),
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("ожидался 403, получен %d", rec.Code)
	}
}
