package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/middleware"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

const testSecret = "test-secret"

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		userID := c.GetInt("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	r := setupProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("запрос без токена должен давать 401, получили %d", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := setupProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer не-токен")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("запрос с мусорным токеном должен давать 401, получили %d", w.Code)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	r := setupProtectedRouter()

	token, err := utils.GenerateToken("other-secret", 7)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("токен с чужим секретом должен давать 401, получили %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := setupProtectedRouter()

	token, err := utils.GenerateToken(testSecret, 7)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("запрос с валидным токеном должен проходить, получили %d", w.Code)
	}
}
