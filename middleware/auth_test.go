package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Fanhub/models"
	"Fanhub/pkg/context"
	"Fanhub/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("test-secret")

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		uid, _ := context.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "role": context.GetRole(c)})
	})
	r.GET("/probe", chain...)
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	r := newTestRouter(Auth(testSecret))
	if w := doRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := jwt.GenerateToken(testSecret, 42, models.RoleUser, "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := newTestRouter(Auth(testSecret))
	if w := doRequest(r, token); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	// 不带 token 也放行，按匿名访客处理
	r := newTestRouter(OptionalAuth(testSecret))
	if w := doRequest(r, ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for anonymous, got %d", w.Code)
	}
}

func TestOptionalAuth_BadTokenStillAnonymous(t *testing.T) {
	r := newTestRouter(OptionalAuth(testSecret))
	if w := doRequest(r, "not-a-jwt"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for invalid token, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	userToken, _ := jwt.GenerateToken(testSecret, 1, models.RoleUser, "access", time.Minute)
	adminToken, _ := jwt.GenerateToken(testSecret, 2, models.RoleAdmin, "access", time.Minute)

	r := newTestRouter(Auth(testSecret), RequireAdmin())

	if w := doRequest(r, userToken); w.Code != http.StatusForbidden {
		t.Fatalf("user role should get 403, got %d", w.Code)
	}
	if w := doRequest(r, adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin role should get 200, got %d", w.Code)
	}
}
