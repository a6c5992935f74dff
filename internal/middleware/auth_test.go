package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/trimhub/booking-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, cfg *config.Config, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, cfg *config.Config, authorization string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}

	AuthMiddleware(cfg)(c)
	return c, w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testConfig()

	token := signToken(t, cfg, jwt.MapClaims{
		"sub":  float64(42),
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	c, _ := runAuth(t, cfg, "Bearer "+token)

	if c.IsAborted() {
		t.Fatal("valid token must not abort")
	}

	got, exists := c.Get(ContextUserID)
	if !exists {
		t.Fatal("userID must be set in context")
	}
	if got.(uint) != 42 {
		t.Fatalf("expected userID 42, got %v", got)
	}

	// papel do token nunca entra no contexto: admin gate e
	// GET /api/user/role releem do banco
	if _, exists := c.Get("userRole"); exists {
		t.Fatal("role claim must not be stored in context")
	}
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	cfg := testConfig()

	expired := signToken(t, cfg, jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	wrongKey := signToken(t, &config.Config{JWTSecret: "other-secret"}, jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired", "Bearer " + expired},
		{"wrong key", "Bearer " + wrongKey},
	}

	for _, tc := range cases {
		c, w := runAuth(t, cfg, tc.header)

		if !c.IsAborted() {
			t.Fatalf("%s: request must be aborted", tc.name)
		}
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, w.Code)
		}
	}
}
