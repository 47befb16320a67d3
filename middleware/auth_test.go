package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	InitJWT("testsecret")

	r := gin.New()
	protected := r.Group("/api", AuthMiddleware())
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := buildTestRouter()

	// no token -> 401
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	// malformed header -> 401
	req2 := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req2.Header.Set("Authorization", "Token abc")
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed header, got %d", resp2.Code)
	}

	// valid token -> 200 with claims propagated
	token, err := GenerateToken(1, "manager@hotel.local", "owner")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req3 := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req3.Header.Set("Authorization", "Bearer "+token)
	resp3 := httptest.NewRecorder()
	r.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", resp3.Code)
	}
}

func TestParseTokenRoundTrip(t *testing.T) {
	InitJWT("testsecret")

	token, err := GenerateToken(7, "analyst@hotel.local", "manager")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.AdminID != 7 || claims.Username != "analyst@hotel.local" || claims.Role != "manager" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("testsecret")
	token, err := GenerateToken(1, "x", "y")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	InitJWT("othersecret")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}
