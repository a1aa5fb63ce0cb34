package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireInternalKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("INTERNAL_KEY", "sekret")

	r := gin.New()
	r.POST("/protected", RequireInternalKey(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("x-internal-key", "nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("matching key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("x-internal-key", "sekret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
