package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGatedEngine(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", APIKeyAuth(key), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAPIKeyAuthMissingHeader(t *testing.T) {
	r := newGatedEngine("secret")

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"API key required"}`, w.Body.String())
}

func TestAPIKeyAuthWrongKey(t *testing.T) {
	r := newGatedEngine("secret")

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("X-API-Key", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid API key"}`, w.Body.String())
}

func TestAPIKeyAuthValidKey(t *testing.T) {
	r := newGatedEngine("secret")

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("X-API-Key", "secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
