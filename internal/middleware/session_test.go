package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioarcadia/prenota/internal/sessions"
)

func newGatedRouter(store sessions.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings", AdminGate(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminGate_MissingCookie(t *testing.T) {
	r := newGatedRouter(sessions.NewMemoryStore(time.Hour, 10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGate_UnknownToken(t *testing.T) {
	r := newGatedRouter(sessions.NewMemoryStore(time.Hour, 10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "bogus"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGate_ValidToken(t *testing.T) {
	store := sessions.NewMemoryStore(time.Hour, 10)
	require.NoError(t, store.Put(context.Background(), "good-token"))

	r := newGatedRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good-token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
