package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate() *Gate {
	return NewGate("admin", "secure_password", "test-secret", time.Hour)
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	gate := newTestGate()

	token, ok := gate.Login("admin", "secure_password")
	require.True(t, ok)
	require.NotEmpty(t, token)

	claims, err := gate.Parse(token)
	require.NoError(t, err)
	assert.True(t, claims.LoggedIn)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gate := newTestGate()

	for _, tc := range []struct{ user, pass string }{
		{"admin", "wrong"},
		{"someone", "secure_password"},
		{"", ""},
	} {
		token, ok := gate.Login(tc.user, tc.pass)
		assert.False(t, ok)
		assert.Empty(t, token)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	gate := newTestGate()
	other := NewGate("admin", "secure_password", "other-secret", time.Hour)

	token, ok := other.Login("admin", "secure_password")
	require.True(t, ok)

	_, err := gate.Parse(token)
	assert.Error(t, err)
}

func TestIsAdminWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := newTestGate()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/events", nil)

	assert.False(t, gate.IsAdmin(c))
}

func TestIsAdminWithSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := newTestGate()

	token, ok := gate.Login("admin", "secure_password")
	require.True(t, ok)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/events", nil)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	assert.True(t, gate.IsAdmin(c))
}

func TestRequireAdminAbortsWithUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := newTestGate()

	router := gin.New()
	router.POST("/events/create", gate.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/create", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Unauthorized access."}`, w.Body.String())
}

func TestRequireAdminPassesWithSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := newTestGate()

	token, ok := gate.Login("admin", "secure_password")
	require.True(t, ok)

	router := gin.New()
	router.POST("/events/create", gate.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/events/create", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
