package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/campus-api/internal/auth"
	"github.com/smartcampus/campus-api/internal/logger"
)

// AuthHandler serves the admin login page and manages the session cookie.
type AuthHandler struct {
	gate *auth.Gate
}

func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// LoginPage handles GET /admin/login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

// Login handles POST /admin/login. Success sets the session cookie and
// redirects to the events page; failure re-renders the form.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")

	token, ok := h.gate.Login(username, c.PostForm("password"))
	if !ok {
		logger.Handler("auth").Warn("failed admin login attempt", "username", username)
		c.HTML(http.StatusOK, "admin_login.html", gin.H{"error": "Invalid Credentials"})
		return
	}

	h.gate.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/events")
}

// Logout handles GET /admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.gate.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
