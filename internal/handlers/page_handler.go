package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/campus-api/internal/auth"
)

// PageHandler serves the static dashboard and timetable pages.
type PageHandler struct {
	gate *auth.Gate
}

func NewPageHandler(gate *auth.Gate) *PageHandler {
	return &PageHandler{gate: gate}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"is_admin": h.gate.IsAdmin(c),
	})
}

// Timetable handles GET /timetable
func (h *PageHandler) Timetable(c *gin.Context) {
	c.HTML(http.StatusOK, "timetable.html", gin.H{
		"is_admin": h.gate.IsAdmin(c),
	})
}
