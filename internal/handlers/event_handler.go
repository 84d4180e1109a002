package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/campus-api/internal/auth"
	"github.com/smartcampus/campus-api/internal/response"
	"github.com/smartcampus/campus-api/internal/services"
)

type EventHandler struct {
	events *services.EventService
	gate   *auth.Gate
}

func NewEventHandler(events *services.EventService, gate *auth.Gate) *EventHandler {
	return &EventHandler{events: events, gate: gate}
}

// Create handles POST /events/create
func (h *EventHandler) Create(c *gin.Context) {
	err := h.events.Create(
		c.Request.Context(),
		c.PostForm("title"),
		c.PostForm("date"),
		c.PostForm("time"),
		c.PostForm("details"),
	)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Event created successfully!")
}

// Delete handles POST /events/delete/:event_id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), c.Param("event_id")); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Event deleted successfully!")
}

// Register handles POST /events/register/:event_id
func (h *EventHandler) Register(c *gin.Context) {
	userID, err := h.events.Register(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful!",
		"user_id": userID,
	})
}

// GenerateSummary handles POST /events/generate_summary
func (h *EventHandler) GenerateSummary(c *gin.Context) {
	summary, err := h.events.GenerateSummary(c.Request.Context(), c.PostForm("title"), c.PostForm("details"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": summary,
	})
}

// AnalyzeRegistrations handles GET /events/analyze_registrations/:event_id
func (h *EventHandler) AnalyzeRegistrations(c *gin.Context) {
	report, err := h.events.AnalyzeRegistrations(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  report,
	})
}

// ListPage handles GET /events
func (h *EventHandler) ListPage(c *gin.Context) {
	c.HTML(http.StatusOK, "events.html", gin.H{
		"events":   h.events.List(c.Request.Context()),
		"is_admin": h.gate.IsAdmin(c),
	})
}
