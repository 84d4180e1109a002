package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/campus-api/internal/auth"
	"github.com/smartcampus/campus-api/internal/response"
	"github.com/smartcampus/campus-api/internal/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
	gate       *auth.Gate
}

func NewAttendanceHandler(attendance *services.AttendanceService, gate *auth.Gate) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, gate: gate}
}

// Page handles GET /attendance. The global table is visible to everyone; the
// detail card shows the student named by ?user_id (or the default sentinel).
func (h *AttendanceHandler) Page(c *gin.Context) {
	all, focused := h.attendance.Overview(c.Request.Context(), c.Query("user_id"))

	c.HTML(http.StatusOK, "attendance.html", gin.H{
		"attendance":   focused,
		"all_students": all,
		"is_admin":     h.gate.IsAdmin(c),
	})
}

// Update handles POST /attendance/update
func (h *AttendanceHandler) Update(c *gin.Context) {
	message, err := h.attendance.Update(
		c.Request.Context(),
		c.PostForm("student_id"),
		c.PostForm("percentage"),
		c.PostForm("status"),
	)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, message)
}
