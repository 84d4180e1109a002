package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/campus-api/internal/auth"
	"github.com/smartcampus/campus-api/internal/domain/record"
	"github.com/smartcampus/campus-api/internal/response"
	"github.com/smartcampus/campus-api/internal/services"
)

// RecordHandler serves the circulars and results pages and their admin write
// endpoints. One handler instance covers both record types; the routes bind
// the type name. Any behavioral divergence between the two is a bug.
type RecordHandler struct {
	records *services.RecordService
	gate    *auth.Gate
}

func NewRecordHandler(records *services.RecordService, gate *auth.Gate) *RecordHandler {
	return &RecordHandler{records: records, gate: gate}
}

// Page handles GET /circulars and GET /results
func (h *RecordHandler) Page(recordType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{
			"records":  []record.PublicRecord{},
			"is_admin": h.gate.IsAdmin(c),
		}

		records, err := h.records.List(c.Request.Context(), recordType)
		if err != nil {
			data["error_message"] = err.Error()
		} else {
			data["records"] = records
		}

		c.HTML(http.StatusOK, recordType+".html", data)
	}
}

// Update handles POST /circulars/update and POST /results/update
func (h *RecordHandler) Update(recordType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		message, err := h.records.Save(
			c.Request.Context(),
			recordType,
			c.PostForm("doc_id"),
			c.PostForm("title"),
			c.PostForm("details"),
		)
		if err != nil {
			fail(c, err)
			return
		}
		response.OK(c, message)
	}
}
