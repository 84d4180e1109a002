// Package handlers holds the route-level views. Each handler is a thin
// composition of the session gate, the document store services and the
// completion adapter; upstream failures never escape as raw errors.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/smartcampus/campus-api/internal/response"
	"github.com/smartcampus/campus-api/internal/services"
)

// fail maps a service error onto the HTTP error taxonomy: validation errors
// are 400, everything upstream is a generic 500.
func fail(c *gin.Context, err error) {
	if services.KindOf(err) == services.KindValidation {
		response.BadRequest(c, err.Error())
		return
	}
	response.Unavailable(c, err.Error())
}
