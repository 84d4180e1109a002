package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/campus-api/internal/ai"
	"github.com/smartcampus/campus-api/internal/logger"
)

// ChatHandler forwards free-text questions to the completion adapter. No
// conversation history is kept; each query stands alone.
type ChatHandler struct {
	completer ai.Completer
}

func NewChatHandler(completer ai.Completer) *ChatHandler {
	return &ChatHandler{completer: completer}
}

// Reply handles GET /get
func (h *ChatHandler) Reply(c *gin.Context) {
	msg := c.Query("msg")
	if msg == "" {
		c.JSON(http.StatusBadRequest, gin.H{"reply": "Error: Missing user message."})
		return
	}

	reply, err := h.completer.Complete(c.Request.Context(), msg)
	if err != nil {
		logger.Handler("chat").Error("completion failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"reply": "Sorry, an error occurred while connecting to the AI. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
