// README: AI assistant chat handler (Gemini relay).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"evconnect/internal/modules/assist"
)

type AssistHandler struct {
	ai *assist.Service
}

func NewAssistHandler(aiSvc *assist.Service) *AssistHandler {
	return &AssistHandler{ai: aiSvc}
}

type assistChatReq struct {
	Message string `json:"message"`
}

// Chat handles POST /api/assist/chat.
func (h *AssistHandler) Chat(c *gin.Context) {
	if h.ai == nil {
		writeError(c, http.StatusServiceUnavailable, "assistant not configured")
		return
	}

	var req assistChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reply, err := h.ai.Chat(ctx, req.Message)
	if err != nil {
		writeError(c, http.StatusBadGateway, "failed to get AI response")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"reply": reply})
}
