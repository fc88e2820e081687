package server

import (
	"context"
	"net/http"
	"strings"

	"journeo/chat"
	"journeo/llm/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatService is the part of chat.Service the API needs.
type ChatService interface {
	Greeting() string
	Ask(ctx context.Context, sessionID, text string) chat.Answer
	History(ctx context.Context, sessionID string) ([]chat.Entry, error)
	Reset(ctx context.Context, sessionID string) error
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type chatResponse struct {
	SessionID    string                       `json:"session_id"`
	Reply        string                       `json:"reply"`
	Confirmation *booking.BookingConfirmation `json:"confirmation,omitempty"`
	Fallback     bool                         `json:"fallback"`
}

// ChatHandler serves the chat endpoints.
type ChatHandler struct {
	service ChatService
	log     *zap.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(service ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{service: service, log: log}
}

// PostChatHandler runs one chat turn. A request without a session id starts
// a new session.
func (h *ChatHandler) PostChatHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = chat.NewSessionID()
	}

	answer := h.service.Ask(c.Request.Context(), req.SessionID, req.Message)
	c.JSON(http.StatusOK, chatResponse{
		SessionID:    req.SessionID,
		Reply:        answer.Text,
		Confirmation: answer.Confirmation,
		Fallback:     answer.Fallback,
	})
}

// GetMessagesHandler returns a session's transcript.
func (h *ChatHandler) GetMessagesHandler(c *gin.Context) {
	id := c.Param("id")
	entries, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		h.log.Error("failed to read transcript", zap.String("session", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read messages"})
		return
	}
	if entries == nil {
		entries = []chat.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "messages": entries})
}

// DeleteSessionHandler clears a session's transcript.
func (h *ChatHandler) DeleteSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Reset(c.Request.Context(), id); err != nil {
		h.log.Error("failed to clear transcript", zap.String("session", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GreetingHandler returns the opening line of a chat.
func (h *ChatHandler) GreetingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"greeting": h.service.Greeting()})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
