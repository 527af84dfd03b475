package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/apperrors"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

type chatRequest struct {
	Message string               `json:"message"`
	History []prompt.HistoryTurn `json:"history"`
}

type chatResponse struct {
	Answer          string   `json:"answer"`
	MatchedSections []string `json:"matchedSections"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"model":     s.model,
		"approach":  "long-context-stateless",
		"timestamp": time.Now().Unix(),
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "online",
		"uptime_seconds": int64(time.Since(s.startTime).Seconds()),
		"timestamp":      time.Now().Unix(),
	})
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err.Error())
		return
	}
	if err := validateChatRequest(&req); err != nil {
		s.logger.Warn("Validation error: %v", err)
		writeValidationError(c, err.Error())
		return
	}

	preview := req.Message
	if len(preview) > 50 {
		preview = preview[:50]
	}
	s.logger.Info("Processing message: %s...", preview)

	result, err := s.service.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		s.writeChatError(c, err)
		return
	}

	s.logger.Info("Response generated (%d chars)", len(result.Answer))
	c.JSON(http.StatusOK, chatResponse{
		Answer:          result.Answer,
		MatchedSections: result.MatchedSections,
	})
}

// writeChatError maps a failure class onto the transport: the core only
// classifies; the status codes and caller wording live here.
func (s *Server) writeChatError(c *gin.Context, err error) {
	var providerErr *apperrors.ProviderError
	if !errors.As(err, &providerErr) {
		if errors.Is(err, context.Canceled) {
			// Caller stopped waiting; the job still completes in the queue.
			s.logger.Debug("Client abandoned chat request")
			c.Abort()
			return
		}
		s.logger.Error("Chat error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   string(apperrors.ClassInternal),
			"message": "Unexpected error.",
		})
		return
	}

	s.logger.Error("Chat error: %v (class=%s)", providerErr, providerErr.Class)

	switch providerErr.Class {
	case apperrors.ClassRateLimit:
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       string(apperrors.ClassRateLimit),
			"message":     "Too many requests. Please wait.",
			"retry_after": 60,
		})
	case apperrors.ClassConfiguration:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   string(apperrors.ClassConfiguration),
			"message": "Server error. Contact support.",
		})
	case apperrors.ClassServiceUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   string(apperrors.ClassServiceUnavailable),
			"message": "AI service busy. Try again.",
		})
	case apperrors.ClassContentBlocked:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   string(apperrors.ClassContentBlocked),
			"message": "Message blocked by filters.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   string(apperrors.ClassInternal),
			"message": "Unexpected error.",
		})
	}
}

func writeValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation_error",
		"message": "Invalid request.",
		"details": details,
	})
}
