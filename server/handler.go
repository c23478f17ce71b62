package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/qazaqlabs/tilmash"
)

// translateRequest is the inbound JSON body. Messages stays raw so a
// malformed sequence degrades to an empty conversation instead of a 400.
type translateRequest struct {
	Messages   json.RawMessage `json:"messages"`
	TargetLang string          `json:"targetLang"`
	Style      string          `json:"style"`
}

// Handler handles HTTP requests for the assistant.
type Handler struct {
	assistant *tilmash.Assistant
}

// NewHandler creates a new Handler.
func NewHandler(assistant *tilmash.Assistant) *Handler {
	return &Handler{assistant: assistant}
}

// Translate handles POST /api/translate.
func (h *Handler) Translate(c *gin.Context) {
	requestID := c.GetString("request_id")
	start := time.Now()

	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "parse_error",
		}).Warn("Failed to parse request body")

		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	result, err := h.assistant.Complete(c.Request.Context(), tilmash.CompletionRequest{
		Messages:   tilmash.DecodeMessages(req.Messages),
		TargetLang: req.TargetLang,
		Style:      tilmash.ReplyStyle(req.Style),
	})
	if err != nil {
		fields := log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"latency_ms": time.Since(start).Milliseconds(),
			"event":      "fallback_exhausted",
		}
		var fe *tilmash.FallbackError
		if errors.As(err, &fe) {
			fields["attempts"] = len(fe.Failures)
		}
		log.WithFields(fields).Error("All providers failed")

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.WithFields(log.Fields{
		"request_id":  requestID,
		"engine":      result.Engine,
		"target_lang": req.TargetLang,
		"latency_ms":  time.Since(start).Milliseconds(),
		"event":       "success",
	}).Info("Request successful")

	c.JSON(http.StatusOK, gin.H{
		"text":   result.Text,
		"engine": result.Engine,
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
