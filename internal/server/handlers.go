package server

import (
	"net/http"
	"strings"

	"github.com/alkime/recap/internal/mail"
	"github.com/alkime/recap/internal/recipients"
	"github.com/gin-gonic/gin"
)

const defaultSubject = "Meeting Summary"

type summarizeRequest struct {
	Transcript  string `json:"transcript"`
	Instruction string `json:"instruction"`
}

type sendRequest struct {
	To      string `json:"to"`
	Summary string `json:"summary"`
	Subject string `json:"subject"`
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// handleSummarize generates a summary of the posted transcript.
func (s *Server) handleSummarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Transcript) == "" {
		abortWithError(c, http.StatusBadRequest, "Transcript is required")
		return
	}

	summary, err := s.summarizer.Summarize(c.Request.Context(), req.Transcript, req.Instruction)
	if err != nil {
		s.logger.Error("Failed to generate summary", "error", err)
		abortWithError(c, http.StatusBadGateway, "Failed to generate summary")
		return
	}

	s.logger.Info("Summary generated",
		"transcript_chars", len([]rune(req.Transcript)),
		"summary_chars", len([]rune(summary)),
	)

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// handleSend emails the posted summary to every address found in "to".
func (s *Server) handleSend(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Summary) == "" {
		abortWithError(c, http.StatusBadRequest, "Summary is required")
		return
	}

	to := recipients.Parse(req.To)
	if len(to) == 0 {
		abortWithError(c, http.StatusBadRequest, "No valid recipient emails")
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	id, err := s.sender.Send(c.Request.Context(), mail.Message{
		To:       to,
		Subject:  subject,
		TextBody: req.Summary,
		Tag:      mail.Tag,
	})
	if err != nil {
		s.logger.Error("Failed to send email", "error", err, "recipients", len(to))
		abortWithError(c, http.StatusBadGateway, "Failed to send email")
		return
	}

	s.logger.Info("Email sent", "message_id", id, "recipients", len(to))

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"message_id": id,
		"recipients": to,
	})
}
