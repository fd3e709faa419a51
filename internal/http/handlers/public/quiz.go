package public

import (
	"errors"

	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// QuizAnswerRequest carries the chosen option ids.
type QuizAnswerRequest struct {
	OptionIDs []uint `json:"option_ids" binding:"required"`
}

// GetQuiz returns the scent quiz questions with their options.
func (h *Handler) GetQuiz(c *gin.Context) {
	questions, err := h.QuizService.Questions()
	if err != nil {
		respondError(c, response.CodeInternal, "quiz fetch failed", err)
		return
	}
	response.Success(c, gin.H{"questions": questions})
}

// MatchQuiz scores the catalog against the chosen options.
func (h *Handler) MatchQuiz(c *gin.Context) {
	var req QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	matches, err := h.QuizService.Match(req.OptionIDs)
	if err != nil {
		if errors.Is(err, service.ErrQuizAnswerInvalid) {
			response.BadRequest(c, "quiz answers invalid")
			return
		}
		respondError(c, response.CodeInternal, "quiz match failed", err)
		return
	}
	response.Success(c, gin.H{"matches": matches})
}
