package controller

import (
	"errors"
	"net/http"

	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScoringController struct {
	ScoringService *service.ScoringService
}

func NewScoringController(scoringService *service.ScoringService) *ScoringController {
	return &ScoringController{ScoringService: scoringService}
}

type scoreRequest struct {
	Answers *[]int `json:"answers"`
}

// Score grades a submission for the quiz named by the id query parameter.
// A malformed body is not rejected here: it is passed down as "no answers"
// so the prior-attempt check still runs first and wins. An empty answers
// array is a valid submission; every question scores incorrect.
func (c *ScoringController) Score(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID := ctx.Query("id")

	var req scoreRequest
	var answers []int
	hasAnswers := false
	if err := ctx.ShouldBindJSON(&req); err == nil && req.Answers != nil {
		answers = *req.Answers
		hasAnswers = true
	}

	result, err := c.ScoringService.Score(claims.UserID, quizID, answers, hasAnswers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrQuizIDRequired),
			errors.Is(err, util.ErrAnswersRequired),
			errors.Is(err, util.ErrAlreadyAttempted):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Score calculated successfully",
		"score":     result.Score,
		"questions": result.Questions,
		"feedback":  result.Feedback,
	})
}
