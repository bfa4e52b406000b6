package controller

import (
	"errors"
	"net/http"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type CreateQuizRequest struct {
	Title     string           `json:"title" binding:"required"`
	Questions []model.Question `json:"questions" binding:"required"`
}

func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Create(claims.UserID, req.Title, req.Questions)
	if err != nil {
		if util.IsQuizValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Quiz created successfully",
		"quizInfo": quiz,
	})
}

func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.QuizService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"quiz": quizzes})
}

func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

type UpdateQuizRequest struct {
	Title     *string          `json:"title"`
	Questions []model.Question `json:"questions"`
}

func (c *QuizController) Update(ctx *gin.Context) {
	var req UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(ctx.Param("id"), req.Title, req.Questions)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, err.Error())
		case util.IsQuizValidationError(err):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Quiz updated successfully",
		"quiz":    quiz,
	})
}

func (c *QuizController) Delete(ctx *gin.Context) {
	if err := c.QuizService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}
