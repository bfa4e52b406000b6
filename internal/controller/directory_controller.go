package controller

import (
	"errors"
	"net/http"
	"strconv"

	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DirectoryController struct {
	DirectoryService *service.DirectoryService
}

func NewDirectoryController(directoryService *service.DirectoryService) *DirectoryController {
	return &DirectoryController{DirectoryService: directoryService}
}

func (c *DirectoryController) ListUsers(ctx *gin.Context) {
	users, err := c.DirectoryService.ListUsersWithCounts(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

func (c *DirectoryController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.NotFound(ctx, util.ErrUserNotFound.Error())
		return
	}

	user, quizCount, err := c.DirectoryService.GetUserDetail(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"isLogin":    user.IsLogin,
			"totalScore": user.TotalScore,
			"createdAt":  user.CreatedAt,
			"quizCount":  quizCount,
		},
	})
}

func (c *DirectoryController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.DirectoryService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
