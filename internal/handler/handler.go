package handler

import (
	"net/http"
	"strconv"

	v1 "avdportal/api/v1"
	"avdportal/internal/model"
	"avdportal/pkg/jwt"
	"avdportal/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	logger *log.Logger
}

func NewHandler(logger *log.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

func GetUserIdFromCtx(ctx *gin.Context) string {
	v, exists := ctx.Get(jwt.ContextKey)
	if !exists {
		return ""
	}
	claims, ok := v.(*jwt.MyCustomClaims)
	if !ok {
		return ""
	}
	return claims.UserId
}

// GetActorFromCtx 组装当前请求的操作者，鉴权失败时 AdminID 为空
func GetActorFromCtx(ctx *gin.Context) model.Actor {
	actor := clientFromCtx(ctx)
	if v, exists := ctx.Get(jwt.ContextKey); exists {
		if claims, ok := v.(*jwt.MyCustomClaims); ok {
			actor.AdminID = claims.UserId
			actor.Name = claims.Name
		}
	}
	return actor
}

func clientFromCtx(ctx *gin.Context) model.Actor {
	return model.Actor{
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	}
}

// requireActor 未登录时直接返回 401
func requireActor(ctx *gin.Context) (model.Actor, bool) {
	actor := GetActorFromCtx(ctx)
	if actor.AdminID == "" {
		v1.HandleServiceError(ctx, v1.ErrUnauthorized)
		return actor, false
	}
	return actor, true
}

// pathID 解析路径中的数字 ID，非法时返回 400
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, map[string]string{name: "must be a positive integer"})
		return 0, false
	}
	return id, true
}
