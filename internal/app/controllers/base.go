package controllers

import (
	"factory-monitor-service/internal/app/middleware"
	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// actorFrom 目前登入者與來源 IP，寫入稽核欄位用
func actorFrom(ctx *gin.Context) models.Actor {
	return models.Actor{
		UserID:   ctx.GetString(middleware.ContextUserID),
		UserName: ctx.GetString(middleware.ContextUserName),
		IP:       ctx.ClientIP(),
	}
}

// bindFilter 查詢條件可以放在 body 或 query string，body 為空時視為沒有條件
func bindFilter(ctx *gin.Context, dest interface{}) bool {
	var err error
	if ctx.Request.ContentLength == 0 {
		err = ctx.ShouldBindQuery(dest)
	} else {
		err = ctx.ShouldBind(dest)
	}
	if err != nil {
		response.FailWithMessage(ctx, code.ErrBind, code.GetMessage(code.ErrBind), nil)
		return false
	}
	return true
}

// bindJSON 綁定必填的 JSON body
func bindJSON(ctx *gin.Context, dest interface{}) bool {
	if err := ctx.ShouldBindJSON(dest); err != nil {
		response.ParamError(ctx, "")
		return false
	}
	return true
}

func invalidMethod(ctx *gin.Context) {
	response.FailWithMessage(ctx, code.ErrBind, "無效的方法", nil)
}
