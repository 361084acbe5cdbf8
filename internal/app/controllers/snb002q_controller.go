package controllers

import (
	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// AnalyticsController 處理 /api/snb002Q 統計分析
type AnalyticsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnalyticsController 建立統計分析控制器
func NewAnalyticsController(ctx *gin.Context, container *container.ServiceContainer) *AnalyticsController {
	return &AnalyticsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAnalyticsFunc 回傳處理統計分析請求的 gin handler
func HandleAnalyticsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnalyticsController(ctx, container)

		switch method {
		case "init":
			controller.Init()
		case "eventcount":
			controller.EventCount()
		case "camlocationcount":
			controller.LocationCount()
		case "camlocationeventcount":
			controller.LocationEventCount()
		case "timeline":
			controller.Timeline()
		case "timelinelist":
			controller.TimelineList()
		default:
			invalidMethod(ctx)
		}
	}
}

func (c *AnalyticsController) service() services.InterfaceAnalyticsService {
	return c.Container.GetService(container.ServiceAnalytics).(services.InterfaceAnalyticsService)
}

func (c *AnalyticsController) filter() (services.AnalyticsFilter, bool) {
	var filter services.AnalyticsFilter
	ok := bindFilter(c.Ctx, &filter)
	return filter, ok
}

// Init 統計頁初始資料
// @Summary      Analytics init
// @Tags         snb002Q
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ResCodeResponse{data=services.AnalyticsInit}
// @Router       /api/snb002Q/init [get]
func (c *AnalyticsController) Init() {
	data, err := c.service().Init(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, data)
}

// EventCount 各異常類別數量與占比
// @Summary      Event counts by alert type
// @Tags         snb002Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AnalyticsFilter false "Filter"
// @Success      200  {object}  ResCodeResponse{data=[]services.EventCountRow}
// @Router       /api/snb002Q/eventcount [post]
func (c *AnalyticsController) EventCount() {
	filter, ok := c.filter()
	if !ok {
		return
	}
	rows, err := c.service().EventCount(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// LocationCount 各區域數量
// @Summary      Event counts by location
// @Tags         snb002Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AnalyticsFilter false "Filter"
// @Success      200  {object}  ResCodeResponse{data=[]services.LocationCountRow}
// @Router       /api/snb002Q/camlocationcount [post]
func (c *AnalyticsController) LocationCount() {
	filter, ok := c.filter()
	if !ok {
		return
	}
	rows, err := c.service().LocationCount(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// LocationEventCount 區域 x 異常類別
// @Summary      Event counts by location and alert type
// @Tags         snb002Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AnalyticsFilter false "Filter"
// @Success      200  {object}  ResCodeResponse{data=services.Pivot}
// @Router       /api/snb002Q/camlocationeventcount [post]
func (c *AnalyticsController) LocationEventCount() {
	filter, ok := c.filter()
	if !ok {
		return
	}
	pivot, err := c.service().LocationEventCount(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, pivot)
}

// Timeline 每日趨勢
// @Summary      Daily trend
// @Tags         snb002Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AnalyticsFilter false "Filter"
// @Success      200  {object}  ResCodeResponse{data=services.Pivot}
// @Router       /api/snb002Q/timeline [post]
func (c *AnalyticsController) Timeline() {
	filter, ok := c.filter()
	if !ok {
		return
	}
	pivot, err := c.service().Timeline(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, pivot)
}

// TimelineList 事件明細
// @Summary      Event detail list
// @Tags         snb002Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AnalyticsFilter false "Filter and pagination"
// @Success      200  {object}  ResCodeResponse{data=models.PageResult[services.AlertRow]}
// @Router       /api/snb002Q/timelinelist [post]
func (c *AnalyticsController) TimelineList() {
	filter, ok := c.filter()
	if !ok {
		return
	}
	page, err := c.service().TimelineList(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, page)
}
