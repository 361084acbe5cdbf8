package controllers

import (
	"factory-monitor-service/internal/app/middleware"
	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController 定義儀表板 (攝影機牆) 控制器介面
type InterfaceDashboardController interface {
	Init()
	CamInfo()
	CamCount()
	AlertStatusEdit()
	UpdateAlert()
	AlertTypeCount()
	AlertCount()
	AlertList()
	RefreshPageYN()
	FlagChange()
}

// DashboardController 處理 /api/snb001Q
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 建立儀表板控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResCodeResponse swagger 用的回應格式
type ResCodeResponse struct {
	ResCode int         `json:"res_code" example:"200"`
	ResMsg  string      `json:"res_msg" example:"成功"`
	Data    interface{} `json:"data"`
}

// FlagRequest 刷新旗標
type FlagRequest struct {
	RefreshYN string `json:"REFRESHYN" binding:"required" example:"Y"`
}

// HandleDashboardFunc 回傳處理儀表板請求的 gin handler
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "init":
			controller.Init()
		case "caminfo":
			controller.CamInfo()
		case "camcount":
			controller.CamCount()
		case "alertstatusedit":
			controller.AlertStatusEdit()
		case "updatealert":
			controller.UpdateAlert()
		case "alerttypecount":
			controller.AlertTypeCount()
		case "alertcount":
			controller.AlertCount()
		case "alertlist":
			controller.AlertList()
		case "refreshpageYN":
			controller.RefreshPageYN()
		case "flagchange":
			controller.FlagChange()
		default:
			invalidMethod(ctx)
		}
	}
}

func (c *DashboardController) alertService() services.InterfaceAlertService {
	return c.Container.GetService(container.ServiceAlert).(services.InterfaceAlertService)
}

func (c *DashboardController) refreshFlagService() services.InterfaceRefreshFlagService {
	return c.Container.GetService(container.ServiceRefreshFlag).(services.InterfaceRefreshFlagService)
}

// Init 下拉選單資料
// @Summary      Dashboard init
// @Tags         snb001Q
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ResCodeResponse{data=services.DashboardInit}
// @Router       /api/snb001Q/init [get]
func (c *DashboardController) Init() {
	data, err := c.alertService().Init(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, data)
}

// CamInfo 攝影機牆
// @Summary      Camera wall
// @Description  alert: 無異常 only normal cameras, 異常 only cameras with an open alert, other values match the alert type name
// @Tags         snb001Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CameraWallFilter false "Filter"
// @Success      200  {object}  ResCodeResponse{data=[]services.CameraWallItem}
// @Router       /api/snb001Q/caminfo [post]
func (c *DashboardController) CamInfo() {
	var filter services.CameraWallFilter
	if !bindFilter(c.Ctx, &filter) {
		return
	}
	items, err := c.alertService().CameraWall(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, items)
}

// CamCount 攝影機總數、正常與異常數
// @Summary      Camera counts
// @Tags         snb001Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CameraWallFilter false "Filter"
// @Success      200  {object}  ResCodeResponse{data=services.CameraCounts}
// @Router       /api/snb001Q/camcount [post]
func (c *DashboardController) CamCount() {
	var filter services.CameraWallFilter
	if !bindFilter(c.Ctx, &filter) {
		return
	}
	counts, err := c.alertService().CameraCounts(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, counts)
}

// AlertStatusEdit 維護事件狀態、處理人員與備註
// @Summary      Edit alert status
// @Tags         snb001Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AlertStatusEditRequest true "Edit request"
// @Success      200  {object}  ResCodeResponse
// @Failure      400  {object}  ResCodeResponse
// @Failure      404  {object}  ResCodeResponse
// @Router       /api/snb001Q/alertstatusedit [post]
func (c *DashboardController) AlertStatusEdit() {
	var req services.AlertStatusEditRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	if err := c.alertService().EditStatus(c.Ctx.Request.Context(), req, actorFrom(c.Ctx)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	middleware.PurgeCache()
	response.Success(c.Ctx, nil)
}

// UpdateAlert 攝影機牆點擊，未處理改為處理中
// @Summary      Acknowledge alert
// @Tags         snb001Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AcknowledgeRequest true "Alert"
// @Success      200  {object}  ResCodeResponse{data=bool}
// @Router       /api/snb001Q/UpdateAlert [post]
func (c *DashboardController) UpdateAlert() {
	var req services.AcknowledgeRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	changed, err := c.alertService().Acknowledge(c.Ctx.Request.Context(), req, actorFrom(c.Ctx))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if changed {
		middleware.PurgeCache()
	}
	response.Success(c.Ctx, changed)
}

// AlertTypeCount 本月各異常類別數量
// @Summary      Alert type counts
// @Tags         snb001Q
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ResCodeResponse{data=[]services.AlertTypeCount}
// @Router       /api/snb001Q/alerttypecount [get]
func (c *DashboardController) AlertTypeCount() {
	rows, err := c.alertService().AlertTypeCounts(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// AlertCount 本月各狀態數量
// @Summary      Alert status counts
// @Tags         snb001Q
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ResCodeResponse{data=[]services.StatusCount}
// @Router       /api/snb001Q/alertcount [get]
func (c *DashboardController) AlertCount() {
	rows, err := c.alertService().StatusCounts(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// AlertList 本月事件清單
// @Summary      Alert list
// @Tags         snb001Q
// @Produce      json
// @Security     BearerAuth
// @Param        ALERTSTATUS query string false "01, 02, 03, overdue or total"
// @Param        ALERTCODE query string false "Alert type"
// @Param        CAMLOCATION query string false "Location"
// @Success      200  {object}  ResCodeResponse{data=[]services.AlertRow}
// @Router       /api/snb001Q/alertlist [get]
func (c *DashboardController) AlertList() {
	var filter services.AlertListFilter
	if !bindFilter(c.Ctx, &filter) {
		return
	}
	rows, err := c.alertService().AlertList(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// RefreshPageYN 讀取刷新旗標，consume=Y 時讀到 Y 會同時重設為 N；
// 旗標為 Y 代表資料已被其他程序異動，先清除回應快取
// @Summary      Read refresh flag
// @Tags         snb001Q
// @Produce      json
// @Security     BearerAuth
// @Param        consume query string false "Y to consume the flag"
// @Success      200  {object}  ResCodeResponse{data=string}
// @Router       /api/snb001Q/refreshpageYN [get]
func (c *DashboardController) RefreshPageYN() {
	svc := c.refreshFlagService()
	if c.Ctx.Query("consume") == services.FlagYes {
		consumed, err := svc.Consume(c.Ctx.Request.Context())
		if err != nil {
			response.Error(c.Ctx, err)
			return
		}
		flag := services.FlagNo
		if consumed {
			flag = services.FlagYes
			middleware.PurgeCache()
		}
		response.Success(c.Ctx, flag)
		return
	}

	flag, err := svc.Get(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if flag == services.FlagYes {
		middleware.PurgeCache()
	}
	response.Success(c.Ctx, flag)
}

// FlagChange 設定刷新旗標
// @Summary      Set refresh flag
// @Tags         snb001Q
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FlagRequest true "Flag"
// @Success      200  {object}  ResCodeResponse
// @Router       /api/snb001Q/flagchange [post]
func (c *DashboardController) FlagChange() {
	var req FlagRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	if err := c.refreshFlagService().Set(c.Ctx.Request.Context(), req.RefreshYN); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if req.RefreshYN == services.FlagYes {
		middleware.PurgeCache()
	}
	response.Success(c.Ctx, nil)
}
