package controllers

import (
	"strings"

	"factory-monitor-service/internal/app/middleware"
	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// RecipientController 處理 /api/apiSNA001F 通知對象參考清單
type RecipientController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRecipientController 建立通知對象控制器
func NewRecipientController(ctx *gin.Context, container *container.ServiceContainer) *RecipientController {
	return &RecipientController{Ctx: ctx, Container: container}
}

// HandleRecipientFunc 回傳處理通知對象請求的 gin handler
func HandleRecipientFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRecipientController(ctx, container)

		switch method {
		case "init":
			controller.Init()
		case "search":
			controller.Search()
		default:
			invalidMethod(ctx)
		}
	}
}

func (c *RecipientController) service() services.InterfaceRecipientService {
	return c.Container.GetService(container.ServiceRecipient).(services.InterfaceRecipientService)
}

// Init 通知對象類型
// @Summary      Recipient types
// @Tags         apiSNA001F
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  IsSuccessResponse{Result=[]services.Option}
// @Router       /api/apiSNA001F/Init [get]
// @Router       /api/apiSNA001F/Init [post]
func (c *RecipientController) Init() {
	types, err := c.service().Init(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, types)
}

// Search 查詢通知對象
// @Summary      Search recipients
// @Tags         apiSNA001F
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.RecipientFilter false "Filter"
// @Success      200  {object}  IsSuccessResponse{Result=[]services.Recipient}
// @Router       /api/apiSNA001F/Search [post]
// @Router       /api/apiSNA001F/Search [get]
func (c *RecipientController) Search() {
	var filter services.RecipientFilter
	if !bindFilter(c.Ctx, &filter) {
		return
	}
	rows, err := c.service().Search(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// AlertTypeController 處理 /api/apiSNA002F 異常類別與通知對象維護
type AlertTypeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAlertTypeController 建立異常類別控制器
func NewAlertTypeController(ctx *gin.Context, container *container.ServiceContainer) *AlertTypeController {
	return &AlertTypeController{Ctx: ctx, Container: container}
}

// AvailablePersonsRequest 可選人員查詢
type AvailablePersonsRequest struct {
	AlertCode string `json:"ALERTCODE" form:"ALERTCODE"`
}

// HandleAlertTypeFunc 回傳處理異常類別維護請求的 gin handler
func HandleAlertTypeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAlertTypeController(ctx, container)

		switch method {
		case "init":
			controller.Init()
		case "getAvailablePersons":
			controller.GetAvailablePersons()
		case "insert":
			controller.Insert()
		case "edit":
			controller.Edit()
		default:
			invalidMethod(ctx)
		}
	}
}

func (c *AlertTypeController) service() services.InterfaceAlertTypeService {
	return c.Container.GetService(container.ServiceAlertType).(services.InterfaceAlertTypeService)
}

// Init 異常類別與通知對象
// @Summary      Alert types with recipients
// @Tags         apiSNA002F
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  IsSuccessResponse{Result=[]services.AlertTypeDetail}
// @Router       /api/apiSNA002F/Init [get]
// @Router       /api/apiSNA002F/Init [post]
func (c *AlertTypeController) Init() {
	rows, err := c.service().Init(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// GetAvailablePersons 尚未設定為該類別通知對象的人員
// @Summary      Available persons
// @Tags         apiSNA002F
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AvailablePersonsRequest false "Alert type"
// @Success      200  {object}  IsSuccessResponse{Result=[]models.Person}
// @Router       /api/apiSNA002F/GetAvailablePersons [post]
// @Router       /api/apiSNA002F/GetAvailablePersons [get]
func (c *AlertTypeController) GetAvailablePersons() {
	var req AvailablePersonsRequest
	if !bindFilter(c.Ctx, &req) {
		return
	}
	rows, err := c.service().GetAvailablePersons(c.Ctx.Request.Context(), strings.TrimSpace(req.AlertCode))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}

// Insert 新增異常類別
// @Summary      Insert alert type
// @Tags         apiSNA002F
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AlertTypeRequest true "Alert type and recipients"
// @Success      200  {object}  IsSuccessResponse{Result=services.SaveResult}
// @Failure      400  {object}  IsSuccessResponse
// @Router       /api/apiSNA002F/Insert [post]
func (c *AlertTypeController) Insert() {
	var req services.AlertTypeRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	result, err := c.service().Insert(c.Ctx.Request.Context(), req, actorFrom(c.Ctx))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	middleware.PurgeCache()
	response.Success(c.Ctx, result)
}

// Edit 修改異常類別並整批取代通知對象
// @Summary      Edit alert type
// @Tags         apiSNA002F
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AlertTypeRequest true "Alert type and the full recipient list"
// @Success      200  {object}  IsSuccessResponse{Result=services.SaveResult}
// @Failure      404  {object}  IsSuccessResponse
// @Router       /api/apiSNA002F/Edit [post]
func (c *AlertTypeController) Edit() {
	var req services.AlertTypeRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	result, err := c.service().Edit(c.Ctx.Request.Context(), req, actorFrom(c.Ctx))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	middleware.PurgeCache()
	response.Success(c.Ctx, result)
}
