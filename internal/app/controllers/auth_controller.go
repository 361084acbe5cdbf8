package controllers

import (
	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定義認證控制器介面
type InterfaceAuthController interface {
	Login()
	Logout()
	Refresh()
	GetCaptcha()
}

// AuthController 處理登入、登出、換發令牌與驗證碼
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 建立認證控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// IsSuccessResponse swagger 用的回應格式
type IsSuccessResponse struct {
	IsSuccess bool        `json:"isSuccess" example:"true"`
	Message   string      `json:"message" example:"成功"`
	Result    interface{} `json:"Result"`
}

// HandleAuthFunc 回傳處理認證請求的 gin handler
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "refresh":
			controller.Refresh()
		case "getCaptcha":
			controller.GetCaptcha()
		default:
			invalidMethod(ctx)
		}
	}
}

func (c *AuthController) authService() services.InterfaceAuthService {
	return c.Container.GetService(container.ServiceAuth).(services.InterfaceAuthService)
}

// Login 帳密加驗證碼登入
// @Summary      Login
// @Description  Authorization: Basic <pre-shared key>, then captcha and credentials; returns access and refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Basic pre-shared key"
// @Param        request body services.LoginRequest true "Login request"
// @Success      200  {object}  IsSuccessResponse{Result=services.TokenPair}
// @Failure      400  {object}  IsSuccessResponse
// @Failure      401  {object}  IsSuccessResponse
// @Router       /api/Auth/Login [post]
func (c *AuthController) Login() {
	authService := c.authService()
	if !authService.CheckBasicKey(c.Ctx.GetHeader("Authorization")) {
		response.Fail(c.Ctx, code.ErrAuthRejected, nil)
		return
	}

	var req services.LoginRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	pair, err := authService.Login(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, pair)
}

// Logout 登出，令牌由前端丟棄
// @Summary      Logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  IsSuccessResponse
// @Router       /api/Auth/Logout [get]
func (c *AuthController) Logout() {
	response.SuccessWithMessage(c.Ctx, "已登出", nil)
}

// Refresh 以過期的存取令牌與刷新令牌換發新令牌
// @Summary      Refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body services.RefreshRequest true "Refresh request"
// @Success      200  {object}  IsSuccessResponse{Result=services.TokenPair}
// @Failure      401  {object}  IsSuccessResponse
// @Router       /api/Auth/Refresh [post]
func (c *AuthController) Refresh() {
	var req services.RefreshRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	pair, err := c.authService().Refresh(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, pair)
}

// GetCaptcha 產生登入驗證碼
// @Summary      Captcha
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  IsSuccessResponse{Result=services.Captcha}
// @Router       /api/Auth/GetCaptcha [get]
func (c *AuthController) GetCaptcha() {
	captchaService := c.Container.GetService(container.ServiceCaptcha).(services.InterfaceCaptchaService)
	captcha, err := captchaService.Generate(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, code.Wrap(code.ErrCaptchaGenerate, err))
		return
	}
	response.Success(c.Ctx, captcha)
}
