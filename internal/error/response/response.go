package response

import (
	"errors"
	"net/http"
	"runtime/debug"

	"factory-monitor-service/internal/error/code"
	Logger "factory-monitor-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Style 回應外層格式
type Style int

const (
	// StyleCode {code,message,data}
	StyleCode Style = iota
	// StyleResCode {res_code,res_msg,data}，儀表板與分析頁使用
	StyleResCode
	// StyleIsSuccess {isSuccess,message,Result}，認證、設定與檔案使用
	StyleIsSuccess
)

const styleKey = "response.style"

// 舊版前端以 res_code 判斷成功與否
const (
	ResCodeOK   = 200
	ResCodeFail = 500
)

var exposeDetail bool

// SetExposeDetail 是否在錯誤回應中附帶錯誤訊息與堆疊
func SetExposeDetail(enabled bool) {
	exposeDetail = enabled
}

// Response 定義統一的回應格式
type Response struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Detail  *ErrorDetail `json:"detail,omitempty"`
}

// ResCodeResponse {res_code,res_msg,data}
type ResCodeResponse struct {
	ResCode int          `json:"res_code"`
	ResMsg  string       `json:"res_msg"`
	Data    interface{}  `json:"data"`
	Detail  *ErrorDetail `json:"detail,omitempty"`
}

// IsSuccessResponse {isSuccess,message,Result}
type IsSuccessResponse struct {
	IsSuccess bool         `json:"isSuccess"`
	Message   string       `json:"message"`
	Result    interface{}  `json:"Result"`
	Detail    *ErrorDetail `json:"detail,omitempty"`
}

// ErrorDetail 除錯用的錯誤細節
type ErrorDetail struct {
	Error string `json:"error"`
	Stack string `json:"stack,omitempty"`
}

// Result 內部統一的結果，輸出時才轉成各自的格式
type Result struct {
	Status  int
	Code    int
	Message string
	Data    interface{}
	Detail  *ErrorDetail
}

// UseStyle 回傳設定回應格式的中介層
func UseStyle(style Style) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(styleKey, style)
		c.Next()
	}
}

func styleOf(c *gin.Context) Style {
	if v, ok := c.Get(styleKey); ok {
		if s, ok := v.(Style); ok {
			return s
		}
	}
	return StyleCode
}

// Render 依路由設定的格式輸出結果
func Render(c *gin.Context, r Result) {
	ok := r.Code == code.ErrSuccess
	switch styleOf(c) {
	case StyleResCode:
		resCode := ResCodeOK
		if !ok {
			resCode = ResCodeFail
		}
		c.JSON(r.Status, ResCodeResponse{ResCode: resCode, ResMsg: r.Message, Data: r.Data, Detail: r.Detail})
	case StyleIsSuccess:
		c.JSON(r.Status, IsSuccessResponse{IsSuccess: ok, Message: r.Message, Result: r.Data, Detail: r.Detail})
	default:
		c.JSON(r.Status, Response{Code: r.Code, Message: r.Message, Data: r.Data, Detail: r.Detail})
	}
}

// Success 成功回應
func Success(c *gin.Context, data interface{}) {
	SuccessWithMessage(c, code.GetMessage(code.ErrSuccess), data)
}

// SuccessWithMessage 成功回應（自訂訊息）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	Render(c, Result{Status: http.StatusOK, Code: code.ErrSuccess, Message: message, Data: data})
}

// Fail 失敗回應
func Fail(c *gin.Context, errorCode int, data interface{}) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode), data)
}

// FailWithMessage 失敗回應（自訂訊息）
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	Render(c, Result{Status: code.GetStatus(errorCode), Code: errorCode, Message: message, Data: data})
}

// ParamError 參數錯誤回應
func ParamError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrValidation)
	}
	FailWithMessage(c, code.ErrValidation, message, nil)
}

// NotFound 資源不存在回應
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrNotFound)
	}
	FailWithMessage(c, code.ErrNotFound, message, nil)
}

// Unauthorized 未授權回應
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}

// ServerError 伺服器錯誤回應，錯誤細節依設定決定是否回傳
func ServerError(c *gin.Context, err error) {
	serverError(c, code.ErrUnknown, code.GetMessage(code.ErrUnknown), err)
}

func serverError(c *gin.Context, errorCode int, message string, err error) {
	Logger.L().Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Int("code", errorCode),
		zap.Error(err),
	)
	r := Result{
		Status:  code.GetStatus(errorCode),
		Code:    errorCode,
		Message: message,
	}
	if exposeDetail && err != nil {
		r.Detail = &ErrorDetail{Error: err.Error(), Stack: string(debug.Stack())}
	}
	Render(c, r)
}

// Error 業務錯誤轉成對應錯誤碼，其餘視為伺服器錯誤
func Error(c *gin.Context, err error) {
	var e *code.Error
	if !errors.As(err, &e) {
		ServerError(c, err)
		return
	}
	if code.GetStatus(e.Code) >= http.StatusInternalServerError {
		serverError(c, e.Code, e.Message, err)
		return
	}
	FailWithMessage(c, e.Code, e.Message, nil)
}
