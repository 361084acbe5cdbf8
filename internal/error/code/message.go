package code

// 錯誤碼訊息對應
var codeMessageMap = map[int]string{
	// 通用錯誤碼
	ErrSuccess:         "成功",
	ErrUnknown:         "系統發生未預期的錯誤",
	ErrBind:            "請求參數格式錯誤",
	ErrValidation:      "請求參數驗證錯誤",
	ErrTokenInvalid:    "登入逾時或權限不足，請重新登入",
	ErrTooManyRequests: "請求頻率過高，請稍後再試",
	ErrNotFound:        "資源不存在",

	// 認證相關錯誤碼
	ErrAuthRejected:    "驗證失敗，請重新登入",
	ErrCaptchaGenerate: "驗證碼產生失敗",

	// 異常事件相關錯誤碼
	ErrAlertNotFound:      "查無此異常事件",
	ErrAlertStatusInvalid: "狀態代碼錯誤",
	ErrRefreshFlagInvalid: "刷新旗標只能為 Y 或 N",

	// 異常類別相關錯誤碼
	ErrAlertTypeNotFound: "查無此異常類別",
	ErrAlertTypeExists:   "異常類別代碼已存在",

	// 檔案相關錯誤碼
	ErrFileNotFound:    "檔案不存在",
	ErrFileNameInvalid: "檔名不合法",
	ErrFileUpload:      "檔案上傳失敗",
	ErrReportGenerate:  "報表產生失敗",

	// 資料庫相關錯誤碼
	ErrDatabase:       "資料庫錯誤",
	ErrRecordNotFound: "記錄不存在",
}

// 錯誤碼HTTP狀態碼對應
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrNotFound:        StatusNotFound,

	ErrAuthRejected:    StatusUnauthorized,
	ErrCaptchaGenerate: StatusInternalServerError,

	ErrAlertNotFound:      StatusNotFound,
	ErrAlertStatusInvalid: StatusBadRequest,
	ErrRefreshFlagInvalid: StatusBadRequest,

	ErrAlertTypeNotFound: StatusNotFound,
	ErrAlertTypeExists:   StatusBadRequest,

	ErrFileNotFound:    StatusNotFound,
	ErrFileNameInvalid: StatusBadRequest,
	ErrFileUpload:      StatusBadRequest,
	ErrReportGenerate:  StatusInternalServerError,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 取得錯誤碼對應的訊息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 取得錯誤碼對應的HTTP狀態碼
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
