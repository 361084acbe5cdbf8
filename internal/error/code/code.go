package code

// HTTP狀態碼.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 請求參數錯誤.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授權.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止存取.
	StatusForbidden = 403
	// StatusNotFound - 404: 資源不存在.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: 請求過多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 伺服器內部錯誤.
	StatusInternalServerError = 500
)

// 通用錯誤碼 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知錯誤.
	ErrUnknown
	// ErrBind - 400: 請求參數綁定錯誤.
	ErrBind
	// ErrValidation - 400: 請求參數驗證錯誤.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌無效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 請求頻率過高.
	ErrTooManyRequests
	// ErrNotFound - 404: 資源不存在.
	ErrNotFound
)

// 認證相關錯誤碼 (101xxx).
const (
	// ErrAuthRejected - 401: 驗證失敗，不區分原因.
	ErrAuthRejected int = iota + 101000
	// ErrCaptchaGenerate - 500: 驗證碼產生失敗.
	ErrCaptchaGenerate
)

// 異常事件相關錯誤碼 (102xxx).
const (
	// ErrAlertNotFound - 404: 異常事件不存在.
	ErrAlertNotFound int = iota + 102000
	// ErrAlertStatusInvalid - 400: 狀態碼不合法.
	ErrAlertStatusInvalid
	// ErrRefreshFlagInvalid - 400: 刷新旗標只能是 Y 或 N.
	ErrRefreshFlagInvalid
)

// 異常類別相關錯誤碼 (103xxx).
const (
	// ErrAlertTypeNotFound - 404: 異常類別不存在.
	ErrAlertTypeNotFound int = iota + 103000
	// ErrAlertTypeExists - 400: 異常類別代碼已存在.
	ErrAlertTypeExists
)

// 檔案相關錯誤碼 (104xxx).
const (
	// ErrFileNotFound - 404: 檔案不存在.
	ErrFileNotFound int = iota + 104000
	// ErrFileNameInvalid - 400: 檔名不合法.
	ErrFileNameInvalid
	// ErrFileUpload - 400: 上傳失敗.
	ErrFileUpload
	// ErrReportGenerate - 500: 報表產生失敗.
	ErrReportGenerate
)

// 資料庫相關錯誤碼 (105xxx).
const (
	// ErrDatabase - 500: 資料庫錯誤.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 記錄不存在.
	ErrRecordNotFound
)
